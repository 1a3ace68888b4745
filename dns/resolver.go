// Package dns abstracts the MX/A/CNAME lookups the validator consults as an
// external collaborator. It never decides what a missing record means for
// the overall verdict — that translation to a diagnosis happens in the
// isemail package — it only reports what it found.
package dns

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
)

// DefaultDialTimeout caps every dial NewResolver's stdlib client makes; a
// caller's context deadline that falls earlier takes precedence.
const DefaultDialTimeout = 5 * time.Second

// maxTimeoutRetries bounds how many times a single lookup is retried after
// a timeout before giving up silently, per spec §4.9.
const maxTimeoutRetries = 3

// MXResolver looks up MX records for a domain.
type MXResolver interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}

// HostResolver looks up A/AAAA records for a host.
type HostResolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// CNAMEResolver looks up the canonical name for a host.
type CNAMEResolver interface {
	LookupCNAME(ctx context.Context, host string) (string, error)
}

// Resolver bundles the three lookups Resolver.Check needs. The zero
// value is not usable; construct one with NewResolver or NewCustomResolver.
type Resolver struct {
	mx    MXResolver
	host  HostResolver
	cname CNAMEResolver
}

// NewResolver returns a Resolver backed by Go's stdlib DNS client, the same
// PreferGo/StrictErrors/dial-timeout shape used throughout the rest of this
// dependency family.
func NewResolver() *Resolver {
	nr := &net.Resolver{
		StrictErrors: true,
		PreferGo:     true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := &net.Dialer{Timeout: DefaultDialTimeout}
			return d.DialContext(ctx, network, address)
		},
	}
	return &Resolver{mx: nr, host: nr, cname: nr}
}

// NewCustomResolver lets callers (tests, or hosts with their own resolver)
// supply implementations for each lookup. A nil argument falls back to the
// stdlib resolver for that lookup only.
func NewCustomResolver(mx MXResolver, host HostResolver, cname CNAMEResolver) *Resolver {
	nr := &net.Resolver{}
	if mx == nil {
		mx = nr
	}
	if host == nil {
		host = nr
	}
	if cname == nil {
		cname = nr
	}
	return &Resolver{mx: mx, host: host, cname: cname}
}

// CheckResult reports what the MX→A→CNAME fallback found for a domain.
type CheckResult struct {
	// Consulted is false when any lookup the chain reached timed out
	// persistently; the caller must not raise any diagnosis in that case.
	Consulted bool
	// NoMX is true when the MX lookup returned an empty record set.
	NoMX bool
	// NoRecord is true when MX, A, and CNAME were all empty or absent.
	NoRecord bool
}

// Check performs the MX lookup, falling back to A then CNAME on an empty
// MX set, per spec §4.9. The domain gets a trailing dot appended for the MX
// query when it has no dots of its own.
func (r *Resolver) Check(ctx context.Context, domain string) CheckResult {
	mxDomain := domain
	if !strings.Contains(domain, ".") {
		mxDomain += "."
	}

	mxs, ok := retry(func() (bool, error) {
		recs, err := r.mx.LookupMX(ctx, mxDomain)
		return len(recs) > 0, err
	})
	if !ok {
		return CheckResult{}
	}
	if mxs {
		return CheckResult{Consulted: true}
	}

	res := CheckResult{Consulted: true, NoMX: true}

	aFound, ok := retry(func() (bool, error) {
		recs, err := r.host.LookupIPAddr(ctx, domain)
		return len(recs) > 0, err
	})
	if !ok {
		return CheckResult{}
	}
	if aFound {
		return res
	}

	cFound, ok := retry(func() (bool, error) {
		name, err := r.cname.LookupCNAME(ctx, domain)
		return name != "" && name != domain+".", err
	})
	if !ok {
		return CheckResult{}
	}
	if !cFound {
		res.NoRecord = true
	}
	return res
}

// retry runs fn once and, only on timeout, up to maxTimeoutRetries more
// times. A non-timeout error (NXDOMAIN, no nameservers, ...) is treated the
// same as an empty record set. ok is false only when every attempt timed out.
func retry(fn func() (bool, error)) (found bool, ok bool) {
	for i := 0; i <= maxTimeoutRetries; i++ {
		found, err := fn()
		if err == nil {
			return found, true
		}
		if !isTimeout(err) {
			return false, true
		}
	}
	return false, false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
