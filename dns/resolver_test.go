package dns

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeMX struct {
	recs []*net.MX
	err  error
}

func (f *fakeMX) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	return f.recs, f.err
}

type fakeHost struct {
	addrs []net.IPAddr
	err   error
}

func (f *fakeHost) LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error) {
	return f.addrs, f.err
}

type fakeCNAME struct {
	name string
	err  error
}

func (f *fakeCNAME) LookupCNAME(ctx context.Context, host string) (string, error) {
	return f.name, f.err
}

// timeoutAlways always reports a timeout, regardless of how many times it is
// called, to exercise the persistent-timeout path.
type timeoutAlways struct{}

func (timeoutAlways) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	return nil, &net.DNSError{Err: "i/o timeout", Name: domain, IsTimeout: true}
}
func (timeoutAlways) LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error) {
	return nil, &net.DNSError{Err: "i/o timeout", Name: host, IsTimeout: true}
}
func (timeoutAlways) LookupCNAME(ctx context.Context, host string) (string, error) {
	return "", &net.DNSError{Err: "i/o timeout", Name: host, IsTimeout: true}
}

func TestResolver_Check(t *testing.T) { //nolint:paralleltest
	tc := []struct {
		name string
		mx   MXResolver
		host HostResolver
		cname CNAMEResolver
		want CheckResult
	}{
		{
			name: "MX present",
			mx:   &fakeMX{recs: []*net.MX{{Host: "mail.iana.org."}}},
			host: &fakeHost{},
			cname: &fakeCNAME{},
			want: CheckResult{Consulted: true},
		},
		{
			name: "MX empty, A present",
			mx:   &fakeMX{},
			host: &fakeHost{addrs: []net.IPAddr{{IP: net.ParseIP("1.2.3.4")}}},
			cname: &fakeCNAME{},
			want: CheckResult{Consulted: true, NoMX: true},
		},
		{
			name: "MX, A, CNAME all empty",
			mx:   &fakeMX{},
			host: &fakeHost{},
			cname: &fakeCNAME{},
			want: CheckResult{Consulted: true, NoMX: true, NoRecord: true},
		},
		{
			name: "MX NXDOMAIN treated as empty",
			mx:   &fakeMX{err: &net.DNSError{Err: "no such host", Name: "x", IsNotFound: true}},
			host: &fakeHost{},
			cname: &fakeCNAME{},
			want: CheckResult{Consulted: true, NoMX: true, NoRecord: true},
		},
		{
			name: "persistent timeout is inconclusive",
			mx:   timeoutAlways{},
			host: timeoutAlways{},
			cname: timeoutAlways{},
			want: CheckResult{},
		},
	}

	for _, c := range tc { //nolint:paralleltest
		t.Run(c.name, func(t *testing.T) {
			r := NewCustomResolver(c.mx, c.host, c.cname)
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			got := r.Check(ctx, "iana.org")
			assert.Equal(t, c.want, got)
		})
	}
}
