package isemail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/z3d6380/isemail/dns"
)

type fakeChecker struct {
	result dns.CheckResult
}

func (f fakeChecker) Check(ctx context.Context, domain string) dns.CheckResult {
	return f.result
}

func TestValidate_TLDPolicyWithoutDNS(t *testing.T) { //nolint:paralleltest
	// RFC5321TLD/TLDNumeric (9, 10) are below the default BooleanThreshold
	// (16), so they collapse to Valid rather than leaking the raw code.
	got := Validate(context.Background(), "test@iana", Options{})
	assert.Equal(t, Valid, got.Diagnosis)
	assert.True(t, got.Valid)

	got = Validate(context.Background(), "test@iana.org", Options{})
	assert.Equal(t, Valid, got.Diagnosis)
	assert.True(t, got.Valid)

	// SeverityError's threshold of CategoryValid (0) surfaces every
	// diagnosis, including these, and treats anything but a literal Valid
	// diagnosis as invalid.
	got = Validate(context.Background(), "test@iana", Options{Severity: SeverityError})
	assert.Equal(t, RFC5321TLD, got.Diagnosis)
	assert.False(t, got.Valid)

	got = Validate(context.Background(), "test@123", Options{Severity: SeverityError})
	assert.Equal(t, RFC5321TLDNumeric, got.Diagnosis)
	assert.False(t, got.Valid)
}

func TestValidate_DNSPolicy(t *testing.T) { //nolint:paralleltest
	tc := []struct {
		name   string
		result dns.CheckResult
		want   Diagnosis
	}{
		{"MX present", dns.CheckResult{Consulted: true}, Valid},
		{"no MX record", dns.CheckResult{Consulted: true, NoMX: true}, DNSWarnNoMXRecord},
		{"no record at all", dns.CheckResult{Consulted: true, NoMX: true, NoRecord: true}, DNSWarnNoRecord},
		{"persistent timeout is silent", dns.CheckResult{}, Valid},
	}
	for _, c := range tc {
		t.Run(c.name, func(t *testing.T) {
			// SeverityError's threshold of CategoryValid (0) surfaces every
			// diagnosis, including the DNSWARN band, without collapsing it.
			got := Validate(context.Background(), "test@iana.org", Options{
				DNSEnabled: true,
				Resolver:   fakeChecker{result: c.result},
				Severity:   SeverityError,
			})
			assert.Equal(t, c.want, got.Diagnosis)
		})
	}
}

func TestValidate_SeverityThresholds(t *testing.T) { //nolint:paralleltest
	const cfws = "(comment)test@iana.org" // CFWSComment, 17

	off := Validate(context.Background(), cfws, Options{Severity: SeverityOff})
	assert.False(t, off.Valid, "SeverityOff's BooleanThreshold treats CFWS as invalid")

	warn := Validate(context.Background(), cfws, Options{Severity: SeverityWarning})
	assert.False(t, warn.Valid, "SeverityWarning applies the same BooleanThreshold cutoff")

	// A single-label domain (RFC5321TLD, 9) is below BooleanThreshold, so
	// both SeverityOff and SeverityWarning tolerate it...
	tld := Validate(context.Background(), "test@iana", Options{Severity: SeverityWarning})
	assert.True(t, tld.Valid)

	// ...but SeverityError's threshold of CategoryValid (0) accepts
	// nothing short of a literal Valid diagnosis.
	strict := Validate(context.Background(), "test@iana", Options{Severity: SeverityError})
	assert.False(t, strict.Valid, "SeverityError accepts nothing but Valid itself")
}

func TestValidate_ExplicitThresholdOverridesSeverity(t *testing.T) { //nolint:paralleltest
	// SeverityWarning alone would collapse RFC5321TLD (9) to Valid; the
	// explicit threshold of 9 must win and report it as invalid.
	threshold := RFC5321TLD
	got := Validate(context.Background(), "test@iana", Options{
		Severity:  SeverityWarning,
		Threshold: &threshold,
	})
	assert.False(t, got.Valid, "Threshold should win over Severity")
}

func TestValidate_DoesNotPanicOnOrdinaryInput(t *testing.T) { //nolint:paralleltest
	// The parser cannot itself produce an unreachable state from ordinary
	// input, so the invariant panic path is not exercised here; this only
	// checks that a well-formed address passes through without a panic.
	assert.NotPanics(t, func() {
		Validate(context.Background(), "test@iana.org", Options{})
	})
}
