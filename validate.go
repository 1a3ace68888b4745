// Package isemail validates email addresses against RFC 5321/5322/5952/4291
// grammar with a single-pass character state machine, returning a specific
// Diagnosis rather than a plain yes/no.
package isemail

import (
	"context"
	"unicode"

	"github.com/z3d6380/isemail/dns"
	"github.com/z3d6380/isemail/internal/htmlfilter"
	"github.com/z3d6380/isemail/internal/parser"
)

// SeverityControl coarsens the Diagnosis into Result.Valid. The zero value,
// SeverityOff, reproduces the literal BooleanThreshold cutoff; SeverityError
// narrows it further, to the point that only a literal Valid diagnosis
// passes.
type SeverityControl int

const (
	// SeverityOff applies BooleanThreshold: CFWS and above is invalid.
	SeverityOff SeverityControl = iota
	// SeverityWarning applies the same BooleanThreshold cutoff explicitly:
	// CFWS and above is invalid.
	SeverityWarning
	// SeverityError is the strictest: the threshold is CategoryValid
	// itself, so any diagnosis at all — even a DNSWARN or RFC5321 note —
	// counts as invalid.
	SeverityError
)

// DomainChecker performs the MX→A→CNAME fallback lookup that backs DNS
// checking. dns.Resolver implements this.
type DomainChecker interface {
	Check(ctx context.Context, domain string) dns.CheckResult
}

// Options configures a single Validate call. The zero value disables DNS
// checking and uses the default severity cutoff.
type Options struct {
	// DNSEnabled turns on the MX/A/CNAME lookup described in spec §4.9. When
	// false, the domain is instead checked heuristically: a single-label
	// domain is flagged RFC5321TLD (or RFC5321TLDNumeric if that label
	// starts with a digit).
	DNSEnabled bool
	// Resolver supplies the DomainChecker to use when DNSEnabled is true.
	// A nil Resolver falls back to dns.NewResolver().
	Resolver DomainChecker
	// Severity coarsens which bands count as invalid. Threshold, if set,
	// overrides it entirely.
	Severity SeverityControl
	// Threshold, when non-nil, is used verbatim as the invalid cutoff:
	// a Diagnosis >= *Threshold is invalid.
	Threshold *Diagnosis
}

// Result is the outcome of a single Validate call.
type Result struct {
	// Diagnosis is the single most severe code observed across parsing,
	// structural post-checks, and (if requested) domain existence checks —
	// collapsed to Valid when that code falls below the effective
	// threshold, so a below-threshold diagnosis never leaks through.
	Diagnosis Diagnosis
	// Valid is Diagnosis == Valid, i.e. whether the observed code fell
	// below Options' effective threshold.
	Valid bool
}

// Validate runs the full pipeline against email: HTML-entity pre-filtering,
// single-pass grammar parsing, structural post-checks, and — per opts — a
// domain existence check, then reduces everything to one Result.
func Validate(ctx context.Context, email string, opts Options) Result {
	filtered := htmlfilter.Apply(email)

	out, err := parser.Parse([]byte(filtered))
	if err != nil {
		// Both invariant violations spec §7 names are asserted unreachable
		// on any input the parser itself produced; surfacing them as a
		// panic keeps a real state-machine bug loud instead of silently
		// mis-diagnosing the address.
		panic(ErrInternalInvariant{cause: err})
	}

	diagnoses := out.Diagnoses
	worst := maxDiagnosis(diagnoses)

	if !worst.IsFatal() {
		worst = applyDomainPolicy(ctx, opts, out, diagnoses, worst)
	}

	// Monotone thresholding: anything below the threshold reports as
	// Valid outright rather than leaking its raw (but immaterial) code.
	threshold := opts.effectiveThreshold()
	diag := worst
	if worst < threshold {
		diag = Valid
	}
	return Result{
		Diagnosis: diag,
		Valid:     diag == Valid,
	}
}

func applyDomainPolicy(ctx context.Context, opts Options, out parser.Outcome, diagnoses map[Diagnosis]struct{}, worst Diagnosis) Diagnosis {
	if opts.DNSEnabled {
		checker := opts.Resolver
		if checker == nil {
			checker = dns.NewResolver()
		}
		result := checker.Check(ctx, out.Components.Domain)
		if !result.Consulted {
			return worst
		}
		switch {
		case result.NoRecord:
			diagnoses[DNSWarnNoRecord] = struct{}{}
		case result.NoMX:
			diagnoses[DNSWarnNoMXRecord] = struct{}{}
		}
		return maxDiagnosis(diagnoses)
	}

	atoms := out.Atoms.Domain
	if len(atoms) == 1 && len(atoms[0]) > 0 {
		if unicode.IsDigit(rune(atoms[0][0])) {
			diagnoses[RFC5321TLDNumeric] = struct{}{}
		} else {
			diagnoses[RFC5321TLD] = struct{}{}
		}
	}
	return maxDiagnosis(diagnoses)
}

func maxDiagnosis(diagnoses map[Diagnosis]struct{}) Diagnosis {
	worst := Valid
	for d := range diagnoses {
		if d > worst {
			worst = d
		}
	}
	return worst
}

func (o Options) effectiveThreshold() Diagnosis {
	if o.Threshold != nil {
		return *o.Threshold
	}
	switch o.Severity {
	case SeverityError:
		return CategoryValid
	case SeverityWarning:
		return BooleanThreshold
	default:
		return BooleanThreshold
	}
}
