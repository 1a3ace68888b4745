// Package parser implements the single-pass character state machine that
// tokenizes an email address against RFC 5321/5322 grammar and accumulates
// the diagnoses it observes along the way.
package parser

import "fmt"

// Diagnosis is one outcome of validating an address. Its numeric value is
// part of the public contract: downstream tools key off these exact
// integers, so the constants below must never be renumbered. The root
// isemail package aliases this type rather than redefining it, since the
// parser is the only place the taxonomy is actually produced.
type Diagnosis int

// Category bands. A diagnosis belongs to exactly one band, determined by
// walking bandBoundaries in Category.
const (
	CategoryValid   Diagnosis = 0
	CategoryDNSWarn Diagnosis = 7
	CategoryRFC5321 Diagnosis = 15
	CategoryCFWS    Diagnosis = 31
	CategoryDeprec  Diagnosis = 63
	CategoryRFC5322 Diagnosis = 127
	CategoryErr     Diagnosis = 255
)

// Diagnosis codes, grouped by band. Values match the reference taxonomy
// byte-for-byte.
const (
	Valid Diagnosis = 0

	DNSWarnNoMXRecord Diagnosis = 5
	DNSWarnNoRecord   Diagnosis = 6

	RFC5321TLD            Diagnosis = 9
	RFC5321TLDNumeric     Diagnosis = 10
	RFC5321QuotedString   Diagnosis = 11
	RFC5321AddressLiteral Diagnosis = 12
	RFC5321IPv6Deprecated Diagnosis = 13

	CFWSComment Diagnosis = 17
	CFWSFWS     Diagnosis = 18

	DeprecLocalPart  Diagnosis = 33
	DeprecFWS        Diagnosis = 34
	DeprecQtext      Diagnosis = 35
	DeprecQP         Diagnosis = 36
	DeprecComment    Diagnosis = 37
	DeprecCtext      Diagnosis = 38
	DeprecCFWSNearAt Diagnosis = 49

	RFC5322Domain           Diagnosis = 65
	RFC5322TooLong          Diagnosis = 66
	RFC5322LocalTooLong     Diagnosis = 67
	RFC5322DomainTooLong    Diagnosis = 68
	RFC5322LabelTooLong     Diagnosis = 69
	RFC5322DomainLiteral    Diagnosis = 70
	RFC5322DomLitObsDtext   Diagnosis = 71
	RFC5322IPv6GrpCount     Diagnosis = 72
	RFC5322IPv6TwoXTwoColon Diagnosis = 73
	RFC5322IPv6BadChar      Diagnosis = 74
	RFC5322IPv6MaxGrps      Diagnosis = 75
	RFC5322IPv6ColonStrt    Diagnosis = 76
	RFC5322IPv6ColonEnd     Diagnosis = 77

	ErrExpectingDtext    Diagnosis = 129
	ErrNoLocalPart       Diagnosis = 130
	ErrNoDomain          Diagnosis = 131
	ErrConsecutiveDots   Diagnosis = 132
	ErrAtextAfterCFWS    Diagnosis = 133
	ErrAtextAfterQS      Diagnosis = 134
	ErrAtextAfterDomLit  Diagnosis = 135
	ErrExpectingQPair    Diagnosis = 136
	ErrExpectingAtext    Diagnosis = 137
	ErrExpectingQtext    Diagnosis = 138
	ErrExpectingCtext    Diagnosis = 139
	ErrBackslashEnd      Diagnosis = 140
	ErrDotStart          Diagnosis = 141
	ErrDotEnd            Diagnosis = 142
	ErrDomainHyphenStart Diagnosis = 143
	ErrDomainHyphenEnd   Diagnosis = 144
	ErrUnclosedQuotedStr Diagnosis = 145
	ErrUnclosedComment   Diagnosis = 146
	ErrUnclosedDomLit    Diagnosis = 147
	ErrFWSCRLFx2         Diagnosis = 148
	ErrFWSCRLFEnd        Diagnosis = 149
	ErrCRNoLF            Diagnosis = 150
	ErrLFNoCR            Diagnosis = 151
)

var diagnosisNames = map[Diagnosis]string{
	Valid: "VALID",

	DNSWarnNoMXRecord: "DNSWARN_NO_MX_RECORD",
	DNSWarnNoRecord:   "DNSWARN_NO_RECORD",

	RFC5321TLD:            "RFC5321_TLD",
	RFC5321TLDNumeric:     "RFC5321_TLDNUMERIC",
	RFC5321QuotedString:   "RFC5321_QUOTEDSTRING",
	RFC5321AddressLiteral: "RFC5321_ADDRESSLITERAL",
	RFC5321IPv6Deprecated: "RFC5321_IPV6DEPRECATED",

	CFWSComment: "CFWS_COMMENT",
	CFWSFWS:     "CFWS_FWS",

	DeprecLocalPart:  "DEPREC_LOCALPART",
	DeprecFWS:        "DEPREC_FWS",
	DeprecQtext:      "DEPREC_QTEXT",
	DeprecQP:         "DEPREC_QP",
	DeprecComment:    "DEPREC_COMMENT",
	DeprecCtext:      "DEPREC_CTEXT",
	DeprecCFWSNearAt: "DEPREC_CFWS_NEAR_AT",

	RFC5322Domain:           "RFC5322_DOMAIN",
	RFC5322TooLong:          "RFC5322_TOOLONG",
	RFC5322LocalTooLong:     "RFC5322_LOCAL_TOOLONG",
	RFC5322DomainTooLong:    "RFC5322_DOMAIN_TOOLONG",
	RFC5322LabelTooLong:     "RFC5322_LABEL_TOOLONG",
	RFC5322DomainLiteral:    "RFC5322_DOMAINLITERAL",
	RFC5322DomLitObsDtext:   "RFC5322_DOMLIT_OBSDTEXT",
	RFC5322IPv6GrpCount:     "RFC5322_IPV6_GRPCOUNT",
	RFC5322IPv6TwoXTwoColon: "RFC5322_IPV6_2X2XCOLON",
	RFC5322IPv6BadChar:      "RFC5322_IPV6_BADCHAR",
	RFC5322IPv6MaxGrps:      "RFC5322_IPV6_MAXGRPS",
	RFC5322IPv6ColonStrt:    "RFC5322_IPV6_COLONSTRT",
	RFC5322IPv6ColonEnd:     "RFC5322_IPV6_COLONEND",

	ErrExpectingDtext:    "ERR_EXPECTING_DTEXT",
	ErrNoLocalPart:       "ERR_NOLOCALPART",
	ErrNoDomain:          "ERR_NODOMAIN",
	ErrConsecutiveDots:   "ERR_CONSECUTIVEDOTS",
	ErrAtextAfterCFWS:    "ERR_ATEXT_AFTER_CFWS",
	ErrAtextAfterQS:      "ERR_ATEXT_AFTER_QS",
	ErrAtextAfterDomLit:  "ERR_ATEXT_AFTER_DOMLIT",
	ErrExpectingQPair:    "ERR_EXPECTING_QPAIR",
	ErrExpectingAtext:    "ERR_EXPECTING_ATEXT",
	ErrExpectingQtext:    "ERR_EXPECTING_QTEXT",
	ErrExpectingCtext:    "ERR_EXPECTING_CTEXT",
	ErrBackslashEnd:      "ERR_BACKSLASHEND",
	ErrDotStart:          "ERR_DOT_START",
	ErrDotEnd:            "ERR_DOT_END",
	ErrDomainHyphenStart: "ERR_DOMAINHYPHENSTART",
	ErrDomainHyphenEnd:   "ERR_DOMAINHYPHENEND",
	ErrUnclosedQuotedStr: "ERR_UNCLOSEDQUOTEDSTR",
	ErrUnclosedComment:   "ERR_UNCLOSEDCOMMENT",
	ErrUnclosedDomLit:    "ERR_UNCLOSEDDOMLIT",
	ErrFWSCRLFx2:         "ERR_FWS_CRLF_X2",
	ErrFWSCRLFEnd:        "ERR_FWS_CRLF_END",
	ErrCRNoLF:            "ERR_CR_NO_LF",
	ErrLFNoCR:            "ERR_LF_NO_CR",
}

// bandBoundaries lists each band's own top value, in ascending order.
var bandBoundaries = []Diagnosis{
	CategoryValid, CategoryDNSWarn, CategoryRFC5321, CategoryCFWS,
	CategoryDeprec, CategoryRFC5322, CategoryErr,
}

// Category returns the severity band d belongs to, expressed as that band's
// boundary constant (one of CategoryValid..CategoryErr).
func (d Diagnosis) Category() Diagnosis {
	for _, b := range bandBoundaries {
		if d <= b {
			return b
		}
	}
	return CategoryErr
}

// IsFatal reports whether d is in the ERR band — encountering one of these
// terminates the parse immediately.
func (d Diagnosis) IsFatal() bool {
	return d > CategoryRFC5322
}

// BooleanThreshold is the fixed cutoff used whenever a caller asks for a
// boolean verdict instead of a diagnostic code (spec §6): anything at or
// above the CFWS band reads as invalid in boolean mode.
const BooleanThreshold Diagnosis = 16

// IsValid reports whether d falls below BooleanThreshold.
func (d Diagnosis) IsValid() bool {
	return d < BooleanThreshold
}

// String renders the symbolic name from the reference taxonomy, or a
// numeric fallback for an out-of-range value.
func (d Diagnosis) String() string {
	if name, ok := diagnosisNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Diagnosis(%d)", int(d))
}
