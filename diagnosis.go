package isemail

import "github.com/z3d6380/isemail/internal/parser"

// Diagnosis is the full result taxonomy: a specific diagnostic code rather
// than a plain boolean, banded into seven severity levels. The type itself
// lives in internal/parser — that is the only package that produces one —
// and is aliased here so callers never need to import the internal package.
type Diagnosis = parser.Diagnosis

// Category boundaries, in ascending severity order.
const (
	CategoryValid   = parser.CategoryValid
	CategoryDNSWarn = parser.CategoryDNSWarn
	CategoryRFC5321 = parser.CategoryRFC5321
	CategoryCFWS    = parser.CategoryCFWS
	CategoryDeprec  = parser.CategoryDeprec
	CategoryRFC5322 = parser.CategoryRFC5322
	CategoryErr     = parser.CategoryErr
)

// BooleanThreshold is the fixed cutoff a boolean verdict collapses against:
// a Diagnosis at or above this value reads as invalid.
const BooleanThreshold = parser.BooleanThreshold

// Diagnosis codes. See internal/parser.Diagnosis for the authoritative
// definitions; these are re-exports so isemail is a complete, self-contained
// import for callers.
const (
	Valid Diagnosis = parser.Valid

	DNSWarnNoMXRecord = parser.DNSWarnNoMXRecord
	DNSWarnNoRecord   = parser.DNSWarnNoRecord

	RFC5321TLD            = parser.RFC5321TLD
	RFC5321TLDNumeric     = parser.RFC5321TLDNumeric
	RFC5321QuotedString   = parser.RFC5321QuotedString
	RFC5321AddressLiteral = parser.RFC5321AddressLiteral
	RFC5321IPv6Deprecated = parser.RFC5321IPv6Deprecated

	CFWSComment = parser.CFWSComment
	CFWSFWS     = parser.CFWSFWS

	DeprecLocalPart  = parser.DeprecLocalPart
	DeprecFWS        = parser.DeprecFWS
	DeprecQtext      = parser.DeprecQtext
	DeprecQP         = parser.DeprecQP
	DeprecComment    = parser.DeprecComment
	DeprecCtext      = parser.DeprecCtext
	DeprecCFWSNearAt = parser.DeprecCFWSNearAt

	RFC5322Domain           = parser.RFC5322Domain
	RFC5322TooLong          = parser.RFC5322TooLong
	RFC5322LocalTooLong     = parser.RFC5322LocalTooLong
	RFC5322DomainTooLong    = parser.RFC5322DomainTooLong
	RFC5322LabelTooLong     = parser.RFC5322LabelTooLong
	RFC5322DomainLiteral    = parser.RFC5322DomainLiteral
	RFC5322DomLitObsDtext   = parser.RFC5322DomLitObsDtext
	RFC5322IPv6GrpCount     = parser.RFC5322IPv6GrpCount
	RFC5322IPv6TwoXTwoColon = parser.RFC5322IPv6TwoXTwoColon
	RFC5322IPv6BadChar      = parser.RFC5322IPv6BadChar
	RFC5322IPv6MaxGrps      = parser.RFC5322IPv6MaxGrps
	RFC5322IPv6ColonStrt    = parser.RFC5322IPv6ColonStrt
	RFC5322IPv6ColonEnd     = parser.RFC5322IPv6ColonEnd

	ErrExpectingDtext    = parser.ErrExpectingDtext
	ErrNoLocalPart       = parser.ErrNoLocalPart
	ErrNoDomain          = parser.ErrNoDomain
	ErrConsecutiveDots   = parser.ErrConsecutiveDots
	ErrAtextAfterCFWS    = parser.ErrAtextAfterCFWS
	ErrAtextAfterQS      = parser.ErrAtextAfterQS
	ErrAtextAfterDomLit  = parser.ErrAtextAfterDomLit
	ErrExpectingQPair    = parser.ErrExpectingQPair
	ErrExpectingAtext    = parser.ErrExpectingAtext
	ErrExpectingQtext    = parser.ErrExpectingQtext
	ErrExpectingCtext    = parser.ErrExpectingCtext
	ErrBackslashEnd      = parser.ErrBackslashEnd
	ErrDotStart          = parser.ErrDotStart
	ErrDotEnd            = parser.ErrDotEnd
	ErrDomainHyphenStart = parser.ErrDomainHyphenStart
	ErrDomainHyphenEnd   = parser.ErrDomainHyphenEnd
	ErrUnclosedQuotedStr = parser.ErrUnclosedQuotedStr
	ErrUnclosedComment   = parser.ErrUnclosedComment
	ErrUnclosedDomLit    = parser.ErrUnclosedDomLit
	ErrFWSCRLFx2         = parser.ErrFWSCRLFx2
	ErrFWSCRLFEnd        = parser.ErrFWSCRLFEnd
	ErrCRNoLF            = parser.ErrCRNoLF
	ErrLFNoCR            = parser.ErrLFNoCR
)
