package parser

import "strings"

// analyzeLiteral classifies the content of the domain-literal most recently
// closed by ']', per spec §4.3. It is invoked only when no DEPREC-or-above
// diagnosis has been observed yet.
func (s *State) analyzeLiteral() Diagnosis {
	return analyzeLiteralText(s.literal.String())
}

func analyzeLiteralText(lit string) Diagnosis {
	if matchIPv4(lit) {
		return RFC5321AddressLiteral
	}

	work := lit
	if idx := strings.LastIndexByte(work, ':'); idx >= 0 {
		if suffix := work[idx+1:]; matchIPv4(suffix) {
			work = work[:idx+1] + "0:0"
		}
	}

	if len(work) >= 5 && strings.EqualFold(work[:5], "ipv6:") {
		return analyzeIPv6(work[5:])
	}

	return RFC5322DomainLiteral
}

// matchIPv4 reports whether s is a dotted-quad with each octet 0-255,
// written in 1-3 digits (leading zeros permitted).
func matchIPv4(s string) bool {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return false
	}
	for _, o := range octets {
		if len(o) == 0 || len(o) > 3 {
			return false
		}
		n := 0
		for _, c := range []byte(o) {
			if c < '0' || c > '9' {
				return false
			}
			n = n*10 + int(c-'0')
		}
		if n > 255 {
			return false
		}
	}
	return true
}

func isHexGroup(g string) bool {
	if len(g) > 4 {
		return false
	}
	for _, c := range []byte(g) {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// analyzeIPv6 classifies the colon-separated group sequence following an
// "IPv6:" prefix, per spec §4.3 step 2.
func analyzeIPv6(rest string) Diagnosis {
	groups := strings.Split(rest, ":")

	for _, g := range groups {
		if !isHexGroup(g) {
			return RFC5322IPv6BadChar
		}
	}

	if strings.Contains(rest, ":::") || strings.Count(rest, "::") > 1 {
		return RFC5322IPv6TwoXTwoColon
	}

	hasDouble := strings.Contains(rest, "::")

	if strings.HasPrefix(rest, ":") && !strings.HasPrefix(rest, "::") {
		return RFC5322IPv6ColonStrt
	}
	if strings.HasSuffix(rest, ":") && !strings.HasSuffix(rest, "::") {
		return RFC5322IPv6ColonEnd
	}

	n := len(groups)

	if !hasDouble {
		if n != 8 {
			return RFC5322IPv6GrpCount
		}
		return RFC5321AddressLiteral
	}

	maxAllowed := 8
	if strings.HasPrefix(rest, "::") || strings.HasSuffix(rest, "::") {
		maxAllowed = 9
	}

	if n > maxAllowed {
		return RFC5322IPv6MaxGrps
	}
	if n == 8 {
		return RFC5321IPv6Deprecated
	}
	return RFC5321AddressLiteral
}
