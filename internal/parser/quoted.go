package parser

// quotedStringChar dispatches one input byte while Context is
// QUOTED_STRING, per spec §4.4.
func (s *State) quotedStringChar(c byte) {
	switch c {
	case '\\':
		s.push(ContextQuotedPair)
		s.advance('\\')
	case '"':
		s.local.WriteByte('"')
		s.atom.WriteByte('"')
		s.elementLen++
		s.pop()
		s.advance('"')
	case charCR, charHTAB:
		// A space inside a quoted string is literal text, not FWS, so it
		// is handled by the default branch below rather than here.
		s.push(ContextFWS)
	default:
		s.quotedText(c)
	}
}

func (s *State) quotedText(c byte) {
	if c == 0 || c == charLF || c > 127 {
		s.raise(ErrExpectingQtext)
		s.advance(c)
		return
	}
	if (c >= 1 && c <= 31 && c != charHTAB && c != charSP) || c == 127 {
		s.raise(DeprecQtext)
	}
	s.local.WriteByte(c)
	s.atom.WriteByte(c)
	s.elementLen++
	s.advance(c)
}

// quotedPairChar consumes the single character following a backslash, per
// spec §4.5. The accumulator that receives the pair depends on which
// context QUOTED_PAIR will pop back into.
func (s *State) quotedPairChar(c byte) {
	if len(s.stack) == 0 {
		panicInvariant("quoted-pair with no parent context")
	}
	parent := s.stack[len(s.stack)-1]

	if c > 127 {
		s.raise(ErrExpectingQPair)
		s.pop()
		s.advance(c)
		return
	}
	if (c <= 31 && c != charHTAB) || c == 127 {
		s.raise(DeprecQP)
	}

	switch parent {
	case ContextQuotedString:
		s.local.WriteByte('\\')
		s.local.WriteByte(c)
		s.atom.WriteByte('\\')
		s.atom.WriteByte(c)
	case ContextLiteral:
		s.domain.WriteByte('\\')
		s.domain.WriteByte(c)
		s.literal.WriteByte('\\')
		s.literal.WriteByte(c)
	case ContextComment:
		// Comment text is not appended to any component accumulator.
	default:
		panicInvariant("quoted-pair with impossible parent context")
	}

	s.elementLen += 2
	s.pop()
	s.advance(c)
}
