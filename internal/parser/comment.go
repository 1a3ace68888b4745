package parser

// commentChar dispatches one input byte while Context is COMMENT, per
// spec §4.6. Nesting depth is unbounded.
func (s *State) commentChar(c byte) {
	switch c {
	case '(':
		s.push(ContextComment)
		s.advance('(')
	case ')':
		s.pop()
		s.advance(')')
	case '\\':
		s.push(ContextQuotedPair)
		s.advance('\\')
	case charCR, charSP, charHTAB:
		s.push(ContextFWS)
	default:
		s.commentCtext(c)
	}
}

func (s *State) commentCtext(c byte) {
	if c == 0 || c == charLF || c > 127 {
		s.raise(ErrExpectingCtext)
		s.advance(c)
		return
	}
	if (c >= 1 && c <= 31 && c != charHTAB) || c == 127 {
		s.raise(DeprecCtext)
	}
	// Comment text is not appended to any component accumulator.
	s.advance(c)
}
