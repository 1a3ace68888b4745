package parser

// fwsChar dispatches one input byte while Context is FWS, per spec §4.7.
// FWS is entered by the parent context without consuming its trigger
// character, so the first call here sees that same character.
func (s *State) fwsChar(c byte) {
	switch c {
	case charSP, charHTAB:
		if s.tokenPrior == charLF {
			s.wspAfter = true
		} else {
			s.wspBefore = true
		}
		s.advance(c)
	case charCR:
		nxt, ok := s.peek(1)
		if !ok || nxt != charLF {
			s.raise(ErrCRNoLF)
			return
		}
		if nxt2, ok2 := s.peek(2); ok2 && nxt2 == charCR {
			s.raise(ErrFWSCRLFx2)
			return
		}
		s.advance(c)
	case charLF:
		if s.tokenPrior != charCR {
			s.raise(ErrLFNoCR)
			return
		}
		nxt, ok := s.peek(1)
		if ok && (nxt == charCR || nxt == charLF) {
			s.raise(ErrFWSCRLFx2)
			return
		}
		if !ok || (nxt != charSP && nxt != charHTAB) {
			s.raise(ErrFWSCRLFEnd)
			return
		}
		s.fwsCount++
		s.advance(c)
	default:
		// Pop back to the parent context without advancing, so the next
		// step() re-dispatches c there.
		if s.fwsCount > 1 {
			s.raise(DeprecFWS)
		}
		s.pop()
	}
}
