package parser

// atEOF runs the small amount of bookkeeping that only makes sense once
// input is exhausted while still inside FWS (spec §4.7): a multi-fold run
// that never got interrupted by non-whitespace is still deprecated.
func (s *State) atEOF() {
	if s.context == ContextFWS && s.fwsCount > 1 {
		s.raise(DeprecFWS)
	}
}

// unclosedContext walks the nesting from innermost to outermost, skipping
// FWS frames, and reports the diagnosis for whichever nested production
// never closed.
func (s *State) unclosedContext() (Diagnosis, bool) {
	frames := append(append([]Context{}, s.stack...), s.context)
	for i := len(frames) - 1; i >= 0; i-- {
		switch frames[i] {
		case ContextQuotedString:
			return ErrUnclosedQuotedStr, true
		case ContextQuotedPair:
			return ErrBackslashEnd, true
		case ContextComment:
			return ErrUnclosedComment, true
		case ContextLiteral:
			return ErrUnclosedDomLit, true
		case ContextFWS:
			continue
		default:
			return 0, false
		}
	}
	return 0, false
}

// postParse runs the terminal checks of spec §4.8 once input is exhausted.
// run only calls this when s.fatal == 0, so worst() here is never already
// in the ERR band; every check below still applies regardless of any
// RFC5322-band diagnosis already observed, since the reducer takes the max
// over all diagnoses raised, not just the first.
func (s *State) postParse() {
	if d, ok := s.unclosedContext(); ok {
		s.raise(d)
		return
	}
	if s.context == ContextFWS && s.tokenPrior == charCR {
		s.raise(ErrFWSCRLFEnd)
		return
	}
	if s.domain.Len() == 0 {
		s.raise(ErrNoDomain)
		return
	}
	// A domain ending right after a closed domain-literal has no trailing
	// atom to speak of; elementLen == 0 there is normal, not a dangling dot.
	if s.elementLen == 0 && s.contextPrior != ContextLiteral {
		s.raise(ErrDotEnd)
		return
	}
	if s.hyphenFlag {
		s.raise(ErrDomainHyphenEnd)
		return
	}

	if s.domain.Len() > 255 {
		s.raise(RFC5322DomainTooLong)
	}
	if full := s.local.Len() + 1 + s.domain.Len(); full > 254 {
		s.raise(RFC5322TooLong)
	}
	if s.elementLen > 63 {
		s.raise(RFC5322LabelTooLong)
	}

	// Record the final domain label/literal the same way internal dots do,
	// so Atoms.Domain always reflects the whole domain, not just the labels
	// that happened to be followed by a dot.
	s.closeAtom(true)
}
