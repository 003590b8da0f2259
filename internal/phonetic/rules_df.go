package phonetic

var dRules = []rule{
	(*state).dg,
	(*state).dj,
	(*state).dtDd,
	(*state).dToJ,
	(*state).dous,
	(*state).silentD,
}

// encodeD encodes 'D' at the cursor.
func (s *state) encodeD() {
	if s.firstOf(dRules) {
		return
	}

	if s.exact {
		if (s.current == s.last) && s.stringAt(s.current-3, 4, "SSED") {
			s.add("T")
		} else {
			s.add("D")
		}
	} else {
		s.add("T")
	}

	s.current++
}

func (s *state) dg() bool {
	if s.stringAt(s.current, 2, "DG") {
		if s.stringAt(s.current+2, 1, "A", "O") ||
			s.stringAt(s.current+1, 3, "GUN", "GUT") ||
			s.stringAt(s.current+1, 4, "GEAR", "GLAS", "GRIP", "GREN", "GILL", "GRAF") ||
			s.stringAt(s.current+1, 5, "GUARD", "GUILT", "GRAVE", "GRASS") ||
			s.stringAt(s.current+1, 6, "GROUSE") {
			s.addExact("DG", "TK")
		} else {
			s.add("J")
		}

		s.current += 2
		return true
	}

	return false
}

func (s *state) dj() bool {
	if s.stringAt(s.current, 2, "DJ") {
		s.add("J")
		s.current += 2
		return true
	}

	return false
}

func (s *state) dtDd() bool {
	if s.stringAt(s.current, 2, "DT", "DD") {
		if s.stringAt(s.current, 3, "DTH") {
			s.addExact("D0", "T0")
			s.current += 3
		} else {
			if s.exact {
				if s.stringAt(s.current, 2, "DT") {
					s.add("T")
				} else {
					s.add("D")
				}
			} else {
				s.add("T")
			}

			s.current += 2
		}

		return true
	}

	return false
}

func (s *state) dToJ() bool {
	if (s.stringAt(s.current, 3, "DUL") &&
		(s.isVowelAt(s.current-1) && s.isVowelAt(s.current+3))) ||
		(((s.current + 3) == s.last) &&
			s.stringAt(s.current-1, 5, "LDIER", "NDEUR", "EDURE", "RDURE")) ||
		s.stringAt(s.current-3, 7, "CORDIAL") ||
		s.stringAt(s.current-1, 5, "NDULA", "NDULU", "EDUCA") ||
		s.stringAt(s.current-1, 4, "ADUA", "IDUA", "IDUU") {
		s.addExactAlt("J", "D", "J", "T")
		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) dous() bool {
	if s.stringAt(s.current+1, 4, "UOUS") {
		s.addExactAlt("J", "D", "J", "T")
		s.advance(4, 1)
		return true
	}

	return false
}

func (s *state) silentD() bool {
	if s.stringAt(s.current-2, 9, "WEDNESDAY") ||
		s.stringAt(s.current-3, 7, "HANDKER", "HANDSOM", "WINDSOR") ||
		s.stringAt(s.current-5, 6, "PERNOD", "ARTAUD", "RENAUD") ||
		s.stringAt(s.current-6, 7, "RIMBAUD", "MICHAUD", "BICHAUD") {
		s.current++
		return true
	}

	return false
}

// encodeF encodes 'F' at the cursor.
func (s *state) encodeF() {
	if s.stringAt(s.current-1, 5, "OFTEN") {
		s.addAlt("F", "FT")
		s.current += 2
		return
	}

	if s.charAt(s.current+1) == 'F' {
		s.current += 2
	} else {
		s.current++
	}

	s.add("F")
}
