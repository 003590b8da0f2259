package phonetic

var hRules = []rule{
	(*state).initialSilentH,
	(*state).initialHs,
	(*state).initialHuHw,
	(*state).nonInitialSilentH,
}

// encodeH encodes 'H' at the cursor.
func (s *state) encodeH() {
	if s.firstOf(hRules) {
		return
	}

	if !s.hPronounced() {
		s.current++
	}
}

func (s *state) initialSilentH() bool {
	if s.stringAt(s.current+1, 3, "OUR", "ERB", "EIR") ||
		s.stringAt(s.current+1, 4, "ONOR") ||
		s.stringAt(s.current+1, 5, "ONOUR", "ONEST") {
		if (s.current == 0) && s.stringAt(s.current, 4, "HERB") {
			if s.withVowels {
				s.addAlt("HA", "A")
			} else {
				s.addAlt("H", "A")
			}
		} else if (s.current == 0) || s.withVowels {
			s.add("A")
		}

		s.current++
		s.current = s.skipVowels(s.current)
		return true
	}

	return false
}

func (s *state) initialHs() bool {
	if (s.current == 0) && s.stringAt(0, 2, "HS") {
		s.add("X")
		s.current += 2
		return true
	}

	return false
}

func (s *state) initialHuHw() bool {
	if s.stringAt(0, 3, "HUA", "HUE", "HWA") {
		if !s.stringAt(s.current, 4, "HUEY") {
			s.add("A")
			if !s.withVowels {
				s.current += 3
			} else {
				s.current++
				for s.isVowelAt(s.current) || (s.charAt(s.current) == 'W') {
					s.current++
				}
			}

			return true
		}
	}

	return false
}

func (s *state) nonInitialSilentH() bool {
	if s.stringAt(s.current-2, 5, "NIHIL", "VEHEM", "LOHEN", "NEHEM", "MAHON", "MAHAN",
		"COHEN", "GAHAN") ||
		s.stringAt(s.current-3, 6, "GRAHAM", "PROHIB", "FRAHER", "TOOHEY", "TOUHEY") ||
		s.stringAt(s.current-3, 5, "TOUHY") ||
		s.stringAt(0, 9, "CHIHUAHUA") {
		if !s.withVowels {
			s.current += 2
		} else {
			s.current++
			s.current = s.skipVowels(s.current)
		}

		return true
	}

	return false
}

func (s *state) hPronounced() bool {
	if (((s.current == 0) ||
		s.isVowelAt(s.current-1) ||
		((s.current > 0) && (s.charAt(s.current-1) == 'W'))) &&
		s.isVowelAt(s.current+1)) ||
		((s.charAt(s.current+1) == 'H') && s.isVowelAt(s.current+2)) {
		s.add("H")
		s.advance(2, 1)
		return true
	}

	return false
}

// encodeJ encodes 'J' at the cursor.
func (s *state) encodeJ() {
	if s.spanishJ() || s.spanishOjUj() {
		return
	}

	s.otherJ()
}

func (s *state) spanishJ() bool {
	if (s.stringAt(s.current+1, 3, "UAN", "ACI", "ALI", "EFE", "ICA", "IME", "OAQ", "UAR") &&
		!s.stringAt(s.current, 8, "JIMERSON", "JIMERSEN")) ||
		(s.stringAt(s.current+1, 3, "OSE") && ((s.current + 3) == s.last)) ||
		s.stringAt(s.current+1, 4, "EREZ", "UNTA", "AIME", "AVIE", "AVIA") ||
		s.stringAt(s.current+1, 6, "IMINEZ", "ARAMIL") ||
		(((s.current + 2) == s.last) && s.stringAt(s.current-2, 5, "MEJIA")) ||
		s.stringAt(s.current-2, 5, "TEJED", "TEJAD", "LUJAN", "FAJAR", "BEJAR", "BOJOR",
			"CAJIG", "DEJAS", "DUJAR", "DUJAN", "MIJAR", "MEJOR", "NAJAR", "NOJOS", "RAJED",
			"RIJAL", "REJON", "TEJAN", "UIJAN") ||
		s.stringAt(s.current-3, 8, "ALEJANDR", "GUAJARDO", "TRUJILLO") ||
		(s.stringAt(s.current-2, 5, "RAJAS") && (s.current > 2)) ||
		(s.stringAt(s.current-2, 5, "MEJIA") && !s.stringAt(s.current-2, 6, "MEJIAN")) ||
		s.stringAt(s.current-1, 5, "OJEDA") ||
		s.stringAt(s.current-3, 5, "LEIJA", "MINJA") ||
		s.stringAt(s.current-3, 6, "VIAJES", "GRAJAL") ||
		s.stringAt(s.current, 8, "JAUREGUI") ||
		s.stringAt(s.current-4, 8, "HINOJOSA") ||
		s.stringAt(0, 4, "SAN ") ||
		(((s.current + 1) == s.last) &&
			(s.charAt(s.current+1) == 'O') &&
			!(s.stringAt(0, 4, "TOJO") || s.stringAt(0, 5, "BANJO") || s.stringAt(0, 6, "MARYJO"))) {
		if !(s.stringAt(s.current, 4, "JUAN") || s.stringAt(s.current, 4, "JOAQ")) {
			s.add("H")
		} else {
			if s.current == 0 {
				s.add("A")
			}
		}

		s.advance(2, 1)
		return true
	}

	if s.stringAt(s.current+1, 4, "ORGE", "ULIO", "ESUS") && !s.stringAt(0, 6, "JORGEN") {
		if ((s.current + 4) == s.last) && s.stringAt(s.current+1, 4, "ORGE") {
			if s.withVowels {
				s.addAlt("JARJ", "HARHA")
			} else {
				s.addAlt("JRJ", "HRH")
			}

			s.advance(5, 5)
			return true
		}

		s.addAlt("J", "H")
		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) germanJ() bool {
	if s.stringAt(s.current+1, 2, "AH") ||
		(s.stringAt(s.current+1, 5, "OHANN") && ((s.current + 5) == s.last)) ||
		(s.stringAt(s.current+1, 3, "UNG") && !s.stringAt(s.current+1, 4, "UNGL")) ||
		s.stringAt(s.current+1, 3, "UGO") {
		s.add("A")
		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) spanishOjUj() bool {
	if s.stringAt(s.current+1, 5, "OJOBA", "UJUY ") {
		if s.withVowels {
			s.add("HAH")
		} else {
			s.add("HH")
		}

		s.advance(4, 3)
		return true
	}

	return false
}

func (s *state) jToJ() bool {
	if s.isVowelAt(s.current+1) {
		if (s.current == 0) && s.namesBeginningWithJThatGetAltY() {
			if s.withVowels {
				s.addAlt("JA", "A")
			} else {
				s.addAlt("J", "A")
			}
		} else {
			if s.withVowels {
				s.add("JA")
			} else {
				s.add("J")
			}
		}

		s.current++
		s.current = s.skipVowels(s.current)
		return false
	}

	s.add("J")
	s.current++
	return true
}

func (s *state) spanishJ2() bool {
	if (((s.current - 2) == 0) &&
		s.stringAt(s.current-2, 4, "BOJA", "BAJA", "BEJA", "BOJO", "MOJA", "MOJI", "MEJI")) ||
		(((s.current - 3) == 0) &&
			s.stringAt(s.current-3, 5, "FRIJO", "BRUJO", "BRUJA", "GRAJE", "GRIJA", "LEIJA",
				"QUIJA")) ||
		(((s.current + 3) == s.last) && s.stringAt(s.current-1, 5, "AJARA")) ||
		(((s.current + 2) == s.last) &&
			s.stringAt(s.current-1, 4, "AJOS", "EJOS", "OJAS", "OJOS", "UJON", "AJOZ", "AJAL",
				"UJAR", "EJON", "EJAN")) ||
		(((s.current + 1) == s.last) &&
			(s.stringAt(s.current-1, 3, "OJA", "EJA") && !s.stringAt(0, 4, "DEJA"))) {
		s.add("H")
		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) jAsVowel() bool {
	if s.stringAt(s.current, 5, "JEWSK") {
		s.addAlt("J", "")
		return true
	}

	if (s.stringAt(s.current+1, 1, "L", "T", "K", "S", "N", "M") &&
		!s.stringAt(s.current+2, 1, "A")) ||
		s.stringAt(0, 9, "HALLELUJA", "LJUBLJANA") ||
		s.stringAt(0, 4, "LJUB", "BJOR") ||
		s.stringAt(0, 5, "HAJEK") ||
		s.stringAt(0, 3, "WOJ") ||
		s.stringAt(0, 2, "FJ") ||
		s.stringAt(s.current, 5, "JAVIK", "JEVIC") ||
		(((s.current + 1) == s.last) && s.stringAt(0, 5, "SONJA", "TANJA", "TONJA")) {
		return true
	}

	return false
}

func (s *state) otherJ() {
	if s.current == 0 {
		if s.germanJ() {
			return
		} else {
			if s.jToJ() {
				return
			}
		}
	} else {
		if s.spanishJ2() {
			return
		} else if !s.jAsVowel() {
			s.add("J")
		}

		if s.charAt(s.current+1) == 'J' {
			s.current += 2
		} else {
			s.current++
		}
	}
}

// encodeK encodes 'K' at the cursor.
func (s *state) encodeK() {
	if !s.silentK() {
		s.add("K")
		if (s.charAt(s.current+1) == 'K') || (s.charAt(s.current+1) == 'Q') {
			s.current += 2
		} else {
			s.current++
		}
	}
}

func (s *state) silentK() bool {
	if (s.current == 0) && s.stringAt(s.current, 2, "KN") {
		if !(s.stringAt(s.current+2, 5, "ESSET", "IEVEL") ||
			s.stringAt(s.current+2, 3, "ISH")) {
			s.current++
			return true
		}
	}

	if (s.stringAt(s.current+1, 3, "NOW", "NIT", "NOT", "NOB") &&
		!s.stringAt(0, 8, "BANKNOTE")) ||
		s.stringAt(s.current+1, 4, "NOCK", "NUCK", "NIFE", "NACK") ||
		s.stringAt(s.current+1, 5, "NIGHT") {
		if (s.current > 0) && s.charAt(s.current-1) == 'N' {
			s.current += 2
		} else {
			s.current++
		}

		return true
	}

	return false
}
