package phonetic

var lRules = []rule{
	(*state).lelyToL,
	(*state).colonel,
	(*state).frenchAult,
	(*state).frenchEuil,
	(*state).frenchOulx,
	(*state).silentLInLm,
	(*state).silentLInLkLv,
	(*state).silentLInOuld,
}

var mRules = []rule{
	(*state).silentMAtBeginning,
	(*state).mrAndMrs,
	(*state).mac,
	(*state).mpt,
}

// encodeL encodes 'L' at the cursor.
func (s *state) encodeL() {
	saveCurrent := s.current
	s.interpolateVowelWhenConsLAtEnd()
	if s.firstOf(lRules) {
		return
	}

	if s.llAsVowelCases() {
		return
	}

	s.leCases(saveCurrent)
}

func (s *state) interpolateVowelWhenConsLAtEnd() {
	if s.withVowels {
		if (s.current == s.last) && s.stringAt(s.current-1, 1, "D", "G", "T") {
			s.add("A")
		}
	}
}

func (s *state) lelyToL() bool {
	if s.stringAt(s.current-1, 5, "ILELY") && ((s.current + 3) == s.last) {
		s.add("L")
		s.current += 3
		return true
	}

	return false
}

func (s *state) colonel() bool {
	if s.stringAt(s.current-2, 7, "COLONEL") {
		s.add("R")
		s.current += 2
		return true
	}

	return false
}

func (s *state) frenchAult() bool {
	if (s.current > 3) &&
		(s.stringAt(s.current-3, 5, "RAULT", "NAULT", "BAULT", "SAULT", "GAULT", "CAULT") ||
			s.stringAt(s.current-4, 6, "REAULT", "RIAULT", "NEAULT", "BEAULT")) &&
		!(rootOrInflections(s.word, "ASSAULT") ||
			s.stringAt(s.current-8, 10, "SOMERSAULT") ||
			s.stringAt(s.current-9, 11, "SUMMERSAULT")) {
		s.current += 2
		return true
	}

	return false
}

func (s *state) frenchEuil() bool {
	if s.stringAt(s.current-3, 4, "EUIL") && (s.current == s.last) {
		s.current++
		return true
	}

	return false
}

func (s *state) frenchOulx() bool {
	if s.stringAt(s.current-2, 4, "OULX") && ((s.current + 1) == s.last) {
		s.current += 2
		return true
	}

	return false
}

func (s *state) silentLInLm() bool {
	if s.stringAt(s.current, 2, "LM", "LN") {
		if (s.stringAt(s.current-2, 4, "COLN", "CALM", "BALM", "MALM", "PALM") ||
			(s.stringAt(s.current-1, 3, "OLM") && ((s.current + 1) == s.last)) ||
			s.stringAt(s.current-3, 5, "PSALM", "QUALM") ||
			s.stringAt(s.current-2, 6, "SALMON", "HOLMES") ||
			s.stringAt(s.current-1, 6, "ALMOND") ||
			((s.current == 1) && s.stringAt(s.current-1, 4, "ALMS"))) &&
			(!s.stringAt(s.current+2, 1, "A") &&
				!s.stringAt(s.current-2, 5, "BALMO") &&
				!s.stringAt(s.current-2, 6, "PALMER", "PALMOR", "BALMER") &&
				!s.stringAt(s.current-3, 5, "THALM")) {
			s.current++
			return true
		}

		s.add("L")
		s.current++
		return true
	}

	return false
}

func (s *state) silentLInLkLv() bool {
	if (s.stringAt(s.current-2, 4, "WALK", "YOLK", "FOLK", "HALF", "TALK", "CALF", "BALK",
		"CALK") ||
		(s.stringAt(s.current-2, 4, "POLK") &&
			!s.stringAt(s.current-2, 5, "POLKA", "WALKO")) ||
		(s.stringAt(s.current-2, 4, "HALV") &&
			!s.stringAt(s.current-2, 5, "HALVA", "HALVO")) ||
		(s.stringAt(s.current-3, 5, "CAULK", "CHALK", "BAULK", "FAULK") &&
			!s.stringAt(s.current-4, 6, "SCHALK")) ||
		(s.stringAt(s.current-2, 5, "SALVE", "CALVE") ||
			s.stringAt(s.current-2, 6, "SOLDER")) &&
			!s.stringAt(s.current-2, 6, "SALVER", "CALVER")) &&
		!s.stringAt(s.current-5, 9, "GONSALVES", "GONCALVES") &&
		!s.stringAt(s.current-2, 6, "BALKAN", "TALKAL") &&
		!s.stringAt(s.current-3, 5, "PAULK", "CHALF") {
		s.current++
		return true
	}

	return false
}

func (s *state) silentLInOuld() bool {
	if s.stringAt(s.current-3, 5, "WOULD", "COULD") ||
		(s.stringAt(s.current-4, 6, "SHOULD") && !s.stringAt(s.current-4, 8, "SHOULDER")) {
		s.addExact("D", "T")
		s.current += 2
		return true
	}

	return false
}

func (s *state) llAsVowelSpecialCases() bool {
	if s.stringAt(s.current-5, 8, "TORTILLA") ||
		s.stringAt(s.current-8, 11, "RATATOUILLE") ||
		(s.stringAt(0, 5, "GUILL", "VEILL", "GAILL") &&
			!(s.stringAt(s.current-3, 7, "GUILLOT", "GUILLOR", "GUILLEN") ||
				(s.stringAt(0, 5, "GUILL") && (s.length == 5)))) ||
		s.stringAt(0, 7, "BROUILL", "GREMILL", "ROBILL") ||
		(s.stringAt(s.current-2, 5, "EILLE") &&
			((s.current + 2) == s.last) &&
			!s.stringAt(s.current-5, 8, "REVEILLE")) {
		s.current += 2
		return true
	}

	return false
}

func (s *state) llAsVowel() bool {
	if (((s.current + 3) == s.length) && s.stringAt(s.current-1, 4, "ILLO", "ILLA", "ALLE")) ||
		(((s.stringAt(s.last-1, 2, "AS", "OS") ||
			s.stringAt(s.last, 2, "AS", "OS") ||
			s.stringAt(s.last, 1, "A", "O")) &&
			s.stringAt(s.current-1, 2, "AL", "IL")) &&
			!s.stringAt(s.current-1, 4, "ALLA")) ||
		s.stringAt(0, 5, "VILLE", "VILLA") ||
		s.stringAt(0, 8, "GALLARDO", "VALLADAR", "MAGALLAN", "CAVALLAR", "BALLASTE") ||
		s.stringAt(0, 3, "LLA") {
		s.addAlt("L", "")
		s.current += 2
		return true
	}

	return false
}

func (s *state) llAsVowelCases() bool {
	if s.charAt(s.current+1) == 'L' {
		if s.llAsVowelSpecialCases() {
			return true
		}

		if s.llAsVowel() {
			return true
		}

		s.current += 2
	} else {
		s.current++
	}

	return false
}

func (s *state) vowelLeTransposition(saveCurrent int) bool {
	if s.withVowels &&
		(saveCurrent > 1) &&
		!s.isVowelAt(saveCurrent-1) &&
		(s.charAt(saveCurrent+1) == 'E') &&
		(s.charAt(saveCurrent-1) != 'L') &&
		(s.charAt(saveCurrent-1) != 'R') &&
		!s.isVowelAt(saveCurrent+2) &&
		!s.stringAt(0, 7, "ECCLESI", "COMPLEC", "COMPLEJ", "ROBLEDO") &&
		!s.stringAt(0, 5, "MCCLE", "MCLEL") &&
		!s.stringAt(0, 6, "EMBLEM", "KADLEC") &&
		!(((saveCurrent + 2) == s.last) && s.stringAt(saveCurrent, 3, "LET")) &&
		!s.stringAt(saveCurrent, 7, "LETTING") &&
		!s.stringAt(saveCurrent, 6, "LETELY", "LETTER", "LETION", "LETIAN", "LETING", "LETORY") &&
		!s.stringAt(saveCurrent, 5, "LETUS", "LETIV") &&
		!s.stringAt(saveCurrent, 4, "LESS", "LESQ", "LECT", "LEDG", "LETE", "LETH", "LETS", "LETT") &&
		!s.stringAt(saveCurrent, 3, "LEG", "LER", "LEX") &&
		!(s.stringAt(saveCurrent, 6, "LEMENT") &&
			!(s.stringAt(s.current-5, 6, "BATTLE", "TANGLE", "PUZZLE", "RABBLE", "BABBLE") ||
				s.stringAt(s.current-4, 5, "TABLE"))) &&
		!(((saveCurrent + 2) == s.last) &&
			s.stringAt((saveCurrent - 2), 5, "OCLES", "ACLES", "AKLES")) &&
		!s.stringAt((saveCurrent - 3), 5, "LISLE", "AISLE") &&
		!s.stringAt(0, 4, "ISLE") &&
		!s.stringAt(0, 6, "ROBLES") &&
		!s.stringAt((saveCurrent - 4), 7, "PROBLEM", "RESPLEN") &&
		!s.stringAt((saveCurrent - 3), 6, "REPLEN") &&
		!s.stringAt((saveCurrent - 2), 4, "SPLE") &&
		(s.charAt(saveCurrent-1) != 'H') &&
		(s.charAt(saveCurrent-1) != 'W') {
		s.add("AL")
		s.flagAlInversion = true
		if s.charAt(saveCurrent+2) == 'L' {
			s.current = saveCurrent + 3
		}

		return true
	}

	return false
}

func (s *state) vowelPreserveVowelAfterL(saveCurrent int) bool {
	if s.withVowels &&
		!s.isVowelAt(saveCurrent-1) &&
		(s.charAt(saveCurrent+1) == 'E') &&
		(saveCurrent > 1) &&
		((saveCurrent + 1) != s.last) &&
		!(s.stringAt((saveCurrent + 1), 2, "ES", "ED") && ((saveCurrent + 2) == s.last)) &&
		!s.stringAt((saveCurrent - 1), 5, "RLEST") {
		s.add("LA")
		s.current = s.skipVowels(s.current)
		return true
	}

	return false
}

func (s *state) leCases(saveCurrent int) {
	if s.vowelLeTransposition(saveCurrent) {
		return
	} else {
		if s.vowelPreserveVowelAfterL(saveCurrent) {
			return
		} else {
			s.add("L")
		}
	}
}

// encodeM encodes 'M' at the cursor.
func (s *state) encodeM() {
	if s.firstOf(mRules) {
		return
	}

	s.mb()
	s.add("M")
}

func (s *state) silentMAtBeginning() bool {
	if (s.current == 0) && s.stringAt(s.current, 2, "MN") {
		s.current++
		return true
	}

	return false
}

func (s *state) mrAndMrs() bool {
	if (s.current == 0) && s.stringAt(s.current, 2, "MR") {
		if (s.length == 2) && s.stringAt(s.current, 2, "MR") {
			if s.withVowels {
				s.add("MASTAR")
			} else {
				s.add("MSTR")
			}

			s.current += 2
			return true
		}

		if (s.length == 3) && s.stringAt(s.current, 3, "MRS") {
			if s.withVowels {
				s.add("MASAS")
			} else {
				s.add("MSS")
			}

			s.current += 3
			return true
		}
	}

	return false
}

func (s *state) mac() bool {
	if (s.current == 0) &&
		(s.stringAt(0, 7, "MACIVER", "MACEWEN") ||
			s.stringAt(0, 8, "MACELROY", "MACILROY") ||
			s.stringAt(0, 9, "MACINTOSH") ||
			s.stringAt(0, 2, "MC")) {
		if s.withVowels {
			s.add("MAK")
		} else {
			s.add("MK")
		}

		if s.stringAt(0, 2, "MC") {
			if s.stringAt(s.current+2, 1, "K", "G", "Q") &&
				!s.stringAt(s.current+2, 4, "GEOR") {
				s.current += 3
			} else {
				s.current += 2
			}
		} else {
			s.current += 3
		}

		return true
	}

	return false
}

func (s *state) mpt() bool {
	if s.stringAt(s.current-2, 8, "COMPTROL") || s.stringAt(s.current-4, 7, "ACCOMPT") {
		s.add("N")
		s.current += 2
		return true
	}

	return false
}

func (s *state) testSilentMb1() bool {
	if ((s.current == 3) && s.stringAt(s.current-3, 5, "THUMB")) ||
		((s.current == 2) &&
			s.stringAt(s.current-2, 4, "DUMB", "BOMB", "DAMN", "LAMB", "NUMB", "TOMB")) {
		return true
	}

	return false
}

func (s *state) testPronouncedMb() bool {
	if s.stringAt(s.current-2, 6, "NUMBER") ||
		(s.stringAt(s.current+2, 1, "A") && !s.stringAt(s.current-2, 7, "DUMBASS")) ||
		s.stringAt(s.current+2, 1, "O") ||
		s.stringAt(s.current-2, 6, "LAMBEN", "LAMBER", "LAMBET", "TOMBIG", "LAMBRE") {
		return true
	}

	return false
}

func (s *state) testSilentMb2() bool {
	if (s.charAt(s.current+1) == 'B') &&
		(s.current > 1) &&
		(((s.current + 1) == s.last) ||
			s.stringAt(s.current+2, 3, "ING", "ABL") ||
			s.stringAt(s.current+2, 4, "LIKE") ||
			((s.charAt(s.current+2) == 'S') && ((s.current + 2) == s.last)) ||
			s.stringAt(s.current-5, 7, "BUNCOMB") ||
			(s.stringAt(s.current+2, 2, "ED", "ER") &&
				((s.current + 3) == s.last) &&
				(s.stringAt(0, 5, "CLIMB", "PLUMB") ||
					!s.stringAt(s.current-1, 5, "IMBER", "AMBER", "EMBER", "UMBER")) &&
				!s.stringAt(s.current-2, 6, "CUMBER", "SOMBER"))) {
		return true
	}

	return false
}

func (s *state) testPronouncedMb2() bool {
	if s.stringAt(s.current-1, 5, "OMBAS", "OMBAD", "UMBRA") ||
		s.stringAt(s.current-3, 4, "FLAM") {
		return true
	}

	return false
}

func (s *state) testMn() bool {
	if (s.charAt(s.current+1) == 'N') &&
		(((s.current + 1) == s.last) ||
			(s.stringAt(s.current+2, 3, "ING", "EST") && ((s.current + 4) == s.last)) ||
			((s.charAt(s.current+2) == 'S') && ((s.current + 2) == s.last)) ||
			(s.stringAt(s.current+2, 2, "LY", "ER", "ED") && ((s.current + 3) == s.last)) ||
			s.stringAt(s.current-2, 9, "DAMNEDEST") ||
			s.stringAt(s.current-5, 9, "GODDAMNIT")) {
		return true
	}

	return false
}

func (s *state) mb() {
	if s.testSilentMb1() {
		if s.testPronouncedMb() {
			s.current++
		} else {
			s.current += 2
		}
	} else if s.testSilentMb2() {
		if s.testPronouncedMb2() {
			s.current++
		} else {
			s.current += 2
		}
	} else if s.testMn() {
		s.current += 2
	} else {
		if s.charAt(s.current+1) == 'M' {
			s.current += 2
		} else {
			s.current++
		}
	}
}
