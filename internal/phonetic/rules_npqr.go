package phonetic

var pRules = []rule{
	(*state).silentPAtBeginning,
	(*state).pt,
	(*state).ph,
	(*state).pph,
	(*state).rps,
	(*state).coup,
	(*state).pneum,
	(*state).psych,
	(*state).psalm,
}

// encodeN encodes 'N' at the cursor.
func (s *state) encodeN() {
	if s.nce() {
		return
	}

	if s.charAt(s.current+1) == 'N' {
		s.current += 2
	} else {
		s.current++
	}

	if !s.stringAt(s.current-3, 8, "MONSIEUR") && !s.stringAt(s.current-3, 6, "NENESS") {
		s.add("N")
	}
}

func (s *state) nce() bool {
	if s.stringAt(s.current+1, 1, "C", "S") &&
		s.stringAt(s.current+2, 1, "E", "Y", "I") &&
		(((s.current + 2) == s.last) ||
			(((s.current + 3) == s.last)) && (s.charAt(s.current+3) == 'S')) {
		s.add("NTS")
		s.current += 2
		return true
	}

	return false
}

// encodeP encodes 'P' at the cursor.
func (s *state) encodeP() {
	if s.firstOf(pRules) {
		return
	}

	s.pb()
	s.add("P")
}

func (s *state) silentPAtBeginning() bool {
	if (s.current == 0) && s.stringAt(s.current, 2, "PN", "PF", "PS", "PT") {
		s.current++
		return true
	}

	return false
}

func (s *state) pt() bool {
	if s.charAt(s.current+1) == 'T' {
		if ((s.current == 0) && s.stringAt(s.current, 5, "PTERO")) ||
			s.stringAt(s.current-5, 7, "RECEIPT") ||
			s.stringAt(s.current-4, 8, "ASYMPTOT") {
			s.add("T")
			s.current += 2
			return true
		}
	}

	return false
}

func (s *state) ph() bool {
	if s.charAt(s.current+1) == 'H' {
		if s.stringAt(s.current, 9, "PHTHALEIN") ||
			((s.current == 0) && s.stringAt(s.current, 4, "PHTH")) ||
			s.stringAt(s.current-3, 10, "APOPHTHEGM") {
			s.add("0")
			s.current += 4
		} else if (s.current > 0) &&
			(s.stringAt(s.current+2, 3, "EAD", "OLE", "ELD", "ILL", "OLD", "EAP", "ERD", "ARD",
				"ANG", "ORN", "EAV", "ART") ||
				s.stringAt(s.current+2, 4, "OUSE") ||
				(s.stringAt(s.current+2, 2, "AM") && !s.stringAt(s.current-1, 5, "LPHAM")) ||
				s.stringAt(s.current+2, 5, "AMMER", "AZARD", "UGGER") ||
				s.stringAt(s.current+2, 6, "OLSTER")) &&
			!s.stringAt(s.current-3, 5, "LYMPH", "NYMPH") {
			s.add("P")
			s.advance(3, 2)
		} else {
			s.add("F")
			s.current += 2
		}

		return true
	}

	return false
}

func (s *state) pph() bool {
	if (s.charAt(s.current+1) == 'P') &&
		((s.current + 2) < s.length) &&
		(s.charAt(s.current+2) == 'H') {
		s.add("F")
		s.current += 3
		return true
	}

	return false
}

func (s *state) rps() bool {
	if s.stringAt(s.current-3, 5, "CORPS") && !s.stringAt(s.current-3, 6, "CORPSE") {
		s.current += 2
		return true
	}

	return false
}

func (s *state) coup() bool {
	if (s.current == s.last) &&
		s.stringAt(s.current-3, 4, "COUP") &&
		!s.stringAt(s.current-5, 6, "RECOUP") {
		s.current++
		return true
	}

	return false
}

func (s *state) pneum() bool {
	if s.stringAt(s.current+1, 4, "NEUM") {
		s.add("N")
		s.current += 2
		return true
	}

	return false
}

func (s *state) psych() bool {
	if s.stringAt(s.current+1, 4, "SYCH") {
		if s.withVowels {
			s.add("SAK")
		} else {
			s.add("SK")
		}

		s.current += 5
		return true
	}

	return false
}

func (s *state) psalm() bool {
	if s.stringAt(s.current+1, 4, "SALM") {
		if s.withVowels {
			s.add("SAM")
		} else {
			s.add("SM")
		}

		s.current += 5
		return true
	}

	return false
}

func (s *state) pb() {
	if s.stringAt(s.current+1, 1, "P", "B") {
		s.current += 2
	} else {
		s.current++
	}
}

// encodeQ encodes 'Q' at the cursor.
func (s *state) encodeQ() {
	if s.stringAt(s.current, 3, "QIN") {
		s.add("X")
		s.current++
		return
	}

	if s.charAt(s.current+1) == 'Q' {
		s.current += 2
	} else {
		s.current++
	}

	s.add("K")
}

// encodeR encodes 'R' at the cursor.
func (s *state) encodeR() {
	if s.rz() {
		return
	}

	if !s.testSilentR() {
		if !s.vowelReTransposition() {
			s.add("R")
		}
	}

	if (s.charAt(s.current+1) == 'R') || s.stringAt(s.current-6, 8, "POITIERS") {
		s.current += 2
	} else {
		s.current++
	}
}

func (s *state) rz() bool {
	if s.stringAt(s.current-2, 4, "GARZ", "KURZ", "MARZ", "MERZ", "HERZ", "PERZ", "WARZ") ||
		s.stringAt(s.current, 5, "RZANO", "RZOLA") ||
		s.stringAt(s.current-1, 4, "ARZA", "ARZN") {
		return false
	}

	if s.stringAt(s.current-4, 11, "YASTRZEMSKI") {
		s.addAlt("R", "X")
		s.current += 2
		return true
	}

	if s.stringAt(s.current-1, 10, "BRZEZINSKI") {
		s.addAlt("RS", "RJ")
		s.current += 4
		return true
	}

	if s.stringAt(s.current-1, 3, "TRZ", "PRZ", "KRZ") ||
		(s.stringAt(s.current, 2, "RZ") && (s.isVowelAt(s.current-1) || (s.current == 0))) {
		s.addAlt("RS", "X")
		s.current += 2
		return true
	}

	if s.stringAt(s.current-1, 3, "BRZ", "DRZ", "GRZ") {
		s.addAlt("RS", "J")
		s.current += 2
		return true
	}

	return false
}

func (s *state) testSilentR() bool {
	if ((s.current == s.last) &&
		s.stringAt(s.current-2, 3, "IER") &&
		(s.stringAt(s.current-5, 3, "MET", "VIV", "LUC") ||
			s.stringAt(s.current-6, 4, "CART", "DOSS", "FOUR", "OLIV", "BUST", "DAUM",
				"ATEL", "SONN", "CORM", "MERC", "PELT", "POIR", "BERN", "FORT", "GREN", "SAUC",
				"GAGN", "GAUT", "GRAN", "FORC", "MESS", "LUSS", "MEUN", "POTH", "HOLL", "CHEN") ||
			s.stringAt(s.current-7, 5, "CROUP", "TORCH", "CLOUT", "FOURN", "GAUTH",
				"TROTT", "DEROS", "CHART") ||
			s.stringAt(s.current-8, 6, "CHEVAL", "LAVOIS", "PELLET", "SOMMEL", "TREPAN",
				"LETELL", "COLOMB") ||
			s.stringAt(s.current-9, 7, "CHARCUT") ||
			s.stringAt(s.current-10, 8, "CHARPENT"))) ||
		s.stringAt(s.current-2, 7, "SURBURB", "WORSTED") ||
		s.stringAt(s.current-2, 9, "WORCESTER") ||
		s.stringAt(s.current-7, 8, "MONSIEUR") ||
		s.stringAt(s.current-6, 8, "POITIERS") {
		return true
	}

	return false
}

func (s *state) vowelReTransposition() bool {
	if (s.withVowels) &&
		(s.charAt(s.current+1) == 'E') &&
		(s.length > 3) &&
		!s.stringAt(0, 5, "OUTRE", "LIBRE", "ANDRE") &&
		!(s.stringAt(0, 4, "FRED", "TRES") && (s.length == 4)) &&
		!s.stringAt(s.current-2, 5, "LDRED", "LFRED", "NDRED", "NFRED", "NDRES", "TRES", "IFRED") &&
		!s.isVowelAt(s.current-1) &&
		(((s.current + 1) == s.last) ||
			(((s.current + 2) == s.last) && s.stringAt(s.current+2, 1, "D", "S"))) {
		s.add("AR")
		return true
	}

	return false
}
