package phonetic

var tRules = []rule{
	(*state).tInitial,
	(*state).tch,
	(*state).silentFrenchT,
	(*state).tunTulTuaTuo,
	(*state).tueTeuTeouTulTie,
	(*state).turTiuSuffixes,
	(*state).ti,
	(*state).tient,
	(*state).tsch,
	(*state).tzsch,
	(*state).thPronouncedSeparately,
	(*state).tth,
	(*state).th,
}

// encodeT encodes 'T' at the cursor.
func (s *state) encodeT() {
	if s.firstOf(tRules) {
		return
	}

	if s.stringAt(s.current+1, 1, "T", "D") {
		s.current += 2
	} else {
		s.current++
	}

	s.add("T")
}

func (s *state) tInitial() bool {
	if s.current == 0 {
		if s.stringAt(s.current+1, 3, "SAR", "ZAR") {
			s.current++
			return true
		}

		if ((s.length == 3) && s.stringAt(s.current+1, 2, "SO", "SA", "SU")) ||
			((s.length == 4) && s.stringAt(s.current+1, 3, "SAO", "SAI")) ||
			((s.length == 5) && s.stringAt(s.current+1, 4, "SING", "SANG")) {
			s.add("X")
			s.advance(3, 2)
			return true
		}

		if s.stringAt(s.current+1, 1, "S") && s.isVowelAt(s.current+2) {
			s.addAlt("TS", "S")
			s.advance(3, 2)
			return true
		}

		if s.stringAt(s.current+1, 1, "J") {
			s.add("X")
			s.advance(3, 2)
			return true
		}

		if (s.stringAt(s.current+1, 2, "HU") && (s.length == 3)) ||
			s.stringAt(s.current+1, 3, "HAI", "HUY", "HAO") ||
			s.stringAt(s.current+1, 4, "HYME", "HYMY", "HANH") ||
			s.stringAt(s.current+1, 5, "HERES") {
			s.add("T")
			s.advance(3, 2)
			return true
		}
	}

	return false
}

func (s *state) tch() bool {
	if s.stringAt(s.current+1, 2, "CH") {
		s.add("X")
		s.current += 3
		return true
	}

	return false
}

func (s *state) silentFrenchT() bool {
	if ((s.current == s.last) && s.stringAt(s.current-4, 5, "MONET", "GENET", "CHAUT")) ||
		s.stringAt(s.current-2, 9, "POTPOURRI") ||
		s.stringAt(s.current-3, 9, "BOATSWAIN") ||
		s.stringAt(s.current-3, 8, "MORTGAGE") ||
		(s.stringAt(s.current-4, 5, "BERET", "BIDET", "FILET", "DEBUT", "DEPOT", "PINOT",
			"TAROT") ||
			s.stringAt(s.current-5, 6, "BALLET", "BUFFET", "CACHET", "CHALET", "ESPRIT",
				"RAGOUT", "GOULET", "CHABOT", "BENOIT") ||
			s.stringAt(s.current-6, 7, "GOURMET", "BOUQUET", "CROCHET", "CROQUET", "PARFAIT",
				"PINCHOT", "CABARET", "PARQUET", "RAPPORT", "TOUCHET", "COURBET", "DIDEROT") ||
			s.stringAt(s.current-7, 8, "ENTREPOT", "CABERNET", "DUBONNET", "MASSENET",
				"MUSCADET", "RICOCHET", "ESCARGOT") ||
			s.stringAt(s.current-8, 9, "SOBRIQUET", "CABRIOLET", "CASSOULET", "OUBRIQUET",
				"CAMEMBERT")) &&
			!s.stringAt(s.current+1, 2, "AN", "RY", "IC", "OM", "IN") {
		s.current++
		return true
	}

	return false
}

func (s *state) tunTulTuaTuo() bool {
	if s.stringAt(s.current-3, 6, "FORTUN") ||
		(s.stringAt(s.current, 3, "TUL") &&
			(s.isVowelAt(s.current-1) && s.isVowelAt(s.current+3))) ||
		s.stringAt(s.current-2, 5, "BITUA", "BITUE") ||
		((s.current > 1) && s.stringAt(s.current, 3, "TUA", "TUO")) {
		s.addAlt("X", "T")
		s.current++
		return true
	}

	return false
}

func (s *state) tueTeuTeouTulTie() bool {
	if s.stringAt(s.current+1, 4, "UENT") ||
		s.stringAt(s.current-4, 9, "RIGHTEOUS") ||
		s.stringAt(s.current-3, 7, "STATUTE") ||
		s.stringAt(s.current-3, 7, "AMATEUR") ||
		(s.stringAt(s.current-1, 5, "NTULE", "NTULA", "STULE", "STULA", "STEUR")) ||
		(((s.current + 2) == s.last) && s.stringAt(s.current, 3, "TUE")) ||
		s.stringAt(s.current, 5, "TUENC") ||
		s.stringAt(s.current-3, 8, "STATUTOR") ||
		(((s.current + 5) == s.last) && s.stringAt(s.current, 6, "TIENCE")) {
		s.addAlt("X", "T")
		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) turTiuSuffixes() bool {
	if (s.current > 0) && s.stringAt(s.current+1, 3, "URE", "URA", "URI", "URY", "URO", "IUS") {
		if (s.stringAt(s.current+1, 3, "URA", "URO") && ((s.current + 3) == s.last)) &&
			!s.stringAt(s.current-3, 7, "VENTURA") ||
			s.stringAt(s.current+1, 4, "URIA") {
			s.add("T")
		} else {
			s.addAlt("X", "T")
		}

		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) ti() bool {
	if (s.stringAt(s.current+1, 2, "IO") && !s.stringAt(s.current-1, 5, "ETIOL")) ||
		s.stringAt(s.current+1, 3, "IAL") ||
		s.stringAt(s.current-1, 5, "RTIUM", "ATIUM") ||
		((s.stringAt(s.current+1, 3, "IAN") && (s.current > 0)) &&
			!(s.stringAt(s.current-4, 8, "FAUSTIAN") ||
				s.stringAt(s.current-5, 9, "PROUSTIAN") ||
				s.stringAt(s.current-2, 7, "TATIANA") ||
				(s.stringAt(s.current-3, 7, "KANTIAN", "GENTIAN") ||
					s.stringAt(s.current-8, 12, "ROOSEVELTIAN"))) ||
			(((s.current + 2) == s.last) &&
				s.stringAt(s.current, 3, "TIA") &&
				!(s.stringAt(s.current-3, 6, "HESTIA", "MASTIA") ||
					s.stringAt(s.current-2, 5, "OSTIA") ||
					s.stringAt(0, 3, "TIA") ||
					s.stringAt(s.current-5, 8, "IZVESTIA"))) ||
			s.stringAt(s.current+1, 4, "IATE", "IATI", "IABL", "IATO", "IARY") ||
			s.stringAt(s.current-5, 9, "CHRISTIAN")) {
		if ((s.current == 2) && s.stringAt(0, 4, "ANTI")) ||
			s.stringAt(0, 5, "PATIO", "PITIA", "DUTIA") {
			s.add("T")
		} else if s.stringAt(s.current-4, 8, "EQUATION") {
			s.add("J")
		} else {
			if s.stringAt(s.current, 4, "TION") {
				s.add("X")
			} else if s.stringAt(0, 5, "KATIA", "LATIA") {
				s.addAlt("T", "X")
			} else {
				s.addAlt("X", "T")
			}
		}

		s.advance(3, 1)
		return true
	}

	return false
}

func (s *state) tient() bool {
	if s.stringAt(s.current+1, 4, "IENT") {
		s.addAlt("X", "T")
		s.advance(3, 1)
		return true
	}

	return false
}

func (s *state) tsch() bool {
	if s.stringAt(s.current, 4, "TSCH") && !s.stringAt(s.current-3, 4, "WELT", "KLAT", "FEST") {
		s.add("X")
		s.current += 4
		return true
	}

	return false
}

func (s *state) tzsch() bool {
	if s.stringAt(s.current, 5, "TZSCH") {
		s.add("X")
		s.current += 5
		return true
	}

	return false
}

func (s *state) thPronouncedSeparately() bool {
	if ((s.current > 0) &&
		s.stringAt(s.current+1, 4, "HOOD", "HEAD", "HEID", "HAND", "HILL", "HOLD", "HAWK",
			"HEAP", "HERD", "HOLE", "HOOK", "HUNT", "HUMO", "HAUS", "HOFF", "HARD") &&
		!s.stringAt(s.current-3, 5, "SOUTH", "NORTH")) ||
		s.stringAt(s.current+1, 5, "HOUSE", "HEART", "HASTE", "HYPNO", "HEQUE") ||
		(s.stringAt(s.current+1, 4, "HALL") &&
			((s.current + 4) == s.last) &&
			!s.stringAt(s.current-3, 5, "SOUTH", "NORTH")) ||
		(s.stringAt(s.current+1, 3, "HAM") &&
			((s.current + 3) == s.last) &&
			!(s.stringAt(0, 6, "GOTHAM", "WITHAM", "LATHAM") ||
				s.stringAt(0, 7, "BENTHAM", "WALTHAM", "WORTHAM") ||
				s.stringAt(0, 8, "GRANTHAM"))) ||
		(s.stringAt(s.current+1, 5, "HATCH") &&
			!((s.current == 0) || s.stringAt(s.current-2, 8, "UNTHATCH"))) ||
		s.stringAt(s.current-3, 7, "WARTHOG") ||
		s.stringAt(s.current-2, 6, "ESTHER") ||
		s.stringAt(s.current-3, 6, "GOETHE") ||
		s.stringAt(s.current-2, 8, "NATHALIE") {
		if s.stringAt(s.current-3, 7, "POSTHUM") {
			s.add("X")
		} else {
			s.add("T")
		}

		s.current += 2
		return true
	}

	return false
}

func (s *state) tth() bool {
	if s.stringAt(s.current, 3, "TTH") {
		if s.stringAt(s.current-2, 5, "MATTH") {
			s.add("0")
		} else {
			s.add("T0")
		}

		s.current += 3
		return true
	}

	return false
}

func (s *state) th() bool {
	if s.stringAt(s.current, 2, "TH") {
		if s.stringAt(s.current-3, 7, "CLOTHES") {
			s.current += 3
			return true
		}

		if s.stringAt(s.current+2, 4, "OMAS", "OMPS", "OMPK", "OMSO", "OMSE", "AMES", "OVEN",
			"OFEN", "ILDA", "ILDE") ||
			(s.stringAt(0, 4, "THOM") && (s.length == 4)) ||
			(s.stringAt(0, 5, "THOMS") && (s.length == 5)) ||
			s.stringAt(0, 4, "VAN ", "VON ") ||
			s.stringAt(0, 3, "SCH") {
			s.add("T")
		} else {
			if s.stringAt(0, 2, "SM") {
				s.addAlt("0", "T")
			} else {
				s.add("0")
			}
		}

		s.current += 2
		return true
	}

	return false
}
