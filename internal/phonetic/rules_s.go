package phonetic

var sRules = []rule{
	(*state).skj,
	(*state).specialSw,
	(*state).sj,
	(*state).silentFrenchSFinal,
	(*state).silentFrenchSInternal,
	(*state).isl,
	(*state).stl,
	(*state).christmas,
	(*state).sthm,
	(*state).isten,
	(*state).sugar,
	(*state).sh,
	(*state).sch,
	(*state).sur,
	(*state).su,
	(*state).ssio,
	(*state).ss,
	(*state).sia,
	(*state).sio,
	(*state).anglicisations,
	(*state).sc,
	(*state).seaSuiSier,
	(*state).sea,
}

// encodeS encodes 'S' at the cursor.
func (s *state) encodeS() {
	if s.firstOf(sRules) {
		return
	}

	s.add("S")
	if s.stringAt(s.current+1, 1, "S", "Z") && !s.stringAt(s.current+1, 2, "SH") {
		s.current += 2
	} else {
		s.current++
	}
}

func (s *state) specialSw() bool {
	if s.current == 0 {
		if s.namesBeginningWithSwThatGetAltSv() {
			s.addAlt("S", "SV")
			s.current += 2
			return true
		}

		if s.namesBeginningWithSwThatGetAltXv() {
			s.addAlt("S", "XV")
			s.current += 2
			return true
		}
	}

	return false
}

func (s *state) skj() bool {
	if s.stringAt(s.current, 4, "SKJO", "SKJU") && s.isVowelAt(s.current+3) {
		s.add("X")
		s.current += 3
		return true
	}

	return false
}

func (s *state) sj() bool {
	if s.stringAt(0, 2, "SJ") {
		s.add("X")
		s.current += 2
		return true
	}

	return false
}

func (s *state) silentFrenchSFinal() bool {
	if s.stringAt(0, 5, "LOUIS") && (s.current == s.last) {
		s.addAlt("S", "")
		s.current++
		return true
	}

	if (s.current == s.last) &&
		(s.stringAt(0, 4, "YVES") ||
			(s.stringAt(0, 4, "HORS") && (s.current == 3)) ||
			s.stringAt(s.current-4, 5, "CAMUS", "YPRES") ||
			s.stringAt(s.current-5, 6, "MESNES", "DEBRIS", "BLANCS", "INGRES", "CANNES") ||
			s.stringAt(s.current-6, 7, "CHABLIS", "APROPOS", "JACQUES", "ELYSEES", "OEUVRES",
				"GEORGES", "DESPRES") ||
			s.stringAt(0, 8, "ARKANSAS", "FRANCAIS", "CRUDITES", "BRUYERES") ||
			s.stringAt(0, 9, "DESCARTES", "DESCHUTES", "DESCHAMPS", "DESROCHES", "DESCHENES") ||
			s.stringAt(0, 10, "RENDEZVOUS") ||
			s.stringAt(0, 11, "CONTRETEMPS", "DESLAURIERS")) ||
		((s.current == s.last) &&
			s.stringAt(s.current-2, 2, "AI", "OI", "UI") &&
			!s.stringAt(0, 4, "LOIS", "LUIS")) {
		s.current++
		return true
	}

	return false
}

func (s *state) silentFrenchSInternal() bool {
	if s.stringAt(s.current-2, 9, "DESCARTES") ||
		s.stringAt(s.current-2, 7, "DESCHAM", "DESPRES", "DESROCH", "DESROSI", "DESJARD",
			"DESMARA", "DESCHEN", "DESHOTE", "DESLAUR") ||
		s.stringAt(s.current-2, 6, "MESNES") ||
		s.stringAt(s.current-5, 8, "DUQUESNE", "DUCHESNE") ||
		s.stringAt(s.current-7, 10, "BEAUCHESNE") ||
		s.stringAt(s.current-3, 7, "FRESNEL") ||
		s.stringAt(s.current-3, 9, "GROSVENOR") ||
		s.stringAt(s.current-4, 10, "LOUISVILLE") ||
		s.stringAt(s.current-7, 10, "ILLINOISAN") {
		s.current++
		return true
	}

	return false
}

func (s *state) isl() bool {
	if (s.stringAt(s.current-2, 4, "LISL", "LYSL", "AISL") &&
		!s.stringAt(s.current-3, 7, "PAISLEY", "BAISLEY", "ALISLAM", "ALISLAH", "ALISLAA")) ||
		((s.current == 1) &&
			((s.stringAt(s.current-1, 4, "ISLE") || s.stringAt(s.current-1, 5, "ISLAN")) &&
				!s.stringAt(s.current-1, 5, "ISLEY", "ISLER"))) {
		s.current++
		return true
	}

	return false
}

func (s *state) stl() bool {
	if (s.stringAt(s.current, 4, "STLE", "STLI") &&
		!s.stringAt(s.current+2, 4, "LESS", "LIKE", "LINE")) ||
		s.stringAt(s.current-3, 7, "THISTLY", "BRISTLY", "GRISTLY") ||
		s.stringAt(s.current-1, 5, "USCLE") {
		if s.stringAt(0, 7, "KRISTEN", "KRYSTLE", "CRYSTLE", "KRISTLE") ||
			s.stringAt(0, 11, "CHRISTENSEN", "CHRISTENSON") ||
			s.stringAt(s.current-3, 9, "FIRSTLING") ||
			s.stringAt(s.current-2, 8, "NESTLING", "WESTLING") {
			s.add("ST")
			s.current += 2
		} else {
			if s.withVowels &&
				(s.charAt(s.current+3) == 'E') &&
				(s.charAt(s.current+4) != 'R') &&
				!s.stringAt(s.current+3, 4, "ETTE", "ETTA") &&
				!s.stringAt(s.current+3, 2, "EY") {
				s.add("SAL")
				s.flagAlInversion = true
			} else {
				s.add("SL")
			}

			s.current += 3
		}

		return true
	}

	return false
}

func (s *state) christmas() bool {
	if s.stringAt(s.current-4, 8, "CHRISTMA") {
		s.add("SM")
		s.current += 3
		return true
	}

	return false
}

func (s *state) sthm() bool {
	if s.stringAt(s.current, 4, "STHM") {
		s.add("SM")
		s.current += 4
		return true
	}

	return false
}

func (s *state) isten() bool {
	if s.stringAt(0, 8, "CHRISTEN") {
		if rootOrInflections(s.word, "CHRISTEN") || s.stringAt(0, 11, "CHRISTENDOM") {
			s.addAlt("S", "ST")
		} else {
			s.add("ST")
		}

		s.current += 2
		return true
	}

	if s.stringAt(s.current-2, 6, "LISTEN", "RISTEN", "HASTEN", "FASTEN", "MUSTNT") ||
		s.stringAt(s.current-3, 7, "MOISTEN") {
		s.add("S")
		s.current += 2
		return true
	}

	return false
}

func (s *state) sugar() bool {
	if s.stringAt(s.current, 5, "SUGAR") {
		s.add("X")
		s.current++
		return true
	}

	return false
}

func (s *state) sh() bool {
	if s.stringAt(s.current, 2, "SH") {
		if s.stringAt(s.current-2, 8, "CASHMERE") {
			s.add("J")
			s.current += 2
			return true
		}

		if (s.current > 0) &&
			((s.stringAt(s.current+1, 3, "HAP") && ((s.current + 3) == s.last)) ||
				s.stringAt(s.current+1, 4, "HEIM", "HOEK", "HOLM", "HOLZ", "HOOD", "HEAD",
					"HEID", "HAAR", "HORS", "HOLE", "HUND", "HELM", "HAWK", "HILL") ||
				s.stringAt(s.current+1, 5, "HEART", "HATCH", "HOUSE", "HOUND", "HONOR") ||
				(s.stringAt(s.current+2, 3, "EAR") && ((s.current + 4) == s.last)) ||
				(s.stringAt(s.current+2, 3, "ORN") &&
					!s.stringAt(s.current-2, 7, "UNSHORN")) ||
				(s.stringAt(s.current+1, 4, "HOUR") &&
					!(s.stringAt(0, 7, "BASHOUR") ||
						s.stringAt(0, 8, "MANSHOUR") ||
						s.stringAt(0, 6, "ASHOUR"))) ||
				s.stringAt(s.current+2, 5, "ARMON", "ONEST", "ALLOW", "OLDER", "OPPER",
					"EIMER", "ANDLE", "ONOUR") ||
				s.stringAt(s.current+2, 6, "ABILLE", "UMANCE", "ABITUA")) {
			if !s.stringAt(s.current-1, 1, "S") {
				s.add("S")
			}
		} else {
			s.add("X")
		}

		s.current += 2
		return true
	}

	return false
}

func (s *state) sch() bool {
	if s.stringAt(s.current+1, 2, "CH") {
		if (s.current > 0) &&
			(s.stringAt(s.current+3, 3, "IEF", "EAT") ||
				s.stringAt(s.current+3, 4, "ANCE", "ARGE") ||
				s.stringAt(0, 6, "ESCHEW")) {
			s.add("S")
			s.current++
			return true
		}

		if (s.stringAt(s.current+3, 2, "OO", "ER", "EN", "UY", "ED", "EM", "IA", "IZ", "IS",
			"OL") &&
			!s.stringAt(s.current, 6, "SCHOLT", "SCHISL", "SCHERR")) ||
			s.stringAt(s.current+3, 3, "ISZ") ||
			(s.stringAt(s.current-1, 6, "ESCHAT", "ASCHIN", "ASCHAL", "ISCHAE", "ISCHIA") &&
				!s.stringAt(s.current-2, 8, "FASCHING")) ||
			(s.stringAt(s.current-1, 5, "ESCHI") && ((s.current + 3) == s.last)) ||
			(s.charAt(s.current+3) == 'Y') {
			if s.stringAt(s.current+3, 2, "ER", "EN", "IS") &&
				(((s.current + 4) == s.last) || s.stringAt(s.current+3, 3, "ENK", "ENB", "IST")) {
				s.addAlt("X", "SK")
			} else {
				s.add("SK")
			}

			s.current += 3
			return true
		}

		s.add("X")
		s.current += 3
		return true
	}

	return false
}

func (s *state) sur() bool {
	if s.stringAt(s.current+1, 3, "URE", "URA", "URY") {
		if (s.current == 0) ||
			s.stringAt(s.current-1, 1, "N", "K") ||
			s.stringAt(s.current-2, 2, "NO") {
			s.add("X")
		} else {
			s.add("J")
		}

		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) su() bool {
	if s.stringAt(s.current+1, 2, "UO", "UA") && (s.current != 0) {
		if s.stringAt(s.current-1, 4, "RSUA") {
			s.add("S")
		} else if s.isVowelAt(s.current-1) {
			s.addAlt("J", "S")
		} else {
			s.addAlt("X", "S")
		}

		s.advance(3, 1)
		return true
	}

	return false
}

func (s *state) ssio() bool {
	if s.stringAt(s.current+1, 4, "SION") {
		if s.stringAt(s.current-2, 2, "CI") {
			s.add("J")
		} else {
			if s.isVowelAt(s.current-1) {
				s.add("X")
			}
		}

		s.advance(4, 2)
		return true
	}

	return false
}

func (s *state) ss() bool {
	if s.stringAt(s.current-1, 5, "USSIA", "ESSUR", "ISSUR", "ISSUE") ||
		s.stringAt(s.current-1, 6, "ESSIAN", "ASSURE", "ASSURA", "ISSUAB", "ISSUAN", "ASSIUS") {
		s.add("X")
		s.advance(3, 2)
		return true
	}

	return false
}

func (s *state) sia() bool {
	if s.stringAt(s.current-2, 5, "CHSIA") || s.stringAt(s.current-1, 5, "RSIAL") {
		s.add("X")
		s.advance(3, 1)
		return true
	}

	if (s.stringAt(0, 6, "ALESIA", "ALYSIA", "ALISIA", "STASIA") &&
		(s.current == 3) &&
		!s.stringAt(0, 9, "ANASTASIA")) ||
		s.stringAt(s.current-5, 9, "DIONYSIAN") ||
		s.stringAt(s.current-5, 8, "THERESIA") {
		s.addAlt("X", "S")
		s.advance(3, 1)
		return true
	}

	if (s.stringAt(s.current, 3, "SIA") && ((s.current + 2) == s.last)) ||
		(s.stringAt(s.current, 4, "SIAN") && ((s.current + 3) == s.last)) ||
		s.stringAt(s.current-5, 9, "AMBROSIAL") {
		if (s.isVowelAt(s.current-1) || s.stringAt(s.current-1, 1, "R")) &&
			!(s.stringAt(0, 5, "JAMES", "NICOS", "PEGAS", "PEPYS") ||
				s.stringAt(0, 6, "HOBBES", "HOLMES", "JAQUES", "KEYNES") ||
				s.stringAt(0, 7, "MALTHUS", "HOMOOUS") ||
				s.stringAt(0, 8, "MAGLEMOS", "HOMOIOUS") ||
				s.stringAt(0, 9, "LEVALLOIS", "TARDENOIS") ||
				s.stringAt(s.current-4, 5, "ALGES")) {
			s.add("J")
		} else {
			s.add("S")
		}

		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) sio() bool {
	if s.stringAt(0, 7, "SIOBHAN") {
		s.add("X")
		s.advance(3, 1)
		return true
	}

	if s.stringAt(s.current+1, 3, "ION") {
		if s.isVowelAt(s.current-1) || s.stringAt(s.current-2, 2, "ER", "UR") {
			s.add("J")
		} else {
			s.add("X")
		}

		s.advance(3, 1)
		return true
	}

	return false
}

func (s *state) anglicisations() bool {
	if ((s.current == 0) && s.stringAt(s.current+1, 1, "M", "N", "L")) ||
		s.stringAt(s.current+1, 1, "Z") {
		s.addAlt("S", "X")
		if s.stringAt(s.current+1, 1, "Z") {
			s.current += 2
		} else {
			s.current++
		}

		return true
	}

	return false
}

func (s *state) sc() bool {
	if s.stringAt(s.current, 2, "SC") {
		if s.stringAt(s.current-2, 8, "VISCOUNT") {
			s.current++
			return true
		}

		if s.stringAt(s.current+2, 1, "I", "E", "Y") {
			if s.stringAt(s.current+2, 4, "IOUS") ||
				s.stringAt(s.current+2, 3, "IUT") ||
				s.stringAt(s.current-4, 9, "OMNISCIEN") ||
				s.stringAt(s.current-3, 8, "CONSCIEN", "CRESCEND", "CONSCION") ||
				s.stringAt(s.current-2, 6, "FASCIS") {
				s.add("X")
			} else if s.stringAt(s.current, 7, "SCEPTIC", "SCEPSIS") ||
				s.stringAt(s.current, 5, "SCIVV", "SCIRO") ||
				s.stringAt(s.current, 6, "SCIPIO") ||
				s.stringAt(s.current-2, 10, "PISCITELLI") {
				s.add("SK")
			} else {
				s.add("S")
			}

			s.current += 2
			return true
		}

		s.add("SK")
		s.current += 2
		return true
	}

	return false
}

func (s *state) seaSuiSier() bool {
	if (s.stringAt(s.current-3, 6, "NAUSEA") && ((s.current + 2) == s.last)) ||
		s.stringAt(s.current-2, 5, "CASUI") ||
		(s.stringAt(s.current-1, 5, "OSIER", "ASIER") &&
			!(s.stringAt(0, 6, "EASIER") ||
				s.stringAt(0, 5, "OSIER") ||
				s.stringAt(s.current-2, 6, "ROSIER", "MOSIER"))) {
		s.addAlt("J", "X")
		s.advance(3, 1)
		return true
	}

	return false
}

func (s *state) sea() bool {
	if (s.stringAt(0, 4, "SEAN") && ((s.current + 3) == s.last)) ||
		(s.stringAt(s.current-3, 6, "NAUSEO") && !s.stringAt(s.current-3, 7, "NAUSEAT")) {
		s.add("X")
		s.advance(3, 1)
		return true
	}

	return false
}
