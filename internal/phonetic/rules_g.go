package phonetic

var gRules = []rule{
	(*state).silentGAtBeginning,
	(*state).gg,
	(*state).gk,
	(*state).gh,
	(*state).silentG,
	(*state).gn,
	(*state).gl,
	(*state).initialGFrontVowel,
	(*state).nger,
	(*state).ger,
	(*state).gel,
	(*state).nonInitialGFrontVowel,
	(*state).gaToJ,
}

var ghRules = []rule{
	(*state).ghAfterConsonant,
	(*state).initialGh,
	(*state).ghToJ,
	(*state).ghToH,
	(*state).ught,
	(*state).ghHPartOfOtherWord,
	(*state).silentGh,
	(*state).ghToF,
}

// encodeG encodes 'G' at the cursor.
func (s *state) encodeG() {
	if s.firstOf(gRules) {
		return
	}

	if !s.stringAt(s.current-1, 1, "C", "K", "G", "Q") {
		s.addExact("G", "K")
	}

	s.current++
}

func (s *state) silentGAtBeginning() bool {
	if (s.current == 0) && s.stringAt(s.current, 2, "GN") {
		s.current++
		return true
	}

	return false
}

func (s *state) gg() bool {
	if s.charAt(s.current+1) == 'G' {
		if s.stringAt(s.current-1, 5, "AGGIA", "OGGIA", "AGGIO", "EGGIO", "EGGIA", "IGGIO") ||
			(s.stringAt(s.current-1, 5, "UGGIE") &&
				!(((s.current + 3) == s.last) || ((s.current + 4) == s.last))) ||
			(((s.current + 2) == s.last) && s.stringAt(s.current-1, 4, "AGGI", "OGGI")) ||
			s.stringAt(s.current-2, 6, "SUGGES", "XAGGER", "REGGIE") {
			if s.stringAt(s.current-2, 7, "SUGGEST") {
				s.addExact("G", "K")
			}

			s.add("J")
			s.advance(3, 2)
		} else {
			s.addExact("G", "K")
			s.current += 2
		}

		return true
	}

	return false
}

func (s *state) gk() bool {
	if s.charAt(s.current+1) == 'K' {
		s.add("K")
		s.current += 2
		return true
	}

	return false
}

func (s *state) gh() bool {
	if s.charAt(s.current+1) == 'H' {
		if s.firstOf(ghRules) {
			return true
		}

		s.addExact("G", "K")
		s.current += 2
		return true
	}

	return false
}

func (s *state) ghAfterConsonant() bool {
	if (s.current > 0) &&
		!s.isVowelAt(s.current-1) &&
		!(s.stringAt(s.current-3, 5, "HALGH") && ((s.current + 1) == s.last)) {
		s.addExact("G", "K")
		s.current += 2
		return true
	}

	return false
}

func (s *state) initialGh() bool {
	if s.current < 3 {
		if s.current == 0 {
			if s.charAt(s.current+2) == 'I' {
				s.add("J")
			} else {
				s.addExact("G", "K")
			}

			s.current += 2
			return true
		}
	}

	return false
}

func (s *state) ghToJ() bool {
	if s.stringAt(s.current-2, 4, "ALGH") && ((s.current + 1) == s.last) {
		s.addAlt("J", "")
		s.current += 2
		return true
	}

	return false
}

func (s *state) ghToH() bool {
	if (s.stringAt(s.current-4, 4, "DONO", "DONA") && s.isVowelAt(s.current+2)) ||
		s.stringAt(s.current-5, 9, "CALLAGHAN") {
		s.add("H")
		s.current += 2
		return true
	}

	return false
}

func (s *state) ught() bool {
	if s.stringAt(s.current-1, 4, "UGHT") {
		if (s.stringAt(s.current-3, 5, "LAUGH") &&
			!(s.stringAt(s.current-4, 7, "SLAUGHT") ||
				s.stringAt(s.current-3, 7, "LAUGHTO"))) ||
			s.stringAt(s.current-4, 6, "DRAUGH") {
			s.add("FT")
		} else {
			s.add("T")
		}

		s.current += 3
		return true
	}

	return false
}

func (s *state) ghHPartOfOtherWord() bool {
	if s.stringAt(s.current+1, 4, "HOUS", "HEAD", "HOLE", "HORN", "HARN") {
		s.addExact("G", "K")
		s.current += 2
		return true
	}

	return false
}

func (s *state) silentGh() bool {
	if ((((s.current > 1) && s.stringAt(s.current-2, 1, "B", "H", "D", "G", "L")) ||
		((s.current > 2) &&
			s.stringAt(s.current-3, 1, "B", "H", "D", "K", "W", "N", "P", "V") &&
			!s.stringAt(0, 6, "ENOUGH")) ||
		((s.current > 3) && s.stringAt(s.current-4, 1, "B", "H")) ||
		((s.current > 3) && s.stringAt(s.current-4, 2, "PL", "SL")) ||
		((s.current > 0) &&
			((s.charAt(s.current-1) == 'I') ||
				s.stringAt(0, 4, "PUGH") ||
				(s.stringAt(s.current-1, 3, "AGH") && ((s.current + 1) == s.last)) ||
				s.stringAt(s.current-4, 6, "GERAGH", "DRAUGH") ||
				(s.stringAt(s.current-3, 5, "GAUGH", "GEOGH", "MAUGH") &&
					!s.stringAt(0, 9, "MCGAUGHEY")) ||
				(s.stringAt(s.current-2, 4, "OUGH") &&
					(s.current > 3) &&
					!s.stringAt(s.current-4, 6, "CCOUGH", "ENOUGH", "TROUGH", "CLOUGH"))))) &&
		(s.stringAt(s.current-3, 5, "VAUGH", "FEIGH", "LEIGH") ||
			s.stringAt(s.current-2, 4, "HIGH", "TIGH") ||
			((s.current + 1) == s.last) ||
			(s.stringAt(s.current+2, 2, "IE", "EY", "ES", "ER", "ED", "TY") &&
				((s.current + 3) == s.last) &&
				!s.stringAt(s.current-5, 9, "GALLAGHER")) ||
			(s.stringAt(s.current+2, 1, "Y") && ((s.current + 2) == s.last)) ||
			(s.stringAt(s.current+2, 3, "ING", "OUT") && ((s.current + 4) == s.last)) ||
			(s.stringAt(s.current+2, 4, "ERTY") && ((s.current + 5) == s.last)) ||
			(!s.isVowelAt(s.current+2) ||
				s.stringAt(s.current-3, 5, "GAUGH", "GEOGH", "MAUGH") ||
				s.stringAt(s.current-4, 8, "BROUGHAM")))) &&
		!(s.stringAt(0, 6, "BALOGH", "SABAGH") ||
			s.stringAt(s.current-2, 7, "BAGHDAD") ||
			s.stringAt(s.current-3, 5, "WHIGH") ||
			s.stringAt(s.current-5, 7, "SABBAGH", "AKHLAGH")) {
		s.current += 2
		return true
	}

	return false
}

func (s *state) ghSpecialCases() bool {
	handled := false
	if s.stringAt(s.current-6, 8, "HICCOUGH") {
		s.add("P")
		handled = true
	} else if s.stringAt(0, 5, "LOUGH") {
		s.add("K")
		handled = true
	} else if s.stringAt(0, 6, "BALOGH") {
		s.addExactAlt("G", "", "K", "")
		handled = true
	} else if s.stringAt(s.current-3, 8, "LAUGHLIN", "COUGHLAN", "LOUGHLIN") {
		s.addAlt("K", "F")
		handled = true
	} else if s.stringAt(s.current-3, 5, "GOUGH") || s.stringAt(s.current-7, 9, "COLCLOUGH") {
		s.addAlt("", "F")
		handled = true
	}

	if handled {
		s.current += 2
		return true
	}

	return false
}

func (s *state) ghToF() bool {
	if s.ghSpecialCases() {
		return true
	}

	if (s.current > 2) &&
		(s.charAt(s.current-1) == 'U') &&
		s.isVowelAt(s.current-2) &&
		s.stringAt(s.current-3, 1, "C", "G", "L", "R", "T", "N", "S") &&
		!s.stringAt(s.current-4, 8, "BREUGHEL", "FLAUGHER") {
		s.add("F")
		s.current += 2
		return true
	}

	return false
}

func (s *state) silentG() bool {
	if (((s.current + 1) == s.last) &&
		(s.stringAt(s.current-1, 3, "EGM", "IGM", "AGM") || s.stringAt(s.current, 2, "GT"))) ||
		(s.stringAt(0, 5, "HUGES") && (s.length == 5)) {
		s.current++
		return true
	}

	if s.stringAt(0, 2, "NG") && (s.current != s.last) {
		s.current++
		return true
	}

	return false
}

func (s *state) gn() bool {
	if s.charAt(s.current+1) == 'N' {
		if ((s.current > 1) &&
			((s.stringAt(s.current-1, 1, "I", "U", "E") ||
				s.stringAt(s.current-3, 9, "LORGNETTE") ||
				s.stringAt(s.current-2, 9, "LAGNIAPPE") ||
				s.stringAt(s.current-2, 6, "COGNAC") ||
				s.stringAt(s.current-3, 7, "CHAGNON") ||
				s.stringAt(s.current-5, 9, "COMPAGNIE") ||
				s.stringAt(s.current-4, 6, "BOLOGN")) &&
				!(s.stringAt(s.current+2, 5, "ATION") ||
					s.stringAt(s.current+2, 4, "ATOR") ||
					s.stringAt(s.current+2, 3, "ATE", "ITY") ||
					(s.stringAt(s.current+2, 2, "AN", "AC", "IA", "UM") &&
						!(s.stringAt(s.current-3, 8, "POIGNANT") ||
							s.stringAt(s.current-2, 6, "COGNAC"))) ||
					s.stringAt(0, 7, "SPIGNER", "STEGNER") ||
					(s.stringAt(0, 5, "SIGNE") && (s.length == 5)) ||
					s.stringAt(s.current-2, 5, "LIGNI", "LIGNO", "REGNA", "DIGNI", "WEGNE",
						"TIGNE", "RIGNE", "REGNE", "TIGNO") ||
					s.stringAt(s.current-2, 6, "SIGNAL", "SIGNIF", "SIGNAT") ||
					s.stringAt(s.current-1, 5, "IGNIT")) &&
				!s.stringAt(s.current-2, 6, "SIGNET", "LIGNEO"))) ||
			(((s.current + 2) == s.last) &&
				s.stringAt(s.current, 3, "GNE", "GNA") &&
				!s.stringAt(s.current-2, 5, "SIGNA", "MAGNA", "SIGNE")) {
			s.addExactAlt("N", "GN", "N", "KN")
		} else {
			s.addExact("GN", "KN")
		}

		s.current += 2
		return true
	}

	return false
}

func (s *state) gl() bool {
	if s.stringAt(s.current+1, 3, "LIA", "LIO", "LIE") && s.isVowelAt(s.current-1) {
		s.addExactAlt("L", "GL", "L", "KL")
		s.current += 2
		return true
	}

	return false
}

func (s *state) initialGSoft() bool {
	if ((s.stringAt(s.current+1, 2, "EL", "EM", "EN", "EO", "ER", "ES", "IA", "IN", "IO", "IP",
		"IU", "YM", "YN", "YP", "YR", "EE") ||
		s.stringAt(s.current+1, 3, "IRA", "IRO")) &&
		!(s.stringAt(s.current+1, 3, "ELD", "ELT", "ERT", "INZ", "ERH", "ITE", "ERD", "ERL",
			"ERN", "INT", "EES", "EEK", "ELB", "EER") ||
			s.stringAt(s.current+1, 4, "ERSH", "ERST", "INSB", "INGR", "EROW", "ERKE",
				"EREN") ||
			s.stringAt(s.current+1, 5, "ELLER", "ERDIE", "ERBER", "ESUND", "ESNER",
				"INGKO", "INKGO", "IPPER", "ESELL", "IPSON", "EEZER", "ERSON", "ELMAN") ||
			s.stringAt(s.current+1, 6, "ESTALT", "ESTAPO", "INGHAM", "ERRITY", "ERRISH",
				"ESSNER", "ENGLER") ||
			s.stringAt(s.current+1, 7, "YNAECOL", "YNECOLO", "ENTHNER", "ERAGHTY") ||
			s.stringAt(s.current+1, 8, "INGERICH", "EOGHEGAN"))) ||
		(s.isVowelAt(s.current+1) &&
			(s.stringAt(s.current+1, 3, "EE ", "EEW") ||
				(s.stringAt(s.current+1, 3, "IGI", "IRA", "IBE", "AOL", "IDE", "IGL") &&
					!s.stringAt(s.current+1, 5, "IDEON")) ||
				s.stringAt(s.current+1, 4, "ILES", "INGI", "ISEL") ||
				(s.stringAt(s.current+1, 5, "INGER") &&
					!s.stringAt(s.current+1, 8, "INGERICH")) ||
				s.stringAt(s.current+1, 5, "IBBER", "IBBET", "IBLET", "IBRAN", "IGOLO",
					"IRARD", "IGANT") ||
				s.stringAt(s.current+1, 6, "IRAFFE", "EEWHIZ") ||
				s.stringAt(s.current+1, 7, "ILLETTE", "IBRALTA"))) {
		return true
	}

	return false
}

func (s *state) initialGFrontVowel() bool {
	if (s.current == 0) && s.frontVowel(s.current+1) {
		if s.stringAt(s.current+1, 3, "ILA") && (s.length == 4) {
			s.add("H")
		} else if s.initialGSoft() {
			s.addExactAlt("J", "G", "J", "K")
		} else {
			if (s.runes[s.current+1] == 'E') || (s.runes[s.current+1] == 'I') {
				s.addExactAlt("G", "J", "K", "J")
			} else {
				s.addExact("G", "K")
			}
		}

		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) nger() bool {
	if (s.current > 1) && s.stringAt(s.current-1, 4, "NGER") {
		if !(rootOrInflections(s.word, "ANGER") ||
			rootOrInflections(s.word, "LINGER") ||
			rootOrInflections(s.word, "MALINGER") ||
			rootOrInflections(s.word, "FINGER") ||
			(s.stringAt(s.current-3, 4, "HUNG", "FING", "BUNG", "WING", "RING", "DING",
				"ZENG", "ZING", "JUNG", "LONG", "PING", "CONG", "MONG", "BANG", "GANG", "HANG",
				"LANG", "SANG", "SING", "WANG", "ZANG") &&
				!(s.stringAt(s.current-6, 7, "BOULANG", "SLESING", "KISSING", "DERRING") ||
					s.stringAt(s.current-8, 9, "SCHLESING") ||
					s.stringAt(s.current-5, 6, "SALING", "BELANG") ||
					s.stringAt(s.current-6, 7, "BARRING") ||
					s.stringAt(s.current-6, 9, "PHALANGER") ||
					s.stringAt(s.current-4, 5, "CHANG"))) ||
			s.stringAt(s.current-4, 5, "STING", "YOUNG") ||
			s.stringAt(s.current-5, 6, "STRONG") ||
			s.stringAt(0, 3, "UNG", "ENG", "ING") ||
			s.stringAt(s.current, 6, "GERICH") ||
			s.stringAt(0, 6, "SENGER") ||
			s.stringAt(s.current-3, 6, "WENGER", "MUNGER", "SONGER", "KINGER") ||
			s.stringAt(s.current-4, 7, "FLINGER", "SLINGER", "STANGER", "STENGER",
				"KLINGER", "CLINGER") ||
			s.stringAt(s.current-5, 8, "SPRINGER", "SPRENGER") ||
			s.stringAt(s.current-3, 7, "LINGERF") ||
			s.stringAt(s.current-2, 7, "ANGERLY", "ANGERBO", "INGERSO")) {
			s.addExactAlt("J", "G", "J", "K")
		} else {
			s.addExactAlt("G", "J", "K", "J")
		}

		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) ger() bool {
	if (s.current > 0) && s.stringAt(s.current+1, 2, "ER") {
		if (((s.current == 2) &&
			s.isVowelAt(s.current-1) &&
			!s.isVowelAt(s.current-2) &&
			!(s.stringAt(s.current-2, 5, "PAGER", "WAGER", "NIGER", "ROGER", "LEGER", "CAGER")) ||
			s.stringAt(s.current-2, 5, "AUGER", "EAGER", "INGER", "YAGER")) ||
			s.stringAt(s.current-3, 6, "SEEGER", "JAEGER", "GEIGER", "KRUGER", "SAUGER",
				"BURGER", "MEAGER", "MARGER", "RIEGER", "YAEGER", "STEGER", "PRAGER", "SWIGER",
				"YERGER", "TORGER", "FERGER", "HILGER", "ZEIGER", "YARGER", "COWGER", "CREGER",
				"KROGER", "KREGER", "GRAGER", "STIGER", "BERGER") ||
			(s.stringAt(s.current-3, 6, "BERGER") && ((s.current + 2) == s.last)) ||
			s.stringAt(s.current-4, 7, "KREIGER", "KRUEGER", "METZGER", "KRIEGER",
				"KROEGER", "STEIGER", "DRAEGER", "BUERGER", "BOERGER", "FIBIGER") ||
			(s.stringAt(s.current-3, 6, "BARGER") && (s.current > 4)) ||
			(s.stringAt(s.current, 6, "GERBER") && (s.current > 0)) ||
			s.stringAt(s.current-5, 8, "SCHWAGER", "LYBARGER", "SPRENGER", "GALLAGER",
				"WILLIGER") ||
			s.stringAt(0, 4, "HARGER") ||
			(s.stringAt(0, 4, "AGER", "EGER") && (s.length == 4)) ||
			s.stringAt(s.current-1, 6, "YGERNE") ||
			s.stringAt(s.current-6, 9, "SCHWEIGER")) &&
			!(s.stringAt(s.current-5, 10, "BELLIGEREN") ||
				s.stringAt(0, 7, "MARGERY") ||
				s.stringAt(s.current-3, 8, "BERGERAC")) {
			if s.slavoGermanic() {
				s.addExact("G", "K")
			} else {
				s.addExactAlt("G", "J", "K", "J")
			}
		} else {
			s.addExactAlt("J", "G", "J", "K")
		}

		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) gel() bool {
	if s.stringAt(s.current+1, 2, "EL") && (s.current > 0) {
		if ((s.length == 5) &&
			s.isVowelAt(s.current-1) &&
			!s.isVowelAt(s.current-2) &&
			!s.stringAt(s.current-2, 5, "NIGEL", "RIGEL")) ||
			s.stringAt(s.current-2, 5, "ENGEL", "HEGEL", "NAGEL", "VOGEL") ||
			s.stringAt(s.current-3, 6, "MANGEL", "WEIGEL", "FLUGEL", "RANGEL", "HAUGEN",
				"RIEGEL", "VOEGEL") ||
			s.stringAt(s.current-4, 7, "SPEIGEL", "STEIGEL", "WRANGEL", "SPIEGEL") ||
			s.stringAt(s.current-4, 8, "DANEGELD") {
			if s.slavoGermanic() {
				s.addExact("G", "K")
			} else {
				s.addExactAlt("G", "J", "K", "J")
			}
		} else {
			s.addExactAlt("J", "G", "J", "K")
		}

		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) nonInitialGFrontVowel() bool {
	if s.stringAt(s.current+1, 1, "E", "I", "Y") {
		if s.stringAt(s.current, 2, "GE") && (s.current == (s.last - 1)) {
			if s.hardGeAtEnd() {
				if s.slavoGermanic() {
					s.addExact("G", "K")
				} else {
					s.addExactAlt("G", "J", "K", "J")
				}
			} else {
				s.add("J")
			}
		} else {
			if s.internalHardG() {
				if !((s.current == 2) && s.stringAt(0, 2, "MC")) ||
					((s.current == 3) && s.stringAt(0, 3, "MAC")) {
					if s.slavoGermanic() {
						s.addExact("G", "K")
					} else {
						s.addExactAlt("G", "J", "K", "J")
					}
				}
			} else {
				s.addExactAlt("J", "G", "J", "K")
			}
		}

		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) hardGeAtEnd() bool {
	if s.stringAt(0, 6, "RENEGE", "STONGE", "STANGE", "PRANGE", "KRESGE") ||
		s.stringAt(0, 5, "BYRGE", "BIRGE", "BERGE", "HAUGE") ||
		s.stringAt(0, 4, "HAGE") ||
		s.stringAt(0, 5, "LANGE", "SYNGE", "BENGE", "RUNGE", "HELGE") ||
		s.stringAt(0, 4, "INGE", "LAGE") {
		return true
	}

	return false
}

func (s *state) internalHardG() bool {
	if !(((s.current + 1) == s.last) && (s.charAt(s.current+1) == 'E')) &&
		(s.internalHardNg() ||
			s.internalHardGenGinGetGit() ||
			s.internalHardGOpenSyllable() ||
			s.internalHardGOther()) {
		return true
	}

	return false
}

func (s *state) internalHardGOther() bool {
	if (s.stringAt(s.current, 4, "GETH", "GEAR", "GEIS", "GIRL", "GIVI", "GIVE", "GIFT", "GIRD",
		"GIRT", "GILV", "GILD", "GELD") &&
		!s.stringAt(s.current-3, 6, "GINGIV")) ||
		(s.stringAt(s.current+1, 3, "ISH") && (s.current > 0) && !s.stringAt(0, 4, "LARG")) ||
		(s.stringAt(s.current-2, 5, "MAGED", "MEGID") && !((s.current + 2) == s.last)) ||
		s.stringAt(s.current, 3, "GEZ") ||
		s.stringAt(0, 4, "WEGE", "HAGE") ||
		(s.stringAt(s.current-2, 6, "ONGEST", "UNGEST") &&
			((s.current + 3) == s.last) &&
			!s.stringAt(s.current-3, 7, "CONGEST")) ||
		s.stringAt(0, 5, "VOEGE", "BERGE", "HELGE") ||
		(s.stringAt(0, 4, "ENGE", "BOGY") && (s.length == 4)) ||
		s.stringAt(s.current, 6, "GIBBON") ||
		s.stringAt(0, 10, "CORREGIDOR") ||
		s.stringAt(0, 8, "INGEBORG") ||
		(s.stringAt(s.current, 4, "GILL") &&
			(((s.current + 3) == s.last) || ((s.current + 4) == s.last)) &&
			!s.stringAt(0, 8, "STURGILL")) {
		return true
	}

	return false
}

func (s *state) internalHardGOpenSyllable() bool {
	if s.stringAt(s.current+1, 3, "EYE") ||
		s.stringAt(s.current-2, 4, "FOGY", "POGY", "YOGI") ||
		s.stringAt(s.current-2, 5, "MAGEE", "MCGEE", "HAGIO") ||
		s.stringAt(s.current-1, 4, "RGEY", "OGEY") ||
		s.stringAt(s.current-3, 5, "HOAGY", "STOGY", "PORGY") ||
		s.stringAt(s.current-5, 8, "CARNEGIE") ||
		(s.stringAt(s.current-1, 4, "OGEY", "OGIE") && ((s.current + 2) == s.last)) {
		return true
	}

	return false
}

func (s *state) internalHardGenGinGetGit() bool {
	if (s.stringAt(s.current-3, 6, "FORGET", "TARGET", "MARGIT", "MARGET", "TURGEN", "BERGEN",
		"MORGEN", "JORGEN", "HAUGEN", "JERGEN", "JURGEN", "LINGEN", "BORGEN", "LANGEN",
		"KLAGEN", "STIGER", "BERGER") &&
		!s.stringAt(s.current, 7, "GENETIC", "GENESIS") &&
		!s.stringAt(s.current-4, 8, "PLANGENT")) ||
		(s.stringAt(s.current-3, 6, "BERGIN", "FEAGIN", "DURGIN") &&
			((s.current + 2) == s.last)) ||
		(s.stringAt(s.current-2, 5, "ENGEN") &&
			!s.stringAt(s.current+3, 3, "DER", "ETI", "ESI")) ||
		s.stringAt(s.current-4, 7, "JUERGEN") ||
		s.stringAt(0, 5, "NAGIN", "MAGIN", "HAGIN") ||
		(s.stringAt(0, 5, "ENGIN", "DEGEN", "LAGEN", "MAGEN", "NAGIN") && (s.length == 5)) ||
		(s.stringAt(s.current-2, 5, "BEGET", "BEGIN", "HAGEN", "FAGIN", "BOGEN", "WIGIN",
			"NTGEN", "EIGEN", "WEGEN", "WAGEN") &&
			!s.stringAt(s.current-5, 8, "OSPHAGEN")) {
		return true
	}

	return false
}

func (s *state) internalHardNg() bool {
	if (s.stringAt(s.current-3, 4, "DANG", "FANG", "SING") &&
		!s.stringAt(s.current-5, 8, "DISINGEN")) ||
		s.stringAt(0, 5, "INGEB", "ENGEB") ||
		(s.stringAt(s.current-3, 4, "RING", "WING", "HANG", "LONG") &&
			!(s.stringAt(s.current-4, 5, "CRING", "FRING", "ORANG", "TWING", "CHANG", "PHANG") ||
				s.stringAt(s.current-5, 6, "SYRING") ||
				s.stringAt(s.current-3, 7, "RINGENC", "RINGENT", "LONGITU", "LONGEVI") ||
				(s.stringAt(s.current, 4, "GELO", "GINO") && ((s.current + 3) == s.last)))) ||
		(s.stringAt(s.current-1, 3, "NGY") &&
			!(s.stringAt(s.current-3, 5, "RANGY", "MANGY", "MINGY") ||
				s.stringAt(s.current-4, 6, "SPONGY", "STINGY"))) {
		return true
	}

	return false
}

func (s *state) gaToJ() bool {
	if (s.stringAt(s.current-3, 7, "MARGARY", "MARGARI") &&
		!s.stringAt(s.current-3, 8, "MARGARIT")) ||
		s.stringAt(0, 4, "GAOL") ||
		s.stringAt(s.current-2, 5, "ALGAE") {
		s.addExactAlt("J", "G", "J", "K")
		s.advance(2, 1)
		return true
	}

	return false
}
