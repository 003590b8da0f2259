package phonetic

var cRules = []rule{
	(*state).silentCAtBeginning,
	(*state).caToS,
	(*state).coToS,
	(*state).ch,
	(*state).ccia,
	(*state).cc,
	(*state).ckCgCq,
	(*state).cFrontVowel,
	(*state).silentC,
	(*state).cz,
	(*state).cs,
}

var chRules = []rule{
	(*state).chae,
	(*state).chToH,
	(*state).silentCh,
	(*state).arch,
	(*state).chToX,
	(*state).englishChToK,
	(*state).germanicChToK,
	(*state).greekChInitial,
	(*state).greekChNonInitial,
}

// encodeB encodes 'B' at the cursor.
func (s *state) encodeB() {
	if s.silentB() {
		return
	}

	s.addExact("B", "P")
	if (s.charAt(s.current+1) == 'B') ||
		((s.charAt(s.current+1) == 'P') &&
			((s.current + 1 < s.last) && (s.charAt(s.current+2) != 'H'))) {
		s.current += 2
	} else {
		s.current++
	}
}

func (s *state) silentB() bool {
	if s.stringAt(s.current-2, 4, "DEBT") ||
		s.stringAt(s.current-2, 5, "SUBTL") ||
		s.stringAt(s.current-2, 6, "SUBTIL") ||
		s.stringAt(s.current-3, 5, "DOUBT") {
		s.add("T")
		s.current += 2
		return true
	}

	return false
}

// encodeC encodes 'C' at the cursor.
func (s *state) encodeC() {
	if s.firstOf(cRules) {
		return
	}

	if !s.stringAt(s.current-1, 1, "C", "K", "G", "Q") {
		s.add("K")
	}

	if s.stringAt(s.current+1, 2, " C", " Q", " G") {
		s.current += 2
	} else {
		if s.stringAt(s.current+1, 1, "C", "K", "Q") &&
			!s.stringAt(s.current+1, 2, "CE", "CI") {
			s.current += 2
			if s.stringAt(s.current, 1, "C", "K", "Q") &&
				!s.stringAt(s.current+1, 2, "CE", "CI") {
				s.current++
			}
		} else {
			s.current++
		}
	}
}

func (s *state) silentCAtBeginning() bool {
	if (s.current == 0) && s.stringAt(s.current, 2, "CT", "CN") {
		s.current++
		return true
	}

	return false
}

func (s *state) caToS() bool {
	if ((s.current == 0) && s.stringAt(s.current, 4, "CAES", "CAEC", "CAEM")) ||
		s.stringAt(0, 8, "FRANCAIS", "FRANCAIX", "LINGUICA") ||
		s.stringAt(0, 6, "FACADE") ||
		s.stringAt(0, 9, "GONCALVES", "PROVENCAL") {
		s.add("S")
		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) coToS() bool {
	if (s.stringAt(s.current, 4, "COEL") &&
		(s.isVowelAt(s.current+4) || ((s.current + 3) == s.last))) ||
		s.stringAt(s.current, 5, "COENA", "COENO") ||
		s.stringAt(0, 8, "FRANCOIS", "MELANCON") ||
		s.stringAt(0, 6, "GARCON") {
		s.add("S")
		s.advance(3, 1)
		return true
	}

	return false
}

func (s *state) ch() bool {
	if s.stringAt(s.current, 2, "CH") {
		if s.firstOf(chRules) {
			return true
		}

		if s.current > 0 {
			if s.stringAt(0, 2, "MC") && (s.current == 1) {
				s.add("K")
			} else {
				s.addAlt("X", "K")
			}
		} else {
			s.add("X")
		}

		s.current += 2
		return true
	}

	return false
}

func (s *state) chae() bool {
	if (s.current > 0) && s.stringAt(s.current+2, 2, "AE") {
		if s.stringAt(0, 7, "RACHAEL") {
			s.add("X")
		} else if !s.stringAt(s.current-1, 1, "C", "K", "G", "Q") {
			s.add("K")
		}

		s.advance(4, 2)
		return true
	}

	return false
}

func (s *state) chToH() bool {
	if ((s.current == 0) &&
		(s.stringAt(s.current+2, 3, "AIM", "ETH", "ELM") ||
			s.stringAt(s.current+2, 4, "ASID", "AZAN") ||
			s.stringAt(s.current+2, 5, "UPPAH", "UTZPA", "ALLAH", "ALUTZ", "AMETZ") ||
			s.stringAt(s.current+2, 6, "ESHVAN", "ADARIM", "ANUKAH") ||
			s.stringAt(s.current+2, 7, "ALLLOTH", "ANNUKAH", "AROSETH"))) ||
		s.stringAt(s.current-3, 7, "CLACHAN") {
		s.add("H")
		s.advance(3, 2)
		return true
	}

	return false
}

func (s *state) silentCh() bool {
	if s.stringAt(s.current-2, 7, "FUCHSIA") ||
		s.stringAt(s.current-2, 5, "YACHT") ||
		s.stringAt(0, 8, "STRACHAN") ||
		s.stringAt(0, 8, "CRICHTON") ||
		(s.stringAt(s.current-3, 6, "DRACHM")) && !s.stringAt(s.current-3, 7, "DRACHMA") {
		s.current += 2
		return true
	}

	return false
}

func (s *state) chToX() bool {
	if (s.stringAt(s.current-2, 4, "OACH", "EACH", "EECH", "OUCH", "OOCH", "MUCH", "SUCH") &&
		!s.stringAt(s.current-3, 5, "JOACH")) ||
		(((s.current + 2) == s.last) && s.stringAt(s.current-1, 4, "ACHA", "ACHO")) ||
		(s.stringAt(s.current, 4, "CHOT", "CHOD", "CHAT") && ((s.current + 3) == s.last)) ||
		((s.stringAt(s.current-1, 4, "OCHE") && ((s.current + 2) == s.last)) &&
			!s.stringAt(s.current-2, 5, "DOCHE")) ||
		s.stringAt(s.current-4, 6, "ATTACH", "DETACH", "KOVACH") ||
		s.stringAt(s.current-5, 7, "SPINACH") ||
		s.stringAt(0, 6, "MACHAU") ||
		s.stringAt(s.current-4, 8, "PARACHUT") ||
		s.stringAt(s.current-5, 8, "MASSACHU") ||
		(s.stringAt(s.current-3, 5, "THACH") && !s.stringAt(s.current-1, 4, "ACHE")) ||
		s.stringAt(s.current-2, 6, "VACHON") {
		s.add("X")
		s.current += 2
		return true
	}

	return false
}

func (s *state) englishChToK() bool {
	if ((s.current == 1) && rootOrInflections(s.word, "ACHE")) ||
		(((s.current > 3) && rootOrInflections(string(s.runes[s.current-1:]), "ACHE")) &&
			(s.stringAt(0, 3, "EAR") ||
				s.stringAt(0, 4, "HEAD", "BACK") ||
				s.stringAt(0, 5, "HEART", "BELLY", "TOOTH"))) ||
		s.stringAt(s.current-1, 4, "ECHO") ||
		s.stringAt(s.current-2, 7, "MICHEAL") ||
		s.stringAt(s.current-4, 7, "JERICHO") ||
		s.stringAt(s.current-5, 7, "LEPRECH") {
		s.addAlt("K", "X")
		s.current += 2
		return true
	}

	return false
}

func (s *state) germanicChToK() bool {
	if ((s.current > 1) &&
		!s.isVowelAt(s.current-2) &&
		s.stringAt(s.current-1, 3, "ACH") &&
		!s.stringAt(s.current-2, 7, "MACHADO", "MACHUCA", "LACHANC", "LACHAPE", "KACHATU") &&
		!s.stringAt(s.current-3, 7, "KHACHAT") &&
		((s.charAt(s.current+2) != 'I') &&
			((s.charAt(s.current+2) != 'E') ||
				s.stringAt(s.current-2, 6, "BACHER", "MACHER", "MACHEN", "LACHER"))) ||
		(s.stringAt(s.current+2, 1, "T", "S") &&
			!(s.stringAt(0, 11, "WHICHSOEVER") || s.stringAt(0, 9, "LUNCHTIME"))) ||
		s.stringAt(0, 4, "SCHR") ||
		((s.current > 2) && s.stringAt(s.current-2, 5, "MACHE")) ||
		((s.current == 2) && s.stringAt(s.current-2, 4, "ZACH")) ||
		s.stringAt(s.current-4, 6, "SCHACH") ||
		s.stringAt(s.current-1, 5, "ACHEN") ||
		s.stringAt(s.current-3, 5, "SPICH", "ZURCH", "BUECH") ||
		(s.stringAt(s.current-3, 5, "KIRCH", "JOACH", "BLECH", "MALCH") &&
			!(s.stringAt(s.current-3, 8, "KIRCHNER") || ((s.current + 1) == s.last))) ||
		(((s.current + 1) == s.last) && s.stringAt(s.current-2, 4, "NICH", "LICH", "BACH")) ||
		(((s.current + 1) == s.last) &&
			s.stringAt(s.current-3, 5, "URICH", "BRICH", "ERICH", "DRICH", "NRICH") &&
			!s.stringAt(s.current-5, 7, "ALDRICH") &&
			!s.stringAt(s.current-6, 8, "GOODRICH") &&
			!s.stringAt(s.current-7, 9, "GINGERICH"))) ||
		(((s.current + 1) == s.last) &&
			s.stringAt(s.current-4, 6, "ULRICH", "LFRICH", "LLRICH", "EMRICH", "ZURICH",
				"EYRICH")) ||
		((s.stringAt(s.current-1, 1, "A", "O", "U", "E") || (s.current == 0)) &&
			s.stringAt(s.current+2, 1, "L", "R", "N", "M", "B", "H", "F", "V", "W", " ")) {
		if s.stringAt(s.current+2, 1, "R", "L") || s.slavoGermanic() {
			s.add("K")
		} else {
			s.addAlt("K", "X")
		}

		s.current += 2
		return true
	}

	return false
}

func (s *state) arch() bool {
	if s.stringAt(s.current-2, 4, "ARCH") {
		if ((s.isVowelAt(s.current+2) &&
			s.stringAt(s.current-2, 5, "ARCHA", "ARCHI", "ARCHO", "ARCHU", "ARCHY")) ||
			s.stringAt(s.current-2, 6, "ARCHEA", "ARCHEG", "ARCHEO", "ARCHET", "ARCHEL",
				"ARCHES", "ARCHEP", "ARCHEM", "ARCHEN") ||
			(s.stringAt(s.current-2, 4, "ARCH") && (((s.current + 1) == s.last))) ||
			s.stringAt(0, 7, "MENARCH")) &&
			(!rootOrInflections(s.word, "ARCH") &&
				!s.stringAt(s.current-4, 6, "SEARCH", "POARCH") &&
				!s.stringAt(0, 9, "ARCHENEMY", "ARCHIBALD", "ARCHULETA", "ARCHAMBAU") &&
				!s.stringAt(0, 6, "ARCHER", "ARCHIE") &&
				!((((s.stringAt(s.current-3, 5, "LARCH", "MARCH", "PARCH") ||
					s.stringAt(s.current-4, 6, "STARCH")) &&
					!(s.stringAt(0, 6, "EPARCH") ||
						s.stringAt(0, 7, "NOMARCH") ||
						s.stringAt(0, 8, "EXILARCH", "HIPPARCH", "MARCHESE") ||
						s.stringAt(0, 9, "ARISTARCH") ||
						s.stringAt(0, 9, "MARCHETTI"))) ||
					rootOrInflections(s.word, "STARCH")) &&
					(!s.stringAt(s.current-2, 5, "ARCHU", "ARCHY") ||
						s.stringAt(0, 7, "STARCHY")))) {
			s.addAlt("K", "X")
		} else {
			s.add("X")
		}

		s.current += 2
		return true
	}

	return false
}

func (s *state) greekChInitial() bool {
	if (s.stringAt(s.current, 6, "CHAMOM", "CHARAC", "CHARIS", "CHARTO", "CHARTU", "CHARYB",
		"CHRIST", "CHEMIC", "CHILIA") ||
		(s.stringAt(s.current, 5, "CHEMI", "CHEMO", "CHEMU", "CHEMY", "CHOND", "CHONA", "CHONI",
			"CHOIR", "CHASM", "CHARO", "CHROM", "CHROI", "CHAMA", "CHALC", "CHALD", "CHAET",
			"CHIRO", "CHILO", "CHELA", "CHOUS", "CHEIL", "CHEIR", "CHEIM", "CHITI", "CHEOP") &&
			!(s.stringAt(s.current, 6, "CHEMIN") || s.stringAt(s.current-2, 8, "ANCHONDO"))) ||
		(s.stringAt(s.current, 5, "CHISM", "CHELI") &&
			!(s.stringAt(0, 8, "MACHISMO") ||
				s.stringAt(0, 10, "REVANCHISM") ||
				s.stringAt(0, 9, "RICHELIEU") ||
				(s.stringAt(0, 5, "CHISM") && (s.length == 5)) ||
				s.stringAt(0, 6, "MICHEL"))) ||
		(s.stringAt(s.current, 4, "CHOR", "CHOL", "CHYM", "CHYL", "CHLO", "CHOS", "CHUS", "CHOE") &&
			!s.stringAt(0, 6, "CHOLLO", "CHOLLA", "CHORIZ")) ||
		(s.stringAt(s.current, 4, "CHAO") && ((s.current + 3) != s.last)) ||
		(s.stringAt(s.current, 4, "CHIA") &&
			!(s.stringAt(0, 10, "APPALACHIA") || s.stringAt(0, 7, "CHIAPAS"))) ||
		s.stringAt(s.current, 7, "CHIMERA", "CHIMAER", "CHIMERI") ||
		((s.current == 0) && s.stringAt(s.current, 5, "CHAME", "CHELO", "CHITO")) ||
		((((s.current + 4) == s.last) || ((s.current + 5) == s.last)) &&
			s.stringAt(s.current-1, 6, "OCHETE"))) &&
		!((s.stringAt(0, 5, "CHORE", "CHOLO", "CHOLA") && (s.length == 5)) ||
			s.stringAt(s.current, 5, "CHORT", "CHOSE") ||
			s.stringAt(s.current-3, 7, "CROCHET") ||
			s.stringAt(0, 7, "CHEMISE", "CHARISE", "CHARISS", "CHAROLE")) {
		if s.stringAt(s.current+2, 1, "R", "L") {
			s.add("K")
		} else {
			s.addAlt("K", "X")
		}

		s.current += 2
		return true
	}

	return false
}

func (s *state) greekChNonInitial() bool {
	if s.stringAt(s.current-2, 6, "ORCHID", "NICHOL", "MECHAN", "LICHEN", "MACHIC", "PACHEL",
		"RACHIF", "RACHID", "RACHIS", "RACHIC", "MICHAL") ||
		s.stringAt(s.current-3, 5, "MELCH", "GLOCH", "TRACH", "TROCH", "BRACH", "SYNCH",
			"PSYCH", "STICH", "PULCH", "EPOCH") ||
		(s.stringAt(s.current-3, 5, "TRICH") && !s.stringAt(s.current-5, 7, "OSTRICH")) ||
		(s.stringAt(s.current-2, 4, "TYCH", "TOCH", "BUCH", "MOCH", "CICH", "DICH", "NUCH",
			"EICH", "LOCH", "DOCH", "ZECH", "WYCH") &&
			!(s.stringAt(s.current-4, 9, "INDOCHINA") ||
				s.stringAt(s.current-2, 6, "BUCHON"))) ||
		s.stringAt(s.current-2, 5, "LYCHN", "TACHO", "ORCHO", "ORCHI", "LICHO") ||
		(s.stringAt(s.current-1, 5, "OCHER", "ECHIN", "ECHID") &&
			((s.current == 1) || (s.current == 2))) ||
		s.stringAt(s.current-4, 6, "BRONCH", "STOICH", "STRYCH", "TELECH", "PLANCH", "CATECH",
			"MANICH", "MALACH", "BIANCH", "DIDACH") ||
		(s.stringAt(s.current-1, 4, "ICHA", "ICHN") && (s.current == 1)) ||
		s.stringAt(s.current-2, 8, "ORCHESTR") ||
		s.stringAt(s.current-4, 8, "BRANCHIO", "BRANCHIF") ||
		(s.stringAt(s.current-1, 5, "ACHAB", "ACHAD", "ACHAN", "ACHAZ") &&
			!s.stringAt(s.current-2, 7, "MACHADO", "LACHANC")) ||
		s.stringAt(s.current-1, 6, "ACHISH", "ACHILL", "ACHAIA", "ACHENE") ||
		s.stringAt(s.current-1, 7, "ACHAIAN", "ACHATES", "ACHIRAL", "ACHERON") ||
		s.stringAt(s.current-1, 8, "ACHILLEA", "ACHIMAAS", "ACHILARY", "ACHELOUS", "ACHENIAL",
			"ACHERNAR") ||
		s.stringAt(s.current-1, 9, "ACHALASIA", "ACHILLEAN", "ACHIMENES") ||
		s.stringAt(s.current-1, 10, "ACHIMELECH", "ACHITOPHEL") ||
		(((s.current - 2) == 0) &&
			(s.stringAt(s.current-2, 6, "INCHOA") || s.stringAt(0, 4, "ISCH"))) ||
		(((s.current + 1) == s.last) &&
			s.stringAt(s.current-1, 1, "A", "O", "U", "E") &&
			!(s.stringAt(0, 7, "DEBAUCH") ||
				s.stringAt(s.current-2, 4, "MUCH", "SUCH", "KOCH") ||
				s.stringAt(s.current-5, 7, "OODRICH", "ALDRICH"))) {
		s.addAlt("K", "X")
		s.current += 2
		return true
	}

	return false
}

func (s *state) ccia() bool {
	if s.stringAt(s.current+1, 3, "CIA") {
		s.addAlt("X", "S")
		s.current += 2
		return true
	}

	return false
}

func (s *state) cc() bool {
	if s.stringAt(s.current, 2, "CC") && !((s.current == 1) && (s.charAt(0) == 'M')) {
		if s.stringAt(s.current-3, 7, "FLACCID") {
			s.add("S")
			s.advance(3, 2)
			return true
		}

		if (((s.current + 2) == s.last) && s.stringAt(s.current+2, 1, "I")) ||
			s.stringAt(s.current+2, 2, "IO") ||
			(((s.current + 4) == s.last) && s.stringAt(s.current+2, 3, "INO", "INI")) {
			s.add("X")
			s.advance(3, 2)
			return true
		}

		if s.stringAt(s.current+2, 1, "I", "E", "Y") &&
			!((s.charAt(s.current+2) == 'H') || s.stringAt(s.current-2, 6, "SOCCER")) {
			s.add("KS")
			s.advance(3, 2)
			return true
		}

		s.add("K")
		s.current += 2
		return true
	}

	return false
}

func (s *state) ckCgCq() bool {
	if s.stringAt(s.current, 2, "CK", "CG", "CQ") {
		if s.stringAt(s.current, 3, "CKI", "CKY") && ((s.current + 2) == s.last) && (s.length > 6) {
			s.addAlt("K", "SK")
		} else {
			s.add("K")
		}

		s.current += 2
		if s.stringAt(s.current, 1, "K", "G", "Q") {
			s.current++
		}

		return true
	}

	return false
}

func (s *state) cFrontVowel() bool {
	if s.stringAt(s.current, 2, "CI", "CE", "CY") {
		if s.britishSilentCe() || s.ce() || s.ci() || s.latinateSuffixes() {
			s.advance(2, 1)
			return true
		}

		s.add("S")
		s.advance(2, 1)
		return true
	}

	return false
}

func (s *state) britishSilentCe() bool {
	if (s.stringAt(s.current+1, 5, "ESTER") && ((s.current + 5) == s.last)) ||
		s.stringAt(s.current+1, 10, "ESTERSHIRE") {
		return true
	}

	return false
}

func (s *state) ce() bool {
	if (s.stringAt(s.current+1, 3, "EAN") && s.isVowelAt(s.current-1)) ||
		(s.stringAt(s.current-1, 4, "ACEA") &&
			((s.current + 2) == s.last) &&
			!s.stringAt(0, 7, "PANACEA")) ||
		s.stringAt(s.current+1, 4, "ELLI", "ERTO", "EORL") ||
		(s.stringAt(s.current-3, 5, "CROCE") && ((s.current + 1) == s.last)) ||
		s.stringAt(s.current-3, 5, "DOLCE") ||
		(s.stringAt(s.current+1, 4, "ELLO") && ((s.current + 4) == s.last)) {
		s.addAlt("X", "S")
		return true
	}

	return false
}

func (s *state) ci() bool {
	if ((s.stringAt(s.current+1, 3, "INI") && !s.stringAt(0, 7, "MANCINI")) &&
		((s.current + 3) == s.last)) ||
		(s.stringAt(s.current-1, 3, "ICI") && ((s.current + 1) == s.last)) ||
		s.stringAt(s.current-1, 5, "RCIAL", "NCIAL", "RCIAN", "UCIUS") ||
		s.stringAt(s.current-3, 6, "MARCIA") ||
		s.stringAt(s.current-2, 7, "ANCIENT") {
		s.addAlt("X", "S")
		return true
	}

	if ((s.stringAt(s.current, 3, "CIO", "CIE", "CIA") && s.isVowelAt(s.current-1)) ||
		s.stringAt(s.current+1, 3, "IAO")) &&
		!s.stringAt(s.current-4, 8, "COERCION") {
		if (s.stringAt(s.current, 4, "CIAN", "CIAL", "CIAO", "CIES", "CIOL", "CION") ||
			s.stringAt(s.current-3, 7, "GLACIER") ||
			s.stringAt(s.current, 5, "CIENT", "CIENC", "CIOUS", "CIATE", "CIATI", "CIATO",
				"CIABL", "CIARY") ||
			(((s.current + 2) == s.last) && s.stringAt(s.current, 3, "CIA", "CIO")) ||
			(((s.current + 3) == s.last) && s.stringAt(s.current, 3, "CIAS", "CIOS"))) &&
			!(s.stringAt(s.current-4, 11, "ASSOCIATION") ||
				s.stringAt(0, 4, "OCIE") ||
				s.stringAt(s.current-2, 5, "LUCIO") ||
				s.stringAt(s.current-2, 6, "MACIAS") ||
				s.stringAt(s.current-3, 6, "GRACIE", "GRACIA") ||
				s.stringAt(s.current-2, 7, "LUCIANO") ||
				s.stringAt(s.current-3, 8, "MARCIANO") ||
				s.stringAt(s.current-4, 7, "PALACIO") ||
				s.stringAt(s.current-4, 9, "FELICIANO") ||
				s.stringAt(s.current-5, 8, "MAURICIO") ||
				s.stringAt(s.current-7, 11, "ENCARNACION") ||
				s.stringAt(s.current-4, 8, "POLICIES") ||
				s.stringAt(s.current-2, 8, "HACIENDA") ||
				s.stringAt(s.current-6, 9, "ANDALUCIA") ||
				s.stringAt(s.current-2, 5, "SOCIO", "SOCIE")) {
			s.addAlt("X", "S")
		} else {
			s.addAlt("S", "X")
		}

		return true
	}

	if s.stringAt(s.current-4, 8, "COERCION") {
		s.add("J")
		return true
	}

	return false
}

func (s *state) latinateSuffixes() bool {
	if s.stringAt(s.current+1, 4, "EOUS", "IOUS") {
		s.addAlt("X", "S")
		return true
	}

	return false
}

func (s *state) silentC() bool {
	if s.stringAt(s.current+1, 1, "T", "S") {
		if s.stringAt(0, 11, "CONNECTICUT") || s.stringAt(0, 6, "INDICT", "TUCSON") {
			s.current++
			return true
		}
	}

	return false
}

func (s *state) cz() bool {
	if s.stringAt(s.current+1, 1, "Z") && !s.stringAt(s.current-1, 6, "ECZEMA") {
		if s.stringAt(s.current, 4, "CZAR") {
			s.add("S")
		} else {
			s.add("X")
		}

		s.current += 2
		return true
	}

	return false
}

func (s *state) cs() bool {
	if s.stringAt(0, 6, "KOVACS") {
		s.addAlt("KS", "X")
		s.current += 2
		return true
	}

	if s.stringAt(s.current-1, 3, "ACS") &&
		((s.current + 1) == s.last) &&
		!s.stringAt(s.current-4, 6, "ISAACS") {
		s.add("X")
		s.current += 2
		return true
	}

	return false
}
