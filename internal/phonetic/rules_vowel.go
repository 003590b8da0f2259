package phonetic

// encodeVowels maps an initial vowel to 'A'. Later vowels only contribute
// when vowel encoding is on.
func (s *state) encodeVowels() {
	if s.current == 0 {
		s.add("A")
	} else if s.withVowels {
		if s.charAt(s.current) != 'E' {
			if s.skipSilentUe() {
				return
			}

			if s.oSilent() {
				s.current++
				return
			}

			s.add("A")
		} else {
			s.ePronounced()
		}
	}

	if !(!s.isVowelAt(s.current-2) && s.stringAt(s.current-1, 4, "LEWA", "LEWO", "LEWI")) {
		s.current = s.skipVowels(s.current)
	} else {
		s.current++
	}
}

func (s *state) ePronounced() {
	if (s.stringAt(0, 4, "LAME", "SAKE", "PATE") && (s.length == 4)) ||
		(s.stringAt(0, 5, "AGAPE") && (s.length == 5)) ||
		((s.current == 5) && s.stringAt(0, 6, "RESUME")) {
		s.addAlt("", "A")
		return
	}

	if s.stringAt(0, 4, "INGE") && (s.length == 4) {
		s.addAlt("A", "")
		return
	}

	if (s.current == 5) && s.stringAt(0, 7, "BLESSED", "LEARNED") {
		s.addExactAlt("D", "AD", "T", "AT")
		s.current += 2
		return
	}

	if (!s.eSilent() && !s.flagAlInversion && !s.silentInternalE()) || s.ePronouncedExceptions() {
		s.add("A")
	}

	s.flagAlInversion = false
}

func (s *state) oSilent() bool {
	if (s.charAt(s.current) == 'O') && s.stringAt(s.current-2, 4, "IRON") {
		if (s.stringAt(0, 4, "IRON") ||
			(s.stringAt(s.current-2, 4, "IRON") && (s.last == (s.current + 1)))) &&
			!s.stringAt(s.current-2, 6, "IRONIC") {
			return true
		}
	}

	return false
}

func (s *state) eSilent() bool {
	if s.ePronouncedAtEnd() {
		return false
	}

	if (s.current == s.last) ||
		(s.stringAt(s.last, 1, "S", "D") &&
			(s.current > 1) &&
			((s.current + 1) == s.last) &&
			!(s.stringAt(s.current-1, 3, "TED", "SES", "CES") ||
				s.stringAt(0, 9, "ANTIPODES", "ANOPHELES") ||
				s.stringAt(0, 8, "MOHAMMED", "MUHAMMED", "MOUHAMED") ||
				s.stringAt(0, 7, "MOHAMED") ||
				s.stringAt(0, 6, "NORRED", "MEDVED", "MERCED", "ALLRED", "KHALED", "RASHED",
					"MASJED") ||
				s.stringAt(0, 5, "JARED", "AHMED", "HAMED", "JAVED") ||
				s.stringAt(0, 4, "ABED", "IMED"))) ||
		(s.stringAt(s.current+1, 4, "NESS", "LESS") && ((s.current + 4) == s.last)) ||
		(s.stringAt(s.current+1, 2, "LY") &&
			((s.current + 2) == s.last) &&
			!s.stringAt(0, 6, "CICELY")) {
		return true
	}

	return false
}

func (s *state) ePronouncedAtEnd() bool {
	if (s.current == s.last) &&
		(s.stringAt(s.current-6, 7, "STROPHE") ||
			(s.length == 2) ||
			((s.length == 3) && !s.isVowelAt(0)) ||
			(s.stringAt(s.last-2, 3, "BKE", "DKE", "FKE", "KKE", "LKE", "NKE", "MKE", "PKE",
				"TKE", "VKE", "ZKE") &&
				!s.stringAt(0, 5, "FINKE", "FUNKE") &&
				!s.stringAt(0, 6, "FRANKE")) ||
			s.stringAt(s.last-4, 5, "SCHKE") ||
			(s.stringAt(0, 4, "ACME", "NIKE", "CAFE", "RENE", "LUPE", "JOSE", "ESME") &&
				(s.length == 4)) ||
			(s.stringAt(0, 5, "LETHE", "CADRE", "TILDE", "SIGNE", "POSSE", "LATTE", "ANIME",
				"DOLCE", "CROCE", "ADOBE", "OUTRE", "JESSE", "JAIME", "JAFFE", "BENGE", "RUNGE",
				"CHILE", "DESME", "CONDE", "URIBE", "LIBRE", "ANDRE") &&
				(s.length == 5)) ||
			(s.stringAt(0, 6, "HECATE", "PSYCHE", "DAPHNE", "PENSKE", "CLICHE", "RECIPE", "TAMALE",
				"SESAME", "SIMILE", "FINALE", "KARATE", "RENATE", "SHANTE", "OBERLE", "COYOTE",
				"KRESGE", "STONGE", "STANGE", "SWAYZE", "FUENTE", "SALOME", "URRIBE") &&
				(s.length == 6)) ||
			(s.stringAt(0, 7, "ECHIDNE", "ARIADNE", "MEINEKE", "PORSCHE", "ANEMONE", "EPITOME",
				"SYNCOPE", "SOUFFLE", "ATTACHE", "MACHETE", "KARAOKE", "BUKKAKE", "VICENTE",
				"ELLERBE", "VERSACE") &&
				(s.length == 7)) ||
			(s.stringAt(0, 8, "PENELOPE", "CALLIOPE", "CHIPOTLE", "ANTIGONE", "KAMIKAZE",
				"EURIDICE", "YOSEMITE", "FERRANTE") &&
				(s.length == 8)) ||
			(s.stringAt(0, 9, "HYPERBOLE", "GUACAMOLE", "XANTHIPPE") && (s.length == 9)) ||
			(s.stringAt(0, 10, "SYNECDOCHE") && (s.length == 10))) {
		return true
	}

	return false
}

func (s *state) silentInternalE() bool {
	if (s.stringAt(0, 3, "OLE") && s.eSilentSuffix(3) && !s.ePronouncingSuffix(3)) ||
		(s.stringAt(0, 4, "BARE", "FIRE", "FORE", "GATE", "HAGE", "HAVE", "HAZE", "HOLE", "CAPE",
			"HUSE", "LACE", "LINE", "LIVE", "LOVE", "MORE", "MOSE", "MORE", "NICE", "RAKE", "ROBE",
			"ROSE", "SISE", "SIZE", "WARE", "WAKE", "WISE", "WINE") &&
			s.eSilentSuffix(4) &&
			!s.ePronouncingSuffix(4)) ||
		(s.stringAt(0, 5, "BLAKE", "BRAKE", "BRINE", "CARLE", "CLEVE", "DUNNE", "HEDGE", "HOUSE",
			"JEFFE", "LUNCE", "STOKE", "STONE", "THORE", "WEDGE", "WHITE") &&
			s.eSilentSuffix(5) &&
			!s.ePronouncingSuffix(5)) ||
		(s.stringAt(0, 6, "BRIDGE", "CHEESE") && s.eSilentSuffix(6) && !s.ePronouncingSuffix(6)) ||
		s.stringAt(s.current-5, 7, "CHARLES") {
		return true
	}

	return false
}

func (s *state) eSilentSuffix(at int) bool {
	if (s.current == (at - 1)) &&
		(s.length > (at + 1)) &&
		(s.isVowelAt(at+1) || (s.stringAt(at, 2, "ST", "SL") && (s.length > (at + 2)))) {
		return true
	}

	return false
}

func (s *state) ePronouncingSuffix(at int) bool {
	if (s.length == (at + 4)) && s.stringAt(at, 4, "WOOD") {
		return true
	}

	if (s.length == (at + 5)) && s.stringAt(at, 5, "WATER", "WORTH") {
		return true
	}

	if (s.length == (at + 3)) && s.stringAt(at, 3, "TTE", "LIA", "NOW", "ROS", "RAS") {
		return true
	}

	if (s.length == (at + 2)) &&
		s.stringAt(at, 2, "TA", "TT", "NA", "NO", "NE", "RS", "RE", "LA", "AU", "RO", "RA") {
		return true
	}

	if (s.length == (at + 1)) && s.stringAt(at, 1, "T", "R") {
		return true
	}

	return false
}

func (s *state) ePronouncedExceptions() bool {
	if (((s.current + 1) == s.last) &&
		(s.stringAt(s.current-3, 5, "OCLES", "ACLES", "AKLES") ||
			s.stringAt(0, 4, "INES") ||
			s.stringAt(0, 5, "LOPES", "ESTES", "GOMES", "NUNES", "ALVES", "ICKES", "INNES",
				"PERES", "WAGES", "NEVES", "BENES", "DONES") ||
			s.stringAt(0, 6, "CORTES", "CHAVES", "VALDES", "ROBLES", "TORRES", "FLORES",
				"BORGES", "NIEVES", "MONTES", "SOARES", "VALLES", "GEDDES", "ANDRES", "VIAJES",
				"CALLES", "FONTES", "HERMES", "ACEVES", "BATRES", "MATHES") ||
			s.stringAt(0, 7, "DELORES", "MORALES", "DOLORES", "ANGELES", "ROSALES", "MIRELES",
				"LINARES", "PERALES", "PAREDES", "BRIONES", "SANCHES", "CAZARES", "REVELES",
				"ESTEVES", "ALVARES", "MATTHES", "SOLARES", "CASARES", "CACERES", "STURGES",
				"RAMIRES", "FUNCHES", "BENITES", "FUENTES", "PUENTES", "TABARES", "HENTGES",
				"VALORES") ||
			s.stringAt(0, 8, "GONZALES", "MERCEDES", "FAGUNDES", "JOHANNES", "GONSALES",
				"BERMUDES", "CESPEDES", "BETANCES", "TERRONES", "DIOGENES", "CORRALES",
				"CABRALES", "MARTINES", "GRAJALES") ||
			s.stringAt(0, 9, "CERVANTES", "FERNANDES", "GONCALVES", "BENEVIDES", "CIFUENTES",
				"SIFUENTES", "SERVANTES", "HERNANDES", "BENAVIDES") ||
			s.stringAt(0, 10, "ARCHIMEDES", "CARRIZALES", "MAGALLANES"))) ||
		s.stringAt(s.current-2, 4, "FRED", "DGES", "DRED", "GNES") ||
		s.stringAt(s.current-5, 7, "PROBLEM", "RESPLEN") ||
		s.stringAt(s.current-4, 6, "REPLEN") ||
		s.stringAt(s.current-3, 4, "SPLE") {
		return true
	}

	return false
}

func (s *state) skipSilentUe() bool {
	if (s.stringAt(s.current-1, 3, "QUE", "GUE") &&
		!s.stringAt(0, 8, "BARBEQUE", "PALENQUE", "APPLIQUE") &&
		!s.stringAt(0, 6, "RISQUE") &&
		!s.stringAt(s.current-3, 5, "ARGUE", "SEGUE") &&
		!s.stringAt(0, 7, "PIROGUE", "ENRIQUE") &&
		!s.stringAt(0, 10, "COMMUNIQUE")) &&
		(s.current > 1) &&
		(((s.current + 1) == s.last) || s.stringAt(0, 7, "JACQUES")) {
		s.current = s.skipVowels(s.current)
		return true
	}

	return false
}
