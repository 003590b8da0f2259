package phonetic

import "strings"

var wRules = []rule{
	(*state).silentWAtBeginning,
	(*state).witzWicz,
	(*state).wr,
	(*state).initialWVowel,
	(*state).wh,
	(*state).easternEuropeanW,
}

var xRules = []rule{
	(*state).initialX,
	(*state).greekX,
	(*state).xSpecialCases,
	(*state).xToH,
	(*state).xVowel,
	(*state).frenchXFinal,
}

var zRules = []rule{
	(*state).zz,
	(*state).zuZierZs,
	(*state).frenchEz,
	(*state).germanZ,
}

// encodeV encodes 'V' at the cursor.
func (s *state) encodeV() {
	if s.charAt(s.current+1) == 'V' {
		s.current += 2
	} else {
		s.current++
	}

	s.addExact("V", "F")
}

// encodeW encodes 'W' at the cursor.
func (s *state) encodeW() {
	if s.firstOf(wRules) {
		return
	}

	if s.withVowels && s.stringAt(s.current, 2, "WE") && ((s.current + 1) == s.last) {
		s.add("A")
	}

	s.current++
}

func (s *state) silentWAtBeginning() bool {
	if (s.current == 0) && s.stringAt(s.current, 2, "WR") {
		s.current++
		return true
	}

	return false
}

func (s *state) witzWicz() bool {
	if ((s.current + 3) == s.last) && s.stringAt(s.current, 4, "WICZ", "WITZ") {
		if s.withVowels {
			if (len(s.primary) > 0) && s.primary[len(s.primary)-1] == 'A' {
				s.addAlt("TS", "FAX")
			} else {
				s.addAlt("ATS", "FAX")
			}
		} else {
			s.addAlt("TS", "FX")
		}

		s.current += 4
		return true
	}

	return false
}

func (s *state) wr() bool {
	if s.stringAt(s.current, 2, "WR") {
		s.add("R")
		s.current += 2
		return true
	}

	return false
}

func (s *state) initialWVowel() bool {
	if (s.current == 0) && s.isVowelAt(s.current+1) {
		if s.germanicOrSlavicNameBeginningWithW() {
			if s.withVowels {
				s.addExactAlt("A", "VA", "A", "FA")
			} else {
				s.addExactAlt("A", "V", "A", "F")
			}
		} else {
			s.add("A")
		}

		s.current++
		s.current = s.skipVowels(s.current)
		return true
	}

	return false
}

func (s *state) wh() bool {
	if s.stringAt(s.current, 2, "WH") {
		if (s.charAt(s.current+2) == 'O') &&
			!(s.stringAt(s.current+2, 4, "OOSH") ||
				s.stringAt(s.current+2, 3, "OOP", "OMP", "ORL", "ORT") ||
				s.stringAt(s.current+2, 2, "OA", "OP")) {
			s.add("H")
			s.advance(3, 2)
			return true
		}

		if s.stringAt(s.current+2, 3, "IDE", "ARD", "EAD", "AWK", "ERD", "OOK", "AND", "OLE",
			"OOD") ||
			s.stringAt(s.current+2, 4, "EART", "OUSE", "OUND") ||
			s.stringAt(s.current+2, 5, "AMMER") {
			s.add("H")
			s.current += 2
			return true
		}

		if s.current == 0 {
			s.add("A")
			s.current += 2
			s.current = s.skipVowels(s.current)
			return true
		}

		s.current += 2
		return true
	}

	return false
}

func (s *state) easternEuropeanW() bool {
	if ((s.current == s.last) && s.isVowelAt(s.current-1)) ||
		s.stringAt(s.current-1, 5, "EWSKI", "EWSKY", "OWSKI", "OWSKY") ||
		(s.stringAt(s.current, 5, "WICKI", "WACKI") && ((s.current + 4) == s.last)) ||
		s.stringAt(s.current, 4, "WIAK") && ((s.current + 3) == s.last) ||
		s.stringAt(0, 3, "SCH") {
		s.addExactAlt("", "V", "", "F")
		s.current++
		return true
	}

	return false
}

// encodeX encodes 'X' at the cursor.
func (s *state) encodeX() {
	if s.firstOf(xRules) {
		return
	}

	if s.stringAt(s.current+1, 1, "X", "Z", "S") || s.stringAt(s.current+1, 2, "CI", "CE") {
		s.current += 2
	} else {
		s.current++
	}
}

func (s *state) initialX() bool {
	if s.stringAt(0, 3, "XIA", "XIO", "XIE") || s.stringAt(0, 2, "XU") {
		s.add("X")
		s.current++
		return true
	}

	if s.current == 0 {
		s.add("S")
		s.current++
		return true
	}

	return false
}

func (s *state) greekX() bool {
	if s.stringAt(s.current+1, 3, "YLO", "YLE", "ENO") ||
		s.stringAt(s.current+1, 4, "ANTH") {
		s.add("S")
		s.current++
		return true
	}

	return false
}

func (s *state) xSpecialCases() bool {
	if s.stringAt(s.current-2, 5, "LUXUR") {
		s.addExact("GJ", "KJ")
		s.current++
		return true
	}

	if s.stringAt(0, 7, "TEXEIRA") || s.stringAt(0, 8, "TEIXEIRA") {
		s.add("X")
		s.current++
		return true
	}

	return false
}

func (s *state) xToH() bool {
	if s.stringAt(s.current-2, 6, "OAXACA") || s.stringAt(s.current-3, 7, "QUIXOTE") {
		s.add("H")
		s.current++
		return true
	}

	return false
}

func (s *state) xVowel() bool {
	if s.stringAt(s.current+1, 3, "UAL", "ION", "IOU") {
		s.addAlt("KX", "KS")
		s.advance(3, 1)
		return true
	}

	return false
}

func (s *state) frenchXFinal() bool {
	if !((s.current == s.last) &&
		(s.stringAt(s.current-3, 3, "IAU", "EAU", "IEU") ||
			s.stringAt(s.current-2, 2, "AI", "AU", "OU", "OI", "EU"))) {
		s.add("KS")
	}

	return false
}

// encodeZ encodes 'Z' at the cursor.
func (s *state) encodeZ() {
	if s.firstOf(zRules) {
		return
	}

	if s.zh() {
		return
	}

	s.add("S")
	if s.charAt(s.current+1) == 'Z' {
		s.current += 2
	} else {
		s.current++
	}
}

func (s *state) zz() bool {
	if (s.charAt(s.current+1) == 'Z') &&
		((s.stringAt(s.current+2, 1, "I", "O", "A") && ((s.current + 2) == s.last)) ||
			s.stringAt(s.current-2, 9, "MOZZARELL", "PIZZICATO", "PUZZONLAN")) {
		s.addAlt("TS", "S")
		s.current += 2
		return true
	}

	return false
}

func (s *state) zuZierZs() bool {
	if ((s.current == 1) && s.stringAt(s.current-1, 4, "AZUR")) ||
		(s.stringAt(s.current, 4, "ZIER") && !s.stringAt(s.current-2, 6, "VIZIER")) ||
		s.stringAt(s.current, 3, "ZSA") {
		s.addAlt("J", "S")
		if s.stringAt(s.current, 3, "ZSA") {
			s.current += 2
		} else {
			s.current++
		}

		return true
	}

	return false
}

func (s *state) frenchEz() bool {
	if ((s.current == 3) && s.stringAt(s.current-3, 4, "CHEZ")) ||
		s.stringAt(s.current-5, 6, "RENDEZ") {
		s.current++
		return true
	}

	return false
}

func (s *state) germanZ() bool {
	if ((s.current == 2) && ((s.current + 1) == s.last) && s.stringAt(s.current-2, 4, "NAZI")) ||
		s.stringAt(s.current-2, 6, "NAZIFY", "MOZART") ||
		s.stringAt(s.current-3, 4, "HOLZ", "HERZ", "MERZ", "FITZ") ||
		(s.stringAt(s.current-3, 4, "GANZ") && !s.isVowelAt(s.current+1)) ||
		s.stringAt(s.current-4, 5, "STOLZ", "PRINZ") ||
		s.stringAt(s.current-4, 7, "VENEZIA") ||
		s.stringAt(s.current-3, 6, "HERZOG") ||
		(strings.Contains(s.word, "SCH") && !(s.stringAt(s.last-2, 3, "IZE", "OZE", "ZEL"))) ||
		((s.current > 0) && s.stringAt(s.current, 4, "ZEIT")) ||
		s.stringAt(s.current-3, 4, "WEIZ") {
		if (s.current > 0) && s.runes[s.current-1] == 'T' {
			s.add("S")
		} else {
			s.add("TS")
		}

		s.current++
		return true
	}

	return false
}

func (s *state) zh() bool {
	if s.charAt(s.current+1) == 'H' {
		s.add("J")
		s.current += 2
		return true
	}

	return false
}

func (s *state) namesBeginningWithSwThatGetAltSv() bool {
	if s.stringAt(0, 7, "SWANSON", "SWENSON", "SWINSON", "SWENSEN", "SWOBODA") ||
		s.stringAt(0, 9, "SWIDERSKI", "SWARTHOUT") ||
		s.stringAt(0, 10, "SWEARENGIN") {
		return true
	}

	return false
}

func (s *state) namesBeginningWithSwThatGetAltXv() bool {
	if s.stringAt(0, 5, "SWART") ||
		s.stringAt(0, 6, "SWARTZ", "SWARTS", "SWIGER") ||
		s.stringAt(0, 7, "SWITZER", "SWANGER", "SWIGERT", "SWIGART", "SWIHART") ||
		s.stringAt(0, 8, "SWEITZER", "SWATZELL", "SWINDLER") ||
		s.stringAt(0, 9, "SWINEHART") ||
		s.stringAt(0, 10, "SWEARINGEN") {
		return true
	}

	return false
}

func (s *state) germanicOrSlavicNameBeginningWithW() bool {
	if s.stringAt(0, 3, "WEE", "WIX", "WAX") ||
		s.stringAt(0, 4, "WOLF", "WEIS", "WAHL", "WALZ", "WEIL", "WERT", "WINE", "WILK", "WALT",
			"WOLL", "WADA", "WULF", "WEHR", "WURM", "WYSE", "WENZ", "WIRT", "WOLK", "WEIN", "WYSS",
			"WASS", "WANN", "WINT", "WINK", "WILE", "WIKE", "WIER", "WELK", "WISE") ||
		s.stringAt(0, 5, "WIRTH", "WIESE", "WITTE", "WENTZ", "WOLFF", "WENDT", "WERTZ", "WILKE",
			"WALTZ", "WEISE", "WOOLF", "WERTH", "WEESE", "WURTH", "WINES", "WARGO", "WIMER",
			"WISER", "WAGER", "WILLE", "WILDS", "WAGAR", "WERTS", "WITTY", "WIENS", "WIEBE",
			"WIRTZ", "WYMER", "WULFF", "WIBLE", "WINER", "WIEST", "WALKO", "WALLA", "WEBRE",
			"WEYER", "WYBLE", "WOMAC", "WILTZ", "WURST", "WOLAK", "WELKE", "WEDEL", "WEIST",
			"WYGAN", "WUEST", "WEISZ", "WALCK", "WEITZ", "WYDRA", "WANDA", "WILMA", "WEBER") ||
		s.stringAt(0, 6, "WETZEL", "WEINER", "WENZEL", "WESTER", "WALLEN", "WENGER", "WALLIN",
			"WEILER", "WIMMER", "WEIMER", "WYRICK", "WEGNER", "WINNER", "WESSEL", "WILKIE",
			"WEIGEL", "WOJCIK", "WENDEL", "WITTER", "WIENER", "WEISER", "WEXLER", "WACKER",
			"WISNER", "WITMER", "WINKLE", "WELTER", "WIDMER", "WITTEN", "WINDLE", "WASHER",
			"WOLTER", "WILKEY", "WIDNER", "WARMAN", "WEYANT", "WEIBEL", "WANNER", "WILKEN",
			"WILTSE", "WARNKE", "WALSER", "WEIKEL", "WESNER", "WITZEL", "WROBEL", "WAGNON",
			"WINANS", "WENNER", "WOLKEN", "WILNER", "WYSONG", "WYCOFF", "WUNDER", "WINKEL",
			"WIDMAN", "WELSCH", "WEHNER", "WEIGLE", "WETTER", "WUNSCH", "WHITTY", "WAXMAN",
			"WILKER", "WILHAM", "WITTIG", "WITMAN", "WESTRA", "WEHRLE", "WASSER", "WILLER",
			"WEGMAN", "WARFEL", "WYNTER", "WERNER", "WAGNER", "WISSER") ||
		s.stringAt(0, 7, "WISEMAN", "WINKLER", "WILHELM", "WELLMAN", "WAMPLER", "WACHTER",
			"WALTHER", "WYCKOFF", "WEIDNER", "WOZNIAK", "WEILAND", "WILFONG", "WIEGAND", "WILCHER",
			"WIELAND", "WILDMAN", "WALDMAN", "WORTMAN", "WYSOCKI", "WEIDMAN", "WITTMAN", "WIDENER",
			"WOLFSON", "WENDELL", "WEITZEL", "WILLMAN", "WALDRUP", "WALTMAN", "WALCZAK", "WEIGAND",
			"WESSELS", "WIDEMAN", "WOLTERS", "WIREMAN", "WILHOIT", "WEGENER", "WOTRING", "WINGERT",
			"WIESNER", "WAYMIRE", "WHETZEL", "WENTZEL", "WINEGAR", "WESTMAN", "WYNKOOP", "WALLICK",
			"WURSTER", "WINBUSH", "WILBERT", "WALLACH", "WYNKOOP", "WALLICK", "WURSTER", "WINBUSH",
			"WILBERT", "WALLACH", "WEISSER", "WEISNER", "WINDERS", "WILLMON", "WILLEMS", "WIERSMA",
			"WACHTEL", "WARNICK", "WEIDLER", "WALTRIP", "WHETSEL", "WHELESS", "WELCHER", "WALBORN",
			"WILLSEY", "WEINMAN", "WAGAMAN", "WOMMACK", "WINGLER", "WINKLES", "WIEDMAN", "WHITNER",
			"WOLFRAM", "WARLICK", "WEEDMAN", "WHISMAN", "WINLAND", "WEESNER", "WARTHEN", "WETZLER",
			"WENDLER", "WALLNER", "WOLBERT", "WITTMER", "WISHART", "WILLIAM") ||
		s.stringAt(0, 8, "WESTPHAL", "WICKLUND", "WEISSMAN", "WESTLUND", "WOLFGANG", "WILLHITE",
			"WEISBERG", "WALRAVEN", "WOLFGRAM", "WILHOITE", "WECHSLER", "WENDLING", "WESTBERG",
			"WENDLAND", "WININGER", "WHISNANT", "WESTRICK", "WESTLING", "WESTBURY", "WEITZMAN",
			"WEHMEYER", "WEINMANN", "WISNESKI", "WHELCHEL", "WEISHAAR", "WAGGENER", "WALDROUP",
			"WESTHOFF", "WIEDEMAN", "WASINGER", "WINBORNE") ||
		s.stringAt(0, 9, "WHISENANT", "WEINSTEIN", "WESTERMAN", "WASSERMAN", "WITKOWSKI",
			"WEINTRAUB", "WINKELMAN", "WINKFIELD", "WANAMAKER", "WIECZOREK", "WIECHMANN",
			"WOJTOWICZ", "WALKOWIAK", "WEINSTOCK", "WILLEFORD", "WARKENTIN", "WEISINGER",
			"WINKLEMAN", "WILHEMINA") ||
		s.stringAt(0, 10, "WISNIEWSKI", "WUNDERLICH", "WHISENHUNT", "WEINBERGER", "WROBLEWSKI",
			"WAGUESPACK", "WEISGERBER", "WESTERVELT", "WESTERLUND", "WASILEWSKI", "WILDERMUTH",
			"WESTENDORF", "WESOLOWSKI", "WEINGARTEN", "WINEBARGER", "WESTERBERG", "WANNAMAKER",
			"WEISSINGER") ||
		s.stringAt(0, 11, "WALDSCHMIDT", "WEINGARTNER", "WINEBRENNER") ||
		s.stringAt(0, 12, "WOLFENBARGER") ||
		s.stringAt(0, 13, "WOJCIECHOWSKI") {
		return true
	}

	return false
}

func (s *state) namesBeginningWithJThatGetAltY() bool {
	if s.stringAt(0, 3, "JAN", "JON", "JAN", "JIN", "JEN") ||
		s.stringAt(0, 4, "JUHL", "JULY", "JOEL", "JOHN", "JOSH", "JUDE", "JUNE", "JONI", "JULI",
			"JENA", "JUNG", "JINA", "JANA", "JENI", "JOEL", "JANN", "JONA", "JENE", "JULE", "JANI",
			"JONG", "JOHN", "JEAN", "JUNG", "JONE", "JARA", "JUST", "JOST", "JAHN", "JACO", "JANG",
			"JUDE", "JONE") ||
		s.stringAt(0, 5, "JOANN", "JANEY", "JANAE", "JOANA", "JUTTA", "JULEE", "JANAY", "JANEE",
			"JETTA", "JOHNA", "JOANE", "JAYNA", "JANES", "JONAS", "JONIE", "JUSTA", "JUNIE",
			"JUNKO", "JENAE", "JULIO", "JINNY", "JOHNS", "JACOB", "JETER", "JAFFE", "JESKE",
			"JANKE", "JAGER", "JANIK", "JANDA", "JOSHI", "JULES", "JANTZ", "JEANS", "JUDAH",
			"JANUS", "JENNY", "JENEE", "JONAH", "JONAS", "JACOB", "JOSUE", "JOSEF", "JULES",
			"JULIE", "JULIA", "JANIE", "JANIS", "JENNA", "JANNA", "JEANA", "JENNI", "JEANE",
			"JONNA") ||
		s.stringAt(0, 6, "JORDAN", "JORDON", "JOSEPH", "JOSHUA", "JOSIAH", "JOSPEH", "JUDSON",
			"JULIAN", "JULIUS", "JUNIOR", "JUDITH", "JOESPH", "JOHNIE", "JOANNE", "JEANNE",
			"JOANNA", "JOSEFA", "JULIET", "JANNIE", "JANELL", "JASMIN", "JANINE", "JOHNNY",
			"JEANIE", "JEANNA", "JOHNNA", "JOELLE", "JOVITA", "JOSEPH", "JONNIE", "JANEEN",
			"JANINA", "JOANIE", "JAZMIN", "JOHNIE", "JANENE", "JOHNNY", "JONELL", "JENELL",
			"JANETT", "JANETH", "JENINE", "JOELLA", "JOEANN", "JULIAN", "JOHANA", "JENICE",
			"JANNET", "JANISE", "JULENE", "JOSHUA", "JANEAN", "JAIMEE", "JOETTE", "JANYCE",
			"JENEVA", "JORDAN", "JACOBS", "JENSEN", "JOSEPH", "JANSEN", "JORDON", "JULIAN",
			"JAEGER", "JACOBY", "JENSON", "JARMAN", "JOSLIN", "JESSEN", "JAHNKE", "JACOBO",
			"JULIEN", "JOSHUA", "JEPSON", "JULIUS", "JANSON", "JACOBI", "JUDSON", "JARBOE",
			"JOHSON", "JANZEN", "JETTON", "JUNKER", "JONSON", "JAROSZ", "JENNER", "JAGGER",
			"JASMIN", "JEPSEN", "JORDEN", "JANNEY", "JUHASZ", "JERGEN", "JAKOB") ||
		s.stringAt(0, 7, "JOHNSON", "JOHNNIE", "JASMINE", "JEANNIE", "JOHANNA", "JANELLE",
			"JANETTE", "JULIANA", "JUSTINA", "JOSETTE", "JOELLEN", "JENELLE", "JULIETA", "JULIANN",
			"JULISSA", "JENETTE", "JANETTA", "JOSELYN", "JONELLE", "JESENIA", "JANESSA", "JAZMINE",
			"JEANENE", "JOANNIE", "JADWIGA", "JOLANDA", "JULIANE", "JANUARY", "JEANICE", "JANELLA",
			"JEANETT", "JENNINE", "JOHANNE", "JOHNSIE", "JANIECE", "JOHNSON", "JENNELL", "JAMISON",
			"JANSSEN", "JOHNSEN", "JARDINE", "JAGGERS", "JURGENS", "JOURDAN", "JULIANO", "JOSEPHS",
			"JHONSON", "JOZWIAK", "JANICKI", "JELINEK", "JANSSON", "JOACHIM", "JANELLE", "JACOBUS",
			"JENNING", "JANTZEN", "JOHNNIE") ||
		s.stringAt(0, 8, "JOSEFINA", "JEANNINE", "JULIANNE", "JULIANNA", "JONATHAN", "JONATHON",
			"JEANETTE", "JANNETTE", "JEANETTA", "JOHNETTA", "JENNEFER", "JULIENNE", "JOSPHINE",
			"JEANELLE", "JOHNETTE", "JULIEANN", "JOSEFINE", "JULIETTA", "JOHNSTON", "JACOBSON",
			"JACOBSEN", "JOHANSEN", "JOHANSON", "JAWORSKI", "JENNETTE", "JELLISON", "JOHANNES",
			"JASINSKI", "JUERGENS", "JARNAGIN", "JEREMIAH", "JEPPESEN", "JARNIGAN", "JANOUSEK") ||
		s.stringAt(0, 9, "JOHNATHAN", "JOHNATHON", "JORGENSEN", "JEANMARIE", "JOSEPHINA",
			"JEANNETTE", "JOSEPHINE", "JEANNETTA", "JORGENSON", "JANKOWSKI", "JOHNSTONE",
			"JABLONSKI", "JOSEPHSON", "JOHANNSEN", "JURGENSEN", "JIMMERSON", "JOHANSSON") ||
		s.stringAt(0, 10, "JAKUBOWSKI") {
		return true
	}

	return false
}
