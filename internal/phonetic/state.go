package phonetic

import "strings"

// rule is one narrow sub-rule in a letter's chain. It reports whether it
// consumed the input at the cursor.
type rule func(*state) bool

// state is the per-word scan state. A fresh value is built for every word,
// so an Encoder can be shared between goroutines.
type state struct {
	runes  []rune
	word   string
	length int
	last   int

	current   int
	primary   []byte
	secondary []byte

	flagAlInversion bool

	withVowels bool
	exact      bool
}

func newState(word string, withVowels, exact bool) *state {
	runes := []rune(word)
	return &state{
		runes:      runes,
		word:       word,
		length:     len(runes),
		last:       len(runes) - 1,
		primary:    make([]byte, 0, maxKeyLength),
		secondary:  make([]byte, 0, maxKeyLength),
		withVowels: withVowels,
		exact:      exact,
	}
}

// run drives the cursor over the word until it is consumed or both keys
// have grown past keyLength.
func (s *state) run(keyLength int) {
	for len(s.primary) <= keyLength && len(s.secondary) <= keyLength {
		if s.current >= s.length {
			break
		}

		switch c := s.charAt(s.current); c {
		case 'B':
			s.encodeB()
		case 'ß', 'Ç':
			s.add("S")
			s.current++
		case 'C':
			s.encodeC()
		case 'D':
			s.encodeD()
		case 'F':
			s.encodeF()
		case 'G':
			s.encodeG()
		case 'H':
			s.encodeH()
		case 'J':
			s.encodeJ()
		case 'K':
			s.encodeK()
		case 'L':
			s.encodeL()
		case 'M':
			s.encodeM()
		case 'N':
			s.encodeN()
		case 'Ñ':
			s.add("N")
			s.current++
		case 'P':
			s.encodeP()
		case 'Q':
			s.encodeQ()
		case 'R':
			s.encodeR()
		case 'S':
			s.encodeS()
		case 'T':
			s.encodeT()
		case 'Ð', 'Þ':
			s.add("0")
			s.current++
		case 'V':
			s.encodeV()
		case 'W':
			s.encodeW()
		case 'X':
			s.encodeX()
		case 'Š':
			s.add("X")
			s.current++
		case 'Ž':
			s.add("S")
			s.current++
		case 'Z':
			s.encodeZ()
		default:
			if isVowel(c) {
				s.encodeVowels()
				break
			}
			s.current++
		}
	}

	if len(s.primary) > keyLength {
		s.primary = s.primary[:keyLength]
	}
	if len(s.secondary) > keyLength {
		s.secondary = s.secondary[:keyLength]
	}
	// truncation can make the keys collide
	if string(s.primary) == string(s.secondary) {
		s.secondary = s.secondary[:0]
	}
}

func (s *state) firstOf(rules []rule) bool {
	for _, r := range rules {
		if r(s) {
			return true
		}
	}
	return false
}

// add appends main to both keys. A vowel placeholder is never doubled.
func (s *state) add(main string) {
	s.primary = appendKey(s.primary, main)
	s.secondary = appendKey(s.secondary, main)
}

// addAlt appends main to the primary key and alt, when set, to the
// secondary key.
func (s *state) addAlt(main, alt string) {
	s.primary = appendKey(s.primary, main)
	if alt != "" {
		s.secondary = appendKey(s.secondary, alt)
	}
}

func (s *state) addExact(mainExact, main string) {
	if s.exact {
		s.add(mainExact)
		return
	}
	s.add(main)
}

func (s *state) addExactAlt(mainExact, altExact, main, alt string) {
	if s.exact {
		s.addAlt(mainExact, altExact)
		return
	}
	s.addAlt(main, alt)
}

func appendKey(buf []byte, v string) []byte {
	if v == "A" && len(buf) > 0 && buf[len(buf)-1] == 'A' {
		return buf
	}
	return append(buf, v...)
}

// advance moves the cursor past a consumed sequence. The distance depends on
// whether interior vowels are being encoded.
func (s *state) advance(ifNotEncodeVowels, ifEncodeVowels int) {
	if !s.withVowels {
		s.current += ifNotEncodeVowels
		return
	}
	s.current += ifEncodeVowels
}

// charAt returns 0 when at is out of range.
func (s *state) charAt(at int) rune {
	if at < 0 || at > s.length-1 {
		return 0
	}
	return s.runes[at]
}

// stringAt reports whether the length characters starting at start equal
// any of the candidates.
func (s *state) stringAt(start, length int, candidates ...string) bool {
	if start < 0 || start > s.length-1 || start+length-1 > s.length-1 {
		return false
	}
	target := string(s.runes[start : start+length])
	for _, c := range candidates {
		if target == c {
			return true
		}
	}
	return false
}

func (s *state) frontVowel(at int) bool {
	c := s.charAt(at)
	return c == 'E' || c == 'I' || c == 'Y'
}

func (s *state) slavoGermanic() bool {
	return s.stringAt(0, 3, "SCH") ||
		s.stringAt(0, 2, "SW") ||
		s.charAt(0) == 'J' ||
		s.charAt(0) == 'W'
}

func (s *state) isVowelAt(at int) bool {
	if at < 0 || at >= s.length {
		return false
	}
	return isVowel(s.charAt(at))
}

// skipVowels returns the position of the next consonant at or after at. A
// 'W' inside a vowel run is skipped too, except before Slavic endings.
func (s *state) skipVowels(at int) int {
	if at < 0 {
		return 0
	}
	if at >= s.length {
		return s.length
	}

	c := s.charAt(at)
	for isVowel(c) || c == 'W' {
		if s.stringAt(at, 4, "WICZ", "WITZ", "WIAK") ||
			s.stringAt(at-1, 5, "EWSKI", "EWSKY", "OWSKI", "OWSKY") ||
			(s.stringAt(at, 5, "WICKI", "WACKI") && at+4 == s.last) {
			break
		}

		at++
		if s.charAt(at-1) == 'W' && s.charAt(at) == 'H' &&
			!(s.stringAt(at, 3, "HOP") ||
				s.stringAt(at, 4, "HIDE", "HARD", "HEAD", "HAWK", "HERD", "HOOK", "HAND", "HOLE") ||
				s.stringAt(at, 5, "HEART", "HOUSE", "HOUND") ||
				s.stringAt(at, 6, "HAMMER")) {
			at++
		}

		if at > s.length-1 {
			break
		}
		c = s.charAt(at)
	}

	return at
}

func isVowel(c rune) bool {
	return strings.ContainsRune(vowels, c)
}

const vowels = "AEIOUYÀÁÂÃÄÅÆÈÉÊËÌÍÎÏÒÓÔÕÖŒØÙÚÛÜÝŸ"

// rootOrInflections reports whether word is root or one of its regular
// English inflections, e.g. "ACHE", "ACHES", "ACHED", "ACHING", "ACHY".
func rootOrInflections(word, root string) bool {
	if word == root || word == root+"S" {
		return true
	}

	endsInE := strings.HasSuffix(root, "E")
	test := root + "S"
	if !endsInE {
		test = root + "ES"
	}
	if word == test {
		return true
	}

	if endsInE {
		test = root + "D"
	} else {
		test = root + "ED"
	}
	if word == test {
		return true
	}

	if endsInE {
		root = root[:len(root)-1]
	}
	for _, suffix := range []string{"ING", "INGLY", "Y"} {
		if word == root+suffix {
			return true
		}
	}
	return false
}
