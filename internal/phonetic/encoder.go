// Package phonetic implements the Metaphone 3 phonetic encoding used for
// sounds-like name matching. A word is reduced to a primary key and, when
// it has a plausible alternate pronunciation, a secondary key.
package phonetic

import (
	"fmt"
	"iter"
	"net/http"
	"strings"

	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
)

const (
	// DefaultKeyLength is the key length used when none is configured.
	DefaultKeyLength = 8
	maxKeyLength     = 32
)

// Keys holds the result of encoding a single word.
type Keys struct {
	Primary   string
	Secondary string
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithKeyLength caps the length of produced keys. Values below 1 are raised
// to 1 and values above 32 are lowered to 32.
func WithKeyLength(n int) Option {
	return func(e *Encoder) {
		e.keyLength = clampKeyLength(n)
	}
}

// WithVowels makes non-initial vowels contribute an 'A' placeholder.
func WithVowels(on bool) Option {
	return func(e *Encoder) { e.withVowels = on }
}

// WithExact distinguishes voiced and unvoiced consonant pairs such as B/P.
func WithExact(on bool) Option {
	return func(e *Encoder) { e.exact = on }
}

// Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	keyLength  int
	withVowels bool
	exact      bool
}

// New returns an Encoder with the default key length and vowel and exact
// encoding turned off.
func New(opts ...Option) *Encoder {
	e := &Encoder{keyLength: DefaultKeyLength}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// KeyLength reports the configured key length.
func (e *Encoder) KeyLength() int { return e.keyLength }

// Encode returns the phonetic keys of word. The word is upper-cased before
// encoding. A blank word is rejected with an invalid input error.
func (e *Encoder) Encode(word string) (Keys, error) {
	if strings.TrimSpace(word) == "" {
		return Keys{}, apperrors.New(apperrors.ErrInvalidInput, http.StatusBadRequest, "phonetic: word must have a value")
	}

	s := newState(strings.ToUpper(word), e.withVowels, e.exact)
	s.run(e.keyLength)
	return Keys{Primary: string(s.primary), Secondary: string(s.secondary)}, nil
}

// MustEncode is like Encode but panics on blank input.
func (e *Encoder) MustEncode(word string) Keys {
	k, err := e.Encode(word)
	if err != nil {
		panic(fmt.Sprintf("phonetic: MustEncode(%q): %v", word, err))
	}
	return k
}

// EncodeMany splits text on whitespace and hyphens and yields the lower-cased
// keys of every word in order: the primary key, then the secondary key when
// one exists. Blank text yields nothing. A word whose primary key is empty
// (digits, punctuation) is skipped rather than yielding "", so callers never
// index or query an empty term.
func (e *Encoder) EncodeMany(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, word := range splitWords(text) {
			k, err := e.Encode(word)
			if err != nil || k.Primary == "" {
				continue
			}
			if !yield(strings.ToLower(k.Primary)) {
				return
			}
			if k.Secondary != "" && !yield(strings.ToLower(k.Secondary)) {
				return
			}
		}
	}
}

// PhoneticKeys collects EncodeMany into a slice.
func (e *Encoder) PhoneticKeys(text string) []string {
	var keys []string
	for k := range e.EncodeMany(text) {
		keys = append(keys, k)
	}
	return keys
}

func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func clampKeyLength(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxKeyLength {
		return maxKeyLength
	}
	return n
}
