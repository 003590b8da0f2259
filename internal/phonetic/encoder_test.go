package phonetic

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = []string{
	"Fred", "Flintstone", "Flintstan", "Barney", "Rubble", "Wilma", "Betty",
	"Smith", "Schmidt", "Johnson", "Jonson", "Catherine", "Kathryn", "Philip",
	"Phillips", "Thompson", "Tomson", "Xavier", "Zbigniew", "Wojciechowski",
	"McDonald", "MacDonald", "O'Brien", "Gonzalez", "Gallagher", "Knight",
	"Wright", "Hughes", "Balogh", "Leigh", "Cherie", "Ghislaine", "Szymanski",
	"Müller", "Björk", "Ñuñez", "Cæsar", "Dvořák", "Aaron", "Yvonne",
}

func TestEncodeKnownKeys(t *testing.T) {
	enc := New()

	tests := []struct {
		word      string
		primary   string
		secondary string
	}{
		{"Fred", "FRT", ""},
		{"fred", "FRT", ""},
		{"Flintstone", "FLNTSTN", ""},
		{"Flintstan", "FLNTSTN", ""},
		{"Smith", "SM0", "XMT"},
		{"Schmidt", "XMT", ""},
		{"Catherine", "K0RN", ""},
		{"Kathryn", "K0RN", ""},
		{"Thomas", "TMS", ""},
		{"Jose", "HS", ""},
		{"Xavier", "SFR", ""},
		{"Ghislaine", "JSLN", ""},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			k, err := enc.Encode(tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.primary, k.Primary)
			assert.Equal(t, tt.secondary, k.Secondary)
		})
	}
}

// testdata/keys.tsv holds reference keys for every combination of key
// length 4, 8 and 32 with vowel and exact encoding on and off.
func TestEncodeMatchesReferenceKeys(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "keys.tsv"))
	require.NoError(t, err)

	encoders := map[string]*Encoder{}
	rows := 0
	for line := range strings.Lines(string(data)) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		require.Len(t, cols, 6, line)
		word, length, vowels, exact := cols[0], cols[1], cols[2], cols[3]

		cfg := length + "/" + vowels + "/" + exact
		enc, ok := encoders[cfg]
		if !ok {
			n, err := strconv.Atoi(length)
			require.NoError(t, err)
			enc = New(WithKeyLength(n), WithVowels(vowels == "true"), WithExact(exact == "true"))
			encoders[cfg] = enc
		}

		keys, err := enc.Encode(word)
		require.NoError(t, err, line)
		assert.Equal(t, Keys{Primary: cols[4], Secondary: cols[5]}, keys, "%s with %s", word, cfg)
		rows++
	}
	assert.Len(t, encoders, 12)
	assert.GreaterOrEqual(t, rows, 12*30)
}

func TestEncodeBlankIsInvalidInput(t *testing.T) {
	enc := New()
	for _, w := range []string{"", "   ", "\t"} {
		_, err := enc.Encode(w)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	}
	assert.Panics(t, func() { enc.MustEncode("") })
}

func TestEncodeIsDeterministic(t *testing.T) {
	enc := New()
	for _, w := range corpus {
		a, err := enc.Encode(w)
		require.NoError(t, err)
		b, err := enc.Encode(w)
		require.NoError(t, err)
		assert.Equal(t, a, b, w)
	}
}

func TestTruncationInvariant(t *testing.T) {
	for _, k := range []int{1, 2, 4, 8, 12} {
		enc := New(WithKeyLength(k))
		for _, w := range corpus {
			keys := enc.MustEncode(w)
			assert.LessOrEqual(t, len(keys.Primary), k, w)
			assert.LessOrEqual(t, len(keys.Secondary), k, w)
			if keys.Secondary != "" {
				assert.NotEqual(t, keys.Primary, keys.Secondary, w)
			}
		}
	}
	assert.Equal(t, "FLNT", New(WithKeyLength(4)).MustEncode("Flintstone").Primary)
}

func TestPrimaryIsNonEmptyForAlphabeticWords(t *testing.T) {
	enc := New()
	for _, w := range corpus {
		assert.NotEmpty(t, enc.MustEncode(w).Primary, w)
	}
}

func TestKeyLengthIsClamped(t *testing.T) {
	assert.Equal(t, 1, New(WithKeyLength(0)).KeyLength())
	assert.Equal(t, 32, New(WithKeyLength(99)).KeyLength())
	assert.Equal(t, DefaultKeyLength, New().KeyLength())
}

func TestEncodeManySegmentsInOrder(t *testing.T) {
	enc := New()

	joined := enc.PhoneticKeys("mary-jane")
	want := append(enc.PhoneticKeys("mary"), enc.PhoneticKeys("jane")...)
	assert.Equal(t, want, joined)
	assert.Equal(t, joined, enc.PhoneticKeys("Mary Jane"))

	for _, k := range joined {
		assert.Equal(t, strings.ToLower(k), k)
	}
	assert.Empty(t, enc.PhoneticKeys("  - "))
}

func TestEncodeManySkipsWordsWithoutKey(t *testing.T) {
	enc := New()

	k, err := enc.Encode("123")
	require.NoError(t, err)
	assert.Empty(t, k.Primary)

	assert.Equal(t, []string{"frt"}, enc.PhoneticKeys("123 fred"))
	assert.Equal(t, []string{"frt"}, enc.PhoneticKeys("fred ."))
	assert.Empty(t, enc.PhoneticKeys("42 - 7"))
}

func TestEncodeManyStopsEarly(t *testing.T) {
	var got []string
	for k := range New().EncodeMany("fred flintstone barney") {
		got = append(got, k)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"frt", "flntstn"}, got)
}

func TestEncoderIsSafeForConcurrentUse(t *testing.T) {
	enc := New()
	want := make(map[string]Keys, len(corpus))
	for _, w := range corpus {
		want[w] = enc.MustEncode(w)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, w := range corpus {
				assert.Equal(t, want[w], enc.MustEncode(w))
			}
		}()
	}
	wg.Wait()
}
