package analysis

import (
	"github.com/blevesearch/bleve/v2/analysis"
)

// SynonymStream replaces each upstream token with its phonetic keys and
// injects the keys of the token's synonyms. The first key takes the
// token's place; every further key is emitted at the same position.
type SynonymStream struct {
	keys     *KeyCache
	synonyms Synonyms
	next     func() (*analysis.Token, bool)

	current *analysis.Token
	pending []string
}

// NewSynonymStream reads tokens from next until it reports false.
func NewSynonymStream(keys *KeyCache, synonyms Synonyms, next func() (*analysis.Token, bool)) *SynonymStream {
	if synonyms == nil {
		synonyms = NoSynonyms
	}
	return &SynonymStream{keys: keys, synonyms: synonyms, next: next}
}

// Next returns the next token, or false once upstream is exhausted and
// nothing is queued.
func (s *SynonymStream) Next() (*analysis.Token, bool) {
	if len(s.pending) > 0 {
		key := s.pending[0]
		s.pending = s.pending[1:]
		return s.alternate(key), true
	}

	tok, ok := s.next()
	if !ok {
		return nil, false
	}
	s.current = tok

	original := string(tok.Term)
	keys := s.keys.Keys(original)
	if len(keys) == 0 {
		// nothing encodable (digits, punctuation); keep the surface form
		return tok, true
	}

	out := *tok
	out.Term = []byte(keys[0])
	s.pending = append(s.pending, keys[1:]...)

	seen := make(map[string]struct{})
	for _, syn := range s.synonyms.Lookup(original) {
		for _, key := range s.keys.Keys(syn) {
			if key == original {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			s.pending = append(s.pending, key)
		}
	}
	return &out, true
}

func (s *SynonymStream) alternate(key string) *analysis.Token {
	return &analysis.Token{
		Term:     []byte(key),
		Start:    s.current.Start,
		End:      s.current.End,
		Position: s.current.Position,
		Type:     s.current.Type,
	}
}

// SynonymFilter adapts SynonymStream to a bleve token filter.
type SynonymFilter struct {
	keys     *KeyCache
	synonyms Synonyms
}

var _ analysis.TokenFilter = (*SynonymFilter)(nil)

func NewSynonymFilter(keys *KeyCache, synonyms Synonyms) *SynonymFilter {
	return &SynonymFilter{keys: keys, synonyms: synonyms}
}

func (f *SynonymFilter) Filter(input analysis.TokenStream) analysis.TokenStream {
	i := 0
	stream := NewSynonymStream(f.keys, f.synonyms, func() (*analysis.Token, bool) {
		if i >= len(input) {
			return nil, false
		}
		tok := input[i]
		i++
		return tok, true
	})

	output := make(analysis.TokenStream, 0, len(input)*2)
	for tok, ok := stream.Next(); ok; tok, ok = stream.Next() {
		output = append(output, tok)
	}
	return output
}
