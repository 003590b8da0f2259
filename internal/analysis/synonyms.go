// Package analysis holds the text analysis used by the name indexes: the
// synonym map, the synonym-expanding phonetic token filter, the phonetic key
// cache and the bleve analyzers built from them.
package analysis

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Synonyms resolves a surface word to its alternative spellings, in order.
// Lookup is case-sensitive and returns nil when the word has none.
type Synonyms interface {
	Lookup(word string) []string
}

// MapSynonyms is an in-memory Synonyms.
type MapSynonyms map[string][]string

func (m MapSynonyms) Lookup(word string) []string {
	return m[word]
}

// NoSynonyms never returns alternatives.
var NoSynonyms Synonyms = MapSynonyms(nil)

// LoadSynonyms reads a YAML document mapping names to their synonyms:
//
//	robert: [bob, rob, bobby]
//	william: [bill, will]
//
// Names and synonyms are lower-cased because they are matched against
// lower-cased tokens. An empty path yields an empty set.
func LoadSynonyms(path string) (MapSynonyms, error) {
	if path == "" {
		return MapSynonyms{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, http.StatusInternalServerError, err,
			fmt.Sprintf("reading synonyms file %s", path))
	}
	return ParseSynonyms(data)
}

// ParseSynonyms decodes the YAML form accepted by LoadSynonyms.
func ParseSynonyms(data []byte) (MapSynonyms, error) {
	raw := map[string][]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, http.StatusInternalServerError, err,
			"parsing synonyms")
	}
	out := make(MapSynonyms, len(raw))
	for name, syns := range raw {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		for _, s := range syns {
			s = strings.ToLower(strings.TrimSpace(s))
			if s != "" {
				out[key] = append(out[key], s)
			}
		}
	}
	return out, nil
}

// synonymsFromConfig builds MapSynonyms from a bleve registry config value,
// which arrives as map[string]interface{} of []interface{}.
func synonymsFromConfig(v any) (MapSynonyms, error) {
	if v == nil {
		return MapSynonyms{}, nil
	}
	raw, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("synonyms must be a map, got %T", v)
	}
	out := make(MapSynonyms, len(raw))
	for name, list := range raw {
		items, ok := list.([]interface{})
		if !ok {
			return nil, fmt.Errorf("synonyms for %q must be a list, got %T", name, list)
		}
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("synonym of %q must be a string, got %T", name, item)
			}
			out[name] = append(out[name], s)
		}
	}
	return out, nil
}
