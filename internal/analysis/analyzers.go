package analysis

import (
	"fmt"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/single"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/whitespace"
	"github.com/blevesearch/bleve/v2/registry"
)

// Registry names.
const (
	SynonymFilterName      = "name_synonym"
	SynonymAnalyzerName    = "name_synonym"
	WhitespaceAnalyzerName = "name_whitespace"
	KeywordAnalyzerName    = "name_keyword"
)

// Field analyzer selectors accepted on indexed fields.
const (
	FieldAnalyzerDefault = ""
	FieldAnalyzerSynonym = "synonym"
	FieldAnalyzerKeyword = "keyword"
)

func init() {
	registry.RegisterTokenFilter(SynonymFilterName, synonymFilterConstructor)
	registry.RegisterAnalyzer(SynonymAnalyzerName, synonymAnalyzerConstructor)
	registry.RegisterAnalyzer(WhitespaceAnalyzerName, whitespaceAnalyzerConstructor)
	registry.RegisterAnalyzer(KeywordAnalyzerName, keywordAnalyzerConstructor)
}

// synonymFilterConstructor accepts "synonyms" (map of name to list) and
// "key_length" (number) in config.
func synonymFilterConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.TokenFilter, error) {
	syns, err := synonymsFromConfig(config["synonyms"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SynonymFilterName, err)
	}
	keyLength := phonetic.DefaultKeyLength
	if v, ok := config["key_length"].(float64); ok {
		keyLength = int(v)
	}
	keys := NewKeyCache(phonetic.New(phonetic.WithKeyLength(keyLength)), DefaultKeyCacheSize)
	return NewSynonymFilter(keys, syns), nil
}

func synonymAnalyzerConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.Analyzer, error) {
	filter, err := cache.TokenFilterNamed(SynonymFilterName)
	if err != nil {
		return nil, err
	}
	return buildSynonymAnalyzer(cache, filter)
}

func whitespaceAnalyzerConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.Analyzer, error) {
	return buildAnalyzer(cache, whitespace.Name)
}

func keywordAnalyzerConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.Analyzer, error) {
	return buildAnalyzer(cache, single.Name)
}

func buildAnalyzer(cache *registry.Cache, tokenizerName string) (*analysis.DefaultAnalyzer, error) {
	tokenizer, err := cache.TokenizerNamed(tokenizerName)
	if err != nil {
		return nil, err
	}
	lower, err := cache.TokenFilterNamed(lowercase.Name)
	if err != nil {
		return nil, err
	}
	return &analysis.DefaultAnalyzer{
		Tokenizer:    tokenizer,
		TokenFilters: []analysis.TokenFilter{lower},
	}, nil
}

// buildSynonymAnalyzer chains unicode tokenizer -> to_lower -> stop_en ->
// the synonym filter.
func buildSynonymAnalyzer(cache *registry.Cache, synonym analysis.TokenFilter) (*analysis.DefaultAnalyzer, error) {
	tokenizer, err := cache.TokenizerNamed(unicode.Name)
	if err != nil {
		return nil, err
	}
	lower, err := cache.TokenFilterNamed(lowercase.Name)
	if err != nil {
		return nil, err
	}
	stop, err := cache.TokenFilterNamed(en.StopName)
	if err != nil {
		return nil, err
	}
	return &analysis.DefaultAnalyzer{
		Tokenizer:    tokenizer,
		TokenFilters: []analysis.TokenFilter{lower, stop, synonym},
	}, nil
}

// Analyzers are the per-field analyzers used when building documents. The
// synonym analyzer is bound to the process' synonym set and key cache
// rather than the registry defaults. Exact keeps the whole value as one
// case-preserved term and is used for document identity.
type Analyzers struct {
	Whitespace analysis.Analyzer
	Keyword    analysis.Analyzer
	Exact      analysis.Analyzer
	Synonym    analysis.Analyzer
	Keys       *KeyCache
}

// NewAnalyzers builds the analyzer set from bleve's registry components.
func NewAnalyzers(keys *KeyCache, synonyms Synonyms) (*Analyzers, error) {
	cache := registry.NewCache()
	ws, err := buildAnalyzer(cache, whitespace.Name)
	if err != nil {
		return nil, fmt.Errorf("building whitespace analyzer: %w", err)
	}
	kw, err := buildAnalyzer(cache, single.Name)
	if err != nil {
		return nil, fmt.Errorf("building keyword analyzer: %w", err)
	}
	whole, err := cache.TokenizerNamed(single.Name)
	if err != nil {
		return nil, fmt.Errorf("building exact analyzer: %w", err)
	}
	syn, err := buildSynonymAnalyzer(cache, NewSynonymFilter(keys, synonyms))
	if err != nil {
		return nil, fmt.Errorf("building synonym analyzer: %w", err)
	}
	return &Analyzers{
		Whitespace: ws,
		Keyword:    kw,
		Exact:      &analysis.DefaultAnalyzer{Tokenizer: whole},
		Synonym:    syn,
		Keys:       keys,
	}, nil
}

// For picks the analyzer for a field. Unanalyzed fields always use the
// keyword analyzer so the whole value is one lower-cased term.
func (a *Analyzers) For(selector string, analyzed bool) (analysis.Analyzer, error) {
	if !analyzed {
		return a.Keyword, nil
	}
	switch selector {
	case FieldAnalyzerDefault:
		return a.Whitespace, nil
	case FieldAnalyzerSynonym:
		return a.Synonym, nil
	case FieldAnalyzerKeyword:
		return a.Keyword, nil
	default:
		return nil, fmt.Errorf("unknown analyzer %q", selector)
	}
}

// Terms runs text through analyzer and returns the produced terms.
func Terms(analyzer analysis.Analyzer, text string) []string {
	stream := analyzer.Analyze([]byte(text))
	out := make([]string, 0, len(stream))
	for _, tok := range stream {
		out = append(out, string(tok.Term))
	}
	return out
}
