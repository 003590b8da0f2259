// Package tokenizer turns raw search field values into the terms a field
// query matches against.
package tokenizer

import (
	"strings"
)

// Terms splits value on spaces and appends the whole value with its
// spaces removed, so "Mary Ann" matches "mary", "ann" and "maryann".
// Duplicates are dropped, first occurrence wins. A blank value yields no
// terms. Case is preserved.
func Terms(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	words := strings.Split(value, " ")
	terms := make([]string, 0, len(words)+1)
	seen := make(map[string]struct{}, len(words)+1)
	add := func(t string) {
		if t == "" {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}
	for _, w := range words {
		add(w)
	}
	add(strings.ReplaceAll(value, " ", ""))
	return terms
}

// Expand replaces each term with the values keys returns for it, keeping
// order. Terms that expand to nothing are dropped.
func Expand(terms []string, keys func(string) []string) []string {
	out := make([]string, 0, len(terms)*2)
	for _, t := range terms {
		out = append(out, keys(t)...)
	}
	return out
}

// Lower lower-cases every term in place and returns the slice.
func Lower(terms []string) []string {
	for i, t := range terms {
		terms[i] = strings.ToLower(t)
	}
	return terms
}
