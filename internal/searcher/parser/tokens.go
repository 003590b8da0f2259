package parser

import "regexp"

var placeholder = regexp.MustCompile(`\$\{(.*?)\}`)

// ReplaceTokens substitutes every ${name} in text with tokens[name].
// Placeholders without a value are left verbatim.
func ReplaceTokens(text string, tokens map[string]string) string {
	if len(tokens) == 0 {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		if v, ok := tokens[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}
