// Package parser interprets the XML query DSL used by search templates
// and builds bleve queries from it.
//
// A template is a single root element built from three node kinds:
//
//	<alwaysTrueQuery/>
//	<booleanQuery operator="and|or|not" minimumFieldMatches="n">...</booleanQuery>
//	<fieldQuery indexField="LastName" searchField="LastName"
//	    matchType="exact|fuzzy|phonetic" tolerance="0.7" prefixLength="1" weight="2"/>
//
// A fieldQuery whose search field has no value produces nothing, and a
// booleanQuery drops such children, so one template serves requests that
// fill in any subset of fields.
package parser

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/tokenizer"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Match types of a fieldQuery.
const (
	MatchExact    = "exact"
	MatchFuzzy    = "fuzzy"
	MatchPhonetic = "phonetic"
)

// maxFuzziness is the largest edit distance bleve accepts.
const maxFuzziness = 2

// node is a generic XML element.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
}

func (n node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n node) String() string {
	out, err := xml.Marshal(n)
	if err != nil {
		return "<" + n.XMLName.Local + ">"
	}
	return string(out)
}

// Interpreter builds bleve queries from template XML. It is safe for
// concurrent use.
type Interpreter struct {
	keys   *analysis.KeyCache
	logger *slog.Logger
}

// NewInterpreter returns an interpreter expanding phonetic field queries
// through keys.
func NewInterpreter(keys *analysis.KeyCache) *Interpreter {
	return &Interpreter{
		keys:   keys,
		logger: slog.Default().With("component", "query-interpreter"),
	}
}

// Tree is a decoded template, reusable across requests and goroutines.
type Tree struct {
	root node
}

// Compile decodes queryXML without interpreting it.
func Compile(queryXML string) (*Tree, error) {
	var root node
	if err := xml.Unmarshal([]byte(queryXML), &root); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, http.StatusBadRequest, err, "query xml is not well formed")
	}
	return &Tree{root: root}, nil
}

// Parse interprets queryXML against the request's field values. It returns
// a nil query when the root produced nothing; callers treat that as match
// none.
func (p *Interpreter) Parse(queryXML string, fields map[string]string) (query.Query, error) {
	t, err := Compile(queryXML)
	if err != nil {
		return nil, err
	}
	return p.Build(t, fields)
}

// Build interprets a compiled tree against the request's field values.
func (p *Interpreter) Build(t *Tree, fields map[string]string) (query.Query, error) {
	return p.parse(t.root, fields)
}

func (p *Interpreter) parse(n node, fields map[string]string) (query.Query, error) {
	switch n.XMLName.Local {
	case "alwaysTrueQuery":
		return query.NewMatchAllQuery(), nil
	case "booleanQuery":
		return p.parseBoolean(n, fields)
	case "fieldQuery":
		return p.parseField(n, fields)
	default:
		return nil, apperrors.Newf(apperrors.ErrUnknownQueryNode, http.StatusBadRequest,
			"unrecognized search query element '%s'", n.XMLName.Local)
	}
}

func (p *Interpreter) parseBoolean(n node, fields map[string]string) (query.Query, error) {
	operator, ok := n.attr("operator")
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrMissingParameter, http.StatusBadRequest,
			"boolean query is missing operator attribute: %s", n)
	}
	if operator != "and" && operator != "or" && operator != "not" {
		return nil, apperrors.Newf(apperrors.ErrInvalidInput, http.StatusBadRequest,
			`unknown booleanQuery operator: %s. Use "and", "or", or "not"`, operator)
	}
	// bleve has no coordination factor; disableCoord is accepted as is.
	if v, ok := n.attr("disableCoord"); ok {
		p.logger.Debug("disableCoord has no effect", "value", v)
	}

	children := make([]query.Query, 0, len(n.Children))
	for _, c := range n.Children {
		q, err := p.parse(c, fields)
		if err != nil {
			return nil, err
		}
		if q != nil {
			children = append(children, q)
		}
	}
	if len(children) == 0 {
		return nil, nil
	}

	switch operator {
	case "and":
		return query.NewConjunctionQuery(children), nil
	case "or":
		q := query.NewDisjunctionQuery(children)
		if minMatches, ok := optionalInt(n, "minimumFieldMatches"); ok && minMatches > 0 {
			if minMatches > len(children) {
				return query.NewMatchNoneQuery(), nil
			}
			q.SetMin(float64(minMatches))
		}
		return q, nil
	default:
		return query.NewBooleanQuery(nil, nil, children), nil
	}
}

func (p *Interpreter) parseField(n node, fields map[string]string) (query.Query, error) {
	indexField, ok := n.attr("indexField")
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrMissingParameter, http.StatusBadRequest,
			"'indexField' attribute was not found on this field query: %s", n)
	}
	searchField, ok := n.attr("searchField")
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrMissingParameter, http.StatusBadRequest,
			"'searchField' attribute was not found on this field query: %s", n)
	}
	matchType, ok := n.attr("matchType")
	if !ok {
		matchType = MatchExact
	}
	if matchType != MatchExact && matchType != MatchFuzzy && matchType != MatchPhonetic {
		return nil, apperrors.Newf(apperrors.ErrInvalidInput, http.StatusBadRequest,
			"unknown matchType '%s' on field query: %s", matchType, n)
	}

	terms := tokenizer.Terms(fields[searchField])
	if len(terms) == 0 {
		return nil, nil
	}
	if matchType == MatchPhonetic {
		terms = tokenizer.Expand(terms, p.keys.Keys)
	}
	terms = tokenizer.Lower(terms)

	tolerance, hasTolerance := optionalFloat(n, "tolerance")
	if matchType == MatchFuzzy && !hasTolerance {
		return nil, apperrors.Newf(apperrors.ErrMissingParameter, http.StatusBadRequest,
			"'tolerance' attribute is required for query '%s'", n)
	}
	prefix, _ := optionalInt(n, "prefixLength")

	clauses := make([]query.Query, 0, len(terms))
	for _, term := range terms {
		switch matchType {
		case MatchFuzzy:
			q := query.NewFuzzyQuery(term)
			q.SetField(indexField)
			q.SetFuzziness(Fuzziness(tolerance, term))
			q.SetPrefix(max(prefix, 0))
			clauses = append(clauses, q)
		default:
			q := query.NewTermQuery(term)
			q.SetField(indexField)
			clauses = append(clauses, q)
		}
	}

	q := query.NewDisjunctionQuery(clauses)
	if weight, ok := optionalFloat(n, "weight"); ok {
		q.SetBoost(weight)
	}
	return q, nil
}

// Fuzziness converts a fieldQuery tolerance into an edit distance. Values
// of 1 or more are edit distances; smaller values are a minimum
// similarity, allowing (1-t) edits per character of term. The result is
// clamped to 0..2.
func Fuzziness(tolerance float64, term string) int {
	var d int
	if tolerance >= 1 {
		d = int(tolerance)
	} else {
		d = int(math.Floor((1 - tolerance) * float64(utf8.RuneCountInString(term))))
	}
	return min(max(d, 0), maxFuzziness)
}

// optionalFloat reads a numeric attribute. Values that do not parse, such
// as a placeholder no token filled in, count as absent.
func optionalFloat(n node, name string) (float64, bool) {
	v, ok := n.attr(name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func optionalInt(n node, name string) (int, bool) {
	v, ok := n.attr(name)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return i, true
}

// Validate parses queryXML with a placeholder value for every search field
// the template names, reporting structural errors without a request.
func (p *Interpreter) Validate(queryXML string) error {
	t, err := Compile(queryXML)
	if err != nil {
		return err
	}
	fields := make(map[string]string)
	collectSearchFields(t.root, fields)
	if _, err := p.parse(t.root, fields); err != nil {
		return fmt.Errorf("validating template: %w", err)
	}
	return nil
}

// SearchFields returns the searchField names a template reads, in
// document order.
func SearchFields(queryXML string) ([]string, error) {
	t, err := Compile(queryXML)
	if err != nil {
		return nil, err
	}
	root := t.root
	seen := make(map[string]string)
	var names []string
	var walk func(node)
	walk = func(n node) {
		if n.XMLName.Local == "fieldQuery" {
			if f, ok := n.attr("searchField"); ok {
				if _, dup := seen[f]; !dup {
					seen[f] = ""
					names = append(names, f)
				}
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return names, nil
}

func collectSearchFields(n node, fields map[string]string) {
	if f, ok := n.attr("searchField"); ok && n.XMLName.Local == "fieldQuery" {
		fields[f] = "sample"
	}
	for _, c := range n.Children {
		collectSearchFields(c, fields)
	}
}
