package parser

import (
	"errors"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInterpreter() *Interpreter {
	return NewInterpreter(analysis.NewKeyCache(phonetic.New(), 64))
}

func termsOf(t *testing.T, q query.Query) []string {
	t.Helper()
	d, ok := q.(*query.DisjunctionQuery)
	require.True(t, ok, "expected disjunction, got %T", q)
	var out []string
	for _, c := range d.Disjuncts {
		switch tq := c.(type) {
		case *query.TermQuery:
			out = append(out, tq.Term)
		case *query.FuzzyQuery:
			out = append(out, tq.Term)
		default:
			t.Fatalf("unexpected clause %T", c)
		}
	}
	return out
}

func TestAlwaysTrue(t *testing.T) {
	q, err := newInterpreter().Parse(`<alwaysTrueQuery/>`, nil)
	require.NoError(t, err)
	assert.IsType(t, &query.MatchAllQuery{}, q)
}

func TestExactFieldQuery(t *testing.T) {
	q, err := newInterpreter().Parse(
		`<fieldQuery indexField="LastName" searchField="Last" weight="2.5"/>`,
		map[string]string{"Last": "Van Dyke"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"van", "dyke", "vandyke"}, termsOf(t, q))

	d := q.(*query.DisjunctionQuery)
	assert.Equal(t, 2.5, d.Boost())
	assert.Equal(t, "LastName", d.Disjuncts[0].(*query.TermQuery).Field())
}

func TestFieldQueryWithoutValueProducesNothing(t *testing.T) {
	p := newInterpreter()
	for _, fields := range []map[string]string{nil, {"Last": ""}, {"Last": "   "}} {
		q, err := p.Parse(`<fieldQuery indexField="LastName" searchField="Last"/>`, fields)
		require.NoError(t, err)
		assert.Nil(t, q)
	}
}

func TestPhoneticFieldQueryExpandsKeys(t *testing.T) {
	q, err := newInterpreter().Parse(
		`<fieldQuery indexField="PhoneticLastName" searchField="LastName" matchType="phonetic"/>`,
		map[string]string{"LastName": "Flintstan"},
	)
	require.NoError(t, err)
	assert.Contains(t, termsOf(t, q), "flntstn")
}

func TestFuzzyFieldQuery(t *testing.T) {
	q, err := newInterpreter().Parse(
		`<fieldQuery indexField="FirstName" searchField="First" matchType="fuzzy" tolerance="0.7" prefixLength="1"/>`,
		map[string]string{"First": "Frederick"},
	)
	require.NoError(t, err)
	d := q.(*query.DisjunctionQuery)
	require.Len(t, d.Disjuncts, 1)
	fq := d.Disjuncts[0].(*query.FuzzyQuery)
	assert.Equal(t, "frederick", fq.Term)
	assert.Equal(t, 2, fq.Fuzziness)
	assert.Equal(t, 1, fq.Prefix)
}

func TestFuzzyWithoutToleranceIsMissingParameter(t *testing.T) {
	_, err := newInterpreter().Parse(
		`<fieldQuery indexField="FirstName" searchField="First" matchType="fuzzy"/>`,
		map[string]string{"First": "Fred"},
	)
	assert.True(t, errors.Is(err, apperrors.ErrMissingParameter))
}

func TestFuzziness(t *testing.T) {
	tests := []struct {
		tolerance float64
		term      string
		want      int
	}{
		{1, "fred", 1},
		{2, "fred", 2},
		{5, "fred", 2},
		{0.5, "fred", 2},
		{0.8, "fred", 0},
		{0.7, "flintstone", 2},
		{0.85, "flintstone", 1},
		{0, "ab", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fuzziness(tt.tolerance, tt.term), "tolerance %v term %s", tt.tolerance, tt.term)
	}
}

func TestBooleanDropsAbsentChildren(t *testing.T) {
	xml := `<booleanQuery operator="and">
		<fieldQuery indexField="FirstName" searchField="FirstName"/>
		<fieldQuery indexField="LastName" searchField="LastName"/>
	</booleanQuery>`
	q, err := newInterpreter().Parse(xml, map[string]string{"FirstName": "Fred"})
	require.NoError(t, err)
	c, ok := q.(*query.ConjunctionQuery)
	require.True(t, ok)
	assert.Len(t, c.Conjuncts, 1)
	assert.Equal(t, []string{"fred"}, termsOf(t, c.Conjuncts[0]))
}

func TestBooleanWithNoChildrenProducesNothing(t *testing.T) {
	q, err := newInterpreter().Parse(
		`<booleanQuery operator="or"><fieldQuery indexField="A" searchField="A"/></booleanQuery>`, nil)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestBooleanOperators(t *testing.T) {
	fields := map[string]string{"A": "x", "B": "y"}
	children := `<fieldQuery indexField="A" searchField="A"/><fieldQuery indexField="B" searchField="B"/>`
	p := newInterpreter()

	q, err := p.Parse(`<booleanQuery operator="or" minimumFieldMatches="2">`+children+`</booleanQuery>`, fields)
	require.NoError(t, err)
	d := q.(*query.DisjunctionQuery)
	assert.Len(t, d.Disjuncts, 2)
	assert.Equal(t, float64(2), d.Min)

	q, err = p.Parse(`<booleanQuery operator="not" disableCoord="true">`+children+`</booleanQuery>`, fields)
	require.NoError(t, err)
	b := q.(*query.BooleanQuery)
	assert.Nil(t, b.Must)
	assert.Nil(t, b.Should)
	assert.NotNil(t, b.MustNot)
}

func TestMinimumFieldMatchesAboveChildrenMatchesNothing(t *testing.T) {
	q, err := newInterpreter().Parse(
		`<booleanQuery operator="or" minimumFieldMatches="3">
			<fieldQuery indexField="A" searchField="A"/>
			<fieldQuery indexField="B" searchField="B"/>
		</booleanQuery>`,
		map[string]string{"A": "x"},
	)
	require.NoError(t, err)
	assert.IsType(t, &query.MatchNoneQuery{}, q)
}

func TestUnfilledPlaceholdersCountAsAbsent(t *testing.T) {
	q, err := newInterpreter().Parse(
		`<fieldQuery indexField="A" searchField="A" weight="${AWeight}"/>`,
		map[string]string{"A": "x"},
	)
	require.NoError(t, err)
	assert.Equal(t, 1.0, q.(*query.DisjunctionQuery).Boost())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		xml      string
		sentinel error
		contains string
	}{
		{"unknown node", `<rangeQuery/>`, apperrors.ErrUnknownQueryNode, "rangeQuery"},
		{"nested unknown node", `<booleanQuery operator="and"><spanQuery/></booleanQuery>`, apperrors.ErrUnknownQueryNode, "spanQuery"},
		{"missing operator", `<booleanQuery/>`, apperrors.ErrMissingParameter, "operator"},
		{"bad operator", `<booleanQuery operator="xor"/>`, apperrors.ErrInvalidInput, "xor"},
		{"missing indexField", `<fieldQuery searchField="A"/>`, apperrors.ErrMissingParameter, "indexField"},
		{"missing searchField", `<fieldQuery indexField="A"/>`, apperrors.ErrMissingParameter, "searchField"},
		{"bad matchType", `<fieldQuery indexField="A" searchField="A" matchType="regex"/>`, apperrors.ErrInvalidInput, "regex"},
		{"malformed", `<booleanQuery operator="and">`, apperrors.ErrInvalidInput, "well formed"},
	}
	p := newInterpreter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.xml, map[string]string{"A": "x"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestReplaceTokens(t *testing.T) {
	tokens := map[string]string{"W": "3", "Tol": "0.8"}
	got := ReplaceTokens(`<fieldQuery weight="${W}" tolerance="${Tol}" prefixLength="${Missing}"/>`, tokens)
	assert.Equal(t, `<fieldQuery weight="3" tolerance="0.8" prefixLength="${Missing}"/>`, got)
	assert.Equal(t, "${W}", ReplaceTokens("${W}", nil))
	assert.Equal(t, "33", ReplaceTokens("${W}${W}", tokens))
}

func TestValidateAndSearchFields(t *testing.T) {
	p := newInterpreter()
	xml := `<booleanQuery operator="and">
		<fieldQuery indexField="FirstName" searchField="FirstName" matchType="fuzzy" tolerance="1"/>
		<fieldQuery indexField="LastName" searchField="LastName"/>
		<fieldQuery indexField="LastNameKeys" searchField="LastName" matchType="phonetic"/>
	</booleanQuery>`
	assert.NoError(t, p.Validate(xml))

	names, err := SearchFields(xml)
	require.NoError(t, err)
	assert.Equal(t, []string{"FirstName", "LastName"}, names)

	err = p.Validate(`<booleanQuery operator="and"><fieldQuery indexField="A" searchField="A" matchType="fuzzy"/></booleanQuery>`)
	assert.True(t, errors.Is(err, apperrors.ErrMissingParameter))
}

func TestCompiledTreeIsReusable(t *testing.T) {
	tree, err := Compile(`<fieldQuery indexField="A" searchField="A"/>`)
	require.NoError(t, err)
	p := newInterpreter()

	q1, err := p.Build(tree, map[string]string{"A": "x"})
	require.NoError(t, err)
	q2, err := p.Build(tree, map[string]string{"A": "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, termsOf(t, q1))
	assert.Equal(t, []string{"y"}, termsOf(t, q2))
}
