package parser

import "testing"

const benchQuery = `<booleanQuery operator="or" minimumFieldMatches="2">
	<fieldQuery indexField="FirstNameSynonyms" searchField="FirstName" matchType="phonetic" weight="3"/>
	<fieldQuery indexField="FirstName" searchField="FirstName" matchType="fuzzy" tolerance="0.75"/>
	<fieldQuery indexField="LastNameSynonyms" searchField="LastName" matchType="phonetic" weight="3"/>
	<fieldQuery indexField="LastName" searchField="LastName" matchType="fuzzy" tolerance="0.75"/>
	<fieldQuery indexField="BirthDate" searchField="BirthDate"/>
</booleanQuery>`

var benchFields = map[string]string{
	"FirstName": "Mary Ann",
	"LastName":  "Flintstone",
	"BirthDate": "19700102",
}

func BenchmarkParse(b *testing.B) {
	p := newInterpreter()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(benchQuery, benchFields); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuildCompiled measures the per-request cost once the tree is
// cached.
func BenchmarkBuildCompiled(b *testing.B) {
	p := newInterpreter()
	tree, err := Compile(benchQuery)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Build(tree, benchFields); err != nil {
			b.Fatal(err)
		}
	}
}
