package templates

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="utf-8"?>
<searchQueries>
  <!-- used by the integration tests -->
  <searchQuery name="TestSearch" targetIndex="TestSearch">
    <booleanQuery operator="and">
      <fieldQuery indexField="FirstName" searchField="FirstName"/>
      <fieldQuery indexField="LastName" searchField="LastName" weight="${W}"/>
    </booleanQuery>
  </searchQuery>
  <searchQuery name="All" targetIndex="people">
    <alwaysTrueQuery/>
  </searchQuery>
</searchQueries>`

func TestParseKeepsQueryVerbatim(t *testing.T) {
	set, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, set, 2)

	ts := set["TestSearch"]
	assert.Equal(t, "TestSearch", ts.TargetIndex)
	assert.True(t, len(ts.Query) > 0)
	assert.Contains(t, ts.Query, `<booleanQuery operator="and">`)
	assert.Contains(t, ts.Query, `weight="${W}"`)
	assert.Contains(t, ts.Query, `</booleanQuery>`)
	assert.NotContains(t, ts.Query, "searchQuery")

	assert.Equal(t, "<alwaysTrueQuery/>", set["All"].Query)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"no name":     `<searchQueries><searchQuery><alwaysTrueQuery/></searchQuery></searchQueries>`,
		"two queries": `<searchQueries><searchQuery name="a"><alwaysTrueQuery/><alwaysTrueQuery/></searchQuery></searchQueries>`,
		"empty":       `<searchQueries><searchQuery name="a"></searchQuery></searchQueries>`,
		"duplicate":   `<searchQueries><searchQuery name="a"><alwaysTrueQuery/></searchQuery><searchQuery name="a"><alwaysTrueQuery/></searchQuery></searchQueries>`,
		"malformed":   `<searchQueries><searchQuery name="a"><alwaysTrueQuery>`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrConfiguration))
		})
	}
}

func TestStoreGetAndAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-queries.xml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	_, ok := s.Get("testsearch")
	assert.False(t, ok)
	got, ok := s.Get("TestSearch")
	require.True(t, ok)
	assert.Equal(t, "TestSearch", got.Name)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "All", all[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"))
	assert.True(t, errors.Is(err, apperrors.ErrConfiguration))
}

func TestWatchReloadsAndKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-queries.xml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	s, err := Load(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx))

	require.NoError(t, os.WriteFile(path, []byte("<searchQueries><broken"), 0o644))
	time.Sleep(100 * time.Millisecond)
	_, ok := s.Get("TestSearch")
	assert.True(t, ok)

	updated := `<searchQueries><searchQuery name="Only" targetIndex="x"><alwaysTrueQuery/></searchQuery></searchQueries>`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	assert.Eventually(t, func() bool {
		_, ok := s.Get("Only")
		return ok
	}, 2*time.Second, 20*time.Millisecond)
}

func TestNewStore(t *testing.T) {
	s := NewStore(map[string]Template{"a": {Name: "a", Query: "<alwaysTrueQuery/>"}})
	_, ok := s.Get("a")
	assert.True(t, ok)
	assert.NoError(t, s.Watch(context.Background()))
}
