package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodePrintsKeys(t *testing.T) {
	out, err := execute(t, "encode", "Fred", "Flintstone")
	require.NoError(t, err)
	assert.Contains(t, out, "PRIMARY")
	assert.Regexp(t, `Fred\s+FRT`, out)
	assert.Regexp(t, `Flintstone\s+FLNTSTN`, out)
}

func TestEncodeRequiresWord(t *testing.T) {
	_, err := execute(t, "encode")
	assert.Error(t, err)
}

func TestTemplatesValidateShippedFile(t *testing.T) {
	out, err := execute(t, "templates", "validate", "--config", "", filepath.Join("..", "..", "configs", "search-queries.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "ok    PersonSearch -> Person")
	assert.Contains(t, out, "3 templates valid")
}

func TestTemplatesValidateReportsBrokenTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.xml")
	xml := `<searchQueries>
  <searchQuery name="Good" targetIndex="People"><fieldQuery indexField="A" searchField="A"/></searchQuery>
  <searchQuery name="Fuzzy" targetIndex="People"><fieldQuery indexField="A" searchField="A" matchType="fuzzy" tolerance="${Tol}"/></searchQuery>
</searchQueries>`
	require.NoError(t, os.WriteFile(path, []byte(xml), 0o644))

	out, err := execute(t, "templates", "validate", "--config", "", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 templates are invalid")
	assert.Contains(t, out, "FAIL  Fuzzy")

	_, err = execute(t, "templates", "validate", "--config", "", "--token", "Tol=0.8", path)
	assert.NoError(t, err)
}

func TestIndexInspectAndOptimize(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	yaml := fmt.Sprintf("index:\n  baseDir: %q\n  commitInterval: 1h\nlogging:\n  level: error\n", filepath.Join(dir, "indexes"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	out, err := execute(t, "index", "inspect", "People", "--config", cfgPath)
	require.NoError(t, err)
	var summary indexSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "People", summary.Name)
	assert.Zero(t, summary.DocumentCount)

	out, err = execute(t, "index", "optimize", "People", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "optimized People")
}

func TestIndexInspectRejectsBadName(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	yaml := fmt.Sprintf("index:\n  baseDir: %q\n", dir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	_, err := execute(t, "index", "inspect", "..", "--config", cfgPath)
	assert.Error(t, err)
}

func TestAPIKeyCreateRequiresName(t *testing.T) {
	_, err := execute(t, "apikey", "create", "--config", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestLoadTestAgainstStub(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/personsearch/search", r.URL.Path)
		assert.Equal(t, "k1", r.Header.Get("X-API-Key"))
		w.Header().Set("Content-Type", "application/json")
		if hits.Load()%2 == 0 {
			w.Write([]byte(`{"success":false,"messages":["boom"]}`))
			return
		}
		w.Write([]byte(`{"success":true,"messages":[],"results":[]}`))
	}))
	defer srv.Close()

	out, err := execute(t, "loadtest", "--url", srv.URL, "--api-key", "k1", "--concurrency", "2", "--duration", "200ms")
	require.NoError(t, err)
	assert.Contains(t, out, "requests:")
	assert.Contains(t, out, "status 200:")
	assert.Positive(t, hits.Load())
}

func TestLoadTestCountsConnectionErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	out, err := execute(t, "loadtest", "--url", url, "--concurrency", "1", "--duration", "100ms")
	require.NoError(t, err)
	assert.NotContains(t, out, "failed:     0\n")
}

func TestPercentile(t *testing.T) {
	lat := []time.Duration{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	assert.Equal(t, time.Duration(5), percentile(lat, 50))
	assert.Equal(t, time.Duration(10), percentile(lat, 99))
	assert.Equal(t, time.Duration(0), percentile(nil, 50))
}
