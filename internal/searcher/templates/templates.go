// Package templates loads named search query templates from an XML file
// and keeps them current while the file changes.
package templates

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/fsnotify/fsnotify"
)

// Template is a named query with the index it searches by default.
type Template struct {
	Name        string `json:"name"`
	TargetIndex string `json:"targetIndex"`
	Query       string `json:"query"`
}

// Parse reads a <searchQueries> document. Each <searchQuery name=""
// targetIndex=""> must hold exactly one element, kept verbatim as the
// template's query.
func Parse(data []byte) (map[string]Template, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	set := make(map[string]Template)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, configError(err, "parsing search queries")
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "searchQuery" {
			continue
		}
		t, err := parseTemplate(dec, start, data)
		if err != nil {
			return nil, err
		}
		if _, dup := set[t.Name]; dup {
			return nil, apperrors.Newf(apperrors.ErrConfiguration, http.StatusInternalServerError,
				"duplicate search query %q", t.Name)
		}
		set[t.Name] = t
	}
	return set, nil
}

func parseTemplate(dec *xml.Decoder, start xml.StartElement, data []byte) (Template, error) {
	var t Template
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "name":
			t.Name = a.Value
		case "targetIndex":
			t.TargetIndex = a.Value
		}
	}
	if t.Name == "" {
		return t, apperrors.New(apperrors.ErrConfiguration, http.StatusInternalServerError,
			"searchQuery is missing its name attribute")
	}

	var children []string
	for {
		offset := dec.InputOffset()
		tok, err := dec.Token()
		if err != nil {
			return t, configError(err, "parsing search query "+t.Name)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if err := dec.Skip(); err != nil {
				return t, configError(err, "parsing search query "+t.Name)
			}
			children = append(children, string(data[offset:dec.InputOffset()]))
		case xml.EndElement:
			if el.Name.Local != "searchQuery" {
				continue
			}
			if len(children) != 1 {
				return t, apperrors.Newf(apperrors.ErrConfiguration, http.StatusInternalServerError,
					"search query %q must contain exactly one query element, found %d", t.Name, len(children))
			}
			t.Query = strings.TrimSpace(children[0])
			return t, nil
		}
	}
}

func configError(err error, msg string) error {
	return apperrors.Wrap(apperrors.ErrConfiguration, http.StatusInternalServerError, err, msg)
}

// Store holds the current immutable template set.
type Store struct {
	path    string
	current atomic.Pointer[map[string]Template]
	logger  *slog.Logger
}

// Load reads the templates at path.
func Load(path string) (*Store, error) {
	s := &Store{
		path:   path,
		logger: slog.Default().With("component", "template-store"),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStore returns a store over an in-memory set, for tests and tools.
func NewStore(set map[string]Template) *Store {
	s := &Store{logger: slog.Default().With("component", "template-store")}
	s.current.Store(&set)
	return s
}

// Reload re-reads the file and swaps the set in when it parses.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return configError(err, "reading search queries "+s.path)
	}
	set, err := Parse(data)
	if err != nil {
		return err
	}
	s.current.Store(&set)
	s.logger.Info("search queries loaded", "path", s.path, "count", len(set))
	return nil
}

// Get returns the template called name. Names are case-sensitive.
func (s *Store) Get(name string) (Template, bool) {
	t, ok := (*s.current.Load())[name]
	return t, ok
}

// All returns every template sorted by name.
func (s *Store) All() []Template {
	set := *s.current.Load()
	out := make([]Template, 0, len(set))
	for _, t := range set {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Template) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Watch reloads the store whenever its file is written or replaced, until
// ctx is cancelled. A reload that fails keeps the previous set.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating template watcher: %w", err)
	}
	// Watch the directory: editors replace files by rename.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", s.path, err)
	}
	target := filepath.Clean(s.path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				if err := s.Reload(); err != nil {
					s.logger.Error("template reload failed, keeping previous set", "error", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("template watcher error", "error", err)
			}
		}
	}()
	s.logger.Info("watching search queries", "path", s.path)
	return nil
}
