// Package store adapts a bleve index directory to the operations the NRT
// manager needs: an exclusive on-disk lock, a buffering writer and
// immutable point-in-time readers.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/gofrs/flock"
)

// LockFileName is the lock file kept inside every index directory.
const LockFileName = "write.lock"

// Directory is an opened index directory. Only one process may hold it.
type Directory struct {
	path   string
	lock   *flock.Flock
	index  bleve.Index
	logger *slog.Logger
}

// Open opens the index at path, creating it when missing. The write.lock
// file stays on disk between runs; the flock on it dies with its process,
// so only a live holder fails the open.
func Open(path string) (*Directory, error) {
	logger := slog.Default().With("component", "index-store", "path", path)

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, storeError(err, "creating index directory "+path)
	}

	lock := flock.New(filepath.Join(path, LockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, storeError(err, "locking index "+path)
	}
	if !locked {
		return nil, apperrors.Newf(apperrors.ErrStoreIO, http.StatusInternalServerError,
			"index %s is locked by another process", path)
	}

	idx, err := openOrCreate(path)
	if err != nil {
		lock.Unlock()
		return nil, storeError(err, "opening index "+path)
	}

	count, _ := idx.DocCount()
	logger.Info("index opened", "documents", count)
	return &Directory{path: path, lock: lock, index: idx, logger: logger}, nil
}

func openOrCreate(path string) (bleve.Index, error) {
	idx, err := bleve.Open(path)
	if err == nil {
		return idx, nil
	}
	if !errors.Is(err, bleve.ErrorIndexPathDoesNotExist) && !errors.Is(err, bleve.ErrorIndexMetaMissing) {
		return nil, err
	}
	return bleve.New(path, newMapping())
}

func newMapping() *mapping.IndexMappingImpl {
	m := mapping.NewIndexMapping()
	m.DefaultAnalyzer = analysis.WhitespaceAnalyzerName
	m.StoreDynamic = false
	m.IndexDynamic = false
	return m
}

// Path returns the directory path.
func (d *Directory) Path() string {
	return d.path
}

// NewWriter returns the directory's writer. Callers keep a single writer
// per directory.
func (d *Directory) NewWriter(analyzers *analysis.Analyzers) *Writer {
	return newWriter(d, analyzers)
}

// OpenReader captures the committed state of the index.
func (d *Directory) OpenReader() (*Reader, error) {
	adv, err := d.index.Advanced()
	if err != nil {
		return nil, storeError(err, "accessing index internals")
	}
	r, err := adv.Reader()
	if err != nil {
		return nil, storeError(err, "opening index reader")
	}
	return &Reader{reader: r, mapping: d.index.Mapping()}, nil
}

// Close closes the bleve index and releases the lock. Both steps are always
// attempted; the first error is returned.
func (d *Directory) Close() error {
	var first error
	if err := d.index.Close(); err != nil {
		first = storeError(err, "closing index")
	}
	if err := d.lock.Unlock(); err != nil && first == nil {
		first = storeError(err, "releasing index lock")
	}
	d.logger.Info("index closed")
	return first
}

func storeError(err error, msg string) error {
	return apperrors.Wrap(apperrors.ErrStoreIO, http.StatusInternalServerError, err, msg)
}

func fieldConversionError(format string, args ...any) error {
	return apperrors.New(apperrors.ErrFieldConversion, http.StatusBadRequest, fmt.Sprintf(format, args...))
}
