package nrt

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
)

// view is one published reader. It is closed once it has been retired by a
// newer view and every lease on it has been released.
type view struct {
	reader     *store.Reader
	generation uint64

	mu      sync.Mutex
	refs    int
	retired bool
	closed  bool
}

func (v *view) acquire() {
	v.mu.Lock()
	v.refs++
	v.mu.Unlock()
}

// release drops one reference and reports whether the reader was closed.
func (v *view) release() (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.refs--
	return v.closeIfUnusedLocked()
}

func (v *view) retire() (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.retired = true
	return v.closeIfUnusedLocked()
}

func (v *view) closeIfUnusedLocked() (bool, error) {
	if v.closed || !v.retired || v.refs > 0 {
		return false, nil
	}
	v.closed = true
	return true, v.reader.Close()
}

func (v *view) isClosed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

func (v *view) refCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.refs
}

// Snapshot is a lease on a reader. It stays valid until released, even if
// newer snapshots are published in the meantime.
type Snapshot struct {
	view     *view
	released atomic.Bool
}

// Reader returns the leased reader.
func (s *Snapshot) Reader() *store.Reader {
	return s.view.reader
}

// Generation is the manager generation the reader was opened at.
func (s *Snapshot) Generation() uint64 {
	return s.view.generation
}

func (s *Snapshot) markReleased() error {
	if !s.released.CompareAndSwap(false, true) {
		return apperrors.New(apperrors.ErrSnapshotReleased, http.StatusInternalServerError, "snapshot released twice")
	}
	return nil
}
