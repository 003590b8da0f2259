// Package nrt manages near-real-time visibility for one index: writes are
// buffered and committed by a single writer, while searches lease
// reference-counted reader snapshots that are republished on demand.
package nrt

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/metrics"
)

// State is the visibility state of a manager.
type State int32

const (
	// Idle: the published snapshot reflects every mutation.
	Idle State = iota
	// Dirty: mutations happened since the last publish.
	Dirty
	// Reopening: a new snapshot is being opened.
	Reopening
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dirty:
		return "dirty"
	case Reopening:
		return "reopening"
	default:
		return "unknown"
	}
}

// Option configures a Manager.
type Option func(*Manager)

// WithMetrics records generation, reopen, commit and snapshot metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(mgr *Manager) { mgr.metrics = m }
}

// Manager owns an index directory, its writer and the published snapshot.
type Manager struct {
	name    string
	dir     *store.Directory
	writer  *store.Writer
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu      sync.RWMutex
	current *view

	reopenMu   sync.Mutex
	generation atomic.Uint64
	state      atomic.Int32
	leases     atomic.Int64
	closed     atomic.Bool
}

// Open opens the index directory at path and publishes its first snapshot.
func Open(name, path string, analyzers *analysis.Analyzers, opts ...Option) (*Manager, error) {
	dir, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	m := &Manager{
		name:   name,
		dir:    dir,
		writer: dir.NewWriter(analyzers),
		logger: slog.Default().With("component", "nrt-manager", "index", name),
	}
	for _, opt := range opts {
		opt(m)
	}

	r, err := dir.OpenReader()
	if err != nil {
		dir.Close()
		return nil, err
	}
	m.current = &view{reader: r}
	return m, nil
}

// Name returns the index name.
func (m *Manager) Name() string { return m.name }

// Generation returns the number of mutating calls applied so far.
func (m *Manager) Generation() uint64 { return m.generation.Load() }

// PublishedGeneration returns the generation of the current snapshot.
func (m *Manager) PublishedGeneration() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.generation
}

// State returns the current visibility state.
func (m *Manager) State() State { return State(m.state.Load()) }

// Leases returns the number of outstanding snapshot leases.
func (m *Manager) Leases() int64 { return m.leases.Load() }

// Acquire leases the published snapshot. It never triggers a reopen.
func (m *Manager) Acquire() (*Snapshot, error) {
	if m.closed.Load() {
		return nil, m.closedError()
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v := m.current
	v.acquire()
	m.leases.Add(1)
	m.observeLeases()
	return &Snapshot{view: v}, nil
}

// Release returns a lease. The underlying reader is closed when it is no
// longer published and this was its last lease.
func (m *Manager) Release(s *Snapshot) error {
	if err := s.markReleased(); err != nil {
		return err
	}
	m.leases.Add(-1)
	m.observeLeases()
	closed, err := s.view.release()
	if closed {
		m.logger.Debug("retired snapshot closed", "generation", s.view.generation)
	}
	return err
}

// AddOrUpdate buffers docs, each replacing any document with the same
// idField value. The generation is bumped once for the whole call. A
// document that fails conversion rejects the call before anything is
// buffered.
func (m *Manager) AddOrUpdate(idField string, docs []store.Document) error {
	if m.closed.Load() {
		return m.closedError()
	}
	n, err := m.writer.AddOrUpdate(idField, docs...)
	if n > 0 {
		m.mutated()
		if m.metrics != nil {
			m.metrics.DocsIndexedTotal.WithLabelValues(m.name).Add(float64(n))
		}
	}
	return err
}

// Delete removes every document whose field matches one of values exactly.
// Deletions buffered before a failing value stay buffered and are published
// by the next reopen.
func (m *Manager) Delete(ctx context.Context, field string, values []string) (int, error) {
	if m.closed.Load() {
		return 0, m.closedError()
	}
	total := 0
	var err error
	for _, v := range values {
		var n int
		n, err = m.writer.DeleteTerm(ctx, field, v)
		if err != nil {
			break
		}
		total += n
	}
	if err == nil || total > 0 {
		m.mutated()
	}
	if m.metrics != nil {
		m.metrics.DocsDeletedTotal.WithLabelValues(m.name).Add(float64(total))
	}
	return total, err
}

// DeleteAll removes every document.
func (m *Manager) DeleteAll() (int, error) {
	if m.closed.Load() {
		return 0, m.closedError()
	}
	n, err := m.writer.DeleteAll()
	if err != nil {
		return 0, err
	}
	m.mutated()
	if m.metrics != nil {
		m.metrics.DocsDeletedTotal.WithLabelValues(m.name).Add(float64(n))
	}
	return n, nil
}

func (m *Manager) mutated() {
	gen := m.generation.Add(1)
	m.state.Store(int32(Dirty))
	if m.metrics != nil {
		m.metrics.IndexGeneration.WithLabelValues(m.name).Set(float64(gen))
	}
}

// Commit makes buffered mutations durable without publishing them.
func (m *Manager) Commit() error {
	if m.closed.Load() {
		return m.closedError()
	}
	err := m.writer.Commit()
	m.observeCommit(err)
	return err
}

// MaybeReopen publishes a new snapshot when forced or when mutations are
// pending, and reports whether it did. Reopens are serialised; searches
// keep using their leased snapshots throughout.
func (m *Manager) MaybeReopen(force bool) (bool, error) {
	if m.closed.Load() {
		return false, m.closedError()
	}
	m.reopenMu.Lock()
	defer m.reopenMu.Unlock()

	if !force && m.State() != Dirty {
		m.observeReopen("skipped")
		return false, nil
	}

	m.state.Store(int32(Reopening))
	gen := m.generation.Load()

	err := m.writer.Commit()
	m.observeCommit(err)
	if err != nil {
		m.state.Store(int32(Dirty))
		return false, err
	}
	r, err := m.dir.OpenReader()
	if err != nil {
		m.state.Store(int32(Dirty))
		return false, err
	}

	next := &view{reader: r, generation: gen}
	m.mu.Lock()
	old := m.current
	m.current = next
	m.mu.Unlock()

	// a mutation that raced the reopen has already stored Dirty
	m.state.CompareAndSwap(int32(Reopening), int32(Idle))

	if _, err := old.retire(); err != nil {
		m.logger.Warn("closing retired snapshot failed", "generation", old.generation, "error", err)
	}

	kind := "dirty"
	if force {
		kind = "forced"
	}
	m.observeReopen(kind)
	m.logger.Debug("snapshot published", "generation", gen, "kind", kind)
	return true, nil
}

// Optimize merges the index into a single segment and publishes the result.
func (m *Manager) Optimize(ctx context.Context) error {
	if m.closed.Load() {
		return m.closedError()
	}
	if err := m.writer.ForceMerge(ctx); err != nil {
		return err
	}
	m.mutated()
	_, err := m.MaybeReopen(true)
	return err
}

// DocCount returns the document count of the published snapshot.
func (m *Manager) DocCount() (uint64, error) {
	s, err := m.Acquire()
	if err != nil {
		return 0, err
	}
	defer m.Release(s)
	return s.Reader().DocCount()
}

// Close commits pending writes, closes the published reader and the
// directory. Every step is attempted; the first error is returned.
// Outstanding leases are reported and their reader is closed regardless.
func (m *Manager) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	m.reopenMu.Lock()
	defer m.reopenMu.Unlock()

	var first error
	record := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	record(m.writer.Close())

	m.mu.Lock()
	cur := m.current
	m.mu.Unlock()
	if n := cur.refCount(); n > 0 {
		m.logger.Warn("closing index with outstanding snapshots", "leases", n)
	}
	cur.mu.Lock()
	if !cur.closed {
		cur.closed = true
		record(cur.reader.Close())
	}
	cur.mu.Unlock()

	record(m.dir.Close())

	if first != nil {
		m.logger.Error("index closed with errors", "error", first)
	}
	return first
}

func (m *Manager) closedError() error {
	return apperrors.Newf(apperrors.ErrFactoryClosed, http.StatusServiceUnavailable, "index %s is closed", m.name)
}

func (m *Manager) observeLeases() {
	if m.metrics != nil {
		m.metrics.OpenSnapshots.WithLabelValues(m.name).Set(float64(m.leases.Load()))
	}
}

func (m *Manager) observeReopen(kind string) {
	if m.metrics != nil {
		m.metrics.IndexReopensTotal.WithLabelValues(m.name, kind).Inc()
	}
}

func (m *Manager) observeCommit(err error) {
	if m.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.metrics.IndexCommitsTotal.WithLabelValues(m.name, status).Inc()
}
