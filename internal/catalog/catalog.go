package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"icongallery/internal/contextutil"
	"icongallery/internal/icons"
	"icongallery/internal/storage"
	"icongallery/internal/tokens"
)

// Source provides the token document.
type Source interface {
	Fetch(ctx context.Context) (*tokens.Document, error)
}

// Snapshot is one immutable generation of the icon index.
type Snapshot struct {
	ID       string       // Load ID; empty before the first load
	Source   string       // URL the document came from
	LoadedAt time.Time    // When the load completed
	Index    *icons.Index // Never nil
}

// State describes what the catalog is doing.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Status is a point-in-time view of the catalog.
type Status struct {
	State       State     `json:"state"`
	Loading     bool      `json:"loading"`
	Error       string    `json:"error,omitempty"`
	LoadID      string    `json:"load_id,omitempty"`
	Source      string    `json:"source,omitempty"`
	LoadedAt    time.Time `json:"loaded_at"`
	LastAttempt time.Time `json:"last_attempt"`
	IconCount   int       `json:"icon_count"`
}

// Catalog owns the current icon index. Readers take a Snapshot and may keep
// using it after a reload has replaced it; the index inside is never mutated.
//
// Every load is tagged with a sequence number. A completed load is only
// installed if no load that started later has been installed already.
type Catalog struct {
	source Source
	store  storage.LoadStore // nil disables persistence
	retain int
	now    func() time.Time

	current atomic.Pointer[Snapshot]

	mu          sync.Mutex
	started     uint64
	installed   uint64
	inflight    int
	lastErr     string
	lastAttempt time.Time
}

// New creates a Catalog with an empty snapshot. store may be nil; retain is
// the number of stored loads kept after each successful load.
func New(source Source, store storage.LoadStore, retain int) *Catalog {
	c := &Catalog{
		source: source,
		store:  store,
		retain: retain,
		now:    time.Now,
	}
	c.current.Store(&Snapshot{Index: icons.NewIndex(nil)})
	return c
}

// Snapshot returns the current snapshot. It never returns nil.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Status reports the loading state, the last error and the current snapshot.
func (c *Catalog) Status() Status {
	snap := c.current.Load()

	c.mu.Lock()
	defer c.mu.Unlock()

	st := Status{
		Loading:     c.inflight > 0,
		Error:       c.lastErr,
		LoadID:      snap.ID,
		Source:      snap.Source,
		LoadedAt:    snap.LoadedAt,
		LastAttempt: c.lastAttempt,
		IconCount:   snap.Index.Len(),
	}
	switch {
	case st.Loading:
		st.State = StateLoading
	case st.Error != "":
		st.State = StateFailed
	case snap.ID != "":
		st.State = StateReady
	default:
		st.State = StateIdle
	}
	return st
}

// Reload fetches the token document and replaces the index. On failure the
// error message is recorded and the previous snapshot stays in place.
func (c *Catalog) Reload(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)
	seq := c.begin()

	doc, err := c.source.Fetch(ctx)
	if err != nil {
		c.fail(seq, err)
		logger.ErrorContext(ctx, "failed to load icon tokens", "seq", seq, "error", err)
		return fmt.Errorf("failed to load icon tokens: %w", err)
	}

	snap := &Snapshot{
		ID:       uuid.New().String(),
		Source:   doc.Source,
		LoadedAt: c.now(),
		Index:    icons.Build(doc.Root),
	}
	if !c.install(seq, snap) {
		logger.InfoContext(ctx, "discarded stale icon load", "seq", seq, "load_id", snap.ID)
		return nil
	}
	logger.InfoContext(ctx, "icon index loaded", "load_id", snap.ID, "icons", snap.Index.Len(), "source", snap.Source)

	c.persist(ctx, snap, doc)
	return nil
}

// Restore installs the most recently stored document, if any. It is meant
// to run at startup so the gallery has icons while the first fetch is
// in flight. A snapshot installed by a newer Reload is never replaced.
func (c *Catalog) Restore(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	logger := contextutil.LoggerFromContext(ctx)
	seq := c.begin()

	load, err := c.store.Latest(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		c.finish()
		return nil
	}
	if err != nil {
		c.finish()
		return fmt.Errorf("failed to read stored load: %w", err)
	}

	root, err := tokens.Parse(load.Document, load.RootPath)
	if err != nil {
		c.finish()
		return fmt.Errorf("failed to parse stored load %s: %w", load.ID, err)
	}

	snap := &Snapshot{
		ID:       load.ID,
		Source:   load.Source,
		LoadedAt: load.LoadedAt,
		Index:    icons.Build(root),
	}
	if c.install(seq, snap) {
		logger.InfoContext(ctx, "icon index restored", "load_id", snap.ID, "icons", snap.Index.Len(), "loaded_at", snap.LoadedAt)
	}
	return nil
}

// History returns up to limit stored loads, newest first.
func (c *Catalog) History(ctx context.Context, limit int) ([]storage.LoadRecord, error) {
	if c.store == nil {
		return nil, nil
	}
	return c.store.List(ctx, limit)
}

func (c *Catalog) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
	c.inflight++
	c.lastAttempt = c.now()
	return c.started
}

func (c *Catalog) finish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
}

func (c *Catalog) fail(seq uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if seq > c.installed {
		c.lastErr = err.Error()
	}
}

func (c *Catalog) install(seq uint64, snap *Snapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if seq < c.installed {
		return false
	}
	c.installed = seq
	c.lastErr = ""
	c.current.Store(snap)
	return true
}

func (c *Catalog) persist(ctx context.Context, snap *Snapshot, doc *tokens.Document) {
	if c.store == nil {
		return
	}
	logger := contextutil.LoggerFromContext(ctx)

	err := c.store.Save(ctx, &storage.LoadRecord{
		ID:        snap.ID,
		Source:    doc.Source,
		RootPath:  doc.RootPath,
		IconCount: snap.Index.Len(),
		Document:  doc.Raw,
		LoadedAt:  snap.LoadedAt,
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to store icon load", "load_id", snap.ID, "error", err)
		return
	}

	removed, err := c.store.Prune(ctx, c.retain)
	if err != nil {
		logger.WarnContext(ctx, "failed to prune stored loads", "error", err)
		return
	}
	if removed > 0 {
		logger.DebugContext(ctx, "pruned stored loads", "removed", removed)
	}
}
