package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/vocabulary/prov"
	"github.com/c360studio/footballgraph/vocabulary/versioning"
)

// Options configures the graph store.
type Options struct {
	// VersionControl grows the version chain on commit. When disabled,
	// deltas apply to the materialized graph without version records.
	VersionControl bool
	// TrackProvenance attaches PROV metadata to each version.
	TrackProvenance bool
	// SnapshotTTL bounds how long materialized historical snapshots stay
	// cached. Zero keeps them until evicted by the cleanup interval.
	SnapshotTTL time.Duration
}

// DefaultOptions enables versioning and provenance with hour-long snapshots.
func DefaultOptions() Options {
	return Options{
		VersionControl:  true,
		TrackProvenance: true,
		SnapshotTTL:     time.Hour,
	}
}

// Persistence stores version records and their deltas durably so the chain
// survives restarts. The KV implementation lives in kv.go.
type Persistence interface {
	SaveVersion(ctx context.Context, v Version, delta graph.Delta) error
	LoadChain(ctx context.Context) ([]Version, []graph.Delta, error)
}

// GraphStore is the single-writer versioned graph store. Commits are
// serialized by a write lock, so concurrent partition consumers share one
// linear chain; reads run under a read lock against the materialized set.
type GraphStore struct {
	mu       sync.RWMutex
	current  graph.StatementSet
	versions map[string]Version
	deltas   map[string]graph.Delta
	order    []string
	head     string

	snapshots *gocache.Cache
	persist   Persistence
	opts      Options
	logger    *slog.Logger
}

// New creates an empty graph store.
func New(opts Options, logger *slog.Logger) *GraphStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &GraphStore{
		current:   graph.NewStatementSet(),
		versions:  make(map[string]Version),
		deltas:    make(map[string]graph.Delta),
		snapshots: gocache.New(opts.SnapshotTTL, 10*time.Minute),
		opts:      opts,
		logger:    logger,
	}
}

// Open creates a graph store backed by the given persistence, replaying any
// previously committed chain into memory.
func Open(ctx context.Context, persist Persistence, opts Options, logger *slog.Logger) (*GraphStore, error) {
	s := New(opts, logger)
	s.persist = persist

	versions, deltas, err := persist.LoadChain(ctx)
	if err != nil {
		return nil, fmt.Errorf("load version chain: %w", err)
	}
	for i, v := range versions {
		s.versions[v.ID] = v
		s.deltas[v.ID] = deltas[i]
		s.order = append(s.order, v.ID)
		s.current = deltas[i].Apply(s.current)
		s.head = v.ID
	}
	if len(versions) > 0 {
		s.logger.Info("Replayed version chain",
			"versions", len(versions),
			"statements", s.current.Len(),
			"head", s.head)
	}
	return s, nil
}

// Commit atomically applies a delta and appends a version record. Either the
// version record and the materialized set both advance, or neither does: the
// durable write happens before any in-memory state changes.
func (s *GraphStore) Commit(ctx context.Context, delta graph.Delta, meta Metadata) (Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opts.VersionControl {
		s.current = delta.Apply(s.current)
		return Version{}, nil
	}

	now := time.Now().UTC()
	if prev, ok := s.versions[s.head]; ok && !now.After(prev.Timestamp) {
		// Clock went backwards or stood still; keep timestamps strictly
		// increasing along the chain.
		now = prev.Timestamp.Add(time.Nanosecond)
	}

	v := Version{
		ID:                uuid.New().String(),
		Timestamp:         now,
		PreviousVersionID: s.head,
		Author:            meta.Author,
		ChangeType:        meta.ChangeType,
		Notes:             meta.Notes,
	}
	if s.opts.TrackProvenance {
		p := &Provenance{
			ActivityID:      prov.ActivityNamespace + uuid.New().String(),
			GeneratedAtTime: now,
			WasAttributedTo: meta.Author,
		}
		if s.head != "" {
			p.WasDerivedFrom = versioning.IRI(s.head)
		}
		v.Provenance = p
	}

	frozen := delta.Clone()
	if s.persist != nil {
		if err := s.persist.SaveVersion(ctx, v, frozen); err != nil {
			return Version{}, fmt.Errorf("persist version %s: %w", v.ID, err)
		}
	}

	s.current = frozen.Apply(s.current)
	s.versions[v.ID] = v
	s.deltas[v.ID] = frozen
	s.order = append(s.order, v.ID)
	s.head = v.ID
	s.snapshots.Set(v.ID, s.current.Clone(), gocache.DefaultExpiration)

	return v, nil
}

// Get returns the statement set of a historical version, from the snapshot
// cache when possible and otherwise by replaying the chain from the root.
func (s *GraphStore) Get(_ context.Context, versionID string) (graph.StatementSet, error) {
	if cached, ok := s.snapshots.Get(versionID); ok {
		return cached.(graph.StatementSet).Clone(), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.versions[versionID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrVersionNotFound, versionID)
	}

	set := graph.NewStatementSet()
	for _, id := range s.order {
		set = s.deltas[id].Apply(set)
		if id == versionID {
			break
		}
	}
	s.snapshots.Set(versionID, set.Clone(), gocache.DefaultExpiration)
	return set, nil
}

// Version returns the record of a single version in the chain.
func (s *GraphStore) Version(_ context.Context, versionID string) (Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.versions[versionID]
	if !ok {
		return Version{}, fmt.Errorf("%w: %s", ErrVersionNotFound, versionID)
	}
	return v, nil
}

// Latest returns the tip version of the chain.
func (s *GraphStore) Latest(_ context.Context) (Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.head == "" {
		return Version{}, ErrNoVersions
	}
	return s.versions[s.head], nil
}

// History returns the version chain from root to tip.
func (s *GraphStore) History(_ context.Context) ([]Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Version, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.versions[id])
	}
	return out, nil
}

// CurrentStatements returns the subject's statements in the materialized
// (tip) graph. The consumer layers pending buffered deltas on top of this
// view before handing prior state to the transformation engine.
func (s *GraphStore) CurrentStatements(subject string) []graph.Statement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.BySubject(subject)
}

// Size returns the number of statements in the materialized graph.
func (s *GraphStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Len()
}
