package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/footballgraph/graph"
)

// Bucket names for version persistence.
const (
	BucketVersions = "FOOTBALLGRAPH_VERSIONS"
)

// versionRecord is the KV wire form: the version record together with the
// delta it applied, which is all chain replay needs.
type versionRecord struct {
	Version Version     `json:"version"`
	Delta   graph.Delta `json:"delta"`
}

// KVPersistence stores the version chain in a NATS JetStream KV bucket,
// one entry per version keyed by version id.
type KVPersistence struct {
	bucket jetstream.KeyValue
}

// OpenKV opens (or creates) the version bucket.
func OpenKV(ctx context.Context, js jetstream.JetStream, bucket string) (*KVPersistence, error) {
	if bucket == "" {
		bucket = BucketVersions
	}
	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "footballgraph version chain",
	})
	if err != nil {
		return nil, fmt.Errorf("open version bucket %s: %w", bucket, err)
	}
	return &KVPersistence{bucket: kv}, nil
}

// SaveVersion writes one version record. Create rejects duplicate ids, which
// keeps the chain append-only even under operator error.
func (p *KVPersistence) SaveVersion(ctx context.Context, v Version, delta graph.Delta) error {
	data, err := json.Marshal(versionRecord{Version: v, Delta: delta})
	if err != nil {
		return fmt.Errorf("marshal version record: %w", err)
	}
	if _, err := p.bucket.Create(ctx, v.ID, data); err != nil {
		return fmt.Errorf("store version record: %w", err)
	}
	return nil
}

// LoadChain loads every persisted version and orders it by walking the
// previous-version pointers from the root.
func (p *KVPersistence) LoadChain(ctx context.Context) ([]Version, []graph.Delta, error) {
	keys, err := p.bucket.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("list version keys: %w", err)
	}

	byPrev := make(map[string]versionRecord, len(keys))
	for _, key := range keys {
		entry, err := p.bucket.Get(ctx, key)
		if err != nil {
			return nil, nil, fmt.Errorf("load version %s: %w", key, err)
		}
		var rec versionRecord
		if err := json.Unmarshal(entry.Value(), &rec); err != nil {
			return nil, nil, fmt.Errorf("unmarshal version %s: %w", key, err)
		}
		if _, dup := byPrev[rec.Version.PreviousVersionID]; dup {
			return nil, nil, fmt.Errorf("version chain is not linear at %s", rec.Version.ID)
		}
		byPrev[rec.Version.PreviousVersionID] = rec
	}

	versions := make([]Version, 0, len(byPrev))
	deltas := make([]graph.Delta, 0, len(byPrev))
	prev := ""
	for range byPrev {
		rec, ok := byPrev[prev]
		if !ok {
			return nil, nil, fmt.Errorf("version chain is broken after %q", prev)
		}
		versions = append(versions, rec.Version)
		deltas = append(deltas, rec.Delta)
		prev = rec.Version.ID
	}
	return versions, deltas, nil
}
