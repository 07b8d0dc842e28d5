package progress

import (
	"context"

	"github.com/papapumpkin/jugglelog/internal/storage"
)

// StorageKey is the fixed key progress is persisted under.
const StorageKey = "juggleLogProgress"

// Gateway persists the serialized store. Load reports ok=false when nothing
// has been saved yet.
type Gateway interface {
	Load(ctx context.Context) (data []byte, ok bool, err error)
	Save(ctx context.Context, data []byte) error
}

// KeyedGateway stores progress under a single key of a blob backend.
type KeyedGateway struct {
	blobs storage.Blobs
	key   string
}

// NewKeyedGateway returns a Gateway over blobs. An empty key means StorageKey.
func NewKeyedGateway(blobs storage.Blobs, key string) *KeyedGateway {
	if key == "" {
		key = StorageKey
	}
	return &KeyedGateway{blobs: blobs, key: key}
}

// Key returns the key progress is stored under.
func (g *KeyedGateway) Key() string { return g.key }

// Load reads the stored blob.
func (g *KeyedGateway) Load(ctx context.Context) ([]byte, bool, error) {
	return g.blobs.Get(ctx, g.key)
}

// Save writes the blob.
func (g *KeyedGateway) Save(ctx context.Context, data []byte) error {
	return g.blobs.Put(ctx, g.key, data)
}
