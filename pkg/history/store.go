package history

import "context"

// Key is the fixed store key the history record lives under.
const Key = "lifeHistory"

// Store is the durable key-value backend a Manager persists into.
type Store interface {
	Init(ctx context.Context) error
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}
