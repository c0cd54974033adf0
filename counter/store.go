package counter

import "context"

// Store persists a single Counter. Implementations overwrite the whole value
// on Write; there is no partial update.
type Store interface {
	Read(ctx context.Context) (Counter, error)
	Write(ctx context.Context, counter Counter) error
}
