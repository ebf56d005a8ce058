package placeholder

import (
	"context"
	"fmt"
	"io"
	"time"

	"clinic-intake-backend/internal/shared/storage/object"
)

// Store mints placeholder storage keys without persisting any bytes.
// Keys are placeholder/<epoch-millis>_<fileName>; nothing beyond timestamp
// granularity guards against collisions, so rapid concurrent uploads of the
// same filename can collide.
type Store struct {
	now func() time.Time
}

// New creates a placeholder store.
func New() *Store {
	return &Store{now: time.Now}
}

// NewWithClock creates a placeholder store with an injected clock for tests.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Put returns a placeholder key for the file name. The reader is ignored;
// upload bytes are not modeled.
func (s *Store) Put(ctx context.Context, fileName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("placeholder/%d_%s", s.now().UnixMilli(), fileName), nil
}

// Get always fails; no bytes were ever stored.
func (s *Store) Get(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, object.ErrNoBytes
}

var _ object.Store = (*Store)(nil)
