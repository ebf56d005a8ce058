package object

import (
	"context"
	"errors"
	"io"
)

// ErrNoBytes is returned by stores that only mint keys and hold no content.
var ErrNoBytes = errors.New("object store holds no bytes for this key")

// Store defines the contract for placing and retrieving upload bytes.
// The upload service depends on this capability only for the storage key, so
// a real object store can be swapped in without touching the service.
type Store interface {
	Put(ctx context.Context, fileName string, r io.Reader) (storageKey string, err error)
	Get(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
