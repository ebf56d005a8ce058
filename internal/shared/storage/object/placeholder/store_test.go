package placeholder

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-intake-backend/internal/shared/storage/object"
)

func TestPutMintsPlaceholderKey(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	store := NewWithClock(func() time.Time { return at })

	key, err := store.Put(context.Background(), "intake.pdf", nil)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if key != "placeholder/1700000000000_intake.pdf" {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestGetHoldsNoBytes(t *testing.T) {
	store := New()

	_, err := store.Get(context.Background(), "placeholder/1_intake.pdf")
	if !errors.Is(err, object.ErrNoBytes) {
		t.Fatalf("expected ErrNoBytes, got %v", err)
	}
}
