package repository

import (
	"context"
	"errors"
)

// ErrCorruptSnapshot is returned when a stored payload cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// SnapshotStore persists one JSON document per named slot.
type SnapshotStore interface {
	// Load decodes the slot into dst and reports whether it existed.
	Load(ctx context.Context, slot string, dst any) (bool, error)
	Save(ctx context.Context, slot string, src any) error
}
