package repository

import (
	"context"

	"github.com/bnema/sash/internal/domain/entity"
)

// LayoutSnapshotRepository persists named layout snapshots.
type LayoutSnapshotRepository interface {
	// Save creates or replaces the snapshot with the same name.
	Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error

	// Get returns the snapshot with the given name, or nil when none exists.
	Get(ctx context.Context, name string) (*entity.LayoutSnapshot, error)

	// List returns every snapshot, most recently saved first.
	List(ctx context.Context) ([]*entity.LayoutSnapshot, error)

	// Delete removes a snapshot. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// Prune keeps the keep most recent snapshots and returns how many were removed.
	Prune(ctx context.Context, keep int) (int64, error)
}
