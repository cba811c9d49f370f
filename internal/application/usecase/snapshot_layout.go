package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/domain/repository"
	"github.com/bnema/sash/internal/logging"
)

const maxSnapshotNameLen = 64

var (
	ErrSnapshotNotFound    = errors.New("snapshot not found")
	ErrInvalidSnapshotName = errors.New("invalid snapshot name")
)

// SnapshotLayoutUseCase saves and restores named layouts.
type SnapshotLayoutUseCase struct {
	repo         repository.LayoutSnapshotRepository
	maxSnapshots int
	now          func() time.Time
}

// NewSnapshotLayoutUseCase creates the use case. When maxSnapshots is
// positive, older snapshots beyond that count are pruned after each save.
func NewSnapshotLayoutUseCase(repo repository.LayoutSnapshotRepository, maxSnapshots int) *SnapshotLayoutUseCase {
	return &SnapshotLayoutUseCase{
		repo:         repo,
		maxSnapshots: maxSnapshots,
		now:          time.Now,
	}
}

// ValidateSnapshotName checks a user supplied snapshot name.
func ValidateSnapshotName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSnapshotName)
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("%w: %q has surrounding spaces", ErrInvalidSnapshotName, name)
	}
	if len(name) > maxSnapshotNameLen {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidSnapshotName, maxSnapshotNameLen)
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: %q contains control characters", ErrInvalidSnapshotName, name)
	}
	return nil
}

// Save exports tree under name, replacing an existing snapshot of that name.
func (uc *SnapshotLayoutUseCase) Save(ctx context.Context, name string, tree *entity.Tree) (*entity.LayoutSnapshot, error) {
	if err := ValidateSnapshotName(name); err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, ErrNoLayout
	}

	snapshot := entity.NewLayoutSnapshot(name, tree, uc.now())
	if err := uc.Store(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Store persists an already exported snapshot. The tree is not touched, so
// callers off the UI goroutine export first and store later.
func (uc *SnapshotLayoutUseCase) Store(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)

	if snapshot == nil {
		return ErrNoLayout
	}
	if err := ValidateSnapshotName(snapshot.Name); err != nil {
		return err
	}
	if err := uc.repo.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save snapshot %q: %w", snapshot.Name, err)
	}
	log.Debug().Str("snapshot", snapshot.Name).Int("pane_count", snapshot.PaneCount).Msg("layout snapshot saved")

	if uc.maxSnapshots > 0 {
		if _, err := uc.repo.Prune(ctx, uc.maxSnapshots); err != nil {
			// The snapshot itself is stored.
			log.Warn().Err(err).Msg("failed to prune layout snapshots")
		}
	}
	return nil
}

// Get returns the snapshot named name.
func (uc *SnapshotLayoutUseCase) Get(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	snapshot, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", name, err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("%w: %q", ErrSnapshotNotFound, name)
	}
	return snapshot, nil
}

// Restore rebuilds the tree saved under name into bounds. A zero bounds
// restores into the container the snapshot was taken in.
func (uc *SnapshotLayoutUseCase) Restore(ctx context.Context, name string, bounds entity.Rect, opts ...entity.TreeOption) (*entity.Tree, error) {
	snapshot, err := uc.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	tree, err := snapshot.Restore(bounds, opts...)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().
		Str("snapshot", name).
		Int("panes", len(tree.Leaves())).
		Msg("layout snapshot restored")
	return tree, nil
}

// List returns all snapshots, newest first.
func (uc *SnapshotLayoutUseCase) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	snapshots, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snapshots, nil
}

// Delete removes the snapshot named name.
func (uc *SnapshotLayoutUseCase) Delete(ctx context.Context, name string) error {
	if _, err := uc.Get(ctx, name); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}
	logging.FromContext(ctx).Info().Str("snapshot", name).Msg("layout snapshot deleted")
	return nil
}
