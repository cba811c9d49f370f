package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/sash/internal/application/port"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/domain/repository"
)

// LazyLayoutSnapshotRepository wraps the snapshot repository with lazy
// database initialization. The terminal host uses it so startup never waits
// on the database.
type LazyLayoutSnapshotRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutSnapshotRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutSnapshotRepository creates a lazy-loading snapshot repository.
func NewLazyLayoutSnapshotRepository(provider port.DatabaseProvider) repository.LayoutSnapshotRepository {
	return &LazyLayoutSnapshotRepository{provider: provider}
}

func (r *LazyLayoutSnapshotRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutSnapshotRepository(db)
	})
	return r.initErr
}

func (r *LazyLayoutSnapshotRepository) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, snapshot)
}

func (r *LazyLayoutSnapshotRepository) Get(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, name)
}

func (r *LazyLayoutSnapshotRepository) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyLayoutSnapshotRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}

func (r *LazyLayoutSnapshotRepository) Prune(ctx context.Context, keep int) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.Prune(ctx, keep)
}
