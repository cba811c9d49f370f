// Package snapshot autosaves the live layout with debounced writes.
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/logging"
)

const defaultInterval = 500 * time.Millisecond

// Service handles debounced layout snapshots.
type Service struct {
	snapshotUC *usecase.SnapshotLayoutUseCase
	name       string
	interval   time.Duration
	now        func() time.Time

	mu      sync.Mutex
	timer   *time.Timer
	pending *entity.LayoutSnapshot
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewService creates a service that stores the layout under name.
func NewService(snapshotUC *usecase.SnapshotLayoutUseCase, name string, interval time.Duration) *Service {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		snapshotUC: snapshotUC,
		name:       name,
		interval:   interval,
		now:        time.Now,
	}
}

// Name returns the snapshot name the service writes to.
func (s *Service) Name() string {
	return s.name
}

// Start begins accepting dirty marks.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().
		Str("snapshot", s.name).
		Dur("interval", s.interval).
		Msg("snapshot autosave started")
}

// Stop stops the service and saves final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty exports tree and schedules a save. The export happens on the
// caller's goroutine, which must own the tree; later marks replace
// earlier ones that have not been written yet.
func (s *Service) MarkDirty(tree *entity.Tree) {
	if tree == nil {
		return
	}
	snap := entity.NewLayoutSnapshot(s.name, tree, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = snap

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.save(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to autosave layout snapshot")
		}
	})
}

// Dirty reports whether a snapshot is waiting to be written.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// SaveNow writes the pending snapshot immediately.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.save(ctx)
}

func (s *Service) save(ctx context.Context) error {
	s.mu.Lock()
	snap := s.pending
	s.pending = nil
	s.mu.Unlock()

	if snap == nil {
		return nil
	}

	if err := s.snapshotUC.Store(ctx, snap); err != nil {
		// Keep it for the next attempt unless a newer mark replaced it.
		s.mu.Lock()
		if s.pending == nil {
			s.pending = snap
		}
		s.mu.Unlock()
		return err
	}
	return nil
}
