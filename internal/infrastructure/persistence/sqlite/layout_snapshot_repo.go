package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/domain/repository"
	"github.com/bnema/sash/internal/logging"
)

const (
	upsertSnapshotSQL = `
INSERT INTO layout_snapshots (name, version, layout_json, width, height, pane_count, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (name) DO UPDATE SET
    version     = excluded.version,
    layout_json = excluded.layout_json,
    width       = excluded.width,
    height      = excluded.height,
    pane_count  = excluded.pane_count,
    updated_at  = excluded.updated_at`

	selectSnapshotColumns = `SELECT name, version, layout_json, width, height, pane_count, updated_at FROM layout_snapshots`

	getSnapshotSQL   = selectSnapshotColumns + ` WHERE name = ?`
	listSnapshotsSQL = selectSnapshotColumns + ` ORDER BY updated_at DESC, name ASC`

	deleteSnapshotSQL = `DELETE FROM layout_snapshots WHERE name = ?`

	pruneSnapshotsSQL = `
DELETE FROM layout_snapshots
WHERE name NOT IN (
    SELECT name FROM layout_snapshots ORDER BY updated_at DESC, name ASC LIMIT ?
)`
)

type layoutSnapshotRepo struct {
	db *sql.DB
}

// NewLayoutSnapshotRepository creates a SQLite backed snapshot repository.
func NewLayoutSnapshotRepository(db *sql.DB) repository.LayoutSnapshotRepository {
	return &layoutSnapshotRepo{db: db}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (r *layoutSnapshotRepo) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if snapshot == nil {
		return errors.New("layout snapshot cannot be nil")
	}
	if snapshot.Name == "" {
		return errors.New("layout snapshot name cannot be empty")
	}

	layoutJSON, err := json.Marshal(snapshot.Layout.Map())
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal layout snapshot")
		return fmt.Errorf("marshal snapshot %q: %w", snapshot.Name, err)
	}

	savedAt := snapshot.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	version := snapshot.Version
	if version == 0 {
		version = entity.LayoutSnapshotVersion
	}

	log.Debug().
		Str("snapshot", snapshot.Name).
		Int("pane_count", snapshot.PaneCount).
		Msg("saving layout snapshot")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("snapshot rollback reported non-terminal error")
		}
	}()

	if _, err := tx.ExecContext(ctx, upsertSnapshotSQL,
		snapshot.Name,
		version,
		string(layoutJSON),
		snapshot.Width,
		snapshot.Height,
		snapshot.PaneCount,
		savedAt.UnixMilli(),
	); err != nil {
		return fmt.Errorf("upsert snapshot %q: %w", snapshot.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot transaction: %w", err)
	}
	return nil
}

func (r *layoutSnapshotRepo) Get(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	snapshot, err := scanSnapshot(r.db.QueryRowContext(ctx, getSnapshotSQL, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logging.FromContext(ctx).Error().Err(err).Str("snapshot", name).Msg("failed to load layout snapshot")
		return nil, err
	}
	return snapshot, nil
}

func (r *layoutSnapshotRepo) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, listSnapshotsSQL)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*entity.LayoutSnapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("skipping corrupted layout snapshot")
			continue
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snapshots, nil
}

func (r *layoutSnapshotRepo) Delete(ctx context.Context, name string) error {
	logging.FromContext(ctx).Debug().Str("snapshot", name).Msg("deleting layout snapshot")
	if _, err := r.db.ExecContext(ctx, deleteSnapshotSQL, name); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}
	return nil
}

func (r *layoutSnapshotRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("prune snapshots: keep must be >= 0, got %d", keep)
	}
	res, err := r.db.ExecContext(ctx, pruneSnapshotsSQL, keep)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	if removed > 0 {
		logging.FromContext(ctx).Debug().Int64("removed", removed).Int("kept", keep).Msg("pruned layout snapshots")
	}
	return removed, nil
}

func scanSnapshot(row scanner) (*entity.LayoutSnapshot, error) {
	var (
		s          entity.LayoutSnapshot
		layoutJSON string
		updatedAt  int64
	)
	if err := row.Scan(&s.Name, &s.Version, &layoutJSON, &s.Width, &s.Height, &s.PaneCount, &updatedAt); err != nil {
		return nil, err
	}
	s.SavedAt = time.UnixMilli(updatedAt)

	var raw any
	if err := json.Unmarshal([]byte(layoutJSON), &raw); err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", s.Name, err)
	}
	entry, err := entity.DecodeLayoutEntry(raw)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", s.Name, err)
	}
	layout, err := entity.Normalize(entry)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", s.Name, err)
	}
	s.Layout = layout
	return &s, nil
}
