package postgres

import (
	"context"
	"fmt"

	"voyage/domain/snapshot"
	"voyage/ports"

	"github.com/jmoiron/sqlx"
)

// snapshotRepository implements the SnapshotRepository interface
type snapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *sqlx.DB) ports.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Save inserts an archived analysis table into the database
func (r *snapshotRepository) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	query := `INSERT INTO analysis_snapshots (
		id, locator, analysis, row_count, payload, created_at
	) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		snap.ID.String(), snap.Locator, snap.Analysis, snap.RowCount, []byte(snap.Payload), snap.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// ListRecent retrieves the most recently archived tables, newest first
func (r *snapshotRepository) ListRecent(ctx context.Context, limit int) ([]*snapshot.Snapshot, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, locator, analysis, row_count, payload, created_at
	FROM analysis_snapshots
	ORDER BY created_at DESC
	LIMIT $1`

	var snaps []*snapshot.Snapshot
	if err := r.db.SelectContext(ctx, &snaps, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snaps, nil
}
