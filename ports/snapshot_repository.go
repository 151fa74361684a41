package ports

import (
	"context"

	"voyage/domain/snapshot"
)

// SnapshotRepository defines the interface for the optional analysis archive
type SnapshotRepository interface {
	Save(ctx context.Context, snap *snapshot.Snapshot) error
	ListRecent(ctx context.Context, limit int) ([]*snapshot.Snapshot, error)
}
