package snapshot

import (
	"encoding/json"
	"time"

	"voyage/domain/core"
)

// Snapshot is one archived analysis table: which dataset it came from,
// which analysis produced it, and the full table as JSON. Archiving is an
// audit trail layered on top of the stateless analysis core; nothing reads
// snapshots back into a computation.
type Snapshot struct {
	ID        core.SnapshotID `json:"id" db:"id"`
	Locator   string          `json:"locator" db:"locator"`
	Analysis  string          `json:"analysis" db:"analysis"`
	RowCount  int             `json:"row_count" db:"row_count"`
	Payload   json.RawMessage `json:"payload" db:"payload"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// New builds a snapshot for an analysis table already marshaled to JSON.
func New(locator, analysis string, rowCount int, payload json.RawMessage) *Snapshot {
	return &Snapshot{
		ID:        core.SnapshotID(core.NewID()),
		Locator:   locator,
		Analysis:  analysis,
		RowCount:  rowCount,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}
