package out

import (
	"context"

	"github.com/ignacioG00/clinica-go/internal/core/domain"
)

// SnapshotPort reads and writes the whole-document state. Load runs
// once at startup, Save once at register close; there is no partial
// persistence.
type SnapshotPort interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snapshot *domain.Snapshot) error
}
