package out

import (
	"context"

	"github.com/ignacioG00/clinica-go/internal/core/domain"
)

// CachePort fronts patient lookups by id. Patients are immutable after
// registration, so entries never need invalidation.
type CachePort interface {
	GetPatient(ctx context.Context, patientID int) (*domain.Patient, bool)
	StorePatient(ctx context.Context, patient *domain.Patient)
}
