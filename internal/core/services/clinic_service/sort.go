package clinic_service

import (
	"context"
	"fmt"
	"sort"

	"github.com/ignacioG00/clinica-go/internal/core/ports/in"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
)

// SortAppointments reorders the stored appointment list in place.
// Both criteria need a stable sort so that ties keep their original
// relative order.
func (s *ClinicService) SortAppointments(ctx context.Context, criterion in.SortCriterion) error {
	switch criterion {
	case in.SortByInsuranceAsc:
		sort.SliceStable(s.appointments, func(i, j int) bool {
			return s.insuranceKey(ctx, s.appointments[i].PatientID) < s.insuranceKey(ctx, s.appointments[j].PatientID)
		})
	case in.SortByAmountDesc:
		sort.SliceStable(s.appointments, func(i, j int) bool {
			return s.appointments[i].AmountDue > s.appointments[j].AmountDue
		})
	default:
		return fmt.Errorf("unknown sort criterion %q", criterion)
	}

	s.logger.Info("appointments.sort.ok", out.LogFields{
		"sessionId": s.sessionID,
		"criterion": criterion,
	})

	return nil
}

// insuranceKey is the case-insensitive ordering key for a patient's
// provider; appointments whose patient cannot be resolved sort first.
func (s *ClinicService) insuranceKey(ctx context.Context, patientID int) string {
	patient := s.lookupPatient(ctx, patientID)
	if patient == nil {
		return ""
	}

	return patient.Insurance.Key()
}
