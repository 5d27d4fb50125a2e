package clinic_service

import (
	"context"

	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
)

// RevenueReport groups Paid appointments by the patient's insurance
// provider. Providers with no paid appointments are omitted; the
// minimum keeps the first-encountered provider on ties, with encounter
// order taken from the appointment list.
func (s *ClinicService) RevenueReport(ctx context.Context) *domain.RevenueReport {
	totals := make(map[domain.InsuranceProvider]float64)
	order := make([]domain.InsuranceProvider, 0)

	for _, appointment := range s.appointments {
		if appointment.Status != domain.AppointmentStatusPaid {
			continue
		}

		patient := s.lookupPatient(ctx, appointment.PatientID)
		if patient == nil {
			// A paid appointment always references a registered
			// patient; a dangling reference can only come from a
			// hand-edited snapshot, so skip it rather than fail.
			s.logger.Warn("report.revenue.dangling_patient", out.LogFields{
				"sessionId":     s.sessionID,
				"appointmentId": appointment.ID,
				"patientId":     appointment.PatientID,
			})
			continue
		}

		if _, seen := totals[patient.Insurance]; !seen {
			order = append(order, patient.Insurance)
		}
		totals[patient.Insurance] += appointment.AmountDue
	}

	report := &domain.RevenueReport{
		Totals: make([]domain.ProviderRevenue, 0, len(order)),
	}
	for _, provider := range order {
		entry := domain.ProviderRevenue{Provider: provider, Total: totals[provider]}
		report.Totals = append(report.Totals, entry)

		if report.Lowest == nil || entry.Total < report.Lowest.Total {
			lowest := entry
			report.Lowest = &lowest
		}
	}

	return report
}
