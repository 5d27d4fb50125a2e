package clinic_service

import (
	"context"

	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/ports/in"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
)

// The clinic runs two service desks, so each serving pass takes at
// most the first two Active appointments in stored order.
const serviceDesks = 2

// WaitingAppointments lists Active appointments joined with their
// patients, in the current stored order.
func (s *ClinicService) WaitingAppointments(ctx context.Context) []in.WaitingEntry {
	waiting := make([]in.WaitingEntry, 0)
	for _, appointment := range s.appointments {
		if appointment.Status != domain.AppointmentStatusActive {
			continue
		}
		waiting = append(waiting, in.WaitingEntry{
			Appointment: appointment,
			Patient:     s.lookupPatient(ctx, appointment.PatientID),
		})
	}

	return waiting
}

// ServeNextPatients transitions up to serviceDesks Active appointments
// to Completed and returns them. An empty result means nobody was
// waiting.
func (s *ClinicService) ServeNextPatients(ctx context.Context) []*domain.Appointment {
	served := make([]*domain.Appointment, 0, serviceDesks)
	for _, appointment := range s.appointments {
		if appointment.Status != domain.AppointmentStatusActive {
			continue
		}

		appointment.Status = domain.AppointmentStatusCompleted
		served = append(served, appointment)
		if len(served) == serviceDesks {
			break
		}
	}

	if len(served) == 0 {
		s.logger.Info("queue.serve.empty", out.LogFields{
			"sessionId": s.sessionID,
		})
		return served
	}

	s.logger.Info("queue.serve.ok", out.LogFields{
		"sessionId": s.sessionID,
		"served":    len(served),
	})

	return served
}

// BillCompleted transitions every Completed appointment to Paid and
// adds its amount to the running total.
func (s *ClinicService) BillCompleted(ctx context.Context) in.BillingResult {
	result := in.BillingResult{Billed: make([]*domain.Appointment, 0)}
	for _, appointment := range s.appointments {
		if appointment.Status != domain.AppointmentStatusCompleted {
			continue
		}

		appointment.Status = domain.AppointmentStatusPaid
		s.totalCollected += appointment.AmountDue
		result.Billed = append(result.Billed, appointment)
		result.Amount += appointment.AmountDue
	}

	if len(result.Billed) == 0 {
		s.logger.Info("queue.bill.empty", out.LogFields{
			"sessionId": s.sessionID,
		})
		return result
	}

	s.logger.Info("queue.bill.ok", out.LogFields{
		"sessionId": s.sessionID,
		"billed":    len(result.Billed),
		"amount":    result.Amount,
	})

	return result
}

// CloseRegister refuses to close while any appointment is still Active
// or Completed. On success it persists the whole state and returns the
// session total.
func (s *ClinicService) CloseRegister(ctx context.Context) (float64, error) {
	pending := 0
	for _, appointment := range s.appointments {
		if appointment.Status != domain.AppointmentStatusPaid {
			pending++
		}
	}
	if pending > 0 {
		s.logger.Warn("register.close.rejected", out.LogFields{
			"sessionId": s.sessionID,
			"pending":   pending,
		})
		return 0, &domain.RegisterNotClosableError{Pending: pending}
	}

	if err := s.SaveState(ctx); err != nil {
		return 0, err
	}

	s.logger.Info("register.close.ok", out.LogFields{
		"sessionId":      s.sessionID,
		"totalCollected": s.totalCollected,
	})

	return s.totalCollected, nil
}
