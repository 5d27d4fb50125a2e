package clinic_service

import (
	"context"
	"fmt"

	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
)

// LoadState hydrates the aggregate from the startup snapshot: enabled
// specialty/provider sets, prior patients and appointments. Both id
// allocators resume past the highest loaded id, and the running total
// is recomputed from Paid appointments since the legacy snapshot does
// not carry it.
func (s *ClinicService) LoadState(ctx context.Context) error {
	snapshot, err := s.snapshotPort.Load(ctx)
	if err != nil {
		return err
	}

	if len(snapshot.Specialties) > 0 {
		specialties := make([]domain.Specialty, 0, len(snapshot.Specialties))
		for _, raw := range snapshot.Specialties {
			specialty, ok := domain.ParseSpecialty(string(raw))
			if !ok {
				s.logger.Warn("state.load.unknown_specialty", out.LogFields{
					"sessionId": s.sessionID,
					"specialty": raw,
				})
				continue
			}
			specialties = append(specialties, specialty)
		}
		if len(specialties) > 0 {
			s.specialties = specialties
		}
	}

	if len(snapshot.Providers) > 0 {
		providers := make([]domain.InsuranceProvider, 0, len(snapshot.Providers))
		for _, raw := range snapshot.Providers {
			provider, ok := domain.ParseInsuranceProvider(string(raw))
			if !ok {
				s.logger.Warn("state.load.unknown_provider", out.LogFields{
					"sessionId": s.sessionID,
					"provider":  raw,
				})
				continue
			}
			providers = append(providers, provider)
		}
		if len(providers) > 0 {
			s.providers = providers
		}
	}

	for _, patient := range snapshot.Patients {
		s.patients = append(s.patients, patient)
		if patient.ID >= s.nextPatientID {
			s.nextPatientID = patient.ID + 1
		}
		if s.cachePort != nil && s.cfg.Cache.Enabled {
			s.cachePort.StorePatient(ctx, patient)
		}
	}

	for _, appointment := range snapshot.Appointments {
		// Snapshots written by hand may leave the status out
		if appointment.Status == "" {
			appointment.Status = domain.AppointmentStatusActive
		}
		s.appointments = append(s.appointments, appointment)
		if appointment.ID >= s.nextAppointmentID {
			s.nextAppointmentID = appointment.ID + 1
		}
		if appointment.Status == domain.AppointmentStatusPaid {
			s.totalCollected += appointment.AmountDue
		}
	}

	s.logger.Info("state.load.ok", out.LogFields{
		"sessionId":    s.sessionID,
		"patients":     len(s.patients),
		"appointments": len(s.appointments),
	})

	return nil
}

// SaveState writes the whole aggregate back through the snapshot port.
func (s *ClinicService) SaveState(ctx context.Context) error {
	snapshot := &domain.Snapshot{
		SessionID:    s.sessionID.String(),
		Specialties:  s.specialties,
		Providers:    s.providers,
		Patients:     s.patients,
		Appointments: s.appointments,
	}

	if err := s.snapshotPort.Save(ctx, snapshot); err != nil {
		s.logger.Error("state.save.failed", out.LogFields{
			"sessionId": s.sessionID,
			"error":     err.Error(),
		})
		return fmt.Errorf("state.save.failed: %w", err)
	}

	s.logger.Info("state.save.ok", out.LogFields{
		"sessionId":    s.sessionID,
		"patients":     len(s.patients),
		"appointments": len(s.appointments),
	})

	return nil
}
