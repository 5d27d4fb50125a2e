package clinic_service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ignacioG00/clinica-go/internal/config"
	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/json_types"
	"github.com/ignacioG00/clinica-go/internal/core/ports/in"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
)

var _ in.ClinicUseCase = (*ClinicService)(nil)

// ClinicService is the aggregate owning all patients and appointments.
// One instance serves one interactive session; every operation runs to
// completion before the next, so no locking is needed.
type ClinicService struct {
	snapshotPort out.SnapshotPort
	cachePort    out.CachePort
	logger       out.LoggerPort
	cfg          *config.Config

	sessionID uuid.UUID

	specialties []domain.Specialty
	providers   []domain.InsuranceProvider

	patients     []*domain.Patient
	appointments []*domain.Appointment

	// Monotonic allocators owned by the aggregate, never global
	nextPatientID     int
	nextAppointmentID int

	totalCollected float64

	now func() time.Time
}

func NewClinicService(
	cfg *config.Config,
	snapshotPort out.SnapshotPort,
	cachePort out.CachePort,
	logger out.LoggerPort,
) *ClinicService {
	return &ClinicService{
		snapshotPort:      snapshotPort,
		cachePort:         cachePort,
		logger:            logger.WithModule("ClinicService"),
		cfg:               cfg,
		sessionID:         uuid.New(),
		specialties:       domain.AllSpecialties(),
		providers:         domain.AllInsuranceProviders(),
		patients:          make([]*domain.Patient, 0),
		appointments:      make([]*domain.Appointment, 0),
		nextPatientID:     1,
		nextAppointmentID: 1,
		now:               time.Now,
	}
}

func (s *ClinicService) SessionID() uuid.UUID {
	return s.sessionID
}

// RegisterPatient validates name, age and insurance in that order and
// fails on the first violated rule without touching state.
func (s *ClinicService) RegisterPatient(ctx context.Context, cmd in.RegisterPatientCommand) (*domain.Patient, error) {
	if !domain.ValidName(cmd.FirstName) {
		return nil, &domain.ValidationError{Field: "first_name", Reason: "must be alphabetic, 1 to 30 characters"}
	}
	if !domain.ValidName(cmd.LastName) {
		return nil, &domain.ValidationError{Field: "last_name", Reason: "must be alphabetic, 1 to 30 characters"}
	}
	if !domain.ValidAge(cmd.Age) {
		return nil, &domain.ValidationError{Field: "age", Reason: "must be between 18 and 90"}
	}
	if !domain.ValidInsurance(cmd.Insurance, cmd.Age) {
		return nil, &domain.ValidationError{Field: "insurance", Reason: "unknown provider or incompatible with age"}
	}

	for _, existing := range s.patients {
		if existing.DNI == cmd.DNI {
			s.logger.Warn("patient.register.duplicate_dni", out.LogFields{
				"sessionId": s.sessionID,
				"dni":       cmd.DNI,
			})
			return nil, &domain.DuplicateIdentityError{DNI: cmd.DNI}
		}
	}

	patient := &domain.Patient{
		ID:           s.nextPatientID,
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		DNI:          cmd.DNI,
		Age:          cmd.Age,
		Insurance:    cmd.Insurance,
		RegisteredAt: json_types.NewDateTime(s.now()),
	}
	s.nextPatientID++
	s.patients = append(s.patients, patient)

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StorePatient(ctx, patient)
	}

	s.logger.Info("patient.register.ok", out.LogFields{
		"sessionId": s.sessionID,
		"patientId": patient.ID,
		"insurance": patient.Insurance,
	})

	return patient, nil
}

// BookAppointment creates an Active appointment for an existing
// patient, pricing it from the patient's age and insurance provider.
func (s *ClinicService) BookAppointment(ctx context.Context, patientID int, specialty domain.Specialty) (*domain.Appointment, error) {
	patient := s.lookupPatient(ctx, patientID)
	if patient == nil {
		s.logger.Warn("appointment.book.unknown_patient", out.LogFields{
			"sessionId": s.sessionID,
			"patientId": patientID,
		})
		return nil, &domain.UnknownPatientError{PatientID: patientID}
	}

	if !s.specialtyOffered(specialty) {
		return nil, &domain.InvalidSpecialtyError{Specialty: string(specialty)}
	}

	appointment := &domain.Appointment{
		ID:        s.nextAppointmentID,
		PatientID: patient.ID,
		Specialty: specialty,
		AmountDue: domain.ComputePrice(patient.Age, patient.Insurance),
		Status:    domain.AppointmentStatusActive,
	}
	s.nextAppointmentID++
	s.appointments = append(s.appointments, appointment)

	s.logger.Info("appointment.book.ok", out.LogFields{
		"sessionId":     s.sessionID,
		"appointmentId": appointment.ID,
		"patientId":     patient.ID,
		"specialty":     specialty,
		"amountDue":     appointment.AmountDue,
	})

	return appointment, nil
}

func (s *ClinicService) specialtyOffered(specialty domain.Specialty) bool {
	for _, offered := range s.specialties {
		if specialty == offered {
			return true
		}
	}

	return false
}

// lookupPatient resolves a patient id through the cache when enabled,
// falling back to a scan over the registry.
func (s *ClinicService) lookupPatient(ctx context.Context, patientID int) *domain.Patient {
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if patient, exists := s.cachePort.GetPatient(ctx, patientID); exists {
			return patient
		}
	}

	for _, patient := range s.patients {
		if patient.ID == patientID {
			if s.cachePort != nil && s.cfg.Cache.Enabled {
				s.cachePort.StorePatient(ctx, patient)
			}
			return patient
		}
	}

	return nil
}

func (s *ClinicService) Patients(ctx context.Context) []*domain.Patient {
	result := make([]*domain.Patient, len(s.patients))
	copy(result, s.patients)
	return result
}

func (s *ClinicService) Appointments(ctx context.Context) []*domain.Appointment {
	result := make([]*domain.Appointment, len(s.appointments))
	copy(result, s.appointments)
	return result
}

func (s *ClinicService) TotalCollected() float64 {
	return s.totalCollected
}
