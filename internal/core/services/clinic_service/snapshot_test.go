package clinic_service

import (
	"context"
	"errors"
	"testing"

	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStateResumesIDAllocators(t *testing.T) {
	service, snapshotPort := newTestService(t)
	ctx := context.Background()

	snapshotPort.LoadFunc = func(ctx context.Context) (*domain.Snapshot, error) {
		return &domain.Snapshot{
			Patients: []*domain.Patient{
				{ID: 7, FirstName: "Maria", LastName: "Gomez", DNI: "1", Age: 30, Insurance: domain.InsuranceSwissMedical},
			},
			Appointments: []*domain.Appointment{
				{ID: 3, PatientID: 7, Specialty: domain.SpecialtyDentistry, AmountDue: 2160, Status: domain.AppointmentStatusPaid},
			},
		}, nil
	}
	require.NoError(t, service.LoadState(ctx))

	patient := mustRegister(t, service, "Carlos", "2", 35, domain.InsuranceApres)
	assert.Equal(t, 8, patient.ID)

	appointment := mustBook(t, service, patient.ID, domain.SpecialtyPsychology)
	assert.Equal(t, 4, appointment.ID)
}

func TestLoadStateRecomputesTotalCollected(t *testing.T) {
	service, snapshotPort := newTestService(t)
	ctx := context.Background()

	snapshotPort.LoadFunc = func(ctx context.Context) (*domain.Snapshot, error) {
		return &domain.Snapshot{
			Patients: []*domain.Patient{
				{ID: 1, FirstName: "Maria", LastName: "Gomez", DNI: "1", Age: 30, Insurance: domain.InsuranceSwissMedical},
			},
			Appointments: []*domain.Appointment{
				{ID: 1, PatientID: 1, AmountDue: 2160, Status: domain.AppointmentStatusPaid},
				{ID: 2, PatientID: 1, AmountDue: 2160, Status: domain.AppointmentStatusPaid},
				{ID: 3, PatientID: 1, AmountDue: 2160, Status: domain.AppointmentStatusActive},
			},
		}, nil
	}
	require.NoError(t, service.LoadState(ctx))

	// Only the Paid appointments count
	assert.Equal(t, 4320.00, service.TotalCollected())
}

func TestLoadStateFiltersUnknownConfigEntries(t *testing.T) {
	service, snapshotPort := newTestService(t)
	ctx := context.Background()

	snapshotPort.LoadFunc = func(ctx context.Context) (*domain.Snapshot, error) {
		return &domain.Snapshot{
			Specialties: []domain.Specialty{"odontologia", "alquimia"},
			Providers:   []domain.InsuranceProvider{"PAMI", "osde"},
		}, nil
	}
	require.NoError(t, service.LoadState(ctx))

	patient := mustRegister(t, service, "Rosa", "3", 70, domain.InsurancePAMI)

	// Only the configured specialty can be booked now
	_, err := service.BookAppointment(ctx, patient.ID, domain.SpecialtyPsychology)
	var specialtyErr *domain.InvalidSpecialtyError
	require.ErrorAs(t, err, &specialtyErr)

	_, err = service.BookAppointment(ctx, patient.ID, domain.SpecialtyDentistry)
	require.NoError(t, err)
}

func TestLoadStatePropagatesConfigLoadError(t *testing.T) {
	service, snapshotPort := newTestService(t)

	snapshotPort.LoadFunc = func(ctx context.Context) (*domain.Snapshot, error) {
		return nil, &domain.ConfigLoadError{Path: "configs.json", Err: errors.New("no such file")}
	}

	err := service.LoadState(context.Background())

	var loadErr *domain.ConfigLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "configs.json", loadErr.Path)
}

func TestSaveStateRoundTripsThroughLoad(t *testing.T) {
	service, snapshotPort := newTestService(t)
	ctx := context.Background()

	patient := mustRegister(t, service, "Maria", "30111222", 30, domain.InsuranceSwissMedical)
	mustBook(t, service, patient.ID, domain.SpecialtyGeneralMedicine)
	service.ServeNextPatients(ctx)
	service.BillCompleted(ctx)

	require.NoError(t, service.SaveState(ctx))
	require.NotNil(t, snapshotPort.Saved)

	// A fresh service hydrated from the saved snapshot sees the same
	// state
	restored, restoredPort := newTestService(t)
	restoredPort.LoadFunc = func(ctx context.Context) (*domain.Snapshot, error) {
		return snapshotPort.Saved, nil
	}
	require.NoError(t, restored.LoadState(ctx))

	assert.Equal(t, service.Patients(ctx), restored.Patients(ctx))
	assert.Equal(t, service.Appointments(ctx), restored.Appointments(ctx))
	assert.Equal(t, service.TotalCollected(), restored.TotalCollected())
}
