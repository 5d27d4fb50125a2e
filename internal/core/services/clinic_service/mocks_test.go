package clinic_service

import (
	"context"
	"testing"
	"time"

	"github.com/ignacioG00/clinica-go/internal/config"
	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/ports/in"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
	"github.com/stretchr/testify/require"
)

var _ out.SnapshotPort = (*mockSnapshotPort)(nil)

// mockSnapshotPort is a func-field mock of the snapshot port.
type mockSnapshotPort struct {
	LoadFunc func(ctx context.Context) (*domain.Snapshot, error)
	SaveFunc func(ctx context.Context, snapshot *domain.Snapshot) error

	SaveCallCount int
	Saved         *domain.Snapshot
}

func (m *mockSnapshotPort) Load(ctx context.Context) (*domain.Snapshot, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return &domain.Snapshot{}, nil
}

func (m *mockSnapshotPort) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	m.SaveCallCount++
	m.Saved = snapshot
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, snapshot)
	}
	return nil
}

var _ out.LoggerPort = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields)               {}
func (nopLogger) Info(string, out.LogFields)                {}
func (nopLogger) Warn(string, out.LogFields)                {}
func (nopLogger) Error(string, out.LogFields)               {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

// moduleRecordingLogger captures the last module tag applied to it.
type moduleRecordingLogger struct {
	nopLogger
	module string
}

func (l *moduleRecordingLogger) WithModule(module string) out.LoggerPort {
	l.module = module
	return l
}

func newTestService(t *testing.T) (*ClinicService, *mockSnapshotPort) {
	t.Helper()

	cfg := &config.Config{}
	snapshotPort := &mockSnapshotPort{}

	service := NewClinicService(cfg, snapshotPort, nil, nopLogger{})
	service.now = func() time.Time {
		return time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	}

	return service, snapshotPort
}

func mustRegister(t *testing.T, service *ClinicService, firstName, dni string, age int, provider domain.InsuranceProvider) *domain.Patient {
	t.Helper()

	patient, err := service.RegisterPatient(context.Background(), in.RegisterPatientCommand{
		FirstName: firstName,
		LastName:  "Gomez",
		DNI:       dni,
		Age:       age,
		Insurance: provider,
	})
	require.NoError(t, err)

	return patient
}

func mustBook(t *testing.T, service *ClinicService, patientID int, specialty domain.Specialty) *domain.Appointment {
	t.Helper()

	appointment, err := service.BookAppointment(context.Background(), patientID, specialty)
	require.NoError(t, err)

	return appointment
}
