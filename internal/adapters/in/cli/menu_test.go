package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ignacioG00/clinica-go/internal/config"
	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
	"github.com/ignacioG00/clinica-go/internal/core/services/clinic_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ out.LoggerPort = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields)               {}
func (nopLogger) Info(string, out.LogFields)                {}
func (nopLogger) Warn(string, out.LogFields)                {}
func (nopLogger) Error(string, out.LogFields)               {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

type memorySnapshotPort struct {
	saved *domain.Snapshot
}

func (m *memorySnapshotPort) Load(ctx context.Context) (*domain.Snapshot, error) {
	return &domain.Snapshot{}, nil
}

func (m *memorySnapshotPort) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	m.saved = snapshot
	return nil
}

func runSession(t *testing.T, script string) (string, *memorySnapshotPort) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Clinic.Name = "UTN-Medical Center"

	snapshotPort := &memorySnapshotPort{}
	service := clinic_service.NewClinicService(cfg, snapshotPort, nil, nopLogger{})

	output := &bytes.Buffer{}
	menu := NewMenuController(service, cfg, nopLogger{}, strings.NewReader(script), output)

	require.NoError(t, menu.Run(context.Background()))

	return output.String(), snapshotPort
}

func TestFullSessionRegisterBookServeBillClose(t *testing.T) {
	script := strings.Join([]string{
		"1", // register patient
		"Maria",
		"Gomez",
		"30111222",
		"30",
		"swiss medical",
		"2", // book appointment
		"1",
		"odontologia",
		"4", // list waiting patients
		"5", // serve next patients
		"6", // bill completed
		"8", // revenue report
		"7", // close register
		"9", // exit
	}, "\n") + "\n"

	output, snapshotPort := runSession(t, script)

	assert.Contains(t, output, "Patient Maria Gomez registered with id 1.")
	assert.Contains(t, output, "Appointment 1 booked for patient 1, amount due $2160.00.")
	assert.Contains(t, output, "Waiting patients")
	assert.Contains(t, output, "Appointment 1 has been served.")
	assert.Contains(t, output, "Billed appointment 1 for $2160.00.")
	assert.Contains(t, output, "Swiss Medical: $2160.00")
	assert.Contains(t, output, "Total collected: $2160.00. State saved, register closed.")
	assert.Contains(t, output, "Goodbye.")

	require.NotNil(t, snapshotPort.saved)
	assert.Len(t, snapshotPort.saved.Patients, 1)
	assert.Len(t, snapshotPort.saved.Appointments, 1)
}

func TestCloseRegisterRejectedWhileWaiting(t *testing.T) {
	script := strings.Join([]string{
		"1", "Maria", "Gomez", "30111222", "30", "swiss medical",
		"2", "1", "odontologia",
		"7", // close register with an Active appointment
		"9",
	}, "\n") + "\n"

	output, snapshotPort := runSession(t, script)

	assert.Contains(t, output, "still patients to serve or appointments to bill")
	assert.Nil(t, snapshotPort.saved)
}

func TestMalformedNumbersAreReprompted(t *testing.T) {
	script := strings.Join([]string{
		"x", // not a menu option
		"1",
		"Maria", "Gomez", "30111222",
		"abc", // not an age
		"30",
		"pami", // rejected for age 30, domain error presented
		"9",
	}, "\n") + "\n"

	output, _ := runSession(t, script)

	assert.Contains(t, output, "Please enter a whole number.")
	assert.Contains(t, output, "Error: invalid insurance")
}

func TestSessionWithoutTrailingNewlineExitsCleanly(t *testing.T) {
	// Piped input often lacks a final newline; the last token must
	// still be honored before end of input ends the session.
	script := "1\nMaria\nGomez\n30111222\n30\nswiss medical\n9"

	output, _ := runSession(t, script)

	assert.Contains(t, output, "Patient Maria Gomez registered with id 1.")
	assert.Contains(t, output, "Goodbye.")
}

func TestInputEndingMidRegistrationExitsCleanly(t *testing.T) {
	script := "1\nMaria"

	output, _ := runSession(t, script)

	assert.Contains(t, output, "Last name: ")
	assert.NotContains(t, output, "registered with id")
}

func TestServeAndBillWithEmptyQueue(t *testing.T) {
	script := "5\n6\n8\n9\n"

	output, _ := runSession(t, script)

	assert.Contains(t, output, "No patients waiting.")
	assert.Contains(t, output, "Nothing to bill.")
	assert.Contains(t, output, "No revenue recorded.")
}
