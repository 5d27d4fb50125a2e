package in

import (
	"context"

	"github.com/ignacioG00/clinica-go/internal/core/domain"
)

// RegisterPatientCommand carries already-coerced registration input.
// Prompting and string->int parsing belong to the CLI adapter.
type RegisterPatientCommand struct {
	FirstName string
	LastName  string
	DNI       string
	Age       int
	Insurance domain.InsuranceProvider
}

type SortCriterion string

const (
	SortByInsuranceAsc SortCriterion = "obra_social_asc"
	SortByAmountDesc   SortCriterion = "monto_desc"
)

// WaitingEntry joins an Active appointment with its patient for
// display.
type WaitingEntry struct {
	Appointment *domain.Appointment
	Patient     *domain.Patient
}

// BillingResult reports what one billing pass settled.
type BillingResult struct {
	Billed []*domain.Appointment
	Amount float64
}

type ClinicUseCase interface {
	// Registration and booking
	RegisterPatient(ctx context.Context, cmd RegisterPatientCommand) (*domain.Patient, error)
	BookAppointment(ctx context.Context, patientID int, specialty domain.Specialty) (*domain.Appointment, error)

	// Queue operations. ServeNextPatients and BillCompleted return
	// empty results when there is nothing to do; that is not an error.
	SortAppointments(ctx context.Context, criterion SortCriterion) error
	WaitingAppointments(ctx context.Context) []WaitingEntry
	ServeNextPatients(ctx context.Context) []*domain.Appointment
	BillCompleted(ctx context.Context) BillingResult

	// End of day
	CloseRegister(ctx context.Context) (float64, error)
	RevenueReport(ctx context.Context) *domain.RevenueReport

	// Read accessors for the CLI
	Patients(ctx context.Context) []*domain.Patient
	Appointments(ctx context.Context) []*domain.Appointment
	TotalCollected() float64
}
