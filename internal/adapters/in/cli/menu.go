package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ignacioG00/clinica-go/internal/config"
	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/ports/in"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
)

// MenuController drives the interactive session. All prompting,
// string->int coercion and enum parsing happens here; the use case
// only ever sees validated primitive types.
type MenuController struct {
	useCase in.ClinicUseCase
	cfg     *config.Config
	logger  out.LoggerPort
	reader  *bufio.Reader
	writer  io.Writer
}

func NewMenuController(useCase in.ClinicUseCase, cfg *config.Config, logger out.LoggerPort, input io.Reader, output io.Writer) *MenuController {
	return &MenuController{
		useCase: useCase,
		cfg:     cfg,
		logger:  logger.WithModule("MenuController"),
		reader:  bufio.NewReader(input),
		writer:  output,
	}
}

// Run loops over the menu until the user exits or the context is
// cancelled. Domain errors are presented and the menu continues.
func (m *MenuController) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()

		option, err := m.promptInt("Choose an option: ")
		if err != nil {
			// End of input ends the session
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch option {
		case 1:
			err = m.registerPatient(ctx)
		case 2:
			err = m.bookAppointment(ctx)
		case 3:
			err = m.sortAppointments(ctx)
		case 4:
			m.showWaiting(ctx)
		case 5:
			m.serveNext(ctx)
		case 6:
			m.billCompleted(ctx)
		case 7:
			m.closeRegister(ctx)
		case 8:
			m.showReport(ctx)
		case 9:
			fmt.Fprintln(m.writer, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(m.writer, "Invalid option, please try again.")
			continue
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *MenuController) printMenu() {
	fmt.Fprintf(m.writer, "\n=== %s ===\n", m.cfg.Clinic.Name)
	fmt.Fprintln(m.writer, "1. Register patient")
	fmt.Fprintln(m.writer, "2. Book appointment")
	fmt.Fprintln(m.writer, "3. Sort appointments")
	fmt.Fprintln(m.writer, "4. List waiting patients")
	fmt.Fprintln(m.writer, "5. Serve next patients")
	fmt.Fprintln(m.writer, "6. Bill completed appointments")
	fmt.Fprintln(m.writer, "7. Close register")
	fmt.Fprintln(m.writer, "8. Revenue report")
	fmt.Fprintln(m.writer, "9. Exit")
}

func (m *MenuController) registerPatient(ctx context.Context) error {
	firstName, err := m.promptString("First name: ")
	if err != nil && firstName == "" {
		return err
	}
	lastName, err := m.promptString("Last name: ")
	if err != nil && lastName == "" {
		return err
	}
	dni, err := m.promptString("DNI: ")
	if err != nil && dni == "" {
		return err
	}
	age, err := m.promptInt("Age: ")
	if err != nil {
		return err
	}
	provider, err := m.promptProvider()
	if err != nil {
		return err
	}

	patient, err := m.useCase.RegisterPatient(ctx, in.RegisterPatientCommand{
		FirstName: firstName,
		LastName:  lastName,
		DNI:       dni,
		Age:       age,
		Insurance: provider,
	})
	if err != nil {
		m.presentError(err)
		return nil
	}

	fmt.Fprintf(m.writer, "Patient %s registered with id %d.\n", patient.FullName(), patient.ID)
	return nil
}

func (m *MenuController) bookAppointment(ctx context.Context) error {
	patientID, err := m.promptInt("Patient id: ")
	if err != nil {
		return err
	}
	specialty, err := m.promptSpecialty()
	if err != nil {
		return err
	}

	appointment, err := m.useCase.BookAppointment(ctx, patientID, specialty)
	if err != nil {
		m.presentError(err)
		return nil
	}

	fmt.Fprintf(m.writer, "Appointment %d booked for patient %d, amount due $%.2f.\n",
		appointment.ID, appointment.PatientID, appointment.AmountDue)
	return nil
}

func (m *MenuController) sortAppointments(ctx context.Context) error {
	fmt.Fprintln(m.writer, "a. Insurance provider, ascending")
	fmt.Fprintln(m.writer, "b. Amount due, descending")

	choice, err := m.promptString("Sorting option: ")
	if err != nil && choice == "" {
		return err
	}

	var criterion in.SortCriterion
	switch strings.ToLower(choice) {
	case "a":
		criterion = in.SortByInsuranceAsc
	case "b":
		criterion = in.SortByAmountDesc
	default:
		fmt.Fprintln(m.writer, "Invalid sorting option.")
		return nil
	}

	if err := m.useCase.SortAppointments(ctx, criterion); err != nil {
		m.presentError(err)
		return nil
	}

	fmt.Fprintln(m.writer, "Appointments sorted.")
	m.renderAppointments(m.useCase.Appointments(ctx))
	return nil
}

func (m *MenuController) showWaiting(ctx context.Context) {
	waiting := m.useCase.WaitingAppointments(ctx)
	if len(waiting) == 0 {
		fmt.Fprintln(m.writer, "No patients waiting.")
		return
	}

	m.renderWaiting(waiting)
}

func (m *MenuController) serveNext(ctx context.Context) {
	served := m.useCase.ServeNextPatients(ctx)
	if len(served) == 0 {
		fmt.Fprintln(m.writer, "No patients waiting.")
		return
	}

	for _, appointment := range served {
		fmt.Fprintf(m.writer, "Appointment %d has been served.\n", appointment.ID)
	}
}

func (m *MenuController) billCompleted(ctx context.Context) {
	result := m.useCase.BillCompleted(ctx)
	if len(result.Billed) == 0 {
		fmt.Fprintln(m.writer, "Nothing to bill.")
		return
	}

	for _, appointment := range result.Billed {
		fmt.Fprintf(m.writer, "Billed appointment %d for $%.2f.\n", appointment.ID, appointment.AmountDue)
	}
	fmt.Fprintf(m.writer, "Collected $%.2f this pass.\n", result.Amount)
}

func (m *MenuController) closeRegister(ctx context.Context) {
	total, err := m.useCase.CloseRegister(ctx)
	if err != nil {
		m.presentError(err)
		return
	}

	fmt.Fprintf(m.writer, "Total collected: $%.2f. State saved, register closed.\n", total)
}

func (m *MenuController) showReport(ctx context.Context) {
	report := m.useCase.RevenueReport(ctx)
	m.renderReport(report)
}

// presentError translates domain errors into user-facing messages.
func (m *MenuController) presentError(err error) {
	var validationErr *domain.ValidationError
	var duplicateErr *domain.DuplicateIdentityError
	var unknownPatientErr *domain.UnknownPatientError
	var specialtyErr *domain.InvalidSpecialtyError
	var notClosableErr *domain.RegisterNotClosableError

	switch {
	case errors.As(err, &validationErr):
		fmt.Fprintf(m.writer, "Error: %s.\n", validationErr.Error())
	case errors.As(err, &duplicateErr):
		fmt.Fprintln(m.writer, "Error: a patient with that DNI already exists.")
	case errors.As(err, &unknownPatientErr):
		fmt.Fprintln(m.writer, "Error: no patient with that id.")
	case errors.As(err, &specialtyErr):
		fmt.Fprintln(m.writer, "Error: that specialty is not offered.")
	case errors.As(err, &notClosableErr):
		fmt.Fprintln(m.writer, "There are still patients to serve or appointments to bill.")
	default:
		fmt.Fprintf(m.writer, "Error: %v\n", err)
	}
}

// promptString reads one line and returns it trimmed. A final line
// without a trailing newline comes back together with io.EOF; callers
// decide whether the partial read is usable.
func (m *MenuController) promptString(prompt string) (string, error) {
	fmt.Fprint(m.writer, prompt)
	line, err := m.reader.ReadString('\n')
	return strings.TrimSpace(line), err
}

// promptInt re-prompts until the input parses as an integer.
func (m *MenuController) promptInt(prompt string) (int, error) {
	for {
		line, err := m.promptString(prompt)

		value, convErr := strconv.Atoi(line)
		if convErr == nil {
			return value, nil
		}
		if err != nil {
			return 0, err
		}

		fmt.Fprintln(m.writer, "Please enter a whole number.")
	}
}

// promptProvider re-prompts until the input names a known insurance
// provider, matching case-insensitively.
func (m *MenuController) promptProvider() (domain.InsuranceProvider, error) {
	for {
		line, err := m.promptString("Insurance provider (Swiss Medical, Apres, PAMI, Particular): ")

		provider, ok := domain.ParseInsuranceProvider(line)
		if ok {
			return provider, nil
		}
		if err != nil {
			return "", err
		}

		fmt.Fprintln(m.writer, "Unknown insurance provider.")
	}
}

func (m *MenuController) promptSpecialty() (domain.Specialty, error) {
	for {
		line, err := m.promptString("Specialty (medico clinico, odontologia, psicologia, traumatologia): ")

		specialty, ok := domain.ParseSpecialty(line)
		if ok {
			return specialty, nil
		}
		if err != nil {
			return "", err
		}

		fmt.Fprintln(m.writer, "Unknown specialty.")
	}
}
