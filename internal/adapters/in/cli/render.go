package cli

import (
	"fmt"

	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/ports/in"
)

func (m *MenuController) renderWaiting(waiting []in.WaitingEntry) {
	fmt.Fprintln(m.writer, "\n=== Waiting patients ===")
	fmt.Fprintln(m.writer, "╔══════╦══════════════════════╦══════════════════╦══════════════════╦══════════════╦════════════╗")
	fmt.Fprintln(m.writer, "║ ID   ║ Patient              ║ Insurance        ║ Specialty        ║ Amount due   ║ Status     ║")
	fmt.Fprintln(m.writer, "╠══════╬══════════════════════╬══════════════════╬══════════════════╬══════════════╬════════════╣")

	for _, entry := range waiting {
		name, insurance := "?", "?"
		if entry.Patient != nil {
			name = entry.Patient.FullName()
			insurance = string(entry.Patient.Insurance)
		}
		fmt.Fprintf(m.writer, "║ %-4d ║ %-20s ║ %-16s ║ %-16s ║ $%-11.2f ║ %-10s ║\n",
			entry.Appointment.ID,
			truncate(name, 20),
			truncate(insurance, 16),
			truncate(string(entry.Appointment.Specialty), 16),
			entry.Appointment.AmountDue,
			entry.Appointment.Status,
		)
	}

	fmt.Fprintln(m.writer, "╚══════╩══════════════════════╩══════════════════╩══════════════════╩══════════════╩════════════╝")
}

func (m *MenuController) renderAppointments(appointments []*domain.Appointment) {
	for _, appointment := range appointments {
		fmt.Fprintf(m.writer, "  #%d patient=%d specialty=%s amount=$%.2f status=%s\n",
			appointment.ID,
			appointment.PatientID,
			appointment.Specialty,
			appointment.AmountDue,
			appointment.Status,
		)
	}
}

func (m *MenuController) renderReport(report *domain.RevenueReport) {
	if len(report.Totals) == 0 {
		fmt.Fprintln(m.writer, "No revenue recorded.")
		return
	}

	fmt.Fprintln(m.writer, "\n=== Revenue by insurance provider ===")
	for _, entry := range report.Totals {
		fmt.Fprintf(m.writer, "%s: $%.2f\n", entry.Provider, entry.Total)
	}

	fmt.Fprintf(m.writer, "Lowest revenue: %s with $%.2f\n", report.Lowest.Provider, report.Lowest.Total)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-1]) + "…"
}
