package domain

import "strings"

type AppointmentStatus string

// Wire values keep the legacy snapshot vocabulary so files written by
// the previous tool load unchanged.
const (
	AppointmentStatusActive    AppointmentStatus = "Activo"
	AppointmentStatusCompleted AppointmentStatus = "Finalizado"
	AppointmentStatusPaid      AppointmentStatus = "Pagado"
)

type Specialty string

const (
	SpecialtyGeneralMedicine Specialty = "medico clinico"
	SpecialtyDentistry       Specialty = "odontologia"
	SpecialtyPsychology      Specialty = "psicologia"
	SpecialtyTraumatology    Specialty = "traumatologia"
)

func AllSpecialties() []Specialty {
	return []Specialty{
		SpecialtyGeneralMedicine,
		SpecialtyDentistry,
		SpecialtyPsychology,
		SpecialtyTraumatology,
	}
}

// ParseSpecialty lowercases free-form input and resolves it against the
// known specialty labels.
func ParseSpecialty(s string) (Specialty, bool) {
	needle := Specialty(strings.ToLower(strings.TrimSpace(s)))
	for _, specialty := range AllSpecialties() {
		if needle == specialty {
			return specialty, true
		}
	}

	return "", false
}

// Appointment links a patient (weak reference by id) to a booked
// service. AmountDue is computed once at booking and never changes;
// Status only ever advances Active -> Completed -> Paid.
type Appointment struct {
	ID        int               `json:"id"`
	PatientID int               `json:"id_paciente"`
	Specialty Specialty         `json:"especialidad"`
	AmountDue float64           `json:"monto_a_pagar"`
	Status    AppointmentStatus `json:"estado"`
}
