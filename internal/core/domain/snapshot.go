package domain

// Snapshot is the whole-document state read at startup and written at
// register close. Top-level keys match the legacy configs.json schema.
type Snapshot struct {
	SessionID    string              `json:"session_id,omitempty"`
	Specialties  []Specialty         `json:"especialidades"`
	Providers    []InsuranceProvider `json:"obras_sociales"`
	Patients     []*Patient          `json:"lista_pacientes"`
	Appointments []*Appointment      `json:"lista_turnos"`
}
