package domain

import (
	"github.com/ignacioG00/clinica-go/internal/core/json_types"
)

// Patient is immutable after registration: ids are never reused and no
// field is updated for the life of the process.
type Patient struct {
	ID           int                 `json:"id"`
	FirstName    string              `json:"nombre"`
	LastName     string              `json:"apellido"`
	DNI          string              `json:"dni"`
	Age          int                 `json:"edad"`
	Insurance    InsuranceProvider   `json:"obra_social"`
	RegisteredAt json_types.DateTime `json:"fecha_registro"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
