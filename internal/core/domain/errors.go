package domain

import "fmt"

// All domain errors are recoverable at the caller: the CLI presents
// them and re-prompts, nothing here is fatal to the process.

// ValidationError names the first rule a registration or booking input
// violated. No state is mutated when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateIdentityError is returned when a registration collides on
// national id.
type DuplicateIdentityError struct {
	DNI string
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("a patient with dni %s already exists", e.DNI)
}

// UnknownPatientError is returned when a booking references a patient
// id that was never registered.
type UnknownPatientError struct {
	PatientID int
}

func (e *UnknownPatientError) Error() string {
	return fmt.Sprintf("no patient with id %d", e.PatientID)
}

// InvalidSpecialtyError is returned when a booking names a specialty
// outside the configured set.
type InvalidSpecialtyError struct {
	Specialty string
}

func (e *InvalidSpecialtyError) Error() string {
	return fmt.Sprintf("specialty %q is not offered", e.Specialty)
}

// RegisterNotClosableError is returned while any appointment is still
// Active or Completed; the register only closes once everything is
// Paid.
type RegisterNotClosableError struct {
	Pending int
}

func (e *RegisterNotClosableError) Error() string {
	return fmt.Sprintf("%d appointment(s) still unserved or unbilled", e.Pending)
}

// ConfigLoadError wraps a missing or malformed configuration/snapshot
// file at startup. The caller reports it and continues with defaults.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}
