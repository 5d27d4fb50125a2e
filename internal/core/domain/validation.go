package domain

import "unicode"

const (
	maxNameLength = 30
	minAge        = 18
	maxAge        = 90

	// Patients aged 60 or older must be covered by PAMI; younger
	// patients may not select it.
	pamiCutoffAge = 60
)

// ValidName reports whether s is a usable first or last name:
// non-empty, alphabetic only, at most 30 characters.
func ValidName(s string) bool {
	if s == "" || len([]rune(s)) > maxNameLength {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

func ValidAge(age int) bool {
	return age >= minAge && age <= maxAge
}

// ValidInsurance checks that the provider is one of the known four and
// that the PAMI age rule holds for this patient.
func ValidInsurance(provider InsuranceProvider, age int) bool {
	if !provider.Known() {
		return false
	}
	if age >= pamiCutoffAge && provider != InsurancePAMI {
		return false
	}
	if age < pamiCutoffAge && provider == InsurancePAMI {
		return false
	}

	return true
}

func ValidSpecialty(specialty Specialty) bool {
	for _, known := range AllSpecialties() {
		if specialty == known {
			return true
		}
	}

	return false
}
