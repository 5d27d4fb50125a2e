package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Maria"))
	assert.True(t, ValidName("José"))
	assert.True(t, ValidName(strings.Repeat("a", 30)))

	assert.False(t, ValidName(""))
	assert.False(t, ValidName(strings.Repeat("a", 31)))
	assert.False(t, ValidName("Maria2"))
	assert.False(t, ValidName("Maria Jose"))
}

func TestValidAge(t *testing.T) {
	assert.True(t, ValidAge(18))
	assert.True(t, ValidAge(90))
	assert.False(t, ValidAge(17))
	assert.False(t, ValidAge(91))
	assert.False(t, ValidAge(-3))
}

func TestValidInsurance(t *testing.T) {
	// 60 and over must be PAMI, under 60 must not be
	assert.True(t, ValidInsurance(InsurancePAMI, 65))
	assert.False(t, ValidInsurance(InsuranceParticular, 65))
	assert.False(t, ValidInsurance(InsurancePAMI, 40))
	assert.True(t, ValidInsurance(InsuranceSwissMedical, 40))

	assert.False(t, ValidInsurance(InsuranceProvider("osde"), 40))
}

func TestParseInsuranceProvider(t *testing.T) {
	provider, ok := ParseInsuranceProvider("swiss medical")
	assert.True(t, ok)
	assert.Equal(t, InsuranceSwissMedical, provider)

	provider, ok = ParseInsuranceProvider("  PAMI ")
	assert.True(t, ok)
	assert.Equal(t, InsurancePAMI, provider)

	_, ok = ParseInsuranceProvider("osde")
	assert.False(t, ok)
}

func TestParseSpecialty(t *testing.T) {
	specialty, ok := ParseSpecialty("Odontologia")
	assert.True(t, ok)
	assert.Equal(t, SpecialtyDentistry, specialty)

	_, ok = ParseSpecialty("cardiologia")
	assert.False(t, ok)

	for _, known := range AllSpecialties() {
		assert.True(t, ValidSpecialty(known))
	}
	assert.False(t, ValidSpecialty(Specialty("cardiologia")))
}
