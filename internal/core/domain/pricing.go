package domain

import "math"

// BasePrice is the flat consultation fee before any insurance
// adjustment.
const BasePrice = 4000.0

// Per-provider discount over the base price. Unknown providers get no
// discount.
var providerDiscounts = map[InsuranceProvider]float64{
	InsuranceSwissMedical: 0.40,
	InsuranceApres:        0.25,
	InsurancePAMI:         0.60,
	InsuranceParticular:   -0.05,
}

// ageAdjustment is the age-conditional surcharge/rebate applied on top
// of the discounted price. Zero whenever the provider's age band does
// not match.
func ageAdjustment(provider InsuranceProvider, age int) float64 {
	switch provider {
	case InsuranceSwissMedical:
		if age >= 18 && age <= 60 {
			return -0.10
		}
	case InsuranceApres:
		if age >= 26 && age <= 59 {
			return -0.03
		}
	case InsurancePAMI:
		if age >= 80 {
			return -0.03
		}
	case InsuranceParticular:
		if age >= 40 && age <= 60 {
			return 0.15
		}
	}

	return 0
}

// ComputePrice returns the amount due for one appointment, rounded to
// two decimal places: base * (1 - discount) * (1 + adjustment).
func ComputePrice(age int, provider InsuranceProvider) float64 {
	discount := providerDiscounts[provider]
	extra := ageAdjustment(provider, age)

	amount := BasePrice * (1 - discount) * (1 + extra)
	return math.Round(amount*100) / 100
}
