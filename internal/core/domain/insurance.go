package domain

import "strings"

type InsuranceProvider string

const (
	InsuranceSwissMedical InsuranceProvider = "Swiss Medical"
	InsuranceApres        InsuranceProvider = "Apres"
	InsurancePAMI         InsuranceProvider = "PAMI"
	InsuranceParticular   InsuranceProvider = "Particular"
)

// AllInsuranceProviders returns the closed set of known providers,
// in their canonical display order.
func AllInsuranceProviders() []InsuranceProvider {
	return []InsuranceProvider{
		InsuranceSwissMedical,
		InsuranceApres,
		InsurancePAMI,
		InsuranceParticular,
	}
}

// ParseInsuranceProvider resolves free-form input to a known provider,
// matching case-insensitively. This is the only place provider strings
// from the outside world are normalized.
func ParseInsuranceProvider(s string) (InsuranceProvider, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, provider := range AllInsuranceProviders() {
		if needle == provider.Key() {
			return provider, true
		}
	}

	return "", false
}

// Key is the lowercase form used for grouping and ordering.
func (p InsuranceProvider) Key() string {
	return strings.ToLower(string(p))
}

func (p InsuranceProvider) Known() bool {
	_, ok := ParseInsuranceProvider(string(p))
	return ok
}
