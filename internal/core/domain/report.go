package domain

// ProviderRevenue is the total collected from Paid appointments whose
// patient belongs to one insurance provider.
type ProviderRevenue struct {
	Provider InsuranceProvider
	Total    float64
}

// RevenueReport lists per-provider totals in the order providers were
// first encountered over the appointment list. Providers with no paid
// appointments are omitted. Lowest is nil when nothing has been paid;
// ties keep the first-encountered provider.
type RevenueReport struct {
	Totals []ProviderRevenue
	Lowest *ProviderRevenue
}
