package entity

// ImpactReport is the backend's economic-loss estimate for a disease at a
// given severity. Financial figures are in INR.
type ImpactReport struct {
	DiseaseName               string  `json:"disease_name"`
	YieldLossPercentage       float64 `json:"yield_loss_percentage"`
	PotentialFinancialLossMin float64 `json:"potential_financial_loss_min"`
	PotentialFinancialLossMax float64 `json:"potential_financial_loss_max"`
}
