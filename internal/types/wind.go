package types

// WindAssessment is the wind feasibility estimate for a location. Field
// names follow the assessment backend's wire format.
type WindAssessment struct {
	TotalEnergyKWh    float64 `json:"total_energy_kwh" example:"10400"`          // Total energy generated (kWh)
	CapacityFactorPct float64 `json:"capacity_factor_percentage" example:"31.2"` // Capacity factor (%)
	CostSavings       float64 `json:"cost_savings" example:"1560"`               // Cost savings (USD)
	Message           string  `json:"message,omitempty"`                         // Optional advisory from the backend
}
