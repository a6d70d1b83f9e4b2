package types

// SolarAssessment is the solar feasibility estimate for a location. Field
// names follow the assessment backend's wire format.
type SolarAssessment struct {
	ACAnnual          float64 `json:"ac_annual" example:"9000"`           // Annual AC system output (kWhac)
	SolradAnnual      float64 `json:"solrad_annual" example:"5.8"`        // Annual solar radiation (kWh/m²/day)
	CapacityFactor    float64 `json:"capacity_factor" example:"0.22"`     // Capacity factor (fraction, 0-1)
	PanelArea         float64 `json:"panel_area" example:"24.5"`          // Required panel area (m²)
	AnnualCostSavings float64 `json:"annual_cost_savings" example:"1350"` // Annual cost savings (USD)
	ROIYears          float64 `json:"roi_years" example:"7.4"`            // Return on investment (years)
	CO2Reduction      float64 `json:"co2_reduction" example:"3800"`       // Annual CO2 reduction (kg)
}
