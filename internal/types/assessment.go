package types

// CombinedAssessment pairs a solar and a wind result for one location. The
// pair is always applied to session state in a single operation so a solar
// result is never shown next to a wind result from a different location.
type CombinedAssessment struct {
	Solar SolarAssessment `json:"solar"`
	Wind  WindAssessment  `json:"wind"`
}
