package assessment

import "enerscout/internal/types"

type geocodeRequest struct {
	CityName string `json:"city_name"`
}

type geocodeResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type solarRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type windRequest struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Height   int     `json:"height"`
	DateFrom string  `json:"date_from"`
	DateTo   string  `json:"date_to"`
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response        string                 `json:"response"`
	SolarAssessment *types.SolarAssessment `json:"solar_assessment"`
	WindAssessment  *types.WindAssessment  `json:"wind_assessment"`
}

// ChatResult is one assistant turn. Solar and Wind are non-nil only when the
// assistant ran an assessment as part of the reply.
type ChatResult struct {
	Response string
	Solar    *types.SolarAssessment
	Wind     *types.WindAssessment
}

// WindOptions override the wind calculation parameters. Zero values fall
// back to the backend's documented defaults.
type WindOptions struct {
	HeightMeters int
	DateFrom     string
	DateTo       string
}
