package types

import "strings"

// LocationInput is a location submission as the user entered it: either a
// free-text city name or raw coordinate strings, which may be invalid. A
// non-empty city name takes precedence over the coordinate fields.
type LocationInput struct {
	City      string `json:"city_name" example:"New York"`
	Latitude  string `json:"latitude" example:"40.7128"`
	Longitude string `json:"longitude" example:"-74.0060"`
}

// CityName returns the trimmed city name.
func (l LocationInput) CityName() string {
	return strings.TrimSpace(l.City)
}

// HasCity reports whether a city name was supplied.
func (l LocationInput) HasCity() bool {
	return l.CityName() != ""
}
