package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be a number between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be a number between -180 and 180")
)

// Coordinates is a validated latitude/longitude pair. Values are only
// constructed through NewCoordinates or ParseCoordinates, so a Coordinates
// held by a caller is always finite and in range.
type Coordinates struct {
	Latitude  float64 `json:"latitude" example:"40.7128"`
	Longitude float64 `json:"longitude" example:"-74.0060"`
}

// NewCoordinates validates the given values and returns a Coordinates.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) || latitude < -90 || latitude > 90 {
		return Coordinates{}, fmt.Errorf("%w: got %v", ErrInvalidLatitude, latitude)
	}
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) || longitude < -180 || longitude > 180 {
		return Coordinates{}, fmt.Errorf("%w: got %v", ErrInvalidLongitude, longitude)
	}
	return Coordinates{
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

// ParseCoordinates builds a Coordinates from user-entered strings.
func ParseCoordinates(latitude, longitude string) (Coordinates, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latitude), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: got %q", ErrInvalidLatitude, latitude)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(longitude), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: got %q", ErrInvalidLongitude, longitude)
	}
	return NewCoordinates(lat, lon)
}
