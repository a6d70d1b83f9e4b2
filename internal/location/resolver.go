package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"enerscout/internal/types"
)

var (
	// ErrInvalidCoordinates means the user-entered coordinates were
	// non-numeric or out of range. Raised before any network call.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrGeocodingFailed means the geocoding service could not resolve the
	// city name, or the call itself failed.
	ErrGeocodingFailed = errors.New("could not find coordinates for this location")
)

// Geocoder resolves a city name to validated coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, cityName string) (types.Coordinates, error)
}

// Resolver turns a location submission into validated coordinates.
type Resolver interface {
	// Resolve returns coordinates for the input. A non-empty city name
	// takes precedence over manually entered coordinates, and the geocode
	// result is what callers should display. Resolution is a single
	// attempt; there is no retry.
	Resolve(ctx context.Context, input types.LocationInput) (types.Coordinates, error)
}

type resolver struct {
	geocoder Geocoder
	logger   *slog.Logger
}

// NewResolver creates a resolver backed by the given geocoder.
func NewResolver(geocoder Geocoder, logger *slog.Logger) Resolver {
	return &resolver{
		geocoder: geocoder,
		logger:   logger.With("component", "location-resolver"),
	}
}

func (r *resolver) Resolve(ctx context.Context, input types.LocationInput) (types.Coordinates, error) {
	if input.HasCity() {
		city := input.CityName()
		coords, err := r.geocoder.Geocode(ctx, city)
		if err != nil {
			r.logger.Error("geocoding failed", "city", city, "error", err)
			return types.Coordinates{}, fmt.Errorf("%w: %w", ErrGeocodingFailed, err)
		}

		r.logger.Debug("resolved city to coordinates",
			"city", city,
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
		)
		return coords, nil
	}

	coords, err := types.ParseCoordinates(input.Latitude, input.Longitude)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("%w: %w", ErrInvalidCoordinates, err)
	}
	return coords, nil
}
