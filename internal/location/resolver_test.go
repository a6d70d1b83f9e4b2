package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"enerscout/internal/types"
)

type mockGeocoder struct {
	coords types.Coordinates
	err    error
	calls  int
}

func (m *mockGeocoder) Geocode(ctx context.Context, cityName string) (types.Coordinates, error) {
	m.calls++
	return m.coords, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolver_Resolve(t *testing.T) {
	geocoded := types.Coordinates{Latitude: 40.71, Longitude: -74.01}

	tests := []struct {
		name              string
		input             types.LocationInput
		geocoderRes       types.Coordinates
		geocoderErr       error
		wantErr           error
		wantCoords        types.Coordinates
		wantGeocoderCalls int
	}{
		{
			name:              "city name resolves through geocoder",
			input:             types.LocationInput{City: "New York"},
			geocoderRes:       geocoded,
			wantCoords:        geocoded,
			wantGeocoderCalls: 1,
		},
		{
			name: "city takes precedence over manual coordinates",
			input: types.LocationInput{
				City:      "New York",
				Latitude:  "10",
				Longitude: "20",
			},
			geocoderRes:       geocoded,
			wantCoords:        geocoded,
			wantGeocoderCalls: 1,
		},
		{
			name: "whitespace city falls through to coordinates",
			input: types.LocationInput{
				City:      "   ",
				Latitude:  "51.5",
				Longitude: "-0.12",
			},
			wantCoords:        types.Coordinates{Latitude: 51.5, Longitude: -0.12},
			wantGeocoderCalls: 0,
		},
		{
			name:              "geocoding failure",
			input:             types.LocationInput{City: "Atlantis"},
			geocoderErr:       errors.New("city not found"),
			wantErr:           ErrGeocodingFailed,
			wantGeocoderCalls: 1,
		},
		{
			name: "out-of-range latitude fails before any network call",
			input: types.LocationInput{
				Latitude:  "95",
				Longitude: "0",
			},
			wantErr:           ErrInvalidCoordinates,
			wantGeocoderCalls: 0,
		},
		{
			name: "non-numeric longitude",
			input: types.LocationInput{
				Latitude:  "45",
				Longitude: "west",
			},
			wantErr:           ErrInvalidCoordinates,
			wantGeocoderCalls: 0,
		},
		{
			name:              "empty submission",
			input:             types.LocationInput{},
			wantErr:           ErrInvalidCoordinates,
			wantGeocoderCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := &mockGeocoder{coords: tt.geocoderRes, err: tt.geocoderErr}
			r := NewResolver(geocoder, testLogger())

			coords, err := r.Resolve(context.Background(), tt.input)

			if geocoder.calls != tt.wantGeocoderCalls {
				t.Errorf("geocoder calls = %d, want %d", geocoder.calls, tt.wantGeocoderCalls)
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if coords != tt.wantCoords {
				t.Errorf("coords = %+v, want %+v", coords, tt.wantCoords)
			}
		})
	}
}

func TestResolver_InvalidCoordinatesKeepsCause(t *testing.T) {
	r := NewResolver(&mockGeocoder{}, testLogger())

	_, err := r.Resolve(context.Background(), types.LocationInput{Latitude: "95", Longitude: "0"})
	if !errors.Is(err, ErrInvalidCoordinates) {
		t.Fatalf("error = %v, want ErrInvalidCoordinates", err)
	}
	if !errors.Is(err, types.ErrInvalidLatitude) {
		t.Errorf("error should wrap the latitude cause, got %v", err)
	}
}
