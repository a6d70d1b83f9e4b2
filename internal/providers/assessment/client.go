package assessment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"enerscout/internal/types"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 60 * time.Second

	// Defaults for the wind calculation. The window is the backend's
	// documented ERA5 sample range; keeping it fixed makes repeated
	// submissions for one location comparable.
	DefaultHubHeightMeters = 100
	DefaultWindDateFrom    = "2019-01-01"
	DefaultWindDateTo      = "2019-01-31"
)

// Client performs HTTP requests against the renewable-energy assessment
// backend (geocoding, solar and wind calculations, AI chat).
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an assessment backend client. An empty baseURL and a
// zero timeout fall back to defaults.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.With("component", "assessment-client"),
	}
}

// Geocode resolves a city name to coordinates.
func (c *Client) Geocode(ctx context.Context, cityName string) (types.Coordinates, error) {
	var resp geocodeResponse
	if err := c.post(ctx, "/get_coordinates", geocodeRequest{CityName: cityName}, &resp); err != nil {
		return types.Coordinates{}, err
	}

	coords, err := types.NewCoordinates(resp.Latitude, resp.Longitude)
	if err != nil {
		c.logger.Error("geocoder returned out-of-range coordinates",
			"city", cityName,
			"latitude", resp.Latitude,
			"longitude", resp.Longitude,
		)
		return types.Coordinates{}, &ServiceError{
			Kind:    ErrorUnknown,
			Message: "the geocoding service returned unusable coordinates",
			Err:     err,
		}
	}

	c.logger.Debug("geocoded city",
		"city", cityName,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	return coords, nil
}

// ComputeSolar requests the solar feasibility estimate for a location.
func (c *Client) ComputeSolar(ctx context.Context, coords types.Coordinates) (*types.SolarAssessment, error) {
	req := solarRequest{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}

	var resp types.SolarAssessment
	if err := c.post(ctx, "/calculate_solar_potential", req, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("computed solar potential",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"ac_annual", resp.ACAnnual,
	)

	return &resp, nil
}

// ComputeWind requests the wind feasibility estimate for a location. Zero
// fields in opts fall back to the default hub height and historical window.
func (c *Client) ComputeWind(ctx context.Context, coords types.Coordinates, opts WindOptions) (*types.WindAssessment, error) {
	req := windRequest{
		Lat:      coords.Latitude,
		Lon:      coords.Longitude,
		Height:   opts.HeightMeters,
		DateFrom: opts.DateFrom,
		DateTo:   opts.DateTo,
	}
	if req.Height <= 0 {
		req.Height = DefaultHubHeightMeters
	}
	if req.DateFrom == "" {
		req.DateFrom = DefaultWindDateFrom
	}
	if req.DateTo == "" {
		req.DateTo = DefaultWindDateTo
	}

	var resp types.WindAssessment
	if err := c.post(ctx, "/process_wind_data", req, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("processed wind data",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"total_energy_kwh", resp.TotalEnergyKWh,
	)

	return &resp, nil
}

// Chat sends one user message to the AI assistant and returns its reply,
// together with the structured assessment payload when the assistant ran one.
func (c *Client) Chat(ctx context.Context, message, sessionID string) (*ChatResult, error) {
	req := chatRequest{
		Message:   message,
		SessionID: sessionID,
	}

	var resp chatResponse
	if err := c.post(ctx, "/chat", req, &resp); err != nil {
		return nil, err
	}

	return &ChatResult{
		Response: resp.Response,
		Solar:    resp.SolarAssessment,
		Wind:     resp.WindAssessment,
	}, nil
}

// post sends a JSON request and decodes a JSON response. Every failure is
// returned as a *ServiceError.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &ServiceError{Kind: ErrorUnknown, Message: "failed to encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &ServiceError{Kind: ErrorUnknown, Message: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("assessment service request failed", "path", path, "error", err)
		return &ServiceError{Kind: ErrorNetwork, Message: "could not reach the assessment service", Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		svcErr := mapResponseError(resp.StatusCode, respBody)
		c.logger.Error("assessment service returned error",
			"path", path,
			"status_code", resp.StatusCode,
			"kind", svcErr.Kind,
		)
		return svcErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode assessment service response", "path", path, "error", err)
		return &ServiceError{
			Kind:    ErrorUnknown,
			Message: fmt.Sprintf("failed to decode response from %s", path),
			Err:     err,
		}
	}

	return nil
}
