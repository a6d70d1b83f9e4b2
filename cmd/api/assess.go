package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"enerscout/internal/location"
	"enerscout/internal/session"
	"enerscout/internal/types"
)

// AssessmentResponse is the outcome of a form-path submission: the resolved
// coordinates (the geocode result when a city was given, for display) and
// the two independent calculation slots.
type AssessmentResponse struct {
	Coordinates types.Coordinates `json:"coordinates"`
	Snapshot    session.Snapshot  `json:"assessment"`
}

// handleSubmitAssessment godoc
// @Summary Run a feasibility assessment
// @Description Resolve the submitted location (city name takes precedence over raw coordinates) and run the solar and wind calculations. The two calculations are independent; one may fail while the other succeeds.
// @Tags assessment
// @Accept json
// @Produce json
// @Param input body types.LocationInput true "Location: city name, or latitude/longitude as entered"
// @Success 200 {object} AssessmentResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/assessment [post]
func (app *App) handleSubmitAssessment(c *gin.Context) {
	var input types.LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := app.sessionForRequest(c)

	coords, err := app.resolver.Resolve(c.Request.Context(), input)
	if err != nil {
		// Invalid manual coordinates never reach the network; geocoding
		// failures come from the collaborator.
		if errors.Is(err, location.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("location resolution failed", "city", input.CityName(), "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": location.ErrGeocodingFailed.Error()})
		return
	}

	snapshot := app.service.Submit(c.Request.Context(), sess, coords)

	c.JSON(http.StatusOK, AssessmentResponse{
		Coordinates: coords,
		Snapshot:    snapshot,
	})
}

// handleGetAssessment godoc
// @Summary Current assessment state
// @Description Return the session's current solar and wind slots.
// @Tags assessment
// @Produce json
// @Success 200 {object} session.Snapshot
// @Router /api/assessment [get]
func (app *App) handleGetAssessment(c *gin.Context) {
	sess := app.sessionForRequest(c)
	c.JSON(http.StatusOK, sess.Snapshot())
}
