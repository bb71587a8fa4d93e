package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"climate-api/internal/services/climate"
	"climate-api/pkg/observe"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to query climate data"`
}

// handleIndex godoc
// @Summary List available routes
// @Description Plain-text listing of every API route
// @Tags Climate
// @Produce plain
// @Success 200 {string} string "Route listing"
// @Router / [get]
func (r *routes) handleIndex(c *fiber.Ctx) error {
	var b strings.Builder
	b.WriteString("Available Routes:\n")
	for _, route := range r.service.Routes() {
		b.WriteString(route)
		b.WriteString("\n")
	}

	return c.SendString(b.String())
}

// handlePrecipitation godoc
// @Summary Trailing-year precipitation
// @Description Every (date, precipitation) reading within one calendar year before the latest date in the dataset, both ends inclusive
// @Tags Climate
// @Produce json
// @Success 200 {array} models.Precipitation
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1.0/precipitation [get]
func (r *routes) handlePrecipitation(c *fiber.Ctx) error {
	rows, err := r.service.Precipitation(c.Context())
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(rows)
}

// handleStations godoc
// @Summary Station names
// @Description Flat list with the name of every station
// @Tags Climate
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1.0/stations [get]
func (r *routes) handleStations(c *fiber.Ctx) error {
	names, err := r.service.Stations(c.Context())
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(names)
}

// handleTemperatureObservations godoc
// @Summary Trailing-year temperature observation counts
// @Description Number of temperature observations per date within the trailing year, ordered by date
// @Tags Climate
// @Produce json
// @Success 200 {array} models.TemperatureCount
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1.0/tobs [get]
func (r *routes) handleTemperatureObservations(c *fiber.Ctx) error {
	rows, err := r.service.TemperatureObservations(c.Context())
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(rows)
}

// handleStatsFrom godoc
// @Summary Temperature stats from a start date
// @Description TMIN, TAVG and TMAX over every observation on or after start. Out-of-range dates return a plain-text message.
// @Tags Climate
// @Produce json,plain
// @Param start path string true "Start date (YYYY-MM-DD)" example(2017-01-01)
// @Success 200 {array} models.TemperatureStats
// @Failure 400 {object} ErrorResponse "Invalid date (strict mode)"
// @Failure 500 {object} ErrorResponse "Malformed date or internal server error"
// @Router /api/v1.0/{start} [get]
func (r *routes) handleStatsFrom(c *fiber.Ctx) error {
	stats, err := r.service.StatsFrom(c.Context(), c.Params("start"))
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(stats)
}

// handleStatsBetween godoc
// @Summary Temperature stats for a date range
// @Description TMIN, TAVG and TMAX over observations in [start, end]. Out-of-range or inverted dates return a plain-text message.
// @Tags Climate
// @Produce json,plain
// @Param start path string true "Start date (YYYY-MM-DD)" example(2017-01-01)
// @Param end path string true "End date (YYYY-MM-DD)" example(2017-01-31)
// @Success 200 {array} models.TemperatureStats
// @Failure 400 {object} ErrorResponse "Invalid date (strict mode)"
// @Failure 500 {object} ErrorResponse "Malformed date or internal server error"
// @Router /api/v1.0/{start}/{end} [get]
func (r *routes) handleStatsBetween(c *fiber.Ctx) error {
	stats, err := r.service.StatsBetween(c.Context(), c.Params("start"), c.Params("end"))
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(stats)
}

// fail maps service errors to responses. Validation failures keep the
// historical plain-text 200 body unless strict mode is on.
func (r *routes) fail(c *fiber.Ctx, err error) error {
	fields := map[string]any{
		"route":     c.Route().Path,
		"path":      c.Path(),
		"requestId": c.GetRespHeader(fiber.HeaderXRequestID),
	}

	var verr *climate.ValidationError
	switch {
	case errors.As(err, &verr):
		observe.ValidationFailures.WithLabelValues(string(verr.Reason)).Inc()
		fields["reason"] = verr.Reason
		fields["bounds"] = verr.Bounds.String()
		r.l.Info("date validation failed", fields)

		if r.strict {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: verr.Error()})
		}
		return c.SendString(verr.Error())

	case errors.Is(err, climate.ErrMalformedDate):
		observe.ValidationFailures.WithLabelValues("malformed_date").Inc()

		if r.strict {
			r.l.Info("malformed date parameter", fields)
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "invalid date format, expected YYYY-MM-DD",
			})
		}
		r.l.Error(err, fields)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to parse date",
		})
	}

	r.l.Error(err, fields)

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: "Failed to query climate data",
	})
}
