package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "climate-api/docs"
	"climate-api/internal/services/climate"
	"climate-api/pkg/logger"
)

type routes struct {
	service *climate.ClimateService
	l       *logger.Logger
	strict  bool
}

func NewRouter(
	app *fiber.App,
	climateService *climate.ClimateService,
	l *logger.Logger,
	strictErrors bool,
) {
	r := &routes{
		service: climateService,
		l:       l,
		strict:  strictErrors,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", r.handleIndex)

	// Static routes must be registered before the date parameters swallow them
	api := app.Group("/api/v1.0")
	api.Get("/precipitation", r.handlePrecipitation)
	api.Get("/stations", r.handleStations)
	api.Get("/tobs", r.handleTemperatureObservations)
	api.Get("/:start", r.handleStatsFrom)
	api.Get("/:start/:end", r.handleStatsBetween)
}
