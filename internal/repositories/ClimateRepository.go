package repositories

import (
	"context"

	"climate-api/internal/models"
)

type ClimateRepository interface {
	// DateBounds returns the raw earliest and latest measurement dates.
	DateBounds(ctx context.Context) (earliest, latest string, err error)
	Precipitation(ctx context.Context, from, to string) ([]models.Precipitation, error)
	StationNames(ctx context.Context) ([]string, error)
	TemperatureCounts(ctx context.Context, from, to string) ([]models.TemperatureCount, error)
	// TemperatureStats aggregates tobs from the given date onwards; a nil to means no upper bound.
	TemperatureStats(ctx context.Context, from string, to *string) (models.TemperatureStats, error)
}
