package climate

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"climate-api/internal/models"
	"climate-api/internal/repositories"
	"climate-api/pkg/logger"
)

// routes lists the API paths in the order they are advertised on "/".
var routes = []string{
	"/api/v1.0/precipitation",
	"/api/v1.0/stations",
	"/api/v1.0/tobs",
	"/api/v1.0/<start>",
	"/api/v1.0/<start>/<end>",
}

// ClimateService answers the report queries. Dataset bounds are read fresh on
// every call.
type ClimateService struct {
	repo repositories.ClimateRepository
	l    *logger.Logger
}

func NewClimateService(repo repositories.ClimateRepository, l *logger.Logger) *ClimateService {
	return &ClimateService{
		repo: repo,
		l:    l,
	}
}

func (s *ClimateService) Routes() []string {
	out := make([]string, len(routes))
	copy(out, routes)
	return out
}

// Bounds returns the earliest and latest measurement dates.
func (s *ClimateService) Bounds(ctx context.Context) (models.DateBounds, error) {
	earliest, latest, err := s.repo.DateBounds(ctx)
	if err != nil {
		return models.DateBounds{}, errors.Wrap(err, "failed to load dataset bounds")
	}

	earliestDate, err := models.ParseDate(earliest)
	if err != nil {
		return models.DateBounds{}, errors.Wrap(err, "dataset earliest date")
	}
	latestDate, err := models.ParseDate(latest)
	if err != nil {
		return models.DateBounds{}, errors.Wrap(err, "dataset latest date")
	}

	return models.DateBounds{Earliest: earliestDate, Latest: latestDate}, nil
}

// trailingYear returns the formatted [latest - 1 year, latest] window.
func (s *ClimateService) trailingYear(ctx context.Context) (string, string, error) {
	b, err := s.Bounds(ctx)
	if err != nil {
		return "", "", err
	}
	from, to := b.TrailingYear()
	return models.FormatDate(from), models.FormatDate(to), nil
}

func (s *ClimateService) Precipitation(ctx context.Context) ([]models.Precipitation, error) {
	from, to, err := s.trailingYear(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Precipitation(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load precipitation")
	}

	s.l.Info("precipitation report built", map[string]any{"from": from, "to": to, "rows": len(rows)})

	return rows, nil
}

func (s *ClimateService) Stations(ctx context.Context) ([]string, error) {
	names, err := s.repo.StationNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stations")
	}

	return names, nil
}

// TemperatureObservations returns per-date observation counts for the trailing year.
func (s *ClimateService) TemperatureObservations(ctx context.Context) ([]models.TemperatureCount, error) {
	from, to, err := s.trailingYear(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.TemperatureCounts(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load temperature observations")
	}

	s.l.Info("temperature observation report built", map[string]any{"from": from, "to": to, "dates": len(rows)})

	return rows, nil
}

// StatsFrom aggregates every observation on or after start. start must lie
// inside the dataset bounds.
func (s *ClimateService) StatsFrom(ctx context.Context, start string) ([]models.TemperatureStats, error) {
	startDate, err := parseParam(start)
	if err != nil {
		return nil, err
	}

	b, err := s.Bounds(ctx)
	if err != nil {
		return nil, err
	}

	if !b.Contains(startDate) {
		return nil, startOutOfRange(b)
	}

	stats, err := s.repo.TemperatureStats(ctx, models.FormatDate(startDate), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate temperatures")
	}

	return []models.TemperatureStats{stats}, nil
}

// StatsBetween aggregates observations in [start, end]. Both dates must lie
// inside the dataset bounds and start must not be after end.
func (s *ClimateService) StatsBetween(ctx context.Context, start, end string) ([]models.TemperatureStats, error) {
	startDate, err := parseParam(start)
	if err != nil {
		return nil, err
	}
	endDate, err := parseParam(end)
	if err != nil {
		return nil, err
	}

	b, err := s.Bounds(ctx)
	if err != nil {
		return nil, err
	}

	if !b.Contains(startDate) || !b.Contains(endDate) {
		return nil, rangeOutOfRange(b)
	}
	if startDate.After(endDate) {
		return nil, invertedRange(startDate, endDate, b)
	}

	to := models.FormatDate(endDate)
	stats, err := s.repo.TemperatureStats(ctx, models.FormatDate(startDate), &to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate temperatures")
	}

	return []models.TemperatureStats{stats}, nil
}

func parseParam(s string) (time.Time, error) {
	t, err := models.ParseDate(s)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrMalformedDate, "%q: %v", s, err)
	}
	return t, nil
}
