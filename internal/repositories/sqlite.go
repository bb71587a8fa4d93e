package repositories

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"climate-api/internal/models"
	"climate-api/pkg/logger"
	"climate-api/pkg/observe"
)

var ErrEmptyDataset = errors.New("measurement table has no rows")

type SQLiteClimateRepository struct {
	db *gorm.DB
	l  *logger.Logger
}

// NewSQLiteClimateRepository checks that the measurement and station tables
// exist. The service never creates them.
func NewSQLiteClimateRepository(db *gorm.DB, l *logger.Logger) (*SQLiteClimateRepository, error) {
	for _, table := range []any{&models.Measurement{}, &models.Station{}} {
		if !db.Migrator().HasTable(table) {
			return nil, errors.Errorf("required table %q is missing", tableName(table))
		}
	}

	return &SQLiteClimateRepository{db: db, l: l}, nil
}

func tableName(model any) string {
	if t, ok := model.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return "unknown"
}

func observeQuery(name string) func() {
	start := time.Now()
	return func() {
		observe.DBQueryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

func (r *SQLiteClimateRepository) measurements(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Measurement{})
}

func (r *SQLiteClimateRepository) DateBounds(ctx context.Context) (string, string, error) {
	defer observeQuery("date_bounds")()

	var bounds struct {
		Earliest *string `gorm:"column:earliest"`
		Latest   *string `gorm:"column:latest"`
	}

	err := r.measurements(ctx).
		Select("MIN(date) AS earliest, MAX(date) AS latest").
		Scan(&bounds).Error
	if err != nil {
		return "", "", errors.Wrap(err, "query date bounds")
	}

	if bounds.Earliest == nil || bounds.Latest == nil {
		return "", "", ErrEmptyDataset
	}

	return *bounds.Earliest, *bounds.Latest, nil
}

func (r *SQLiteClimateRepository) Precipitation(ctx context.Context, from, to string) ([]models.Precipitation, error) {
	defer observeQuery("precipitation")()

	rows := []models.Precipitation{}
	err := r.measurements(ctx).
		Select("date, prcp").
		Where("date >= ? AND date <= ?", from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "query precipitation %s..%s", from, to)
	}

	r.l.Debug("precipitation rows loaded", map[string]any{"from": from, "to": to, "rows": len(rows)})

	return rows, nil
}

func (r *SQLiteClimateRepository) StationNames(ctx context.Context) ([]string, error) {
	defer observeQuery("station_names")()

	names := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.Station{}).
		Pluck("name", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "query station names")
	}

	return names, nil
}

func (r *SQLiteClimateRepository) TemperatureCounts(ctx context.Context, from, to string) ([]models.TemperatureCount, error) {
	defer observeQuery("temperature_counts")()

	rows := []models.TemperatureCount{}
	err := r.measurements(ctx).
		Select("date, COUNT(tobs) AS observations").
		Where("date >= ? AND date <= ?", from, to).
		Group("date").
		Order("date").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "query temperature counts %s..%s", from, to)
	}

	return rows, nil
}

func (r *SQLiteClimateRepository) TemperatureStats(ctx context.Context, from string, to *string) (models.TemperatureStats, error) {
	defer observeQuery("temperature_stats")()

	var stats models.TemperatureStats

	q := r.measurements(ctx).
		Select("MIN(tobs) AS tmin, AVG(tobs) AS tavg, MAX(tobs) AS tmax").
		Where("date >= ?", from)
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	if err := q.Scan(&stats).Error; err != nil {
		return stats, errors.Wrapf(err, "query temperature stats from %s", from)
	}

	return stats, nil
}
