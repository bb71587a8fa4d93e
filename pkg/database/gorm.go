package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"climate-api/pkg/logger"
)

type Options struct {
	Path            string
	ReadOnly        bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectAttempts int
}

// Open connects to the SQLite file and verifies it answers a ping, retrying
// with exponential backoff up to ConnectAttempts times.
func Open(ctx context.Context, opts Options, l *logger.Logger) (*gorm.DB, error) {
	dbLogger := gormlogger.New(
		zap.NewStdLog(l.Zap()),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	dsn := BuildDSN(opts)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 dbLogger,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	attempts := opts.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	operation := func() error {
		if err := sqlDB.PingContext(ctx); err != nil {
			l.Warning("database ping failed", map[string]any{"path": opts.Path, "err": err})
			return err
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxElapsedTime = 10 * time.Second

	retry := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(attempts-1)), ctx)
	if err := backoff.Retry(operation, retry); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	l.Info("database connection successful", map[string]any{
		"path":     opts.Path,
		"readOnly": opts.ReadOnly,
	})

	return db, nil
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// BuildDSN turns a file path into a SQLite URI. Read-only mode makes a missing
// file an open error instead of silently creating an empty database.
func BuildDSN(opts Options) string {
	params := []string{"_busy_timeout=5000"}
	if opts.ReadOnly {
		params = append(params, "mode=ro")
	}

	path := opts.Path
	if strings.HasPrefix(path, "file:") {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + strings.Join(params, "&")
	}

	return fmt.Sprintf("file:%s?%s", path, strings.Join(params, "&"))
}
