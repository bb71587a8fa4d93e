package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"climate-api/config"
	v1 "climate-api/internal/controllers/http/v1"
	"climate-api/internal/models"
	"climate-api/internal/repositories"
	"climate-api/internal/services/climate"
	"climate-api/pkg/database"
	"climate-api/pkg/httpserver"
	"climate-api/pkg/logger"
	"climate-api/pkg/observe"
)

// @title Climate API
// @version 1.0.0
// @description Read-only reports over a station climate-observations database: trailing-year precipitation, stations, temperature observation counts and min/avg/max temperatures for a date range.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Climate
// @tag.description Climate observation reports

type Globals struct {
	Config string `help:"Path to the YAML config file." default:"config/config.yaml" type:"path"`
}

type CLI struct {
	Globals

	Serve  ServeCmd  `cmd:"" default:"1" help:"Run the HTTP API."`
	Bounds BoundsCmd `cmd:"" help:"Print the dataset date bounds and the trailing-year window."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("climate-api"),
		kong.Description("Read-only climate observations API over SQLite."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}

// app holds the components shared by every command.
type app struct {
	cnf     *config.Config
	l       *logger.Logger
	sentry  *observe.SentryHook
	db      *gorm.DB
	service *climate.ClimateService
}

func bootstrap(ctx context.Context, g *Globals) (*app, error) {
	cnf, err := config.NewConfig(g.Config)
	if err != nil {
		return nil, err
	}

	writers := []io.Writer{os.Stdout}
	if cnf.Log.File != "" {
		writers = append(writers, logger.FileWriter(cnf.Log.File))
	}

	var hook *observe.SentryHook
	if cnf.SentryEnabled() {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
	}, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	db, err := database.Open(ctx, database.Options{
		Path:            cnf.Database.Path,
		ReadOnly:        cnf.Database.ReadOnly,
		MaxOpenConns:    cnf.Database.MaxOpenConns,
		MaxIdleConns:    cnf.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cnf.Database.ConnMaxLifetime) * time.Second,
		ConnectAttempts: cnf.Database.ConnectAttempts,
	}, l)
	if err != nil {
		_ = l.Stop()
		return nil, errors.Wrapf(err, "cannot open database %s", cnf.Database.Path)
	}

	repo, err := repositories.NewSQLiteClimateRepository(db, l)
	if err != nil {
		_ = database.Close(db)
		_ = l.Stop()
		return nil, err
	}

	return &app{
		cnf:     cnf,
		l:       l,
		sentry:  hook,
		db:      db,
		service: climate.NewClimateService(repo, l),
	}, nil
}

func (a *app) close() {
	_ = database.Close(a.db)
	if a.sentry != nil {
		a.sentry.Flush()
	}
	_ = a.l.Stop()
}

type ServeCmd struct{}

func (cmd *ServeCmd) Run(g *Globals) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := bootstrap(ctx, g)
	if err != nil {
		return err
	}
	l := a.l

	server := httpserver.InitFiberServer(httpserver.Options{
		AppName:      a.cnf.App.Name,
		ReadTimeout:  time.Duration(a.cnf.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cnf.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.cnf.Server.IdleTimeout) * time.Second,
		Ready: func() bool {
			sqlDB, err := a.db.DB()
			if err != nil {
				return false
			}
			pingCtx, pingCancel := context.WithTimeout(ctx, time.Second)
			defer pingCancel()
			return sqlDB.PingContext(pingCtx) == nil
		},
	}, l)

	v1.NewRouter(
		server,
		a.service,
		l,
		a.cnf.Server.StrictErrors,
	)

	go func() {
		if err := server.Listen(":" + a.cnf.Server.Port); err != nil {
			l.Error(errors.Wrap(err, "cannot run the server"))
			cancel()
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     a.cnf.Server.Port,
		"env":      a.cnf.App.Env,
		"version":  a.cnf.App.Version,
		"database": a.cnf.Database.Path,
		"strict":   a.cnf.Server.StrictErrors,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = server.ShutdownWithContext(shutdownCtx)
		a.close()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}

	return nil
}

type BoundsCmd struct{}

func (cmd *BoundsCmd) Run(g *Globals) error {
	ctx := context.Background()

	a, err := bootstrap(ctx, g)
	if err != nil {
		return err
	}
	defer a.close()

	b, err := a.service.Bounds(ctx)
	if err != nil {
		return err
	}

	from, to := b.TrailingYear()
	fmt.Printf("earliest:      %s\n", models.FormatDate(b.Earliest))
	fmt.Printf("latest:        %s\n", models.FormatDate(b.Latest))
	fmt.Printf("trailing year: %s..%s\n", models.FormatDate(from), models.FormatDate(to))

	return nil
}
