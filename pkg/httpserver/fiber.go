package httpserver

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"climate-api/pkg/logger"
	"climate-api/pkg/observe"
)

type Options struct {
	AppName      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// Ready reports whether the backing store answers; nil means always ready.
	Ready func() bool
}

func InitFiberServer(opts Options, l *logger.Logger) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	s.Use(cors.New())
	s.Use(requestMetrics(l))

	ready := opts.Ready
	if ready == nil {
		ready = func() bool { return true }
	}
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
		ReadinessProbe: func(*fiber.Ctx) bool {
			return ready()
		},
	}))

	s.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return s
}

// requestMetrics records the count and latency of every request per matched
// route and logs it at debug level.
func requestMetrics(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		elapsed := time.Since(start)

		observe.HTTPRequestsTotal.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()
		observe.HTTPRequestDuration.WithLabelValues(route, c.Method()).Observe(elapsed.Seconds())

		l.Debug("request served", map[string]any{
			"method":    c.Method(),
			"path":      c.Path(),
			"route":     route,
			"status":    status,
			"elapsedMs": elapsed.Milliseconds(),
			"requestId": c.GetRespHeader(fiber.HeaderXRequestID),
		})

		return err
	}
}
