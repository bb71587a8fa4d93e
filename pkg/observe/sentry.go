package observe

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"go.uber.org/zap/zapcore"

	"climate-api/pkg/logger"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer for the zap logger that forwards error-level
// entries to Sentry. It only understands the JSON encoder's output.
type SentryHook struct {
	appZone string
	appName string
	l       *logger.Logger
	capture func(*sentry.Event)

	nonJSON sync.Once
}

// sentryEntry is the part of a JSON log entry that ends up in the event.
type sentryEntry struct {
	Level      string `json:"level"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Route      string `json:"route"`
	Timestamp  string `json:"timestamp"`
}

func NewSentryHook(
	appZone, appName string,
	maxErrorDepth int,
	isDebug bool,
	dsn string,
) *SentryHook {
	if dsn == "" {
		log.Println("Stacktracer init error: no DSN")
	}
	if maxErrorDepth == 0 {
		maxErrorDepth = _sentryMaxErrorDepth
	}
	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appZone,
			MaxErrorDepth:    maxErrorDepth,
			ServerName:       appName,
			Transport:        sentryTransport,
		}); err != nil {

		log.Println("Stacktracer init error: ", err.Error())
	}
	return &SentryHook{
		appZone: appZone,
		appName: appName,
		capture: func(e *sentry.Event) { sentry.CaptureEvent(e) },
	}
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel, zapcore.DPanicLevel:
		return sentry.LevelFatal
	}
	return sentry.LevelDebug
}

func (h *SentryHook) Write(p []byte) (int, error) {
	var entry sentryEntry
	if err := json.Unmarshal(p, &entry); err != nil {
		// Never report through h.l here: the report would come straight back
		// to this writer in the same undecodable format.
		h.nonJSON.Do(func() {
			log.Println("[SentryHook] dropping non-JSON log entries:", err.Error())
		})
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(entry.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level"))
		return len(p), nil
	}

	if level >= zapcore.ErrorLevel && entry.Message != "" {
		h.capture(h.event(entry, level))
	}

	return len(p), nil
}

func (h *SentryHook) event(entry sentryEntry, level zapcore.Level) *sentry.Event {
	timestamp, _ := time.ParseInLocation(logger.TimeLayout, entry.Timestamp, time.UTC)

	event := sentry.NewEvent()
	event.Environment = h.appZone
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = entry.Message
	event.Extra["AppName"] = h.appName
	event.Extra["Error"] = entry.Error
	event.Extra["CallerFile"] = entry.CallerFile
	event.Extra["CallerLine"] = entry.CallerLine
	event.Extra["CallerFunc"] = entry.CallerFunc
	event.Extra["Stack"] = entry.Stack
	if entry.Route != "" {
		event.Tags["route"] = entry.Route
	}
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       entry.Message,
		Value:      entry.Error,
		Stacktrace: sentry.NewStacktrace(),
	})
	return event
}

// report logs a hook failure. Error entries are valid JSON with a known level,
// so logging them through h.l cannot loop.
func (h *SentryHook) report(err error) {
	if h.l != nil {
		h.l.Error(err)
		return
	}
	log.Println(err.Error())
}

func (h *SentryHook) SetLogger(logger *logger.Logger) {
	if logger != nil {
		h.l = logger
	}
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	return sentry.Flush(_sentryFlushTimeout)
}
