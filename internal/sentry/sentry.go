package sentryutil

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

// Init configures the global Sentry client. An empty dsn leaves reporting
// disabled; every Capture call is then a no-op.
func Init(dsn, environment string, log *slog.Logger) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			// Suggestions are anonymous: never ship who triggered an error.
			event.User = sentry.User{}
			return event
		},
	})
	if err != nil {
		log.Warn("Sentry init failed, error tracking disabled", "error", err)
		return
	}
	if dsn == "" {
		log.Info("SENTRY_DSN empty, error tracking disabled")
	} else {
		log.Info("Sentry initialized", "environment", environment)
	}
}

func Flush() { sentry.Flush(2 * time.Second) }

func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
