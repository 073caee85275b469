package provider

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.jetpack.io/trackpad/pkg/buildstamp"
)

type ErrorLogger interface {
	CaptureException(exception error)

	// DisplayException displays an error to the user. Returns true if the error
	// is displayed. If true, the caller can continue without doing further
	// error handling.
	DisplayException(err error) bool
}

type NoOpLogger struct{}

var _ ErrorLogger = (*NoOpLogger)(nil)

func (l *NoOpLogger) CaptureException(err error) {}
func (l *NoOpLogger) DisplayException(err error) bool {
	return false
}

// SentryLogger reports errors to sentry. It never displays them; the CLI's
// own error output is used instead.
type SentryLogger struct {
	flushTimeout time.Duration
}

var _ ErrorLogger = (*SentryLogger)(nil)

func NewSentryLogger(dsn string) (*SentryLogger, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:     dsn,
		Release: buildstamp.Get().Version(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize sentry")
	}
	return &SentryLogger{flushTimeout: 2 * time.Second}, nil
}

func (l *SentryLogger) CaptureException(err error) {
	sentry.CaptureException(err)
	sentry.Flush(l.flushTimeout)
}

func (l *SentryLogger) DisplayException(err error) bool {
	return false
}
