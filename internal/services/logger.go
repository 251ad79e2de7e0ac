package services

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger defines common logging interface for all services
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// ZeroLogger adapts zerolog to the key/value Logger interface.
type ZeroLogger struct {
	logger zerolog.Logger
}

// NewZeroLogger builds a logger for the given service. format is "json" or
// "console"; unknown levels fall back to info.
func NewZeroLogger(service, level, format string, out io.Writer) *ZeroLogger {
	if out == nil {
		out = os.Stdout
	}
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return &ZeroLogger{
		logger: zerolog.New(out).Level(lvl).With().Timestamp().Str("service", service).Logger(),
	}
}

func (z *ZeroLogger) Info(msg string, keysAndValues ...interface{}) {
	z.write(z.logger.Info(), msg, keysAndValues)
}

func (z *ZeroLogger) Error(msg string, keysAndValues ...interface{}) {
	z.write(z.logger.Error(), msg, keysAndValues)
}

func (z *ZeroLogger) Debug(msg string, keysAndValues ...interface{}) {
	z.write(z.logger.Debug(), msg, keysAndValues)
}

func (z *ZeroLogger) Warn(msg string, keysAndValues ...interface{}) {
	z.write(z.logger.Warn(), msg, keysAndValues)
}

func (z *ZeroLogger) write(event *zerolog.Event, msg string, keysAndValues []interface{}) {
	if event == nil {
		return
	}
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		switch v := keysAndValues[i+1].(type) {
		case error:
			event = event.AnErr(key, v)
		default:
			event = event.Interface(key, v)
		}
	}
	event.Msg(msg)
}

// NoOpLogger is a logger that does nothing (for testing)
type NoOpLogger struct{}

func (n *NoOpLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *NoOpLogger) Error(msg string, keysAndValues ...interface{}) {}
func (n *NoOpLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *NoOpLogger) Warn(msg string, keysAndValues ...interface{})  {}

// NewLogger picks the logger for the environment: silent under test, JSON in
// production unless format says otherwise.
func NewLogger(service, environment, level, format string) Logger {
	switch strings.ToLower(environment) {
	case "test":
		return &NoOpLogger{}
	case "production":
		if format == "" {
			format = "json"
		}
	}
	return NewZeroLogger(service, level, format, os.Stdout)
}

// MaskEmail keeps the first characters of the local part so logs stay useful
// without exposing the address.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "****"
	}
	keep := at
	if keep > 3 {
		keep = 3
	}
	return email[:keep] + "****" + email[at:]
}
