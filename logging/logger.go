package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// New creates the runner's logger. level is one of debug, info, warn, or error; an empty level
// means info.
//
// The returned *logrus.Logger satisfies framework.Logger, so it can be handed to the API client
// for request logging outside of any test.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	logLevel := logrus.InfoLevel
	switch level {
	case "", "info":
	case "debug":
		logLevel = logrus.DebugLevel
	case "warn":
		logLevel = logrus.WarnLevel
	case "error":
		logLevel = logrus.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	return logger, nil
}

// DebugPrintf adapts a logrus logger to the Printf-style framework.Logger interface at debug
// level, so that per-request lines do not show up at the default info level.
type DebugPrintf struct {
	Logger *logrus.Logger
}

func (d DebugPrintf) Printf(message string, args ...interface{}) {
	d.Logger.Debugf(message, args...)
}
