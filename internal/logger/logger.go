// Package logger wraps logrus with package-level helpers so callers do not
// carry a logger instance around.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Initialize sets up the logger with the appropriate configuration
// and log level from environment variables
func Initialize() {
	// Diagnostics go to stderr; stdout is reserved for user-facing output
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)

	configureLogLevel()
}

func configureLogLevel() {
	log.SetLevel(logrus.WarnLevel)

	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		// Defaults to WarnLevel set above
		return
	}

	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		// If parsing fails, log a warning and keep the default
		log.Warnf("Invalid log level '%s', defaulting to 'warn'", levelStr)
		return
	}

	log.SetLevel(level)
}

// Debugf logs a formatted message at the debug level
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Warnf logs a formatted message at the warn level
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}
