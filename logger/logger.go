// Package logger provides the shared logrus instance used by the
// library. The default level is warn so that host games see nothing
// unless they opt in.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the logger used by every package in this module.
var Log = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()

	// LOG_LEVEL overrides the default; "debug" traces index builds
	// and teardown.
	level := logrus.WarnLevel
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if parsed, err := logrus.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	return log
}

// SetLevel adjusts the library log level at runtime.
func SetLevel(level logrus.Level) {
	Log.SetLevel(level)
}
