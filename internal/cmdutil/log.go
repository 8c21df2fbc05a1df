package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the text logger used for diagnostics on stderr.
func NewLogger(w io.Writer, quiet, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	SetVerbosity(log, quiet, verbose)
	return log
}

// SetVerbosity maps --quiet/--verbose onto a level. quiet wins.
func SetVerbosity(log *logrus.Logger, quiet, verbose bool) {
	switch {
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// Warnf logs a non-fatal problem at warning level.
func Warnf(log logrus.FieldLogger, format string, a ...any) {
	log.Warnf(format, a...)
}
