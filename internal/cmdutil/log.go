// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger writing to dst. quiet keeps only errors;
// verbose adds debug entries. quiet wins when both are set.
func NewLogger(dst io.Writer, quiet, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(dst)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	switch {
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
