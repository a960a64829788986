package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the service logger: JSON lines in production, human readable
// text elsewhere. An unknown level falls back to info.
func New(level string, production bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if production {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("level", level).Warn("unknown LOG_LEVEL, using info")
		return log
	}
	log.SetLevel(lvl)
	return log
}
