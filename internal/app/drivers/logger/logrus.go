package logger

import (
	"healthrecord-service/internal/app/config"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the command line logger. Diagnostics go to out so
// they never mix with records printed on stdout.
func NewLogrusLogger(clientConfig *config.ClientConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	level, err := logrus.ParseLevel(clientConfig.Logger.Level)
	if err != nil {
		logger.Warnf("Invalid log level %q, using info", clientConfig.Logger.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
