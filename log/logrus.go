package log

import (
	"io"
	"os"

	lg "github.com/sirupsen/logrus"

	"github.com/akhbar-news/akhbar/config"
)

type logrus struct {
	*lg.Logger
}

// WithLogrus creates a logger that uses logrus for output.
func WithLogrus(cfg config.Log) Log {
	logger := logrus{Logger: lg.New()}

	var writer io.Writer
	if cfg.Converted.Writer != nil {
		writer = cfg.Converted.Writer
	} else {
		writer = os.Stderr
	}

	logger.Out = writer

	switch cfg.Formatter {
	case "text":
		logger.Formatter = &lg.TextFormatter{}
	case "json":
		logger.Formatter = &lg.JSONFormatter{}
	}

	switch cfg.Level {
	case "info":
		logger.Level = lg.InfoLevel
	case "debug":
		logger.Level = lg.DebugLevel
	case "error":
		logger.Level = lg.ErrorLevel
	}

	return logger
}

func (l logrus) Print(args ...interface{}) {
	l.Logger.Error(args...)
}

func (l logrus) Printf(format string, args ...interface{}) {
	l.Logger.Errorf(format, args...)
}

func (l logrus) Println(args ...interface{}) {
	l.Logger.Errorln(args...)
}
