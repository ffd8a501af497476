package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"artnet2mendeleev/internal/config"
	"github.com/sirupsen/logrus"
)

type Log struct {
	*logrus.Entry
}

// NewLogger конструктор.
func NewLogger(cfg config.LogConf) (*Log, error) {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg config.LogConf, out io.Writer) (*Log, error) {
	l := logrus.New()

	l.SetOutput(out)

	l.Formatter = &logrus.TextFormatter{
		TimestampFormat:  "2006-01-02 15:04:05.0000",
		DisableColors:    false,
		ForceColors:      out == os.Stdout,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger. Error in settings (level: %s): %w", cfg.Level, err)
	}
	l.SetLevel(level)
	l.Debug("set level: ", level)

	return &Log{Entry: l.WithFields(nil)}, nil
}

// With will add the fields to the formatted log entry.
func (l *Log) With(fields Fields) *Log {
	return &Log{Entry: l.WithFields(logrus.Fields(fields))}
}

func (l *Log) GetLevel() string {
	return l.Logger.Level.String()
}

// StdLogger returns a standard library logger writing into this entry at the
// given level. Libraries with their own package loggers are routed through it.
func (l *Log) StdLogger(level string) *log.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	return log.New(l.WriterLevel(lvl), "", 0)
}

// Fields are a representation of formatted log fields.
type Fields map[string]interface{}

var _ Logger = (*Log)(nil)

// Logger интерфейс для регистратора.
type Logger interface {
	// GetLevel возвращает текущий установленный уровень логирования.
	GetLevel() string
	With(fields Fields) *Log
}
