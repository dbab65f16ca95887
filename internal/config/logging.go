package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Logging struct {
	Debug bool
	// File receives the log as rotated JSON. Empty means no file.
	File string
	// Out receives the log as text. Nil discards it, so that only the game
	// reaches the terminal.
	Out io.Writer
}

func (l Logging) Level() logrus.Level {
	if l.Debug || Development() {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

func NewLogger(cfg Logging) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	log.SetOutput(out)

	if cfg.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      cfg.Level(),
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", cfg.File, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
