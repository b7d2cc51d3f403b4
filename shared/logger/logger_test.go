package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crew/config"
	"crew/shared/logger"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger

	logger.InitLogger()

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat to be %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected global level to be %s, got %s", zerolog.TraceLevel, zerolog.GlobalLevel())
	}

	log.Logger = originalLogger
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("test error"))

	if !bytes.Contains(buf.Bytes(), []byte("test error")) {
		t.Error("expected log output to contain 'test error'")
	}

	log.Logger = originalLogger
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "trace level", logLevel: "trace", expectedLevel: zerolog.TraceLevel},
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "warn level", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid level defaults to trace", logLevel: "invalid_level", expectedLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalLogger := log.Logger
			originalLevel := zerolog.GlobalLevel()

			var buf bytes.Buffer
			log.Logger = log.Output(&buf)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expectedLevel {
				t.Errorf("expected global level to be %s, got %s", tt.expectedLevel, zerolog.GlobalLevel())
			}

			log.Logger = originalLogger
			zerolog.SetGlobalLevel(originalLevel)
		})
	}
}
