package cmd

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-secours/config"
)

func TestConfigureLogging(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "debug", Format: "text"}}
	if err := configureLogging(cfg); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", logrus.GetLevel())
	}
	if _, ok := logrus.StandardLogger().Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected text formatter, got %T", logrus.StandardLogger().Formatter)
	}

	cfg.Log = config.LogConfig{}
	if err := configureLogging(cfg); err != nil {
		t.Fatalf("expected defaults to be accepted, got %v", err)
	}
	if _, ok := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("expected json formatter, got %T", logrus.StandardLogger().Formatter)
	}
}

func TestConfigureLoggingRejectsUnknownValues(t *testing.T) {
	if err := configureLogging(&config.Config{Log: config.LogConfig{Level: "loud"}}); err == nil {
		t.Fatal("expected level error")
	}
	if err := configureLogging(&config.Config{Log: config.LogConfig{Level: "info", Format: "xml"}}); err == nil {
		t.Fatal("expected format error")
	}
}
