package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"zultys-gsm7/smpp/coding"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	Codec       coding.Config
	LogLevel    logrus.Level
	MetricsFile string
}

// loadEnv loads .env if there is one. A missing file is not an error.
func loadEnv() {
	logf := LoggingFormat{Path: "config", Function: "loadEnv"}
	if err := godotenv.Load(); err != nil {
		logf.Level = logrus.DebugLevel
		logf.Message = "no .env file loaded, using existing environment variables"
		logf.Error = err
		logf.Print()
	}
}

func loadConfig() (Config, error) {
	return parseConfig(os.Getenv)
}

func parseConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Codec: coding.Config{
			Unmappable: coding.UnmappableReplace,
			NUL:        coding.NULKeep,
		},
		LogLevel:    logrus.InfoLevel,
		MetricsFile: getenv("GSM7_METRICS_FILE"),
	}

	switch v := strings.ToLower(getenv("GSM7_UNMAPPABLE")); v {
	case "", "replace":
	case "strict":
		cfg.Codec.Unmappable = coding.UnmappableStrict
	default:
		return cfg, fmt.Errorf("GSM7_UNMAPPABLE: unknown policy %q", v)
	}

	switch v := strings.ToLower(getenv("GSM7_NUL_POLICY")); v {
	case "", "keep":
	case "space":
		cfg.Codec.NUL = coding.NULSpace
	default:
		return cfg, fmt.Errorf("GSM7_NUL_POLICY: unknown policy %q", v)
	}

	if v := getenv("GSM7_REPLACEMENT"); v != "" {
		if utf8.RuneCountInString(v) != 1 {
			return cfg, fmt.Errorf("GSM7_REPLACEMENT: want a single character, got %q", v)
		}
		r, _ := utf8.DecodeRuneInString(v)
		cfg.Codec.Replacement = r
	}

	if v := getenv("GSM7_LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("GSM7_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
