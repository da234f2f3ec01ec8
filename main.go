package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	loadEnv()

	logf := LoggingFormat{Path: "main", Function: "main"}

	cfg, err := loadConfig()
	if err != nil {
		logf.Level = logrus.ErrorLevel
		logf.Message = "invalid configuration"
		logf.Error = err
		logf.Print()
		os.Exit(2)
	}
	logger.SetLevel(cfg.LogLevel)

	app, err := NewApp(cfg, os.Stdin, os.Stdout)
	if err != nil {
		logf.Level = logrus.ErrorLevel
		logf.Message = "failed to create codec"
		logf.Error = err
		logf.Print()
		os.Exit(2)
	}

	runErr := app.Run(os.Args[1:])

	if cfg.MetricsFile != "" {
		if err := app.metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logf.Level = logrus.WarnLevel
			logf.Message = "failed to write metrics"
			logf.Error = err
			logf.AddField("file", cfg.MetricsFile)
			logf.Print()
		}
	}

	if runErr != nil {
		os.Exit(1)
	}
}
