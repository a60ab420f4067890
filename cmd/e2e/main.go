package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/e2e"
	"github.com/FACorreiaa/go-nextapp/internal/pkg/config"
	"github.com/FACorreiaa/go-nextapp/internal/pkg/logger"
)

func main() {
	ok, err := run()
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		os.Exit(1)
	}
}

func run() (bool, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return false, err
	}
	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), zap.String("component", "e2e")); err != nil {
		return false, err
	}
	defer logger.Log.Sync()

	suite, err := e2e.LoadSuite(cfg.E2E.SuitePath)
	if err != nil {
		return false, err
	}
	scenarios := suite.Filter(cfg.E2E.Filter)
	if len(scenarios) == 0 {
		logger.Log.Warn("No scenarios match filter", zap.String("filter", cfg.E2E.Filter))
		return false, nil
	}

	driver, err := e2e.NewDriver(cfg.E2E, logger.Log)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := driver.Close(); err != nil {
			logger.Log.Warn("Failed to close driver", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := e2e.NewRunner(driver, e2e.OptionsFromConfig(cfg.E2E), logger.Log)
	report, err := runner.Run(ctx, scenarios)
	if err != nil {
		return false, err
	}
	report.Log(logger.Log)
	return report.OK(), nil
}
