package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/pkg/config"
	"github.com/FACorreiaa/go-nextapp/internal/pkg/logger"
	"github.com/FACorreiaa/go-nextapp/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), zap.String("service", cfg.Server.ServiceName)); err != nil {
		return err
	}
	defer logger.Log.Sync()

	otelShutdown, err := server.InitObservability(cfg.Server.ServiceName, cfg.Server.MetricsAddr, cfg.Server.OTLPEndpoint, logger.Log)
	if err != nil {
		return err
	}

	srv := server.New(cfg, logger.Log)
	defer srv.Close()

	router := server.SetupRouter(cfg.Server.ServiceName, srv.GetPageCache(), logger.Log)
	server.SetupAssets(router)
	srv.SetRouter(router)

	if err := server.VerifyPages(router, logger.Log); err != nil {
		return err
	}

	if cfg.Server.PprofAddr != "" {
		server.StartPprofServer(cfg.Server.PprofAddr, logger.Log)
	}

	httpServer := srv.HTTPServer()

	done := make(chan bool, 1)
	go server.GracefulShutdown(httpServer, logger.Log, done, otelShutdown)

	logger.Log.Info("Server starting", zap.String("port", cfg.Server.Port))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Error("Server error", zap.Error(err))
		if shutdownErr := otelShutdown(context.Background()); shutdownErr != nil {
			logger.Log.Error("Failed to shutdown OpenTelemetry", zap.Error(shutdownErr))
		}
		return err
	}

	<-done
	logger.Log.Info("Graceful shutdown complete")

	return nil
}
