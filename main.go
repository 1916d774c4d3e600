package main

import (
	"bubblebrew_server/api"
	"bubblebrew_server/config"
	"bubblebrew_server/database"
	"bubblebrew_server/services"
	"bubblebrew_server/structs"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize logger and store
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	if err := database.Initialize(); err != nil {
		logger.Fatal("Failed to initialize store", gecho.Field("error", err))
	}
}

func main() {
	sync := services.NewSyncService(logger, cfg.Sync, database.GetInstance())

	// Setup graceful shutdown BEFORE starting the server
	setupGracefulShutdown(logger, sync)

	if err := sync.Start(context.Background()); err != nil {
		logger.Warn("Change-event publishing unavailable, continuing without it", gecho.Field("error", err))
	}

	r := api.App()

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))

	// Start server
	if err := http.ListenAndServe(cfg.Server.Port, r); err != nil {
		logger.Error("Failed to start server", gecho.Field("error", err))
	}
}

// setupGracefulShutdown sets up signal handling for graceful application shutdown
func setupGracefulShutdown(logger *gecho.Logger, sync *services.SyncService) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	logger.Info("Graceful shutdown handler initialized")

	go func() {
		sig := <-c
		logger.Info("Received shutdown signal", "signal", sig)

		if err := sync.Stop(); err != nil {
			logger.Warn("Failed to stop change-event publisher", gecho.Field("error", err))
		}
		if err := database.CloseInstance(); err != nil {
			logger.Warn("Failed to close store", gecho.Field("error", err))
		}

		os.Exit(0)
	}()
}
