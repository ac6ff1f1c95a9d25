package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"barkday/cmd/buildCFG"
	"barkday/internal/api/api"
	"barkday/internal/repo"
	"barkday/internal/service"

	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/zlog"
)

func main() {
	zlog.Init()
	log := zlog.Logger

	cfg := config.New()
	if err := cfg.Load("config.yaml", "", "'"); err != nil {
		log.Fatal().Msgf("failed to load configuration: %v", err)
	}
	serverCfg := buildCFG.BuildServerConfig(cfg, &log)
	storeCfg := buildCFG.BuildStoreConfig(cfg, &log)
	adminCfg := buildCFG.BuildAdminConfig(cfg, &log)
	corsCfg := buildCFG.BuildCORSConfig(cfg, &log)

	db, err := repo.OpenDB(storeCfg.Path)
	if err != nil {
		log.Fatal().Msgf("failed to open database: %v", err)
	}
	defer db.Close()

	repository, err := repo.NewRepository(db, &log)
	if err != nil {
		log.Fatal().Msgf("failed to initialize repository: %v", err)
	}
	if err := repository.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}
	log.Info().Str("path", storeCfg.Path).Msg("database ready")

	serviceInstance := service.NewService(repository, &log)
	app := api.NewRouters(&api.Routers{
		Service:        serviceInstance,
		AdminPass:      adminCfg.Pass,
		AllowedOrigins: corsCfg.AllowedOrigins,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info().Msgf("Starting server on %s", serverCfg.Port)
		if err := app.Run(":" + serverCfg.Port); err != nil {
			serverErrChan <- fmt.Errorf("failed to start server: %w", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-signalChan:
		log.Info().Msgf("Received signal %s. Initiating shutdown...", sig)
	case err := <-serverErrChan:
		log.Error().Msgf("Server error: %v", err)
	}

	log.Info().Msg("Shutdown complete")
}
