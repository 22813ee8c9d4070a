package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"studio/internal/generation"
	"studio/internal/http/handlers"
	httpapi "studio/internal/http/httpapi"
	"studio/internal/infra"
	"studio/internal/providers/agent"
	"studio/internal/providers/scheduler"
	"studio/internal/schedule"
	"studio/internal/store"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Local key-value store (settings + history slots)
	kv, err := store.OpenKV(cfg.DataPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DataPath).Msg("failed to open data store")
	}
	defer kv.Close()

	settings := store.NewSettingsStore(kv, logger)
	history := store.NewHistoryStore(kv, logger)

	agents, err := agent.NewClient(agent.Options{
		BaseURL: cfg.AgentBaseURL,
		APIKey:  cfg.AgentAPIKey,
		Logger:  &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build agent client")
	}

	schedClient, err := scheduler.NewClient(scheduler.Options{
		BaseURL: cfg.SchedulerBaseURL,
		APIKey:  cfg.SchedulerAPIKey,
		Logger:  &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build scheduler client")
	}

	orchestrator := generation.New(generation.Options{
		Agents:         agents,
		Settings:       settings,
		History:        history,
		Logger:         logger,
		ManagerAgentID: cfg.ManagerAgentID,
		VisualAgentID:  cfg.VisualAgentID,
	})

	controller := schedule.New(schedule.Options{
		Client:     schedClient,
		ScheduleID: cfg.ScheduleID,
		Logger:     logger,
	})

	app := &handlers.App{
		Logger:    logger,
		Settings:  settings,
		History:   history,
		Generator: orchestrator,
		Schedule:  controller,
	}

	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
