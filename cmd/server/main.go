package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/hr-smart-records/internal/adapters/textgen"
	"github.com/ogurasousui/hr-smart-records/internal/core/assistant"
	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	"github.com/ogurasousui/hr-smart-records/internal/platform/config"
	"github.com/ogurasousui/hr-smart-records/internal/platform/logging"
	"github.com/ogurasousui/hr-smart-records/internal/platform/server"
	"github.com/ogurasousui/hr-smart-records/internal/platform/storage"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	flag.Parse()

	// .env が無い環境では環境変数のみを使う
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	logger := logging.New(cfg.Log)

	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to open storage")
	}
	defer backend.Close()

	generator := textgen.NewFromConfig(textgen.Config{
		BaseURL: cfg.TextGen.BaseURL,
		APIKey:  cfg.TextGen.APIKey,
		Model:   cfg.TextGen.Model,
	})
	if _, disabled := generator.(textgen.Disabled); disabled {
		logger.Warn("textgen api key is not configured, generated text will use fallback messages")
	}
	writer := assistant.NewClient(generator, cfg.TextGen.Locale, logger)

	svc := records.NewService(ctx, backend.Store(cfg.Storage, logger), writer, backend.ServiceOptions(logger)...)
	sessions := records.NewSessions(svc, records.WithMaxSessions(cfg.Server.MaxSessions))
	grpcServer := server.New(cfg.Server.ListenAddr, svc, sessions, logger)

	if err := grpcServer.Run(ctx); err != nil {
		logger.WithError(err).Fatal("server stopped with error")
	}
	logger.Info("server stopped")
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}
