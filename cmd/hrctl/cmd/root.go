// Package cmd は hrctl のサブコマンドを定義します。
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/hr-smart-records/internal/adapters/textgen"
	"github.com/ogurasousui/hr-smart-records/internal/core/assistant"
	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	"github.com/ogurasousui/hr-smart-records/internal/platform/config"
	"github.com/ogurasousui/hr-smart-records/internal/platform/logging"
	"github.com/ogurasousui/hr-smart-records/internal/platform/storage"
	"github.com/spf13/cobra"
)

// env はサブコマンドが共有する実行時の依存です。
type env struct {
	configPath string
	svc        *records.Service
	session    *records.Session
	closeFn    func()
}

// open は設定を読み込み、保存先と文章生成を組み立てます。テストでは svc が先に設定されます。
func (e *env) open(ctx context.Context) error {
	if e.svc != nil {
		if e.session == nil {
			e.session = records.NewSession(e.svc)
		}
		return nil
	}

	_ = godotenv.Load()

	cfg, err := config.Load(effectiveConfigPath(e.configPath))
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log)
	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}

	generator := textgen.NewFromConfig(textgen.Config{
		BaseURL: cfg.TextGen.BaseURL,
		APIKey:  cfg.TextGen.APIKey,
		Model:   cfg.TextGen.Model,
	})
	writer := assistant.NewClient(generator, cfg.TextGen.Locale, logger)

	e.svc = records.NewService(ctx, backend.Store(cfg.Storage, logger), writer, backend.ServiceOptions(logger)...)
	e.session = records.NewSession(e.svc)
	e.closeFn = backend.Close
	return nil
}

func (e *env) close() {
	if e.closeFn != nil {
		e.closeFn()
	}
}

// NewRootCommand は hrctl のルートコマンドを生成します。
func NewRootCommand() *cobra.Command {
	return newRootCommand(&env{})
}

func newRootCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hrctl",
		Short:         "HR Smart Records - manage employee records from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.open(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			e.close()
		},
	}

	cmd.PersistentFlags().StringVar(&e.configPath, "config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")

	cmd.AddCommand(
		newListCommand(e),
		newShowCommand(e),
		newAddCommand(e),
		newUpdateCommand(e),
		newHistoryCommand(e),
		newBioCommand(e),
		newEnhanceCommand(e),
		newImportCommand(e),
		newExportCommand(e),
		newDepartmentsCommand(e),
	)

	return cmd
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "assets/local.yaml"
}

func notFound(id string) error {
	return fmt.Errorf("employee %s: %w", id, records.ErrEmployeeNotFound)
}
