package main

import (
	"os"

	"user-directory-service/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, logger *logrus.Logger) *cobra.Command {
	serve := newServeCmd(cfg, logger)

	root := &cobra.Command{
		Use:   "user-directory",
		Short: "User directory service for the gaming community platform.",
		Long: `user-directory serves lookups, field edits and account creation over the
user directory, gating every operation by the caller's rank.

Without a subcommand it starts the HTTP server.`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newMigrateCmd(cfg, logger))
	return root
}
