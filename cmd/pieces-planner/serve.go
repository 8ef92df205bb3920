package main

import (
	"fmt"

	"github.com/iwvelando/pieces-planner/internal/logging"
	"github.com/iwvelando/pieces-planner/internal/server"
	"github.com/iwvelando/pieces-planner/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		serverConfigPath string
		address          string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}

			logger, err := logging.NewLogger(cfg.Logging, root.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			logger.Info("starting pieces-planner server",
				zap.String("op", "main.serve"),
				zap.String("version", version),
				zap.Int64("maxUploadSize", cfg.UploadSizeBytes()),
			)

			return server.Run(cmd.Context(), logger, cfg, version)
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8080")

	return cmd
}
