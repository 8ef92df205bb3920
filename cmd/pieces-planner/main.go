package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/pieces-planner/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pieces-planner",
		Short: "Turn a monthly revenue budget into daily production targets",
		Long: `pieces-planner converts a monthly revenue target and a per-category
sales mix into the number of pieces each category must put on the floor per
day, and estimates the bonus pool unlocked by what-if pricing and
sell-through changes.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadEnvFile(opts.envFile, cmd.Flags().Changed("env-file"))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", constants.DefaultEnvFile, "dotenv file with PIECES_ overrides")

	cmd.AddCommand(newPlanCmd(opts))
	cmd.AddCommand(newServeCmd(opts))

	return cmd
}

// loadEnvFile populates the environment from a dotenv file. A missing file is
// only an error when the caller asked for it explicitly.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}
