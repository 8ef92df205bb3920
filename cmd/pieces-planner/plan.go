package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/iwvelando/pieces-planner/internal/config"
	"github.com/iwvelando/pieces-planner/internal/logging"
	"github.com/iwvelando/pieces-planner/internal/planner"
	"github.com/iwvelando/pieces-planner/pkg/constants"
	"github.com/iwvelando/pieces-planner/pkg/output"
	"github.com/iwvelando/pieces-planner/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPlanCmd(root *rootOptions) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Calculate daily piece targets from a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, root, outputFormat)
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output-format", "", "type of output override: pretty, csv")

	return cmd
}

func runPlan(cmd *cobra.Command, root *rootOptions, outputFormatFlag string) error {
	conf, err := loadPlanConfiguration(root.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(conf.Logging, root.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if outputFormatFlag != "" {
		outputFormat = outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	if err := conf.Validate(); err != nil {
		logger.Error("invalid configuration",
			zap.String("op", "main.plan"),
			zap.Error(err),
		)
		return fmt.Errorf("invalid configuration: %w", err)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.plan"),
		)
	}

	plan := planner.Calculate(logger, conf.PlannerConfig(), conf.Assumptions())

	out := cmd.OutOrStdout()
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(out, plan)
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(out, plan); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	return nil
}

// loadPlanConfiguration reads the configuration file. When the default path
// is missing the built-in defaults are used instead, still subject to PIECES_
// environment overrides.
func loadPlanConfiguration(path string, explicit bool) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(path)
	if err == nil {
		return conf, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		conf, err = config.LoadDefaults()
		if err != nil {
			return nil, fmt.Errorf("failed to load default configuration: %w", err)
		}
		return conf, nil
	}
	return nil, fmt.Errorf("failed to load configuration at %s: %w", path, err)
}
