package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rl1809/kata/internal/config"
	"github.com/rl1809/kata/internal/logging"
)

type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "kata",
		Short:        "Small typed exercises served over CLI, HTTP and gRPC",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	cmd.AddCommand(
		newServeCmd(a),
		newFormatCmd(),
		newFilterCmd(),
		newConcatCmd(),
		newVehicleCmd(),
		newProcessCmd(),
		newExpensiveCmd(),
		newDayTypeCmd(),
		newSquareCmd(a),
		newDemoCmd(a),
	)
	return cmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}
