// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: root command, configuration loading and logger setup.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fortgraph/internal/config"
	"github.com/katalvlaran/fortgraph/internal/observability"
)

// app carries state shared by every subcommand once the root has run.
type app struct {
	cfgFile  string
	logLevel string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "fortgraph",
		Short:         "Generate castle maps and plan routes between castles.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./fortgraph.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logger.level (debug, info, warn, error)")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newRouteCmd(a))
	root.AddCommand(newRoutesCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}

// init loads and validates the configuration and builds the logger.
func (a *app) init() error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	if a.logLevel != "" {
		v.Set("logger.level", a.logLevel)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	logger, err := observability.New(cfg.Logger)
	if err != nil {
		return err
	}
	a.log = logger
	a.log.Debug("configuration loaded", zap.String("file", v.ConfigFileUsed()))

	return nil
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		if ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}

	return nil
}
