// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global flag names, shared with viper keys.
const (
	flagConfig   = "config"
	flagFormat   = "format"
	flagLogLevel = "log-level"
	flagTrace    = "trace"
)

// app carries state resolved once in PersistentPreRunE and shared by all
// subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
	format format
}

// newRootCmd builds a fresh command tree. Tests build one per case so that
// flag and config state never leaks between runs.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "pyramid",
		Short: "Maximum parity-alternating path through a number triangle",
		Long: `pyramid reads a number triangle row by row, left to right, and prints the
path from the root to the base row with the largest sum, where every step
moves to one of the two cells diagonally below and flips parity.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "optional YAML config file")
	pf.String(flagFormat, string(formatText), "output format: text, json, yaml or cbor")
	pf.String(flagLogLevel, "warn", "log level: debug, info, warn or error")
	pf.Bool(flagTrace, false, "log every resolved row (implies --log-level=debug)")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newSampleCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// init resolves configuration, the logger and the output format.
func (a *app) init(cmd *cobra.Command) error {
	if err := loadConfig(a.v, cmd.Flags()); err != nil {
		return err
	}

	level := a.v.GetString(flagLogLevel)
	if a.v.GetBool(flagTrace) {
		level = "debug"
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	a.logger = logger

	f, err := parseFormat(a.v.GetString(flagFormat))
	if err != nil {
		return err
	}
	a.format = f

	a.logger.Debug("configuration resolved",
		"config", a.v.ConfigFileUsed(),
		"format", a.format,
		"level", level,
	)

	return nil
}
