package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "tada",
	Short: "tada is a tiny terminal todo list",
	Long: `tada keeps a short list of things to do for the length of one session.

Type a title and press enter to add it. Tab moves between the title, the
description, the add button and the list. In the list, space marks an item
done, enter shows its description and d deletes it.`,
	Args:          noArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return cli.Run(cmd.Context(), cfg)
	},
}

// Execute runs the root command and exits with its status.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		ui.Fail(err.Error())
	}
	os.Exit(cli.ExitCode(err))
}

func init() {
	addFlags(rootCmd.Flags())
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	})
}

// noArgs is cobra.NoArgs with the error marked as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return nil
}

func addFlags(f *pflag.FlagSet) {
	f.String("config", "", "config file (default .tada.yaml, then ~/.tada/config.yaml)")
	f.String("theme", "", "color theme: classic, neon or mono")
	f.String("color", "", "color output: auto, always or never")
	f.String("log-file", "", "write logs to this file")
	f.String("log-level", "", "log level: debug, info, warn or error")
	f.Bool("no-seed", false, "start with an empty list")
	f.Bool("alt-screen", true, "use the alternate screen buffer")
}

// resolveConfig loads the config file and applies flags on top of it.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	for name, dst := range map[string]*string{
		"theme":     &cfg.Theme,
		"color":     &cfg.Color,
		"log-file":  &cfg.LogFile,
		"log-level": &cfg.LogLevel,
	} {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	if f.Changed("no-seed") {
		noSeed, _ := f.GetBool("no-seed")
		cfg.Seed = !noSeed
	}
	if f.Changed("alt-screen") {
		cfg.AltScreen, _ = f.GetBool("alt-screen")
	}
	return cfg, cfg.Validate()
}
