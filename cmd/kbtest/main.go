package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nikbrunner/kbtest/internal/config"
	"github.com/nikbrunner/kbtest/internal/logging"
	"github.com/spf13/cobra"
)

var version = "dev"

// env carries what every command needs after flags are parsed.
type env struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	logCloser  io.Closer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:           "kbtest",
		Short:         "Browse UI test projects and suites",
		Long:          "kbtest keeps projects and their test suites in an in-memory store and lets you browse and edit them in a terminal UI.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if e.logCloser != nil {
				return e.logCloser.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(e.cfg, e.logger)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "Path to config file (default ~/.config/kbtest/config.json)")

	var strict bool
	replayCmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Apply an action script and print the resulting state",
		Long:  "Read a YAML or JSON list of {type, payload} actions, dispatch them into a fresh store and print the resulting project/suite tree.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return runReplay(f, cmd.OutOrStdout(), strict, e.logger)
		},
	}
	replayCmd.Flags().BoolVar(&strict, "strict", false, "Fail on the first invalid action instead of skipping it")
	rootCmd.AddCommand(replayCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kbtest %s\n", version)
		},
	})

	return rootCmd
}

func (e *env) setup() error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Path:   cfg.LogPath,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}

	e.cfg = cfg
	e.logger = logger
	e.logCloser = closer
	return nil
}
