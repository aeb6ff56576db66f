package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/resurgence-tools/edjb/internal/defs"
	"github.com/resurgence-tools/edjb/pkg/version"
)

var (
	flagConfigDir string
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "edjb",
	Short: "ElDewrito voting.json and mods.json builder",
	Long: `edjb builds the voting.json and mods.json files read by an ElDewrito
dedicated server.

Run 'edjb build' for the interactive builder, or use 'edjb export' to
render a saved builder or an existing voting.json from scripts.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("edjb %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigDir, "config-dir", "", "settings and saved builder directory (env "+defs.EnvConfigDir+")")
	pf.StringVar(&flagLogLevel, "log-level", "", "log to stderr at debug, info, warn or error (env "+defs.EnvLogLevel+")")
}

// initRuntime loads .env, then wires dependencies once. Tests install
// their own dependencies with SetDeps before running a command.
func initRuntime(cmd *cobra.Command, _ []string) error {
	if err := loadDotEnv(defs.DotEnvFile); err != nil {
		return err
	}
	if deps != nil {
		return nil
	}

	level := flagLogLevel
	if !cmd.Flags().Changed("log-level") {
		level = os.Getenv(defs.EnvLogLevel)
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	return InitDependencies(flagConfigDir, logger)
}

// loadDotEnv merges path into the environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// cmdContext returns the command context, or Background when the command
// is run directly.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// requireDeps returns the wired dependencies.
func requireDeps() (*Dependencies, error) {
	if deps == nil {
		return nil, fmt.Errorf("dependencies not initialized")
	}
	return deps, nil
}
