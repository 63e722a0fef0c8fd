package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tacogips/setupguide/internal/config"
	"github.com/tacogips/setupguide/internal/debug"
)

// Global flags
var (
	globalConfigPath string
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
)

// globalConfig is the effective configuration, loaded before any subcommand runs.
var globalConfig *config.Config

// newRootCmd builds the command tree. Building it fresh resets all flags.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "setupguide",
		Short: "Generate setup guides for repositories",
		Long: `setupguide inspects a repository's root files and produces a step-by-step
setup guide: clone, environment, dependencies, run and configuration.

Use "setupguide analyze <url>" to:
  1. Fetch repository metadata and its root file listing
  2. Detect the technologies in use
  3. Print the setup steps as text, markdown, JSON or YAML

Repositories can be GitHub URLs (https://github.com/owner/repo, owner/repo,
git@github.com:owner/repo.git) or local directories (./project).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env file is normal.
			_ = godotenv.Load()

			debug.SetDebug(globalDebug)
			debug.SetNoColor(globalNoColor)

			cfg, err := loadConfig(globalConfigPath)
			if err != nil {
				return err
			}
			if !cfg.Output.Color {
				globalNoColor = true
				debug.SetNoColor(true)
			}
			globalConfig = cfg
			debug.DebugJSON("[cli] Effective config", config.Redacted(cfg))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, FlagConfig, "", DescConfig)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newReadmeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

// loadConfig loads an explicitly given config file, or the default one when
// it exists. Defaults and SETUPGUIDE_* overrides apply either way.
func loadConfig(path string) (*config.Config, error) {
	loader := config.NewLoader()
	if path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		debug.DebugValue("[cli] Config file", expanded)
		return loader.Load(expanded)
	}
	debug.DebugValue("[cli] Config file", config.DefaultConfigPath())
	return loader.LoadOrDefault(config.DefaultConfigPath())
}

// currentConfig returns the loaded configuration or the defaults.
func currentConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
