package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/setupguide/internal/app"
	"github.com/tacogips/setupguide/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
		Long: `Inspect or create the setupguide configuration file.

The configuration lives at ~/.config/setupguide/config.yaml unless --config
is given. Every key can be overridden with a SETUPGUIDE_* environment
variable, e.g. SETUPGUIDE_GITHUB_TIMEOUT=30 or SETUPGUIDE_OUTPUT_FORMAT=json.`,
	}

	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigInitCmd())

	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as YAML, after defaults and
environment overrides are applied. The GitHub token is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(config.Redacted(currentConfig()))
			if err != nil {
				return err
			}

			path := globalConfigPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			source := path
			if _, err := os.Stat(path); err != nil {
				source = path + " (not found, using defaults)"
			}

			printHeader(cmd.ErrOrStderr(), "Configuration: "+source)
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Long: `Write the default configuration to path, or to the default location
when path is omitted. An existing file is kept unless --force is given.

Examples:
  setupguide config init
  setupguide config init ./setupguide.yaml
  setupguide config init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigPath()
			if len(args) > 0 {
				path = args[0]
			}
			expanded, err := config.ExpandPath(path)
			if err != nil {
				return err
			}
			if expanded == "" {
				return app.NewValidationError("cannot determine configuration path", nil)
			}

			if _, err := os.Stat(expanded); err == nil && !force {
				return app.NewValidationError(
					fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", expanded), nil)
			}

			if err := config.Save(expanded, config.DefaultConfig()); err != nil {
				return err
			}

			printSuccess(cmd.ErrOrStderr(), "Wrote default configuration to "+expanded)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, FlagForce, "f", false, DescForce)

	return cmd
}
