package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/setupguide/internal/app"
)

func newReadmeCmd() *cobra.Command {
	var maxChars int

	cmd := &cobra.Command{
		Use:   "readme <url>",
		Short: "Print a repository's README",
		Long: `Fetch README.md from the repository root and print it.

Long READMEs are cut to --max characters and end with "...".

Examples:
  setupguide readme owner/repo
  setupguide readme owner/repo --max 500
  setupguide readme ./my-project --max 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			limit := cfg.Analysis.ReadmeMaxChars
			if cmd.Flags().Changed(FlagMax) {
				limit = maxChars
			}

			content, err := app.Readme(cmd.Context(), app.ReadmeOptions{
				URL:             args[0],
				ProviderOptions: app.ProviderOptionsFromConfig(cfg, getGitHubToken(cfg)),
				MaxChars:        limit,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, content)
			if !strings.HasSuffix(content, "\n") {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxChars, FlagMax, 0, DescMax)

	return cmd
}
