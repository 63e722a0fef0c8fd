package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/tacogips/setupguide/internal/app"
	"github.com/tacogips/setupguide/internal/config"
	"github.com/tacogips/setupguide/internal/repo/provider"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig      = "config"
	FlagFormat      = "format"
	FlagReadme      = "readme"
	FlagReadmeMax   = "readme-max"
	FlagMax         = "max"
	FlagConcurrency = "concurrency"
	FlagForce       = "force"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescConfig      = "Path to config file (default ~/.config/setupguide/config.yaml)"
	DescFormat      = "Output format: text, markdown, json or yaml"
	DescReadme      = "Include the README in the report"
	DescReadmeMax   = "Truncate the README to this many characters (0 = no limit)"
	DescMax         = "Truncate to this many characters (0 = no limit)"
	DescConcurrency = "Number of repositories analyzed in parallel"
	DescForce       = "Force overwrite"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress non-report output"
	DescDebug       = "Enable debug logging"
)

// ValidateRepoInput accepts a local path or any GitHub URL form the
// providers resolve (https, github.com/..., git@github.com:..., owner/repo).
func ValidateRepoInput(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("repository URL or path cannot be empty")
	}
	if provider.IsLocalPath(input) {
		return nil
	}
	_, err := provider.ParseGitHubURL(app.NormalizeRepoURL(input))
	return err
}

// getGitHubToken retrieves the GitHub token.
// Priority: config file > GITHUB_TOKEN env > GH_TOKEN env > gh auth token command
func getGitHubToken(cfg *config.Config) string {
	if cfg != nil && cfg.GitHub.Token != "" {
		return cfg.GitHub.Token
	}

	if token := provider.GetGitHubTokenFromEnv(); token != "" {
		return token
	}

	// Try gh CLI auth token (uses gh's secure credential storage)
	// Only attempt if gh command is available
	if _, err := exec.LookPath("gh"); err == nil {
		cmd := exec.Command("gh", "auth", "token")
		output, err := cmd.Output()
		if err == nil {
			token := strings.TrimSpace(string(output))
			if token != "" {
				return token
			}
		}
	}

	return ""
}
