package setup

import "strings"

// envMarkers trigger the environment step when found inside any file name.
var envMarkers = []string{".env", "config"}

func needsEnvConfig(files fileIndex) bool {
	for _, n := range files.names {
		for _, m := range envMarkers {
			if strings.Contains(n, m) {
				return true
			}
		}
	}
	return false
}

func envConfigStep() Step {
	return Step{
		Kind:        StepEnvConfig,
		Title:       "Environment Configuration",
		Description: "Set up environment variables",
		Commands: []string{
			"# Copy example environment file (if exists)",
			"cp .env.example .env",
			"# Edit .env file with your configurations",
		},
		Notes: []string{
			"Check for .env.example or similar configuration files",
			"Add necessary API keys, database URLs, etc.",
		},
	}
}
