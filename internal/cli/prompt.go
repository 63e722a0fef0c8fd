package cli

import (
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
)

// isInteractive reports whether stdin is a terminal a prompt can read from.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// askOne is survey.AskOne, replaceable in tests.
var askOne = survey.AskOne

// promptRepoURL asks for a repository URL or local path.
func promptRepoURL() (string, error) {
	var result string

	prompt := &survey.Input{
		Message: "Repository URL or local path",
		Help:    "e.g. https://github.com/owner/repo, owner/repo, git@github.com:owner/repo.git or ./project",
	}

	validator := func(val interface{}) error {
		s, _ := val.(string)
		return ValidateRepoInput(s)
	}

	if err := askOne(prompt, &result, survey.WithValidator(survey.ComposeValidators(survey.Required, validator))); err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
