// Package render presents analysis reports as styled text, markdown, JSON
// or YAML.
package render

import (
	"fmt"
	"io"

	"github.com/tacogips/setupguide/internal/config"
	"github.com/tacogips/setupguide/internal/repo/model"
	"github.com/tacogips/setupguide/internal/setup"
)

// Format selects a presenter.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat maps a format name or alias ("md", "yml") to a Format.
func ParseFormat(s string) (Format, error) {
	name, err := config.CanonicalFormat(s)
	if err != nil {
		return "", err
	}
	return Format(name), nil
}

// Options tunes presentation.
type Options struct {
	// NoColor disables ANSI styling in the text format.
	NoColor bool
}

// Report is everything shown for one repository.
type Report struct {
	Ref      model.RepoRef
	Metadata model.RepoMetadata
	Tags     setup.TagSet
	Plan     setup.Plan
	// Readme is shown only when non-empty.
	Readme string
}

// Entry is one item of a batch: a report, or the error that replaced it.
type Entry struct {
	URL    string
	Report *Report
	Err    error
}

// Render writes report to w in the given format.
func Render(w io.Writer, report Report, format Format, opts Options) error {
	switch format {
	case FormatText:
		return writeText(w, report, newTextStyles(w, opts))
	case FormatMarkdown:
		return writeMarkdown(w, report)
	case FormatJSON:
		return writeJSON(w, newDocument(report))
	case FormatYAML:
		return writeYAML(w, newDocument(report))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// RenderBatch writes several entries. Text and markdown separate entries
// with a rule; JSON and YAML emit a single list.
func RenderBatch(w io.Writer, entries []Entry, format Format, opts Options) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, newBatchDocument(entries))
	case FormatYAML:
		return writeYAML(w, newBatchDocument(entries))
	case FormatText, FormatMarkdown:
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	styles := newTextStyles(w, opts)
	for i, e := range entries {
		if i > 0 {
			sep := "\n---\n\n"
			if format == FormatText {
				sep = "\n" + styles.rule.Render("────────────────────────────────────────") + "\n\n"
			}
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		if e.Err != nil {
			if err := writeEntryError(w, e, format, styles); err != nil {
				return err
			}
			continue
		}
		if e.Report == nil {
			continue
		}
		var err error
		if format == FormatText {
			err = writeText(w, *e.Report, styles)
		} else {
			err = writeMarkdown(w, *e.Report)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeEntryError(w io.Writer, e Entry, format Format, styles textStyles) error {
	var err error
	if format == FormatText {
		_, err = fmt.Fprintf(w, "%s %s: %v\n", styles.errorMark.Render("✗"), styles.header.Render(e.URL), e.Err)
	} else {
		_, err = fmt.Fprintf(w, "## %s\n\n> **Error:** %v\n", e.URL, e.Err)
	}
	return err
}

// repoLink returns the repository's web page, if known.
func repoLink(r Report) string {
	if r.Metadata.HTMLURL != "" {
		return r.Metadata.HTMLURL
	}
	if r.Ref.Provider == "github" && r.Ref.Owner != "" {
		return fmt.Sprintf("https://github.com/%s/%s", r.Ref.Owner, r.Ref.Repo)
	}
	return ""
}

// stepIcon decorates step titles.
func stepIcon(kind setup.StepKind) string {
	switch kind {
	case setup.StepClone:
		return "📥"
	case setup.StepPythonEnv:
		return "🐍"
	case setup.StepPythonDeps, setup.StepNodeDeps:
		return "📦"
	case setup.StepDocker:
		return "🐳"
	case setup.StepJavaMaven, setup.StepJavaGradle:
		return "☕"
	case setup.StepRun:
		return "🚀"
	case setup.StepEnvConfig:
		return "⚙️"
	default:
		return "•"
	}
}
