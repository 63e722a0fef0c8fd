package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorAccent  = lipgloss.Color("#FFD700")
	colorSuccess = lipgloss.Color("#00E676")
	colorDanger  = lipgloss.Color("#FF5252")
	colorMuted   = lipgloss.Color("#8C8C8C")
)

// textStyles are bound to the renderer of one output writer.
type textStyles struct {
	header    lipgloss.Style
	section   lipgloss.Style
	stepTitle lipgloss.Style
	command   lipgloss.Style
	muted     lipgloss.Style
	tag       lipgloss.Style
	link      lipgloss.Style
	errorMark lipgloss.Style
	rule      lipgloss.Style
}

func newTextStyles(w io.Writer, opts Options) textStyles {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return textStyles{
		header:    r.NewStyle().Bold(true).Foreground(colorPrimary),
		section:   r.NewStyle().Bold(true).Underline(true),
		stepTitle: r.NewStyle().Bold(true).Foreground(colorAccent),
		command:   r.NewStyle().Foreground(colorSuccess),
		muted:     r.NewStyle().Foreground(colorMuted),
		tag:       r.NewStyle().Foreground(colorPrimary),
		link:      r.NewStyle().Underline(true),
		errorMark: r.NewStyle().Bold(true).Foreground(colorDanger),
		rule:      r.NewStyle().Foreground(colorMuted),
	}
}

func writeText(w io.Writer, r Report, s textStyles) error {
	var b strings.Builder

	b.WriteString(s.header.Render(r.Ref.FullName()))
	b.WriteString("\n")
	b.WriteString(s.muted.Render(fmt.Sprintf("★ %d  ⑂ %d  %d KB", r.Metadata.Stars, r.Metadata.Forks, r.Metadata.Size)))
	b.WriteString("\n")
	if r.Metadata.Description != "" {
		b.WriteString(r.Metadata.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.section.Render("Detected Technologies"))
	b.WriteString("\n")
	if r.Tags.Len() == 0 {
		b.WriteString(s.muted.Render("  none detected"))
		b.WriteString("\n")
	} else {
		tags := make([]string, 0, r.Tags.Len())
		for _, t := range r.Tags.Strings() {
			tags = append(tags, s.tag.Render(t))
		}
		b.WriteString("  " + strings.Join(tags, ", ") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(s.section.Render("Setup Guide"))
	b.WriteString("\n")
	for i, step := range r.Plan {
		b.WriteString("\n")
		b.WriteString(s.stepTitle.Render(fmt.Sprintf("%s Step %d: %s", stepIcon(step.Kind), i+1, step.Title)))
		b.WriteString("\n")
		if step.Description != "" {
			b.WriteString("  " + step.Description + "\n")
		}
		for _, cmd := range step.Commands {
			b.WriteString("    " + s.command.Render(cmd) + "\n")
		}
		for _, note := range step.Notes {
			b.WriteString(s.muted.Render("  • "+note) + "\n")
		}
	}

	link := repoLink(r)
	if link != "" || r.Metadata.Homepage != "" {
		b.WriteString("\n")
		b.WriteString(s.section.Render("Links"))
		b.WriteString("\n")
		if link != "" {
			b.WriteString("  GitHub: " + s.link.Render(link) + "\n")
		}
		if r.Metadata.Homepage != "" {
			b.WriteString("  Live Demo: " + s.link.Render(r.Metadata.Homepage) + "\n")
		}
	}

	if r.Readme != "" {
		b.WriteString("\n")
		b.WriteString(s.section.Render("README"))
		b.WriteString("\n")
		b.WriteString(r.Readme)
		if !strings.HasSuffix(r.Readme, "\n") {
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
