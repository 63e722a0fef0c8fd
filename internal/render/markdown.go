package render

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Ref.FullName())
	fmt.Fprintf(&b, "⭐ %d stars · 🍴 %d forks · 📦 %d KB\n\n", r.Metadata.Stars, r.Metadata.Forks, r.Metadata.Size)
	if r.Metadata.Description != "" {
		fmt.Fprintf(&b, "> %s\n\n", r.Metadata.Description)
	}

	b.WriteString("## Detected Technologies\n\n")
	if r.Tags.Len() == 0 {
		b.WriteString("_None detected_\n\n")
	} else {
		for _, t := range r.Tags.Strings() {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Setup Guide\n")
	for i, step := range r.Plan {
		fmt.Fprintf(&b, "\n### %s Step %d: %s\n\n", stepIcon(step.Kind), i+1, step.Title)
		if step.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", step.Description)
		}
		if len(step.Commands) > 0 {
			fmt.Fprintf(&b, "```bash\n%s\n```\n\n", strings.Join(step.Commands, "\n"))
		}
		for _, note := range step.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
		if len(step.Notes) > 0 {
			b.WriteString("\n")
		}
	}

	link := repoLink(r)
	if link != "" || r.Metadata.Homepage != "" {
		b.WriteString("## Links\n\n")
		if link != "" {
			fmt.Fprintf(&b, "- [GitHub](%s)\n", link)
		}
		if r.Metadata.Homepage != "" {
			fmt.Fprintf(&b, "- [Live Demo](%s)\n", r.Metadata.Homepage)
		}
		b.WriteString("\n")
	}

	if r.Readme != "" {
		b.WriteString("## README\n\n")
		b.WriteString(r.Readme)
		if !strings.HasSuffix(r.Readme, "\n") {
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
