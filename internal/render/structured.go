package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/setupguide/internal/repo/model"
)

// document is the JSON/YAML shape of a report.
type document struct {
	Repository   string             `json:"repository" yaml:"repository"`
	Ref          model.RepoRef      `json:"ref" yaml:"ref"`
	Metadata     model.RepoMetadata `json:"metadata" yaml:"metadata"`
	Link         string             `json:"link,omitempty" yaml:"link,omitempty"`
	Technologies []string           `json:"technologies" yaml:"technologies"`
	Steps        []stepDocument     `json:"steps" yaml:"steps"`
	Readme       string             `json:"readme,omitempty" yaml:"readme,omitempty"`
}

type stepDocument struct {
	Number      int      `json:"number" yaml:"number"`
	Kind        string   `json:"kind" yaml:"kind"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Commands    []string `json:"commands" yaml:"commands"`
	Notes       []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

type batchDocument struct {
	URL    string    `json:"url" yaml:"url"`
	Result *document `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string    `json:"error,omitempty" yaml:"error,omitempty"`
}

func newDocument(r Report) document {
	doc := document{
		Repository:   r.Ref.FullName(),
		Ref:          r.Ref,
		Metadata:     r.Metadata,
		Link:         repoLink(r),
		Technologies: r.Tags.Strings(),
		Steps:        make([]stepDocument, len(r.Plan)),
		Readme:       r.Readme,
	}
	for i, s := range r.Plan {
		doc.Steps[i] = stepDocument{
			Number:      i + 1,
			Kind:        string(s.Kind),
			Title:       s.Title,
			Description: s.Description,
			Commands:    append([]string{}, s.Commands...),
			Notes:       s.Notes,
		}
	}
	return doc
}

func newBatchDocument(entries []Entry) []batchDocument {
	docs := make([]batchDocument, len(entries))
	for i, e := range entries {
		docs[i].URL = e.URL
		switch {
		case e.Err != nil:
			docs[i].Error = e.Err.Error()
		case e.Report != nil:
			doc := newDocument(*e.Report)
			docs[i].Result = &doc
		}
	}
	return docs
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
