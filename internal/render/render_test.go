package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/setupguide/internal/repo/model"
	"github.com/tacogips/setupguide/internal/setup"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	manifest := model.NewFileManifest("app.py", "requirements.txt", "config.yaml")
	analysis := setup.Analyze(setup.Target{Owner: "octo", Repo: "demo"}, manifest, "Python")
	return Report{
		Ref: model.RepoRef{Provider: "github", Owner: "octo", Repo: "demo"},
		Metadata: model.RepoMetadata{
			Language:    "Python",
			Description: "A demo service",
			Stars:       42,
			Forks:       7,
			Size:        256,
			Homepage:    "https://demo.example.com",
		},
		Tags: analysis.Tags,
		Plan: analysis.Plan,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "text", want: FormatText},
		{in: "markdown", want: FormatMarkdown},
		{in: "md", want: FormatMarkdown},
		{in: "json", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "html", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), FormatText, Options{NoColor: true}))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[", "no ANSI escapes with NoColor")
	for _, want := range []string{
		"octo/demo",
		"★ 42  ⑂ 7  256 KB",
		"A demo service",
		"Python, Flask",
		"Step 1: Clone the Repository",
		"    git clone https://github.com/octo/demo.git",
		"    cd demo",
		"  • Make sure you have Git installed on your system",
		"GitHub: https://github.com/octo/demo",
		"Live Demo: https://demo.example.com",
	} {
		assert.Contains(t, out, want)
	}
	// The run step's note mentions the README file; only the section is absent.
	assert.Contains(t, out, "Check the README file for specific run instructions")
	assert.NotContains(t, out, "\nREADME\n")

	// Steps are numbered in plan order.
	first := strings.Index(out, "Step 1:")
	last := strings.Index(out, "Step 5:")
	assert.True(t, first >= 0 && last > first, "steps out of order:\n%s", out)
}

func TestRenderTextReadme(t *testing.T) {
	r := sampleReport(t)
	r.Readme = "# Demo\nHello"

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatText, Options{NoColor: true}))
	assert.True(t, strings.HasSuffix(buf.String(), "README\n# Demo\nHello\n"), buf.String())
}

func TestRenderTextNoTags(t *testing.T) {
	analysis := setup.Analyze(setup.Target{Owner: "octo", Repo: "bare"}, model.FileManifest{}, "")
	r := Report{
		Ref:  model.RepoRef{Provider: "local", Owner: "src", Repo: "bare", CloneURL: "/src/bare"},
		Tags: analysis.Tags,
		Plan: analysis.Plan,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatText, Options{NoColor: true}))
	out := buf.String()
	assert.Contains(t, out, "none detected")
	assert.Contains(t, out, "Step 1: Clone the Repository")
	assert.NotContains(t, out, "Step 2:")
	assert.NotContains(t, out, "Links")
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), FormatMarkdown, Options{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# octo/demo\n"))
	assert.Contains(t, out, "- Flask\n")
	assert.Contains(t, out, "### 📥 Step 1: Clone the Repository\n")
	assert.Contains(t, out, "```bash\ngit clone https://github.com/octo/demo.git\ncd demo\n```\n")
	assert.Contains(t, out, "- [GitHub](https://github.com/octo/demo)\n")
	assert.Contains(t, out, "- [Live Demo](https://demo.example.com)\n")
	assert.Contains(t, out, "Step 5: Environment Configuration")
}

func TestRenderJSON(t *testing.T) {
	r := sampleReport(t)
	r.Readme = "<b>hi</b>"

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatJSON, Options{}))

	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "octo/demo", doc.Repository)
	assert.Equal(t, []string{"Python", "Flask"}, doc.Technologies)
	assert.Equal(t, "<b>hi</b>", doc.Readme)
	assert.Contains(t, buf.String(), "<b>hi</b>", "HTML is not escaped")

	kinds := make([]string, len(doc.Steps))
	for i, s := range doc.Steps {
		assert.Equal(t, i+1, s.Number)
		kinds[i] = s.Kind
	}
	want := []string{"clone", "python-env", "python-deps", "run", "env-config"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("step kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderJSONEmptyTags(t *testing.T) {
	r := Report{Ref: model.RepoRef{Owner: "o", Repo: "r"}}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatJSON, Options{}))
	assert.Contains(t, buf.String(), `"technologies": []`)
	assert.Contains(t, buf.String(), `"steps": []`)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), FormatYAML, Options{}))

	var doc document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "octo/demo", doc.Repository)
	assert.Len(t, doc.Steps, 5)
	assert.Equal(t, "Clone the Repository", doc.Steps[0].Title)
	assert.Equal(t, 42, doc.Metadata.Stars)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, sampleReport(t), Format("pdf"), Options{}))
	assert.Error(t, RenderBatch(&buf, nil, Format("pdf"), Options{}))
}

func TestRenderBatch(t *testing.T) {
	r := sampleReport(t)
	entries := []Entry{
		{URL: "octo/demo", Report: &r},
		{URL: "octo/missing", Err: errors.New("repository not found")},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderBatch(&buf, entries, FormatText, Options{NoColor: true}))
		out := buf.String()
		assert.Contains(t, out, "Step 1: Clone the Repository")
		assert.Contains(t, out, "✗ octo/missing: repository not found")
		assert.Less(t, strings.Index(out, "octo/demo"), strings.Index(out, "octo/missing"))
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderBatch(&buf, entries, FormatMarkdown, Options{}))
		out := buf.String()
		assert.Contains(t, out, "\n---\n")
		assert.Contains(t, out, "> **Error:** repository not found")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderBatch(&buf, entries, FormatJSON, Options{}))

		var docs []batchDocument
		require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
		require.Len(t, docs, 2)
		assert.Equal(t, "octo/demo", docs[0].URL)
		require.NotNil(t, docs[0].Result)
		assert.Equal(t, "octo/demo", docs[0].Result.Repository)
		assert.Nil(t, docs[1].Result)
		assert.Equal(t, "repository not found", docs[1].Error)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderBatch(&buf, entries, FormatYAML, Options{}))

		var docs []batchDocument
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &docs))
		require.Len(t, docs, 2)
		assert.Equal(t, "repository not found", docs[1].Error)
	})
}

func TestRepoLink(t *testing.T) {
	tests := []struct {
		name string
		r    Report
		want string
	}{
		{
			name: "metadata URL wins",
			r:    Report{Ref: model.RepoRef{Provider: "github", Owner: "o", Repo: "r"}, Metadata: model.RepoMetadata{HTMLURL: "https://ghe.example.com/o/r"}},
			want: "https://ghe.example.com/o/r",
		},
		{
			name: "github fallback",
			r:    Report{Ref: model.RepoRef{Provider: "github", Owner: "o", Repo: "r"}},
			want: "https://github.com/o/r",
		},
		{
			name: "local has no link",
			r:    Report{Ref: model.RepoRef{Provider: "local", Owner: "src", Repo: "r"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repoLink(tt.r))
		})
	}
}

func TestStepIconsCoverAllKinds(t *testing.T) {
	kinds := []setup.StepKind{
		setup.StepClone, setup.StepPythonEnv, setup.StepPythonDeps, setup.StepNodeDeps,
		setup.StepDocker, setup.StepJavaMaven, setup.StepJavaGradle, setup.StepRun, setup.StepEnvConfig,
	}
	for _, k := range kinds {
		assert.NotEqual(t, "•", stepIcon(k), "kind %s", k)
	}
}
