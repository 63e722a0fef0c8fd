package setup

import "github.com/tacogips/setupguide/internal/repo/model"

// placeholderEntry stands in for an entry point the manifest does not reveal.
const placeholderEntry = "<main_file>.py"

// runRule builds the run commands for one framework.
type runRule struct {
	tag      TechTag
	commands func(tags TagSet, files fileIndex) []string
}

// runRules is a first-match-wins cascade. A later rule is never consulted
// once an earlier rule's tag is present, even if its own tag is present too.
var runRules = []runRule{
	{TagStreamlit, streamlitRun},
	{TagFlask, flaskRun},
	{TagDjango, djangoRun},
	{TagFastAPI, fastAPIRun},
	{TagNode, nodeRun},
	{TagPython, pythonRun},
}

// RunRules returns the resolver's rule order.
func RunRules() []TechTag {
	out := make([]TechTag, len(runRules))
	for i, r := range runRules {
		out[i] = r.tag
	}
	return out
}

// ResolveRun picks the single run step for a repository. It returns false
// when no rule's tag is present.
func ResolveRun(tags TagSet, manifest model.FileManifest) (Step, bool) {
	return resolveRun(tags, newFileIndex(manifest))
}

func resolveRun(tags TagSet, files fileIndex) (Step, bool) {
	for _, rule := range runRules {
		if !tags.Has(rule.tag) {
			continue
		}
		return runStep(rule.commands(tags, files)), true
	}
	return Step{}, false
}

func runStep(commands []string) Step {
	return Step{
		Kind:        StepRun,
		Title:       "Run the Application",
		Description: "Start the application",
		Commands:    commands,
		Notes: []string{
			"Check the README file for specific run instructions",
			"Application will typically run on localhost with a specific port",
		},
	}
}

// entryPoint prefers app.py, then main.py, then the placeholder.
func entryPoint(files fileIndex) string {
	if name, ok := files.firstOf("app.py", "main.py"); ok {
		return name
	}
	return placeholderEntry
}

func streamlitRun(_ TagSet, files fileIndex) []string {
	return []string{"streamlit run " + entryPoint(files)}
}

func flaskRun(_ TagSet, files fileIndex) []string {
	return []string{"export FLASK_APP=" + entryPoint(files), "flask run"}
}

func djangoRun(TagSet, fileIndex) []string {
	return []string{"python manage.py migrate", "python manage.py runserver"}
}

// fastAPIRun assumes app:app without checking for app.py.
func fastAPIRun(_ TagSet, files fileIndex) []string {
	if files.has("main.py") {
		return []string{"uvicorn main:app --reload"}
	}
	return []string{"uvicorn app:app --reload"}
}

func nodeRun(tags TagSet, _ fileIndex) []string {
	cmds := []string{"npm start"}
	if tags.Has(TagReact) {
		cmds = append(cmds, "# Or: npm run dev")
	}
	return cmds
}

func pythonRun(_ TagSet, files fileIndex) []string {
	return []string{"python " + entryPoint(files)}
}
