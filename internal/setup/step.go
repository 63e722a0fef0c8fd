package setup

import "fmt"

// StepKind tells presenters what a step is about.
type StepKind string

const (
	StepClone      StepKind = "clone"
	StepPythonEnv  StepKind = "python-env"
	StepPythonDeps StepKind = "python-deps"
	StepNodeDeps   StepKind = "node-deps"
	StepDocker     StepKind = "docker"
	StepJavaMaven  StepKind = "java-maven"
	StepJavaGradle StepKind = "java-gradle"
	StepRun        StepKind = "run"
	StepEnvConfig  StepKind = "env-config"
)

// Step is one unit of a setup plan.
type Step struct {
	Kind        StepKind `json:"kind" yaml:"kind"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Commands    []string `json:"commands" yaml:"commands"`
	Notes       []string `json:"notes" yaml:"notes"`
}

// Plan is an ordered list of steps. Order is meaningful.
type Plan []Step

// RunStep returns the plan's run step, if any.
func (p Plan) RunStep() (Step, bool) {
	for _, s := range p {
		if s.Kind == StepRun {
			return s, true
		}
	}
	return Step{}, false
}

// Find returns the first step of the given kind.
func (p Plan) Find(kind StepKind) (Step, bool) {
	for _, s := range p {
		if s.Kind == kind {
			return s, true
		}
	}
	return Step{}, false
}

// Kinds lists step kinds in plan order.
func (p Plan) Kinds() []StepKind {
	out := make([]StepKind, len(p))
	for i, s := range p {
		out[i] = s.Kind
	}
	return out
}

// Target names the repository a plan is for. It carries no logic.
type Target struct {
	Owner    string
	Repo     string
	CloneURL string
}

// cloneURL defaults to the GitHub HTTPS location.
func (t Target) cloneURL() string {
	if t.CloneURL != "" {
		return t.CloneURL
	}
	return fmt.Sprintf("https://github.com/%s/%s.git", t.Owner, t.Repo)
}

func cloneStep(t Target) Step {
	return Step{
		Kind:        StepClone,
		Title:       "Clone the Repository",
		Description: "Download the repository to your local machine",
		Commands: []string{
			"git clone " + t.cloneURL(),
			"cd " + t.Repo,
		},
		Notes: []string{"Make sure you have Git installed on your system"},
	}
}
