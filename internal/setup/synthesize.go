package setup

import "github.com/tacogips/setupguide/internal/repo/model"

// Synthesize assembles the setup plan for a repository.
//
// The plan always opens with the clone step. Generator steps follow in
// dispatch order, then at most one run step, then the environment step when
// a file name mentions ".env" or "config". The environment check ignores tags.
func Synthesize(target Target, tags TagSet, manifest model.FileManifest) Plan {
	return synthesize(target, tags, newFileIndex(manifest))
}

func synthesize(target Target, tags TagSet, files fileIndex) Plan {
	plan := Plan{cloneStep(target)}
	for _, g := range generators {
		if tags.Has(g.tag) {
			plan = append(plan, g.build(files)...)
		}
	}
	if run, ok := resolveRun(tags, files); ok {
		plan = append(plan, run)
	}
	if needsEnvConfig(files) {
		plan = append(plan, envConfigStep())
	}
	return plan
}

// Analysis is the combined classifier and synthesizer output.
type Analysis struct {
	Tags TagSet
	Plan Plan
}

// Analyze classifies the manifest and synthesizes its plan in one pass.
func Analyze(target Target, manifest model.FileManifest, language string) Analysis {
	files := newFileIndex(manifest)
	tags := classify(files, language)
	return Analysis{
		Tags: tags,
		Plan: synthesize(target, tags, files),
	}
}
