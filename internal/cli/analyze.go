package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/setupguide/internal/app"
	"github.com/tacogips/setupguide/internal/render"
	"github.com/tacogips/setupguide/internal/repo/provider"
)

// analyzeOptions holds the analyze command flags.
type analyzeOptions struct {
	format      string
	readme      bool
	readmeMax   int
	concurrency int
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [url...]",
		Short: "Generate a setup guide for one or more repositories",
		Long: `Analyze repositories and print a setup guide for each.

The root file listing of each repository is matched against known
technology markers (requirements.txt, package.json, pom.xml, Dockerfile, ...)
and the detected technologies decide the setup steps.

If no URL is given and stdin is a terminal, you are prompted for one.
Several URLs are analyzed concurrently; results keep the argument order.

Examples:
  setupguide analyze https://github.com/owner/repo
  setupguide analyze owner/repo --format markdown
  setupguide analyze ./my-project --readme
  setupguide analyze owner/a owner/b --format json --concurrency 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, FlagFormat, "f", "", DescFormat)
	cmd.Flags().BoolVar(&opts.readme, FlagReadme, false, DescReadme)
	cmd.Flags().IntVar(&opts.readmeMax, FlagReadmeMax, 0, DescReadmeMax)
	cmd.Flags().IntVarP(&opts.concurrency, FlagConcurrency, "j", 0, DescConcurrency)

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *analyzeOptions) error {
	cfg := currentConfig()

	formatName := cfg.Output.Format
	if cmd.Flags().Changed(FlagFormat) {
		formatName = opts.format
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return app.NewValidationError("invalid --format", err)
	}

	readmeMax := cfg.Analysis.ReadmeMaxChars
	if cmd.Flags().Changed(FlagReadmeMax) {
		readmeMax = opts.readmeMax
	}
	if readmeMax < 0 {
		return app.NewValidationError(fmt.Sprintf("--%s cannot be negative: %d", FlagReadmeMax, readmeMax), nil)
	}

	concurrency := cfg.Analysis.Concurrency
	if cmd.Flags().Changed(FlagConcurrency) {
		concurrency = opts.concurrency
	}
	if concurrency < 1 {
		return app.NewValidationError(fmt.Sprintf("--%s must be at least 1", FlagConcurrency), nil)
	}

	urls := args
	if len(urls) == 0 {
		if !isInteractive() {
			return app.NewValidationError("repository URL or path is required", nil)
		}
		url, err := promptRepoURL()
		if err != nil {
			return err
		}
		urls = []string{url}
	}

	analyzeOpts := app.AnalyzeOptions{
		ProviderOptions: app.ProviderOptionsFromConfig(cfg, getGitHubToken(cfg)),
		IncludeReadme:   opts.readme,
		ReadmeMaxChars:  readmeMax,
	}
	renderOpts := render.Options{NoColor: globalNoColor}
	out := cmd.OutOrStdout()

	if len(urls) == 1 {
		analyzeOpts.URL = urls[0]
		result, err := app.Analyze(cmd.Context(), analyzeOpts)
		if err != nil {
			return err
		}
		warnMissingReadme(cmd, result)
		return render.Render(out, reportFrom(result), format, renderOpts)
	}

	items := app.AnalyzeAll(cmd.Context(), urls, app.BatchOptions{
		AnalyzeOptions: analyzeOpts,
		Concurrency:    concurrency,
	})

	entries := make([]render.Entry, len(items))
	failed := 0
	for i, item := range items {
		entries[i] = render.Entry{URL: item.URL, Err: item.Err}
		if item.Err != nil {
			failed++
			continue
		}
		warnMissingReadme(cmd, item.Result)
		report := reportFrom(item.Result)
		entries[i].Report = &report
	}

	if err := render.RenderBatch(out, entries, format, renderOpts); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d repositories could not be analyzed", failed, len(items))
	}
	return nil
}

// warnMissingReadme reports a README that was requested but could not be
// fetched. An empty README is not reported.
func warnMissingReadme(cmd *cobra.Command, r *app.AnalyzeResult) {
	if r.ReadmeErr == nil {
		return
	}
	var provErr *provider.ProviderError
	if errors.As(r.ReadmeErr, &provErr) && provErr.Type == provider.ProviderNotFound {
		printWarning(cmd.ErrOrStderr(), fmt.Sprintf("README.md not found in %s", r.Ref.FullName()))
		return
	}
	printWarning(cmd.ErrOrStderr(), fmt.Sprintf("README.md of %s could not be fetched: %v", r.Ref.FullName(), r.ReadmeErr))
}

func reportFrom(r *app.AnalyzeResult) render.Report {
	return render.Report{
		Ref:      r.Ref,
		Metadata: r.Metadata,
		Tags:     r.Tags,
		Plan:     r.Plan,
		Readme:   r.Readme,
	}
}
