// Where: internal/workflows/steps_quality.go
// What: Quality scaffold steps: testing, CI/CD, extras.
// Why: Config files and package scripts that harden the generated project.
package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/stackforge-dev/stackforge/internal/fileops"
	"github.com/stackforge-dev/stackforge/internal/generator"
	"github.com/stackforge-dev/stackforge/internal/meta"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

// testingStep writes test runner configs and wires their package scripts.
type testingStep struct{}

func (testingStep) Name() string                    { return "testing" }
func (testingStep) Enabled(a scaffold.Answers) bool { return len(a.Testing) > 0 }
func (testingStep) Fatal() bool                     { return false }

func (s testingStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers
	scripts := map[string]string{}

	if a.HasTesting(scaffold.TestingVitest) {
		config, err := generator.RenderVitestConfig(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		smoke, err := generator.RenderVitestSmokeTest(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.WebPath("vitest.config.ts"), config); err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.WebPath("src", "smoke.test.ts"), smoke); err != nil {
			return failure(s.Name(), err)
		}
		scripts["test"] = "vitest run"
	}

	if a.HasTesting(scaffold.TestingPlaywright) {
		config, err := generator.RenderPlaywrightConfig(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.WebPath("playwright.config.ts"), config); err != nil {
			return failure(s.Name(), err)
		}
		scripts["test:e2e"] = "playwright test"
	}

	if err := addPackageScripts(p.WebPath("package.json"), scripts); err != nil {
		return failure(s.Name(), err)
	}
	return success(s.Name(), strings.Join(a.Testing, ", ")+" configured")
}

// cicdStep writes GitHub automation files.
type cicdStep struct{}

func (cicdStep) Name() string                    { return "ci/cd" }
func (cicdStep) Enabled(a scaffold.Answers) bool { return len(a.CICD) > 0 }
func (cicdStep) Fatal() bool                     { return false }

func (s cicdStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers

	if a.HasCICD(scaffold.CICDGitHubActions) {
		workflow, err := generator.RenderCIWorkflow(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(meta.WorkflowsDir, "ci.yml"), workflow); err != nil {
			return failure(s.Name(), err)
		}
	}

	if a.HasCICD(scaffold.CICDDependabot) {
		config, err := generator.RenderDependabot(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(".github", "dependabot.yml"), config); err != nil {
			return failure(s.Name(), err)
		}
	}

	return success(s.Name(), strings.Join(a.CICD, ", ")+" configured")
}

// extrasStep writes formatter, linter, and git-hook configs.
type extrasStep struct{}

func (extrasStep) Name() string                    { return "extras" }
func (extrasStep) Enabled(a scaffold.Answers) bool { return len(a.Extras) > 0 }
func (extrasStep) Fatal() bool                     { return false }

func (s extrasStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers

	if a.HasExtra(scaffold.ExtraPrettier) {
		config, err := generator.RenderPrettierRC(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(".prettierrc.json"), config); err != nil {
			return failure(s.Name(), err)
		}
	}

	if a.HasExtra(scaffold.ExtraESLint) {
		config, err := generator.RenderESLintConfig(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if _, err := fileops.WriteFileIfAbsent(p.WebPath("eslint.config.mjs"), config); err != nil {
			return failure(s.Name(), err)
		}
	}

	if a.HasExtra(scaffold.ExtraHusky) {
		hook, err := generator.RenderHuskyPreCommit(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		hookDir := p.Path(".husky")
		if err := fileops.EnsureDir(hookDir); err != nil {
			return failure(s.Name(), err)
		}
		// git hooks must be executable
		if err := os.WriteFile(p.Path(".husky", "pre-commit"), []byte(hook), 0o755); err != nil {
			return failure(s.Name(), err)
		}
	}

	return success(s.Name(), fmt.Sprintf("%s configured", strings.Join(a.Extras, ", ")))
}
