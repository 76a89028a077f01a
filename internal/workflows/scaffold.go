// Where: internal/workflows/scaffold.go
// What: Scaffold workflow orchestration.
// Why: Keep CLI commands thin while the sequential step flow lives here.
package workflows

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/stackforge-dev/stackforge/internal/dbprovision"
	"github.com/stackforge-dev/stackforge/internal/detect"
	"github.com/stackforge-dev/stackforge/internal/fileops"
	"github.com/stackforge-dev/stackforge/internal/ports"
	"github.com/stackforge-dev/stackforge/internal/runner"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
	"github.com/stackforge-dev/stackforge/internal/ui"
)

// ScaffoldRequest captures the inputs required for a scaffold run.
type ScaffoldRequest struct {
	Dir         string
	Answers     scaffold.Answers
	DryRun      bool
	Verbose     bool
	SkipInstall bool
	NoGit       bool
}

// ScaffoldResult contains the per-step outcomes of a run.
type ScaffoldResult struct {
	Dir      string
	Results  []StepResult
	Warnings []StepResult
}

// DockerFactory lazily constructs a Docker client; the daemon is only
// contacted when the answers ask for a containerized database.
type DockerFactory func() (dbprovision.DockerClient, error)

// ScaffoldWorkflow orchestrates the sequential setup steps.
type ScaffoldWorkflow struct {
	Runner        runner.CommandRunner
	UserInterface ports.UserInterface
	Docker        DockerFactory
}

// NewScaffoldWorkflow constructs a ScaffoldWorkflow.
func NewScaffoldWorkflow(run runner.CommandRunner, ui ports.UserInterface, docker DockerFactory) ScaffoldWorkflow {
	return ScaffoldWorkflow{
		Runner:        run,
		UserInterface: ui,
		Docker:        docker,
	}
}

// Plan returns the ordered, enabled steps for an answers record. The order
// is fixed: later steps may depend on files earlier steps created.
func (w ScaffoldWorkflow) Plan(a scaffold.Answers) []Step {
	all := []Step{
		layoutStep{},
		frontendStep{runner: w.Runner},
		uiLibraryStep{runner: w.Runner},
		backendStep{},
		ormStep{},
		databaseStep{docker: w.Docker},
		authStep{},
		paymentsStep{},
		testingStep{},
		cicdStep{},
		realtimeStep{},
		extrasStep{},
		envStep{},
		gitStep{runner: w.Runner},
		installStep{runner: w.Runner},
	}

	enabled := make([]Step, 0, len(all))
	for _, step := range all {
		if step.Enabled(a) {
			enabled = append(enabled, step)
		}
	}
	return enabled
}

// Run executes the scaffold workflow with the given request.
func (w ScaffoldWorkflow) Run(ctx context.Context, req ScaffoldRequest) (ScaffoldResult, error) {
	var result ScaffoldResult

	answers := req.Answers
	if req.SkipInstall {
		answers.InstallDeps = false
	}
	if req.NoGit {
		answers.InitGit = false
	}
	if err := answers.Validate(); err != nil {
		return result, err
	}

	dir, err := filepath.Abs(req.Dir)
	if err != nil {
		return result, err
	}
	result.Dir = dir

	empty, err := fileops.DirIsEmpty(dir)
	if err != nil {
		return result, err
	}
	if !empty {
		return result, fmt.Errorf("target directory %s is not empty", dir)
	}

	steps := w.Plan(answers)

	if req.DryRun {
		w.UserInterface.Info(fmt.Sprintf("Dry run: %d steps for %s", len(steps), dir))
		for i, step := range steps {
			w.UserInterface.Info(fmt.Sprintf("  %d. %s", i+1, step.Name()))
		}
		return result, nil
	}

	if err := w.preflight(answers); err != nil {
		return result, err
	}

	created := !fileops.DirExists(dir)
	if err := fileops.EnsureDir(dir); err != nil {
		return result, err
	}

	project := NewProject(dir, answers)
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if req.Verbose {
			w.UserInterface.Info(ui.StepTitle(i+1, len(steps), step.Name()))
		}

		stepCtx, cancel := context.WithTimeout(ctx, runner.DefaultTimeout)
		stepResult := step.Run(stepCtx, project)
		cancel()
		result.Results = append(result.Results, stepResult)

		if stepResult.Success {
			w.UserInterface.Success(fmt.Sprintf("%s: %s", stepResult.Step, stepResult.Message))
			continue
		}

		if step.Fatal() {
			if created {
				_ = fileops.RemoveDir(dir)
			}
			return result, fmt.Errorf("%s failed: %s", stepResult.Step, stepResult.Message)
		}
		result.Warnings = append(result.Warnings, stepResult)
		w.UserInterface.Warn(fmt.Sprintf("%s: %s (continuing)", stepResult.Step, stepResult.Message))
	}

	w.summarize(project, result)
	return result, nil
}

// preflight checks that every binary the enabled steps shell out to is
// on PATH before any files are written.
func (w ScaffoldWorkflow) preflight(a scaffold.Answers) error {
	binaries := []string{"node", a.PackageManager}
	if a.InitGit {
		binaries = append(binaries, "git")
	}
	for _, binary := range binaries {
		if err := detect.RequireBinary(binary); err != nil {
			return err
		}
	}
	return nil
}

func (w ScaffoldWorkflow) summarize(project *Project, result ScaffoldResult) {
	a := project.Answers
	rows := []ports.KeyValue{
		{Key: "Directory", Value: result.Dir},
		{Key: "Package manager", Value: a.PackageManager},
		{Key: "Frontend", Value: a.Frontend},
	}
	if a.IsMonorepo() {
		rows = append(rows, ports.KeyValue{Key: "Monorepo", Value: a.Monorepo})
	}
	if a.ORM != scaffold.ORMNone {
		rows = append(rows, ports.KeyValue{Key: "Database", Value: fmt.Sprintf("%s (%s)", a.Database, a.ORM)})
	}
	if a.Auth != scaffold.AuthNone {
		rows = append(rows, ports.KeyValue{Key: "Auth", Value: a.Auth})
	}
	if len(result.Warnings) > 0 {
		rows = append(rows, ports.KeyValue{Key: "Warnings", Value: len(result.Warnings)})
	}
	w.UserInterface.Block("🎉", "Project ready", rows)

	w.UserInterface.Info("Next steps:")
	w.UserInterface.Info("  cd " + filepath.Base(result.Dir))
	if !a.InstallDeps {
		w.UserInterface.Info("  " + strings.Join(a.InstallCommand(), " "))
	}
	w.UserInterface.Info("  " + runScript(a, "dev"))
}

func runScript(a scaffold.Answers, script string) string {
	switch a.PackageManager {
	case scaffold.PackageManagerNpm:
		return "npm run " + script
	case scaffold.PackageManagerBun:
		return "bun run " + script
	default:
		return a.PackageManager + " " + script
	}
}
