// Where: internal/workflows/steps_finish.go
// What: Closing scaffold steps: env files, git init, dependency install.
// Why: These run last so they see everything earlier steps contributed.
package workflows

import (
	"context"
	"fmt"

	"github.com/stackforge-dev/stackforge/internal/meta"
	"github.com/stackforge-dev/stackforge/internal/runner"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

// envStep writes .env and .env.example from the entries steps recorded.
type envStep struct{}

func (envStep) Name() string                    { return "environment" }
func (envStep) Enabled(a scaffold.Answers) bool { return true }
func (envStep) Fatal() bool                     { return false }

func (s envStep) Run(ctx context.Context, p *Project) StepResult {
	if p.Env.Len() == 0 {
		return success(s.Name(), "no environment variables needed")
	}
	if err := p.Env.WriteEnv(p.Path(meta.EnvFileName)); err != nil {
		return failure(s.Name(), err)
	}
	if err := p.Env.WriteExample(p.Path(meta.EnvExampleName)); err != nil {
		return failure(s.Name(), err)
	}
	return success(s.Name(), fmt.Sprintf("%d entries written to %s", p.Env.Len(), meta.EnvFileName))
}

// gitStep initializes the repository and records the first commit.
type gitStep struct {
	runner runner.CommandRunner
}

func (gitStep) Name() string                    { return "git" }
func (gitStep) Enabled(a scaffold.Answers) bool { return a.InitGit }
func (gitStep) Fatal() bool                     { return false }

func (s gitStep) Run(ctx context.Context, p *Project) StepResult {
	commands := [][]string{
		{"git", "init"},
		{"git", "add", "-A"},
		{"git", "commit", "-m", "Initial scaffold"},
	}
	for _, cmd := range commands {
		if err := s.runner.RunQuiet(ctx, p.Dir, cmd[0], cmd[1:]...); err != nil {
			return failure(s.Name(), err)
		}
	}
	return success(s.Name(), "repository initialized with first commit")
}

// installStep runs the package manager install at the project root.
type installStep struct {
	runner runner.CommandRunner
}

func (installStep) Name() string                    { return "install" }
func (installStep) Enabled(a scaffold.Answers) bool { return a.InstallDeps }
func (installStep) Fatal() bool                     { return false }

func (s installStep) Run(ctx context.Context, p *Project) StepResult {
	cmd := p.Answers.InstallCommand()
	if err := s.runner.Run(ctx, p.Dir, cmd[0], cmd[1:]...); err != nil {
		return failure(s.Name(), err)
	}
	return success(s.Name(), fmt.Sprintf("dependencies installed with %s", p.Answers.PackageManager))
}
