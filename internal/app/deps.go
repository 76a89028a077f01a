// Where: internal/app/deps.go
// What: Injected dependencies for CLI command execution.
// Why: Commands stay testable when every side-effecting collaborator is swappable.
package app

import (
	"io"
	"time"

	"github.com/stackforge-dev/stackforge/internal/prompt"
	"github.com/stackforge-dev/stackforge/internal/runner"
	"github.com/stackforge-dev/stackforge/internal/workflows"
)

// Dependencies holds all injected dependencies required for CLI command
// execution.
type Dependencies struct {
	Out      io.Writer
	Prompter prompt.Prompter
	Runner   runner.CommandRunner
	Docker   workflows.DockerFactory
	Now      func() time.Time
}

func (d Dependencies) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}
