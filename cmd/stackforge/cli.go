// Where: cmd/stackforge/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/stackforge-dev/stackforge/internal/app"
	"github.com/stackforge-dev/stackforge/internal/dbprovision"
	"github.com/stackforge-dev/stackforge/internal/prompt"
	"github.com/stackforge-dev/stackforge/internal/runner"
)

var newDockerClient = dbprovision.NewDockerClient

// buildDependencies constructs all runtime dependencies required by the CLI.
// The Docker client is created lazily so non-database runs never touch the
// daemon.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:      os.Stdout,
		Prompter: prompt.HuhPrompter{},
		Runner:   runner.ExecRunner{},
		Docker: func() (dbprovision.DockerClient, error) {
			return newDockerClient()
		},
		Now: time.Now,
	}
}
