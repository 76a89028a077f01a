// Where: internal/app/new.go
// What: The new command: collect answers, run the scaffold workflow.
// Why: This is the command the tool exists for.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/internal/fileops"
	"github.com/stackforge-dev/stackforge/internal/ports"
	"github.com/stackforge-dev/stackforge/internal/preset"
	"github.com/stackforge-dev/stackforge/internal/prompt"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
	"github.com/stackforge-dev/stackforge/internal/ui"
	"github.com/stackforge-dev/stackforge/internal/version"
	"github.com/stackforge-dev/stackforge/internal/workflows"
)

func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	cfg := config.LoadGlobalConfigOrDefault()

	defaults := cfg.Defaults
	if defaults.Validate() != nil {
		defaults = scaffold.Defaults()
	}

	if cli.New.Preset != "" {
		path := cli.New.Preset
		if !fileops.FileExists(path) {
			presetsDir, err := config.PresetsDir()
			if err != nil {
				return exitWithError(out, err)
			}
			path, err = preset.Resolve(presetsDir, cli.New.Preset)
			if err != nil {
				return exitWithError(out, err)
			}
		}
		var err error
		defaults, err = preset.Load(path)
		if err != nil {
			return exitWithError(out, err)
		}
	}

	answers := defaults
	if !cli.New.Yes {
		if !prompt.IsTerminal(os.Stdin) {
			return exitWithSuggestion(out, "No interactive terminal detected.",
				[]string{"stackforge new --preset <name> --yes"})
		}
		ui.Banner(out, version.GetVersion())
		var err error
		answers, err = scaffold.Collect(deps.Prompter, defaults)
		if err != nil {
			if prompt.IsAborted(err) {
				fmt.Fprintln(out, "Aborted.")
				return 1
			}
			return exitWithError(out, err)
		}
	} else if err := answers.Validate(); err != nil {
		return exitWithError(out, err)
	}

	dir := cli.New.Dir
	if dir == "" {
		dir = answers.ProjectName
	}

	workflow := workflows.NewScaffoldWorkflow(deps.Runner, ports.NewConsoleUI(out), deps.Docker)
	result, err := workflow.Run(context.Background(), workflows.ScaffoldRequest{
		Dir:         dir,
		Answers:     answers,
		DryRun:      cli.New.DryRun,
		Verbose:     cli.New.Verbose,
		SkipInstall: cli.New.SkipInstall,
		NoGit:       cli.New.NoGit,
	})
	if err != nil {
		return exitWithError(out, err)
	}
	if cli.New.DryRun {
		return 0
	}

	cfg = config.RecordRecentProject(cfg, answers.ProjectName, result.Dir, deps.now())
	if path, pathErr := config.GlobalConfigPath(); pathErr == nil {
		if saveErr := config.SaveGlobalConfig(path, cfg); saveErr != nil {
			fmt.Fprintf(out, "Warning: failed to record project: %v\n", saveErr)
		}
	}

	return 0
}
