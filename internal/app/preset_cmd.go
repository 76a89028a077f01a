// Where: internal/app/preset_cmd.go
// What: The preset subcommands: list, show, save.
// Why: Presets turn a surveyed answer set into a repeatable scaffold.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/internal/preset"
	"github.com/stackforge-dev/stackforge/internal/prompt"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

func runPresetList(_ CLI, _ Dependencies, out io.Writer) int {
	presetsDir, err := config.PresetsDir()
	if err != nil {
		return exitWithError(out, err)
	}
	names, err := preset.List(presetsDir)
	if err != nil {
		return exitWithError(out, err)
	}
	if len(names) == 0 {
		fmt.Fprintln(out, "No presets saved yet. Create one with: stackforge preset save <name>")
		return 0
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return 0
}

func runPresetShow(cli CLI, _ Dependencies, out io.Writer) int {
	presetsDir, err := config.PresetsDir()
	if err != nil {
		return exitWithError(out, err)
	}
	path, err := preset.Resolve(presetsDir, cli.Preset.Show.Name)
	if err != nil {
		return exitWithError(out, err)
	}
	// validate before printing so broken files fail loudly
	if _, err := preset.Load(path); err != nil {
		return exitWithError(out, err)
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprint(out, string(payload))
	return 0
}

func runPresetSave(cli CLI, deps Dependencies, out io.Writer) int {
	answers, err := scaffold.Collect(deps.Prompter, scaffold.Defaults())
	if err != nil {
		if prompt.IsAborted(err) {
			fmt.Fprintln(out, "Aborted.")
			return 1
		}
		return exitWithError(out, err)
	}

	presetsDir, err := config.PresetsDir()
	if err != nil {
		return exitWithError(out, err)
	}
	path, err := preset.Save(presetsDir, cli.Preset.Save.Name, answers)
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintf(out, "Preset saved to %s\n", path)
	return 0
}

func runCompletePreset(_ CLI, _ Dependencies, out io.Writer) int {
	presetsDir, err := config.PresetsDir()
	if err != nil {
		return 1
	}
	names, err := preset.List(presetsDir)
	if err != nil {
		return 1
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return 0
}
