// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
	"github.com/stackforge-dev/stackforge/internal/ui"
	"github.com/stackforge-dev/stackforge/internal/version"
)

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	New        NewCmd        `cmd:"" help:"Scaffold a new project"`
	Doctor     DoctorCmd     `cmd:"" help:"Check required tooling"`
	Preset     PresetCmd     `cmd:"" help:"Manage saved answer presets"`
	Recent     RecentCmd     `cmd:"" help:"List recently scaffolded projects"`
	Complete   CompleteCmd   `cmd:"" name:"__complete" hidden:"" help:"Completion candidate provider"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

// NewCmd scaffolds a new project from interactive answers or a preset.
type NewCmd struct {
	Dir         string `arg:"" optional:"" help:"Target directory (default: the project name)"`
	Preset      string `help:"Seed answers from a saved preset"`
	Yes         bool   `short:"y" help:"Accept preset answers without prompting"`
	DryRun      bool   `name:"dry-run" help:"Print the step plan without writing anything"`
	Verbose     bool   `short:"v" help:"Announce each step as it runs"`
	SkipInstall bool   `name:"skip-install" help:"Skip the dependency install step"`
	NoGit       bool   `name:"no-git" help:"Skip git init and the initial commit"`
}

type (
	DoctorCmd  struct{}
	RecentCmd  struct{}
	VersionCmd struct{}
)

// PresetCmd groups the preset subcommands.
type PresetCmd struct {
	List PresetListCmd `cmd:"" help:"List saved presets"`
	Show PresetShowCmd `cmd:"" help:"Print a saved preset"`
	Save PresetSaveCmd `cmd:"" help:"Run the prompts and save the answers"`
}

type (
	PresetListCmd struct{}
	PresetShowCmd struct {
		Name string `arg:"" help:"Preset name"`
	}
	PresetSaveCmd struct {
		Name string `arg:"" help:"Preset name"`
	}
)

// CompleteCmd serves completion candidates to the shell scripts.
type CompleteCmd struct {
	Preset CompletePresetCmd `cmd:"" help:"List preset names"`
}

type CompletePresetCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// arguments, dispatches to the matching handler, and returns the process
// exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	if len(args) == 0 {
		return runNoArgs(deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, deps, out)
	}

	// Pick up credentials from a local .env when present.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"doctor":            runDoctor,
		"preset":            runPresetList,
		"preset list":       runPresetList,
		"recent":            runRecent,
		"__complete preset": runCompletePreset,
		"completion bash":   func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":    func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish":   func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":           func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "new", handler: runNew},
		{prefix: "preset show", handler: runPresetShow},
		{prefix: "preset save", handler: runPresetSave},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

func runVersion(_ CLI, out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// runNoArgs shows the banner and a short orientation when the binary is
// invoked without a command.
func runNoArgs(deps Dependencies, out io.Writer) int {
	ui.Banner(out, version.GetVersion())
	console := ui.New(out)
	fmt.Fprintln(out, "Usage:")
	console.ItemPlain("stackforge new [dir]    scaffold a new project")
	console.ItemPlain("stackforge doctor       check required tooling")
	console.ItemPlain("stackforge preset list  list saved presets")
	console.ItemPlain("stackforge recent       list recent projects")
	fmt.Fprintln(out)

	cfg := config.LoadGlobalConfigOrDefault()
	if cfg.Defaults.Validate() == nil {
		fmt.Fprintf(out, "Defaults: %s, %s", cfg.Defaults.PackageManager, cfg.Defaults.Frontend)
		if cfg.Defaults.UILibrary != scaffold.UINone {
			fmt.Fprintf(out, ", %s", cfg.Defaults.UILibrary)
		}
		fmt.Fprintln(out)
	}
	if recent := config.SortedRecent(cfg); len(recent) > 0 {
		fmt.Fprintf(out, "Last project: %s (%s)\n", recent[0].Name, recent[0].Path)
	}
	return 0
}

// handleParseError provides user-friendly messages for parse failures.
func handleParseError(args []string, err error, deps Dependencies, out io.Writer) int {
	errStr := err.Error()

	if strings.Contains(errStr, "expected") {
		switch commandName(args) {
		case "preset":
			if strings.Contains(errStr, "<name>") {
				return exitWithSuggestion(out, "Preset name required.",
					[]string{"stackforge preset show <name>", "stackforge preset list"})
			}
			return runPresetList(CLI{}, deps, out)
		}
	}

	return exitWithError(out, err)
}

// commandName extracts the first non-flag argument, which is the command.
func commandName(args []string) string {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		return arg
	}
	return ""
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	fmt.Fprintln(out, message)
	for _, suggestion := range suggestions {
		fmt.Fprintf(out, "  %s\n", suggestion)
	}
	return 1
}
