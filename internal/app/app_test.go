// Where: internal/app/app_test.go
// What: Tests for CLI dispatch, preset commands, and the new command.
package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stackforge-dev/stackforge/internal/prompt"
	"github.com/stackforge-dev/stackforge/internal/runner"
)

// defaultsPrompter answers every question with its first option or default.
type defaultsPrompter struct {
	name string
}

func (p defaultsPrompter) Input(string, []string) (string, error) {
	return p.name, nil
}

func (p defaultsPrompter) SelectValue(_ string, options []prompt.SelectOption) (string, error) {
	return options[0].Value, nil
}

func (p defaultsPrompter) MultiSelect(string, []prompt.SelectOption) ([]string, error) {
	return nil, nil
}

func (p defaultsPrompter) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

type nopRunner struct{}

func (nopRunner) Run(context.Context, string, string, ...string) error      { return nil }
func (nopRunner) RunQuiet(context.Context, string, string, ...string) error { return nil }
func (nopRunner) RunOutput(context.Context, string, string, ...string) ([]byte, error) {
	return nil, nil
}

func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("STACKFORGE_CONFIG_HOME", home)
	return home
}

func stubTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	original := prompt.IsTerminal
	prompt.IsTerminal = func(*os.File) bool { return isTTY }
	t.Cleanup(func() { prompt.IsTerminal = original })
}

func stubToolchain(t *testing.T) {
	t.Helper()
	original := runner.LookPath
	runner.LookPath = func(name string) (string, error) {
		return "/usr/bin/" + name, nil
	}
	t.Cleanup(func() { runner.LookPath = original })
}

func testDeps(out *bytes.Buffer) Dependencies {
	return Dependencies{
		Out:      out,
		Prompter: defaultsPrompter{name: "demo-app"},
		Runner:   nopRunner{},
		Now:      func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestRunNoArgsShowsBanner(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	if code := Run(nil, testDeps(&out)); code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "stackforge new") {
		t.Fatalf("no usage in output:\n%s", out.String())
	}
}

func TestRunVersion(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	if code := Run([]string{"version"}, testDeps(&out)); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatal("version output empty")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	if code := Run([]string{"frobnicate"}, testDeps(&out)); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestRunPresetListEmpty(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	if code := Run([]string{"preset", "list"}, testDeps(&out)); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "No presets saved yet") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestRunPresetMissingName(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	if code := Run([]string{"preset", "show"}, testDeps(&out)); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "Preset name required") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestRunRecentEmpty(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	if code := Run([]string{"recent"}, testDeps(&out)); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "No projects scaffolded yet") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestPresetSaveListShowRoundTrip(t *testing.T) {
	home := isolateConfig(t)
	var out bytes.Buffer
	deps := testDeps(&out)

	if code := Run([]string{"preset", "save", "web"}, deps); code != 0 {
		t.Fatalf("save exit code = %d, output:\n%s", code, out.String())
	}
	if _, err := os.Stat(filepath.Join(home, "presets", "web.yaml")); err != nil {
		t.Fatalf("preset file missing: %v", err)
	}

	out.Reset()
	if code := Run([]string{"preset", "list"}, deps); code != 0 {
		t.Fatalf("list exit code = %d", code)
	}
	if !strings.Contains(out.String(), "web") {
		t.Fatalf("list output:\n%s", out.String())
	}

	out.Reset()
	if code := Run([]string{"preset", "show", "web"}, deps); code != 0 {
		t.Fatalf("show exit code = %d, output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "projectName: demo-app") {
		t.Fatalf("show output:\n%s", out.String())
	}
}

func TestNewDryRunFromPreset(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer
	deps := testDeps(&out)

	if code := Run([]string{"preset", "save", "web"}, deps); code != 0 {
		t.Fatalf("save exit code = %d, output:\n%s", code, out.String())
	}

	out.Reset()
	args := []string{"new", "--preset", "web", "--yes", "--dry-run"}
	if code := Run(args, deps); code != 0 {
		t.Fatalf("new exit code = %d, output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "Dry run") {
		t.Fatalf("no plan in output:\n%s", out.String())
	}
}

func TestNewRefusesWithoutTerminal(t *testing.T) {
	isolateConfig(t)
	stubTerminal(t, false)
	var out bytes.Buffer

	if code := Run([]string{"new"}, testDeps(&out)); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "--preset") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestNewScaffoldsAndRecordsRecent(t *testing.T) {
	isolateConfig(t)
	stubTerminal(t, true)
	stubToolchain(t)
	var out bytes.Buffer
	deps := testDeps(&out)

	target := filepath.Join(t.TempDir(), "demo-app")
	args := []string{"new", target, "--skip-install", "--no-git"}
	if code := Run(args, deps); code != 0 {
		t.Fatalf("new exit code = %d, output:\n%s", code, out.String())
	}
	if _, err := os.Stat(filepath.Join(target, ".gitignore")); err != nil {
		t.Fatalf(".gitignore missing: %v", err)
	}

	out.Reset()
	if code := Run([]string{"recent"}, deps); code != 0 {
		t.Fatalf("recent exit code = %d", code)
	}
	if !strings.Contains(out.String(), "demo-app") {
		t.Fatalf("recent output:\n%s", out.String())
	}
}

func TestCompletionScripts(t *testing.T) {
	isolateConfig(t)
	for _, shell := range []string{"bash", "zsh", "fish"} {
		var out bytes.Buffer
		if code := Run([]string{"completion", shell}, testDeps(&out)); code != 0 {
			t.Fatalf("completion %s exit code = %d", shell, code)
		}
		if !strings.Contains(out.String(), "stackforge") {
			t.Fatalf("completion %s output:\n%s", shell, out.String())
		}
	}
}
