// Where: internal/workflows/project.go
// What: Per-run project state shared by scaffold steps.
// Why: Steps communicate only through this record and the answers they branch on.
package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"

	"github.com/stackforge-dev/stackforge/internal/fileops"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

// Project carries the state a scaffold run accumulates: the target directory,
// the immutable answers record, and the env entries steps contribute.
type Project struct {
	Dir     string
	Answers scaffold.Answers
	Env     *EnvBuilder
}

// NewProject constructs per-run state for a target directory.
func NewProject(dir string, answers scaffold.Answers) *Project {
	return &Project{
		Dir:     dir,
		Answers: answers,
		Env:     NewEnvBuilder(),
	}
}

// Path joins the project directory with relative elements.
func (p *Project) Path(elem ...string) string {
	return filepath.Join(append([]string{p.Dir}, elem...)...)
}

// WebPath joins the frontend application directory with relative elements.
func (p *Project) WebPath(elem ...string) string {
	return filepath.Join(append([]string{p.Dir, p.Answers.WebDir()}, elem...)...)
}

// APIDir returns the backend directory relative to the project root:
// apps/api for monorepos, src/server otherwise.
func (p *Project) APIDir() string {
	if p.Answers.IsMonorepo() {
		return "apps/api"
	}
	return filepath.Join(p.Answers.WebDir(), "src", "server")
}

// StepResult is the outcome a setup step reports back to the orchestrator.
type StepResult struct {
	Step    string
	Success bool
	Message string
}

func success(step, message string) StepResult {
	return StepResult{Step: step, Success: true, Message: message}
}

func failure(step string, err error) StepResult {
	return StepResult{Step: step, Success: false, Message: err.Error()}
}

// Step is one unit of scaffold work. Fatal steps abort the run on failure;
// the rest surface a warning and let the run continue.
type Step interface {
	Name() string
	Enabled(a scaffold.Answers) bool
	Fatal() bool
	Run(ctx context.Context, p *Project) StepResult
}

// EnvBuilder accumulates the environment entries the generated project needs.
// Secret entries keep their key but lose their value in .env.example.
type EnvBuilder struct {
	keys    []string
	values  map[string]string
	secrets map[string]bool
}

func NewEnvBuilder() *EnvBuilder {
	return &EnvBuilder{
		values:  map[string]string{},
		secrets: map[string]bool{},
	}
}

// Set records a non-secret env entry.
func (e *EnvBuilder) Set(key, value string) {
	if _, seen := e.values[key]; !seen {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// SetSecret records an entry whose value must not appear in .env.example.
func (e *EnvBuilder) SetSecret(key, value string) {
	e.Set(key, value)
	e.secrets[key] = true
}

// Keys returns the recorded keys in insertion order.
func (e *EnvBuilder) Keys() []string {
	return append([]string{}, e.keys...)
}

// Get returns the recorded value for key.
func (e *EnvBuilder) Get(key string) string {
	return e.values[key]
}

// Len reports the number of recorded entries.
func (e *EnvBuilder) Len() int {
	return len(e.keys)
}

// WriteEnv writes the .env file with real values.
func (e *EnvBuilder) WriteEnv(path string) error {
	return e.write(path, false)
}

// WriteExample writes the .env.example file with secrets blanked.
func (e *EnvBuilder) WriteExample(path string) error {
	return e.write(path, true)
}

func (e *EnvBuilder) write(path string, blankSecrets bool) error {
	values := make(map[string]string, len(e.values))
	for key, value := range e.values {
		if blankSecrets && e.secrets[key] {
			value = ""
		}
		values[key] = value
	}
	payload, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal env: %w", err)
	}
	return fileops.WriteFile(path, payload+"\n")
}

// addPackageScripts merges entries into the "scripts" object of an existing
// package.json. Formatting is normalized to two-space indentation.
func addPackageScripts(path string, scripts map[string]string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	existing, _ := doc["scripts"].(map[string]any)
	if existing == nil {
		existing = map[string]any{}
	}
	keys := make([]string, 0, len(scripts))
	for key := range scripts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		existing[key] = scripts[key]
	}
	doc["scripts"] = existing

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return fileops.WriteFile(path, string(out)+"\n")
}
