// Where: internal/preset/preset.go
// What: Saved answer presets with schema validation.
// Why: Let non-interactive runs reuse a validated answers record.
package preset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/stackforge-dev/stackforge/internal/fileops"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

//go:embed schema/preset.schema.json
var presetSchema []byte

const schemaID = "https://stackforge.dev/schemas/preset.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaID, bytes.NewReader(presetSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaID)
	})
	return compiledSchema, schemaErr
}

// Load reads a preset file (YAML or JSON), validates it against the preset
// schema, and decodes it into an answers record. Fields absent from the file
// keep their default values.
func Load(path string) (scaffold.Answers, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return scaffold.Answers{}, err
	}
	return Parse(payload)
}

// Parse validates and decodes preset content.
func Parse(payload []byte) (scaffold.Answers, error) {
	jsonData, err := sigsyaml.YAMLToJSON(payload)
	if err != nil {
		return scaffold.Answers{}, fmt.Errorf("convert yaml to json: %w", err)
	}

	sch, err := loadSchema()
	if err != nil {
		return scaffold.Answers{}, fmt.Errorf("load preset schema: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return scaffold.Answers{}, fmt.Errorf("decode preset: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return scaffold.Answers{}, fmt.Errorf("invalid preset: %w", err)
	}

	answers := scaffold.Defaults()
	if err := json.Unmarshal(jsonData, &answers); err != nil {
		return scaffold.Answers{}, fmt.Errorf("decode preset: %w", err)
	}
	if err := answers.Validate(); err != nil {
		return scaffold.Answers{}, fmt.Errorf("invalid preset: %w", err)
	}
	return answers, nil
}

// Save writes an answers record as a YAML preset under dir.
func Save(dir, name string, answers scaffold.Answers) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("preset name is required")
	}
	if err := answers.Validate(); err != nil {
		return "", fmt.Errorf("invalid preset: %w", err)
	}

	jsonData, err := json.Marshal(answers)
	if err != nil {
		return "", err
	}
	payload, err := sigsyaml.JSONToYAML(jsonData)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name+".yaml")
	if err := fileops.WriteFile(path, string(payload)); err != nil {
		return "", err
	}
	return path, nil
}

// List returns the preset names stored under dir, sorted alphabetically.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".yaml"):
			names = append(names, strings.TrimSuffix(name, ".yaml"))
		case strings.HasSuffix(name, ".yml"):
			names = append(names, strings.TrimSuffix(name, ".yml"))
		case strings.HasSuffix(name, ".json"):
			names = append(names, strings.TrimSuffix(name, ".json"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Resolve finds a preset by name under dir, trying supported extensions.
func Resolve(dir, name string) (string, error) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		path := filepath.Join(dir, name+ext)
		if fileops.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("preset %q not found in %s", name, dir)
}
