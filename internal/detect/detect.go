// Where: internal/detect/detect.go
// What: External tool detection and version checks.
// Why: Fail early when a generator dependency (node, git, docker) is missing or stale.
package detect

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/stackforge-dev/stackforge/internal/runner"
)

// Tool describes an external binary the scaffolder may invoke.
type Tool struct {
	Name       string
	Binary     string
	VersionArg string
	MinVersion string // empty means any version is acceptable
	Required   bool
}

// Status is the detection result for a single tool.
type Status struct {
	Tool      Tool
	Found     bool
	Path      string
	Version   string
	Supported bool
	Detail    string
}

// KnownTools lists every binary the scaffold steps can shell out to.
// Node and git are hard requirements; package managers and docker are
// only needed when the answers select them.
func KnownTools() []Tool {
	return []Tool{
		{Name: "Node.js", Binary: "node", VersionArg: "--version", MinVersion: "18.17.0", Required: true},
		{Name: "git", Binary: "git", VersionArg: "--version", MinVersion: "2.20.0", Required: true},
		{Name: "npm", Binary: "npm", VersionArg: "--version"},
		{Name: "pnpm", Binary: "pnpm", VersionArg: "--version"},
		{Name: "yarn", Binary: "yarn", VersionArg: "--version"},
		{Name: "bun", Binary: "bun", VersionArg: "--version"},
		{Name: "Docker", Binary: "docker", VersionArg: "--version"},
	}
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ParseVersion extracts a semantic version from tool output such as
// "v20.11.1" or "git version 2.43.0".
func ParseVersion(output string) (string, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return "", fmt.Errorf("no version in %q", strings.TrimSpace(output))
	}
	return match, nil
}

// CheckMinimum reports whether version satisfies the minimum constraint.
func CheckMinimum(version, minimum string) (bool, error) {
	if minimum == "" {
		return true, nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("parse version %q: %w", version, err)
	}
	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, fmt.Errorf("parse constraint %q: %w", minimum, err)
	}
	return constraint.Check(v), nil
}

// Probe detects a single tool: binary lookup, version query, minimum check.
func Probe(ctx context.Context, run runner.CommandRunner, tool Tool) Status {
	status := Status{Tool: tool}

	path, err := runner.LookPath(tool.Binary)
	if err != nil {
		status.Detail = "not found on PATH"
		return status
	}
	status.Found = true
	status.Path = path

	if tool.VersionArg == "" {
		status.Supported = true
		return status
	}

	output, err := run.RunOutput(ctx, "", tool.Binary, tool.VersionArg)
	if err != nil {
		status.Detail = fmt.Sprintf("version query failed: %v", err)
		return status
	}

	version, err := ParseVersion(string(output))
	if err != nil {
		status.Detail = err.Error()
		return status
	}
	status.Version = version

	ok, err := CheckMinimum(version, tool.MinVersion)
	if err != nil {
		status.Detail = err.Error()
		return status
	}
	status.Supported = ok
	if !ok {
		status.Detail = fmt.Sprintf("version %s is below the required %s", version, tool.MinVersion)
	}
	return status
}

// ProbeAll detects every known tool.
func ProbeAll(ctx context.Context, run runner.CommandRunner) []Status {
	tools := KnownTools()
	statuses := make([]Status, 0, len(tools))
	for _, tool := range tools {
		statuses = append(statuses, Probe(ctx, run, tool))
	}
	return statuses
}

// RequireBinary returns an error unless the binary resolves on PATH.
func RequireBinary(binary string) error {
	if _, err := runner.LookPath(binary); err != nil {
		return fmt.Errorf("%s is required but was not found on PATH", binary)
	}
	return nil
}
