// Where: internal/workflows/doctor.go
// What: Doctor workflow reporting the state of required and optional tooling.
// Why: Give users one command that explains why a scaffold would fail.
package workflows

import (
	"context"
	"fmt"

	"github.com/stackforge-dev/stackforge/internal/detect"
	"github.com/stackforge-dev/stackforge/internal/ports"
	"github.com/stackforge-dev/stackforge/internal/runner"
)

// DoctorWorkflow probes the local toolchain and reports the results.
type DoctorWorkflow struct {
	Runner        runner.CommandRunner
	UserInterface ports.UserInterface
}

// NewDoctorWorkflow constructs a DoctorWorkflow.
func NewDoctorWorkflow(run runner.CommandRunner, ui ports.UserInterface) DoctorWorkflow {
	return DoctorWorkflow{Runner: run, UserInterface: ui}
}

// Run probes every known tool. It returns an error when a required tool is
// missing or below its minimum version.
func (w DoctorWorkflow) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, runner.DefaultTimeout)
	defer cancel()

	statuses := detect.ProbeAll(ctx, w.Runner)

	rows := make([]ports.KeyValue, 0, len(statuses))
	var broken []detect.Status
	for _, status := range statuses {
		rows = append(rows, ports.KeyValue{Key: status.Tool.Name, Value: describeStatus(status)})
		if status.Tool.Required && (!status.Found || !status.Supported) {
			broken = append(broken, status)
		}
	}
	w.UserInterface.Block("🩺", "Toolchain", rows)

	if len(broken) == 0 {
		w.UserInterface.Success("all required tools available")
		return nil
	}

	for _, status := range broken {
		w.UserInterface.Warn(fmt.Sprintf("%s: %s", status.Tool.Name, describeStatus(status)))
	}
	return fmt.Errorf("%d required tool(s) unavailable", len(broken))
}

func describeStatus(status detect.Status) string {
	if !status.Found {
		return "not found"
	}
	if !status.Supported {
		return fmt.Sprintf("%s (requires >= %s)", status.Version, status.Tool.MinVersion)
	}
	if status.Version == "" {
		return "ok"
	}
	return status.Version
}
