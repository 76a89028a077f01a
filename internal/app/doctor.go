// Where: internal/app/doctor.go
// What: The doctor command.
// Why: Surface toolchain problems before a scaffold run hits them.
package app

import (
	"context"
	"io"

	"github.com/stackforge-dev/stackforge/internal/ports"
	"github.com/stackforge-dev/stackforge/internal/workflows"
)

func runDoctor(_ CLI, deps Dependencies, out io.Writer) int {
	workflow := workflows.NewDoctorWorkflow(deps.Runner, ports.NewConsoleUI(out))
	if err := workflow.Run(context.Background()); err != nil {
		return exitWithError(out, err)
	}
	return 0
}
