// Where: internal/app/recent.go
// What: The recent command.
// Why: Quick answer to "where did I put that project last week".
package app

import (
	"fmt"
	"io"

	"github.com/stackforge-dev/stackforge/internal/config"
)

func runRecent(_ CLI, _ Dependencies, out io.Writer) int {
	cfg := config.LoadGlobalConfigOrDefault()
	recent := config.SortedRecent(cfg)
	if len(recent) == 0 {
		fmt.Fprintln(out, "No projects scaffolded yet. Start with: stackforge new")
		return 0
	}
	for _, project := range recent {
		fmt.Fprintf(out, "%-24s %-20s %s\n", project.Name, project.CreatedAt, project.Path)
	}
	return 0
}
