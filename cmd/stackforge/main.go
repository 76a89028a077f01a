// Where: cmd/stackforge/main.go
// What: CLI entrypoint.
// Why: Execute stackforge commands with configured dependencies.
package main

import (
	"os"

	"github.com/stackforge-dev/stackforge/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
