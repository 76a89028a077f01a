// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep brand identity in one place so renames stay cheap.
package meta

const (
	// Project Identity
	AppName   = "stackforge"
	Slug      = "stackforge"
	EnvPrefix = "STACKFORGE"

	// Directory Layout
	HomeDir    = ".stackforge"
	PresetsDir = "presets"

	// Generated project layout
	WebAppDir      = "apps/web"
	PackagesDir    = "packages"
	WorkflowsDir   = ".github/workflows"
	EnvFileName    = ".env"
	EnvExampleName = ".env.example"
)
