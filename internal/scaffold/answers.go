// Where: internal/scaffold/answers.go
// What: The answers record collected from the interactive prompt flow.
// Why: Centralize the enumerations every setup step branches on.
package scaffold

import (
	"fmt"
	"regexp"
	"strings"
)

// Package manager choices.
const (
	PackageManagerNpm  = "npm"
	PackageManagerPnpm = "pnpm"
	PackageManagerYarn = "yarn"
	PackageManagerBun  = "bun"
)

// Monorepo tool choices.
const (
	MonorepoNone      = "none"
	MonorepoTurborepo = "turborepo"
	MonorepoNx        = "nx"
)

// Frontend framework choices.
const (
	FrontendNextJS = "nextjs"
	FrontendVite   = "vite"
	FrontendAstro  = "astro"
)

// UI library choices.
const (
	UINone     = "none"
	UITailwind = "tailwind"
	UIShadcn   = "shadcn"
)

// Backend layer choices.
const (
	BackendNone    = "none"
	BackendExpress = "express"
	BackendTRPC    = "trpc"
)

// ORM choices.
const (
	ORMNone    = "none"
	ORMPrisma  = "prisma"
	ORMDrizzle = "drizzle"
)

// Database provider choices.
const (
	DatabaseNone     = "none"
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseMySQL    = "mysql"
)

// Database host choices.
const (
	DatabaseHostNone   = "none"
	DatabaseHostDocker = "docker"
	DatabaseHostRemote = "remote"
)

// Auth provider choices.
const (
	AuthNone   = "none"
	AuthAuthJS = "authjs"
	AuthClerk  = "clerk"
	AuthLucia  = "lucia"
)

// Payment provider choices.
const (
	PaymentsNone         = "none"
	PaymentsStripe       = "stripe"
	PaymentsLemonSqueezy = "lemonsqueezy"
)

// Testing tool choices (multi-select).
const (
	TestingVitest     = "vitest"
	TestingPlaywright = "playwright"
)

// CI/CD tool choices (multi-select).
const (
	CICDGitHubActions = "github-actions"
	CICDDependabot    = "dependabot"
)

// Realtime provider choices.
const (
	RealtimeNone     = "none"
	RealtimeSocketIO = "socketio"
	RealtimePusher   = "pusher"
)

// Extra feature flags (multi-select).
const (
	ExtraESLint   = "eslint"
	ExtraPrettier = "prettier"
	ExtraHusky    = "husky"
)

var (
	ValidPackageManagers = []string{PackageManagerNpm, PackageManagerPnpm, PackageManagerYarn, PackageManagerBun}
	ValidMonorepoTools   = []string{MonorepoNone, MonorepoTurborepo, MonorepoNx}
	ValidFrontends       = []string{FrontendNextJS, FrontendVite, FrontendAstro}
	ValidUILibraries     = []string{UINone, UITailwind, UIShadcn}
	ValidBackends        = []string{BackendNone, BackendExpress, BackendTRPC}
	ValidORMs            = []string{ORMNone, ORMPrisma, ORMDrizzle}
	ValidDatabases       = []string{DatabaseNone, DatabaseSQLite, DatabasePostgres, DatabaseMySQL}
	ValidDatabaseHosts   = []string{DatabaseHostNone, DatabaseHostDocker, DatabaseHostRemote}
	ValidAuthProviders   = []string{AuthNone, AuthAuthJS, AuthClerk, AuthLucia}
	ValidPayments        = []string{PaymentsNone, PaymentsStripe, PaymentsLemonSqueezy}
	ValidTestingTools    = []string{TestingVitest, TestingPlaywright}
	ValidCICDTools       = []string{CICDGitHubActions, CICDDependabot}
	ValidRealtime        = []string{RealtimeNone, RealtimeSocketIO, RealtimePusher}
	ValidExtras          = []string{ExtraESLint, ExtraPrettier, ExtraHusky}
)

var projectNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Answers is the flat configuration record collected once per run and passed
// by value to every setup step.
type Answers struct {
	ProjectName    string   `json:"projectName" yaml:"projectName"`
	PackageManager string   `json:"packageManager" yaml:"packageManager"`
	Monorepo       string   `json:"monorepo" yaml:"monorepo"`
	Frontend       string   `json:"frontend" yaml:"frontend"`
	UILibrary      string   `json:"uiLibrary" yaml:"uiLibrary"`
	Backend        string   `json:"backend" yaml:"backend"`
	ORM            string   `json:"orm" yaml:"orm"`
	Database       string   `json:"database" yaml:"database"`
	DatabaseHost   string   `json:"databaseHost" yaml:"databaseHost"`
	Auth           string   `json:"auth" yaml:"auth"`
	Payments       string   `json:"payments" yaml:"payments"`
	Testing        []string `json:"testing,omitempty" yaml:"testing,omitempty"`
	CICD           []string `json:"cicd,omitempty" yaml:"cicd,omitempty"`
	Realtime       string   `json:"realtime" yaml:"realtime"`
	Extras         []string `json:"extras,omitempty" yaml:"extras,omitempty"`
	InitGit        bool     `json:"initGit" yaml:"initGit"`
	InstallDeps    bool     `json:"installDeps" yaml:"installDeps"`
}

// Defaults returns the answer set used to seed prompts and presets.
func Defaults() Answers {
	return Answers{
		ProjectName:    "my-app",
		PackageManager: PackageManagerPnpm,
		Monorepo:       MonorepoNone,
		Frontend:       FrontendNextJS,
		UILibrary:      UITailwind,
		Backend:        BackendNone,
		ORM:            ORMNone,
		Database:       DatabaseNone,
		DatabaseHost:   DatabaseHostNone,
		Auth:           AuthNone,
		Payments:       PaymentsNone,
		Realtime:       RealtimeNone,
		InitGit:        true,
		InstallDeps:    true,
	}
}

// Validate checks every enumerated field against its value set and enforces
// cross-field preconditions the setup steps rely on.
func (a Answers) Validate() error {
	name := strings.TrimSpace(a.ProjectName)
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use lowercase letters, digits, '.', '_' or '-'", name)
	}

	checks := []struct {
		field string
		value string
		valid []string
	}{
		{"packageManager", a.PackageManager, ValidPackageManagers},
		{"monorepo", a.Monorepo, ValidMonorepoTools},
		{"frontend", a.Frontend, ValidFrontends},
		{"uiLibrary", a.UILibrary, ValidUILibraries},
		{"backend", a.Backend, ValidBackends},
		{"orm", a.ORM, ValidORMs},
		{"database", a.Database, ValidDatabases},
		{"databaseHost", a.DatabaseHost, ValidDatabaseHosts},
		{"auth", a.Auth, ValidAuthProviders},
		{"payments", a.Payments, ValidPayments},
		{"realtime", a.Realtime, ValidRealtime},
	}
	for _, check := range checks {
		if !contains(check.valid, check.value) {
			return fmt.Errorf("invalid %s %q (valid: %s)", check.field, check.value, strings.Join(check.valid, ", "))
		}
	}
	for _, tool := range a.Testing {
		if !contains(ValidTestingTools, tool) {
			return fmt.Errorf("invalid testing tool %q (valid: %s)", tool, strings.Join(ValidTestingTools, ", "))
		}
	}
	for _, tool := range a.CICD {
		if !contains(ValidCICDTools, tool) {
			return fmt.Errorf("invalid cicd tool %q (valid: %s)", tool, strings.Join(ValidCICDTools, ", "))
		}
	}
	for _, extra := range a.Extras {
		if !contains(ValidExtras, extra) {
			return fmt.Errorf("invalid extra %q (valid: %s)", extra, strings.Join(ValidExtras, ", "))
		}
	}

	if a.ORM == ORMNone && a.Database != DatabaseNone {
		return fmt.Errorf("database %q requires an ORM", a.Database)
	}
	if a.ORM != ORMNone && a.Database == DatabaseNone {
		return fmt.Errorf("orm %q requires a database provider", a.ORM)
	}
	switch a.Database {
	case DatabaseNone, DatabaseSQLite:
		if a.DatabaseHost != DatabaseHostNone {
			return fmt.Errorf("databaseHost %q is only valid for postgres or mysql", a.DatabaseHost)
		}
	default:
		if a.DatabaseHost == DatabaseHostNone {
			return fmt.Errorf("database %q requires a database host", a.Database)
		}
	}
	if a.UILibrary == UIShadcn && a.Frontend == FrontendAstro {
		return fmt.Errorf("shadcn/ui setup supports nextjs and vite only")
	}
	if a.Auth == AuthAuthJS && a.Frontend != FrontendNextJS {
		return fmt.Errorf("authjs setup requires nextjs")
	}
	return nil
}

// NeedsDatabase reports whether any step has to produce database plumbing.
func (a Answers) NeedsDatabase() bool {
	return a.Database != DatabaseNone
}

// IsMonorepo reports whether the generated tree uses a workspace layout.
func (a Answers) IsMonorepo() bool {
	return a.Monorepo != MonorepoNone
}

// HasTesting reports whether the given testing tool was selected.
func (a Answers) HasTesting(tool string) bool {
	return contains(a.Testing, tool)
}

// HasCICD reports whether the given CI/CD tool was selected.
func (a Answers) HasCICD(tool string) bool {
	return contains(a.CICD, tool)
}

// HasExtra reports whether the given extra feature flag was selected.
func (a Answers) HasExtra(extra string) bool {
	return contains(a.Extras, extra)
}

// WebDir returns the frontend application directory relative to the project
// root: apps/web for monorepos, the root otherwise.
func (a Answers) WebDir() string {
	if a.IsMonorepo() {
		return "apps/web"
	}
	return "."
}

// ExecCommand returns the package runner invocation for the chosen package
// manager (the "npx" equivalent).
func (a Answers) ExecCommand() []string {
	switch a.PackageManager {
	case PackageManagerPnpm:
		return []string{"pnpm", "dlx"}
	case PackageManagerYarn:
		return []string{"yarn", "dlx"}
	case PackageManagerBun:
		return []string{"bunx"}
	default:
		return []string{"npx", "--yes"}
	}
}

// CreateCommand returns the "create" invocation prefix for the chosen
// package manager (the "npm create" equivalent).
func (a Answers) CreateCommand() []string {
	switch a.PackageManager {
	case PackageManagerPnpm:
		return []string{"pnpm", "create"}
	case PackageManagerYarn:
		return []string{"yarn", "create"}
	case PackageManagerBun:
		return []string{"bun", "create"}
	default:
		return []string{"npm", "create", "--yes"}
	}
}

// InstallCommand returns the dependency install invocation.
func (a Answers) InstallCommand() []string {
	return []string{a.PackageManager, "install"}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
