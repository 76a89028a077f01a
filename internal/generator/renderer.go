// Where: internal/generator/renderer.go
// What: Render generated project files from embedded templates.
// Why: Keep every template string out of the setup steps.
package generator

import (
	"bytes"
	"embed"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// nodeVersion pins the Node major used by generated CI and engine fields.
const nodeVersion = "20"

// TemplateData is the view every template renders against.
type TemplateData struct {
	Name           string
	PackageManager string
	RunPrefix      string
	InstallCmd     string
	Monorepo       string
	Frontend       string
	UILibrary      string
	Backend        string
	ORM            string
	Database       string
	DatabaseHost   string
	Auth           string
	Payments       string
	Realtime       string
	Testing        []string
	CICD           []string
	Extras         []string
	WebDir         string
	NodeVersion    string
	DB             scaffold.DatabaseSettings
}

// NewTemplateData derives the template view from an answers record.
func NewTemplateData(a scaffold.Answers) TemplateData {
	return TemplateData{
		Name:           a.ProjectName,
		PackageManager: a.PackageManager,
		RunPrefix:      runPrefix(a.PackageManager),
		InstallCmd:     strings.Join(a.InstallCommand(), " "),
		Monorepo:       a.Monorepo,
		Frontend:       a.Frontend,
		UILibrary:      a.UILibrary,
		Backend:        a.Backend,
		ORM:            a.ORM,
		Database:       a.Database,
		DatabaseHost:   a.DatabaseHost,
		Auth:           a.Auth,
		Payments:       a.Payments,
		Realtime:       a.Realtime,
		Testing:        a.Testing,
		CICD:           a.CICD,
		Extras:         a.Extras,
		WebDir:         a.WebDir(),
		NodeVersion:    nodeVersion,
		DB:             scaffold.DatabaseSettingsFor(a),
	}
}

func runPrefix(pm string) string {
	switch pm {
	case scaffold.PackageManagerNpm:
		return "npm run"
	case scaffold.PackageManagerBun:
		return "bun run"
	default:
		return pm
	}
}

func RenderReadme(a scaffold.Answers) (string, error) {
	return renderTemplate("readme.md.tmpl", NewTemplateData(a))
}

func RenderGitignore(a scaffold.Answers) (string, error) {
	return renderTemplate("gitignore.tmpl", NewTemplateData(a))
}

func RenderRootPackageJSON(a scaffold.Answers) (string, error) {
	return renderTemplate("package.root.json.tmpl", NewTemplateData(a))
}

func RenderTurboJSON(a scaffold.Answers) (string, error) {
	return renderTemplate("turbo.json.tmpl", NewTemplateData(a))
}

func RenderNxJSON(a scaffold.Answers) (string, error) {
	return renderTemplate("nx.json.tmpl", NewTemplateData(a))
}

func RenderWorkspaceYAML(a scaffold.Answers) (string, error) {
	return renderTemplate("pnpm-workspace.yaml.tmpl", NewTemplateData(a))
}

func RenderNpmrc(a scaffold.Answers) (string, error) {
	return renderTemplate("npmrc.tmpl", NewTemplateData(a))
}

func RenderBaseTsconfig(a scaffold.Answers) (string, error) {
	return renderTemplate("tsconfig.base.json.tmpl", NewTemplateData(a))
}

func RenderPrismaSchema(a scaffold.Answers) (string, error) {
	return renderTemplate("prisma.schema.tmpl", NewTemplateData(a))
}

func RenderDrizzleConfig(a scaffold.Answers) (string, error) {
	return renderTemplate("drizzle.config.ts.tmpl", NewTemplateData(a))
}

func RenderDrizzleSchema(a scaffold.Answers) (string, error) {
	return renderTemplate("drizzle.schema.ts.tmpl", NewTemplateData(a))
}

func RenderDBClient(a scaffold.Answers) (string, error) {
	return renderTemplate("db.ts.tmpl", NewTemplateData(a))
}

func RenderExpressServer(a scaffold.Answers) (string, error) {
	return renderTemplate("express.server.ts.tmpl", NewTemplateData(a))
}

func RenderAPIPackageJSON(a scaffold.Answers) (string, error) {
	return renderTemplate("api.package.json.tmpl", NewTemplateData(a))
}

func RenderTRPCRouter(a scaffold.Answers) (string, error) {
	return renderTemplate("trpc.ts.tmpl", NewTemplateData(a))
}

func RenderAuthConfig(a scaffold.Answers) (string, error) {
	switch a.Auth {
	case scaffold.AuthAuthJS:
		return renderTemplate("auth.authjs.ts.tmpl", NewTemplateData(a))
	case scaffold.AuthClerk:
		return renderTemplate("auth.clerk.ts.tmpl", NewTemplateData(a))
	case scaffold.AuthLucia:
		return renderTemplate("auth.lucia.ts.tmpl", NewTemplateData(a))
	default:
		return "", nil
	}
}

func RenderPaymentsClient(a scaffold.Answers) (string, error) {
	switch a.Payments {
	case scaffold.PaymentsStripe:
		return renderTemplate("payments.stripe.ts.tmpl", NewTemplateData(a))
	case scaffold.PaymentsLemonSqueezy:
		return renderTemplate("payments.lemonsqueezy.ts.tmpl", NewTemplateData(a))
	default:
		return "", nil
	}
}

func RenderVitestConfig(a scaffold.Answers) (string, error) {
	return renderTemplate("vitest.config.ts.tmpl", NewTemplateData(a))
}

func RenderVitestSmokeTest(a scaffold.Answers) (string, error) {
	return renderTemplate("vitest.smoke.test.ts.tmpl", NewTemplateData(a))
}

func RenderPlaywrightConfig(a scaffold.Answers) (string, error) {
	return renderTemplate("playwright.config.ts.tmpl", NewTemplateData(a))
}

// RenderCIWorkflow uses [[ ]] delimiters because GitHub Actions syntax owns {{ }}.
func RenderCIWorkflow(a scaffold.Answers) (string, error) {
	return renderTemplateDelims("ci.yml.tmpl", "[[", "]]", NewTemplateData(a))
}

func RenderDependabot(a scaffold.Answers) (string, error) {
	return renderTemplate("dependabot.yml.tmpl", NewTemplateData(a))
}

func RenderRealtimeStub(a scaffold.Answers) (string, error) {
	switch a.Realtime {
	case scaffold.RealtimeSocketIO:
		return renderTemplate("realtime.socketio.ts.tmpl", NewTemplateData(a))
	case scaffold.RealtimePusher:
		return renderTemplate("realtime.pusher.ts.tmpl", NewTemplateData(a))
	default:
		return "", nil
	}
}

func RenderDockerCompose(a scaffold.Answers) (string, error) {
	return renderTemplate("docker-compose.yml.tmpl", NewTemplateData(a))
}

func RenderPrettierRC(a scaffold.Answers) (string, error) {
	return renderTemplate("prettierrc.tmpl", NewTemplateData(a))
}

func RenderESLintConfig(a scaffold.Answers) (string, error) {
	return renderTemplate("eslintrc.tmpl", NewTemplateData(a))
}

func RenderHuskyPreCommit(a scaffold.Answers) (string, error) {
	return renderTemplate("husky.pre-commit.tmpl", NewTemplateData(a))
}

func RenderTailwindConfig(a scaffold.Answers) (string, error) {
	return renderTemplate("tailwind.config.ts.tmpl", NewTemplateData(a))
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name, "{{", "}}")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderTemplateDelims(name, left, right string, data any) (string, error) {
	tmpl, err := loadTemplate(name, left, right)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name, left, right string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).
		Delims(left, right).
		Funcs(sprig.TxtFuncMap()).
		ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
