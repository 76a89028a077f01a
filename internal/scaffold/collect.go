// Where: internal/scaffold/collect.go
// What: The interactive question sequence that fills an Answers record.
// Why: Keep the linear prompt flow in one place, separate from setup steps.
package scaffold

import (
	"fmt"
	"strings"

	"github.com/stackforge-dev/stackforge/internal/prompt"
)

// Collect runs the question sequence against the given prompter, seeded with
// defaults. Questions made irrelevant by earlier answers are skipped; the
// corresponding fields keep their zero enumeration value ("none").
func Collect(prompter prompt.Prompter, defaults Answers) (Answers, error) {
	a := defaults

	name, err := prompter.Input("Project name", []string{defaults.ProjectName})
	if err != nil {
		return a, err
	}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		a.ProjectName = trimmed
	}

	a.PackageManager, err = prompter.SelectValue("Package manager", []prompt.SelectOption{
		{Label: "pnpm (recommended)", Value: PackageManagerPnpm},
		{Label: "npm", Value: PackageManagerNpm},
		{Label: "yarn", Value: PackageManagerYarn},
		{Label: "bun", Value: PackageManagerBun},
	})
	if err != nil {
		return a, err
	}

	a.Monorepo, err = prompter.SelectValue("Monorepo tool", []prompt.SelectOption{
		{Label: "None (single package)", Value: MonorepoNone},
		{Label: "Turborepo", Value: MonorepoTurborepo},
		{Label: "Nx", Value: MonorepoNx},
	})
	if err != nil {
		return a, err
	}

	a.Frontend, err = prompter.SelectValue("Frontend framework", []prompt.SelectOption{
		{Label: "Next.js", Value: FrontendNextJS},
		{Label: "Vite + React", Value: FrontendVite},
		{Label: "Astro", Value: FrontendAstro},
	})
	if err != nil {
		return a, err
	}

	uiOptions := []prompt.SelectOption{
		{Label: "None", Value: UINone},
		{Label: "Tailwind CSS", Value: UITailwind},
	}
	if a.Frontend != FrontendAstro {
		uiOptions = append(uiOptions, prompt.SelectOption{Label: "shadcn/ui (Tailwind included)", Value: UIShadcn})
	}
	a.UILibrary, err = prompter.SelectValue("UI library", uiOptions)
	if err != nil {
		return a, err
	}

	a.Backend, err = prompter.SelectValue("Backend layer", []prompt.SelectOption{
		{Label: "None", Value: BackendNone},
		{Label: "Express API server", Value: BackendExpress},
		{Label: "tRPC", Value: BackendTRPC},
	})
	if err != nil {
		return a, err
	}

	a.ORM, err = prompter.SelectValue("ORM", []prompt.SelectOption{
		{Label: "None", Value: ORMNone},
		{Label: "Prisma", Value: ORMPrisma},
		{Label: "Drizzle", Value: ORMDrizzle},
	})
	if err != nil {
		return a, err
	}

	a.Database = DatabaseNone
	a.DatabaseHost = DatabaseHostNone
	if a.ORM != ORMNone {
		a.Database, err = prompter.SelectValue("Database provider", []prompt.SelectOption{
			{Label: "SQLite (file-based)", Value: DatabaseSQLite},
			{Label: "PostgreSQL", Value: DatabasePostgres},
			{Label: "MySQL", Value: DatabaseMySQL},
		})
		if err != nil {
			return a, err
		}
		if a.Database == DatabasePostgres || a.Database == DatabaseMySQL {
			a.DatabaseHost, err = prompter.SelectValue(
				fmt.Sprintf("Where will %s run during development?", a.Database),
				[]prompt.SelectOption{
					{Label: "Local Docker container", Value: DatabaseHostDocker},
					{Label: "Remote (I'll provide a connection URL)", Value: DatabaseHostRemote},
				})
			if err != nil {
				return a, err
			}
		}
	}

	authOptions := []prompt.SelectOption{
		{Label: "None", Value: AuthNone},
		{Label: "Clerk", Value: AuthClerk},
		{Label: "Lucia", Value: AuthLucia},
	}
	if a.Frontend == FrontendNextJS {
		authOptions = append(authOptions[:1],
			append([]prompt.SelectOption{{Label: "Auth.js (NextAuth)", Value: AuthAuthJS}}, authOptions[1:]...)...)
	}
	a.Auth, err = prompter.SelectValue("Auth provider", authOptions)
	if err != nil {
		return a, err
	}

	a.Payments, err = prompter.SelectValue("Payment provider", []prompt.SelectOption{
		{Label: "None", Value: PaymentsNone},
		{Label: "Stripe", Value: PaymentsStripe},
		{Label: "Lemon Squeezy", Value: PaymentsLemonSqueezy},
	})
	if err != nil {
		return a, err
	}

	a.Testing, err = prompter.MultiSelect("Testing tools", []prompt.SelectOption{
		{Label: "Vitest (unit)", Value: TestingVitest},
		{Label: "Playwright (e2e)", Value: TestingPlaywright},
	})
	if err != nil {
		return a, err
	}

	a.CICD, err = prompter.MultiSelect("CI/CD tools", []prompt.SelectOption{
		{Label: "GitHub Actions workflow", Value: CICDGitHubActions},
		{Label: "Dependabot updates", Value: CICDDependabot},
	})
	if err != nil {
		return a, err
	}

	a.Realtime, err = prompter.SelectValue("Realtime provider", []prompt.SelectOption{
		{Label: "None", Value: RealtimeNone},
		{Label: "Socket.IO", Value: RealtimeSocketIO},
		{Label: "Pusher", Value: RealtimePusher},
	})
	if err != nil {
		return a, err
	}

	a.Extras, err = prompter.MultiSelect("Extras", []prompt.SelectOption{
		{Label: "ESLint", Value: ExtraESLint},
		{Label: "Prettier", Value: ExtraPrettier},
		{Label: "Husky git hooks", Value: ExtraHusky},
	})
	if err != nil {
		return a, err
	}

	a.InitGit, err = prompter.Confirm("Initialize a git repository?", defaults.InitGit)
	if err != nil {
		return a, err
	}

	a.InstallDeps, err = prompter.Confirm("Install dependencies after scaffolding?", defaults.InstallDeps)
	if err != nil {
		return a, err
	}

	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}
