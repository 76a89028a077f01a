// Where: internal/workflows/steps_stack.go
// What: Backend, ORM, and database scaffold steps.
// Why: Data-layer wiring shares file placement rules, so the steps live together.
package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/stackforge-dev/stackforge/internal/dbprovision"
	"github.com/stackforge-dev/stackforge/internal/fileops"
	"github.com/stackforge-dev/stackforge/internal/generator"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

// dataDir returns the directory that owns server-side code: the API app in
// monorepos, the frontend app otherwise.
func dataDir(p *Project) string {
	if p.Answers.Backend != scaffold.BackendNone {
		return p.APIDir()
	}
	return p.Answers.WebDir()
}

// backendStep writes the API server entrypoint and, for monorepos, the API
// app's package manifest.
type backendStep struct{}

func (backendStep) Name() string                    { return "backend" }
func (backendStep) Enabled(a scaffold.Answers) bool { return a.Backend != scaffold.BackendNone }
func (backendStep) Fatal() bool                     { return false }

func (s backendStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers

	srcDir := p.APIDir()
	if a.IsMonorepo() {
		manifest, err := generator.RenderAPIPackageJSON(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(p.APIDir(), "package.json"), manifest); err != nil {
			return failure(s.Name(), err)
		}
		srcDir = filepath.Join(p.APIDir(), "src")
	}

	switch a.Backend {
	case scaffold.BackendExpress:
		server, err := generator.RenderExpressServer(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(srcDir, "index.ts"), server); err != nil {
			return failure(s.Name(), err)
		}
		p.Env.Set("PORT", "3001")
	case scaffold.BackendTRPC:
		router, err := generator.RenderTRPCRouter(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(srcDir, "trpc.ts"), router); err != nil {
			return failure(s.Name(), err)
		}
	}

	return success(s.Name(), fmt.Sprintf("%s server scaffolded in %s", a.Backend, srcDir))
}

// ormStep writes the schema and database client for the chosen ORM. The files
// sit next to the server code so imports stay relative.
type ormStep struct{}

func (ormStep) Name() string                    { return "orm" }
func (ormStep) Enabled(a scaffold.Answers) bool { return a.ORM != scaffold.ORMNone }
func (ormStep) Fatal() bool                     { return false }

func (s ormStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers
	base := dataDir(p)

	client, err := generator.RenderDBClient(a)
	if err != nil {
		return failure(s.Name(), err)
	}

	switch a.ORM {
	case scaffold.ORMPrisma:
		schema, err := generator.RenderPrismaSchema(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(base, "prisma", "schema.prisma"), schema); err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(base, "db.ts"), client); err != nil {
			return failure(s.Name(), err)
		}
	case scaffold.ORMDrizzle:
		config, err := generator.RenderDrizzleConfig(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		schema, err := generator.RenderDrizzleSchema(a)
		if err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(base, "drizzle.config.ts"), config); err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(base, "schema.ts"), schema); err != nil {
			return failure(s.Name(), err)
		}
		if err := fileops.WriteFile(p.Path(base, "db.ts"), client); err != nil {
			return failure(s.Name(), err)
		}
	}

	return success(s.Name(), fmt.Sprintf("%s schema and client written to %s", a.ORM, base))
}

// databaseStep records the connection string and, when asked for a local
// container, writes a compose file and starts the database through the
// Docker daemon.
type databaseStep struct {
	docker DockerFactory
}

func (databaseStep) Name() string                    { return "database" }
func (databaseStep) Enabled(a scaffold.Answers) bool { return a.NeedsDatabase() }
func (databaseStep) Fatal() bool                     { return false }

func (s databaseStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers
	db := scaffold.DatabaseSettingsFor(a)

	if a.Database == scaffold.DatabaseSQLite {
		p.Env.Set("DATABASE_URL", db.URL)
		if err := fileops.AppendFile(p.Path(".gitignore"), "\n# local sqlite database\ndev.db\n"); err != nil {
			return failure(s.Name(), err)
		}
		return success(s.Name(), "sqlite database at ./dev.db")
	}

	p.Env.SetSecret("DATABASE_URL", db.URL)

	if a.DatabaseHost == scaffold.DatabaseHostRemote {
		return success(s.Name(), fmt.Sprintf("set DATABASE_URL to your remote %s instance", a.Database))
	}

	compose, err := generator.RenderDockerCompose(a)
	if err != nil {
		return failure(s.Name(), err)
	}
	if err := fileops.WriteFile(p.Path("docker-compose.yml"), compose); err != nil {
		return failure(s.Name(), err)
	}

	if s.docker == nil {
		return success(s.Name(), "docker-compose.yml written; start the database with docker compose up -d")
	}
	cli, err := s.docker()
	if err != nil {
		return failure(s.Name(), fmt.Errorf("docker client: %w", err))
	}
	if err := dbprovision.EnsureDatabase(ctx, cli, a.ProjectName, db); err != nil {
		return failure(s.Name(), err)
	}

	container := dbprovision.ContainerName(a.ProjectName)
	return success(s.Name(), fmt.Sprintf("%s running in container %s on port %d", a.Database, container, db.Port))
}
