// Where: internal/workflows/steps_base.go
// What: Base scaffold steps: project layout, frontend generator, UI library.
// Why: These run first and the rest of the pipeline builds on their output.
package workflows

import (
	"context"
	"fmt"

	"github.com/stackforge-dev/stackforge/internal/fileops"
	"github.com/stackforge-dev/stackforge/internal/generator"
	"github.com/stackforge-dev/stackforge/internal/runner"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

// renderedFile pairs a project-relative path with its template renderer.
type renderedFile struct {
	path   string
	render func(scaffold.Answers) (string, error)
}

// layoutStep prepares the directory skeleton and, for monorepos, the root
// workspace files. It must succeed before anything else runs.
type layoutStep struct{}

func (layoutStep) Name() string                    { return "project layout" }
func (layoutStep) Enabled(a scaffold.Answers) bool { return true }
func (layoutStep) Fatal() bool                     { return true }

func (s layoutStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers

	// Single-app roots stay empty here: the frontend generator insists on
	// an empty target directory when it writes into ".".
	if !a.IsMonorepo() {
		return success(s.Name(), "single-app layout prepared")
	}

	files := []renderedFile{
		{"package.json", generator.RenderRootPackageJSON},
		{"tsconfig.base.json", generator.RenderBaseTsconfig},
		{"README.md", generator.RenderReadme},
	}
	switch a.Monorepo {
	case scaffold.MonorepoTurborepo:
		files = append(files, renderedFile{"turbo.json", generator.RenderTurboJSON})
	case scaffold.MonorepoNx:
		files = append(files, renderedFile{"nx.json", generator.RenderNxJSON})
	}
	if a.PackageManager == scaffold.PackageManagerPnpm {
		files = append(files,
			renderedFile{"pnpm-workspace.yaml", generator.RenderWorkspaceYAML},
			renderedFile{".npmrc", generator.RenderNpmrc},
		)
	}

	for _, file := range files {
		content, err := file.render(a)
		if err != nil {
			return failure(s.Name(), fmt.Errorf("render %s: %w", file.path, err))
		}
		if err := fileops.WriteFile(p.Path(file.path), content); err != nil {
			return failure(s.Name(), err)
		}
	}

	for _, dir := range []string{"apps", "packages"} {
		if err := fileops.EnsureDir(p.Path(dir)); err != nil {
			return failure(s.Name(), err)
		}
	}

	return success(s.Name(), fmt.Sprintf("%s workspace prepared", a.Monorepo))
}

// frontendStep shells out to the framework's own generator so the scaffold
// tracks upstream defaults instead of freezing a snapshot of them.
type frontendStep struct {
	runner runner.CommandRunner
}

func (frontendStep) Name() string                    { return "frontend" }
func (frontendStep) Enabled(a scaffold.Answers) bool { return true }
func (frontendStep) Fatal() bool                     { return true }

func (s frontendStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers

	// Monorepo apps generate into a staging directory named after the
	// package so the generated package.json carries the right name, then
	// move into the workspace slot.
	target := "."
	if a.IsMonorepo() {
		target = "web"
	}

	var args []string
	switch a.Frontend {
	case scaffold.FrontendNextJS:
		args = append(a.CreateCommand(), "next-app@latest", target,
			"--ts", "--app", "--eslint", "--skip-install", "--disable-git")
		if a.UILibrary != scaffold.UINone {
			args = append(args, "--tailwind")
		} else {
			args = append(args, "--no-tailwind")
		}
	case scaffold.FrontendVite:
		args = append(a.CreateCommand(), "vite@latest", target)
		args = appendGeneratorFlags(a, args, "--template", "react-ts")
	case scaffold.FrontendAstro:
		args = append(a.CreateCommand(), "astro@latest", target)
		args = appendGeneratorFlags(a, args, "--template", "minimal", "--no-install", "--no-git", "--yes")
	default:
		return failure(s.Name(), fmt.Errorf("unknown frontend %q", a.Frontend))
	}

	if err := s.runner.Run(ctx, p.Dir, args[0], args[1:]...); err != nil {
		return failure(s.Name(), fmt.Errorf("%s generator: %w", a.Frontend, err))
	}

	if a.IsMonorepo() && fileops.DirExists(p.Path(target)) {
		if err := fileops.MoveDir(p.Path(target), p.WebPath()); err != nil {
			return failure(s.Name(), fmt.Errorf("move %s into %s: %w", target, a.WebDir(), err))
		}
	}

	gitignore, err := generator.RenderGitignore(a)
	if err != nil {
		return failure(s.Name(), err)
	}
	if _, err := fileops.WriteFileIfAbsent(p.Path(".gitignore"), gitignore); err != nil {
		return failure(s.Name(), err)
	}

	return success(s.Name(), fmt.Sprintf("%s app created in %s", a.Frontend, a.WebDir()))
}

// appendGeneratorFlags inserts the "--" separator npm requires before
// forwarding flags to a create-* generator.
func appendGeneratorFlags(a scaffold.Answers, args []string, flags ...string) []string {
	if a.PackageManager == scaffold.PackageManagerNpm {
		args = append(args, "--")
	}
	return append(args, flags...)
}

// uiLibraryStep configures Tailwind or runs shadcn/ui's own init.
type uiLibraryStep struct {
	runner runner.CommandRunner
}

func (uiLibraryStep) Name() string                    { return "ui library" }
func (uiLibraryStep) Enabled(a scaffold.Answers) bool { return a.UILibrary != scaffold.UINone }
func (uiLibraryStep) Fatal() bool                     { return false }

func (s uiLibraryStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers

	config, err := generator.RenderTailwindConfig(a)
	if err != nil {
		return failure(s.Name(), err)
	}
	if _, err := fileops.WriteFileIfAbsent(p.WebPath("tailwind.config.ts"), config); err != nil {
		return failure(s.Name(), err)
	}

	if a.UILibrary == scaffold.UITailwind {
		return success(s.Name(), "tailwind configured")
	}

	args := append(a.ExecCommand(), "shadcn@latest", "init", "--yes")
	if err := s.runner.Run(ctx, p.WebPath(), args[0], args[1:]...); err != nil {
		return failure(s.Name(), fmt.Errorf("shadcn init: %w", err))
	}
	return success(s.Name(), "shadcn/ui initialized")
}
