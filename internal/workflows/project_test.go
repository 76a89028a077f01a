// Where: internal/workflows/project_test.go
// What: Tests for env accumulation and package.json script merging.
package workflows

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

func TestEnvBuilderOrderAndSecrets(t *testing.T) {
	env := NewEnvBuilder()
	env.Set("PORT", "3001")
	env.SetSecret("DATABASE_URL", "postgresql://u:p@localhost:5432/app")
	env.Set("PORT", "4000") // overwrite keeps position

	if got := env.Keys(); strings.Join(got, ",") != "PORT,DATABASE_URL" {
		t.Fatalf("Keys() = %v", got)
	}
	if env.Get("PORT") != "4000" {
		t.Fatalf("Get(PORT) = %q", env.Get("PORT"))
	}

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	examplePath := filepath.Join(dir, ".env.example")
	if err := env.WriteEnv(envPath); err != nil {
		t.Fatal(err)
	}
	if err := env.WriteExample(examplePath); err != nil {
		t.Fatal(err)
	}

	envData, _ := os.ReadFile(envPath)
	if !strings.Contains(string(envData), "postgresql://u:p@localhost:5432/app") {
		t.Fatalf(".env missing secret value:\n%s", envData)
	}
	exampleData, _ := os.ReadFile(examplePath)
	if strings.Contains(string(exampleData), "postgresql://") {
		t.Fatalf(".env.example leaked a secret:\n%s", exampleData)
	}
	if !strings.Contains(string(exampleData), "DATABASE_URL") {
		t.Fatalf(".env.example dropped the secret key:\n%s", exampleData)
	}
}

func TestAddPackageScripts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	seed := `{"name":"demo","scripts":{"dev":"next dev"}}`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}

	err := addPackageScripts(path, map[string]string{
		"test":     "vitest run",
		"test:e2e": "playwright test",
	})
	if err != nil {
		t.Fatalf("addPackageScripts() error: %v", err)
	}

	payload, _ := os.ReadFile(path)
	for _, want := range []string{`"dev": "next dev"`, `"test": "vitest run"`, `"test:e2e": "playwright test"`} {
		if !strings.Contains(string(payload), want) {
			t.Fatalf("package.json missing %s:\n%s", want, payload)
		}
	}
}

func TestAddPackageScriptsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	if err := addPackageScripts(path, map[string]string{"test": "vitest run"}); err == nil {
		t.Fatal("expected an error for a missing package.json")
	}
}

func TestProjectAPIDir(t *testing.T) {
	mono := scaffold.Defaults()
	mono.Monorepo = scaffold.MonorepoTurborepo
	if got := NewProject("/tmp/x", mono).APIDir(); got != "apps/api" {
		t.Fatalf("monorepo APIDir() = %q", got)
	}

	single := scaffold.Defaults()
	if got := NewProject("/tmp/x", single).APIDir(); got != filepath.Join(".", "src", "server") {
		t.Fatalf("single APIDir() = %q", got)
	}
}
