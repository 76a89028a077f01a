// Where: internal/config/global_test.go
// What: Tests for global config persistence and the recent-project list.
// Why: Round-trips and recency ordering must stay stable.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

func TestGlobalConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultGlobalConfig()
	cfg.Defaults.PackageManager = scaffold.PackageManagerBun
	cfg = RecordRecentProject(cfg, "demo", "/tmp/demo", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	if err := SaveGlobalConfig(path, cfg); err != nil {
		t.Fatalf("SaveGlobalConfig: %v", err)
	}

	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if loaded.Version != 1 {
		t.Fatalf("Version = %d", loaded.Version)
	}
	if loaded.Defaults.PackageManager != scaffold.PackageManagerBun {
		t.Fatalf("Defaults.PackageManager = %q", loaded.Defaults.PackageManager)
	}
	if len(loaded.Recent) != 1 || loaded.Recent[0].Name != "demo" {
		t.Fatalf("Recent = %+v", loaded.Recent)
	}
}

func TestSaveGlobalConfigReplacesWithoutDebris(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	first := DefaultGlobalConfig()
	if err := SaveGlobalConfig(path, first); err != nil {
		t.Fatalf("SaveGlobalConfig: %v", err)
	}

	second := DefaultGlobalConfig()
	second.Defaults.PackageManager = scaffold.PackageManagerYarn
	if err := SaveGlobalConfig(path, second); err != nil {
		t.Fatalf("SaveGlobalConfig overwrite: %v", err)
	}

	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if loaded.Defaults.PackageManager != scaffold.PackageManagerYarn {
		t.Fatalf("Defaults.PackageManager = %q", loaded.Defaults.PackageManager)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.yaml" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("config dir = %v, want only config.yaml", names)
	}
}

func TestGlobalConfigPathOverrides(t *testing.T) {
	t.Setenv("STACKFORGE_CONFIG_PATH", "")
	t.Setenv("STACKFORGE_CONFIG_HOME", "/custom/home")
	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("GlobalConfigPath: %v", err)
	}
	if path != filepath.Join("/custom/home", "config.yaml") {
		t.Fatalf("path = %q", path)
	}

	t.Setenv("STACKFORGE_CONFIG_PATH", "/direct/config.yaml")
	path, err = GlobalConfigPath()
	if err != nil {
		t.Fatalf("GlobalConfigPath: %v", err)
	}
	if path != "/direct/config.yaml" {
		t.Fatalf("path = %q", path)
	}
}

func TestEnsureGlobalConfigCreatesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("STACKFORGE_CONFIG_PATH", "")
	t.Setenv("STACKFORGE_CONFIG_HOME", home)

	if err := EnsureGlobalConfig(); err != nil {
		t.Fatalf("EnsureGlobalConfig: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Fatalf("config file missing: %v", err)
	}

	// Second call must be a no-op.
	if err := EnsureGlobalConfig(); err != nil {
		t.Fatalf("EnsureGlobalConfig (existing): %v", err)
	}
}

func TestRecordRecentProjectDedupAndCap(t *testing.T) {
	cfg := DefaultGlobalConfig()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		cfg = RecordRecentProject(cfg, "p", filepath.Join("/tmp", string(rune('a'+i))), base.Add(time.Duration(i)*time.Hour))
	}
	if len(cfg.Recent) != maxRecentProjects {
		t.Fatalf("len(Recent) = %d, want %d", len(cfg.Recent), maxRecentProjects)
	}

	// Re-recording an existing path must move it to the front, not duplicate it.
	target := cfg.Recent[3].Path
	cfg = RecordRecentProject(cfg, "p", target, base.Add(100*time.Hour))
	if cfg.Recent[0].Path != target {
		t.Fatalf("Recent[0].Path = %q, want %q", cfg.Recent[0].Path, target)
	}
	seen := map[string]int{}
	for _, entry := range cfg.Recent {
		seen[entry.Path]++
	}
	if seen[target] != 1 {
		t.Fatalf("path %q recorded %d times", target, seen[target])
	}
}

func TestSortedRecentNewestFirst(t *testing.T) {
	cfg := DefaultGlobalConfig()
	cfg.Recent = []RecentProject{
		{Name: "old", Path: "/a", CreatedAt: "2026-01-01T00:00:00Z"},
		{Name: "new", Path: "/b", CreatedAt: "2026-02-01T00:00:00Z"},
	}
	sorted := SortedRecent(cfg)
	if sorted[0].Name != "new" {
		t.Fatalf("sorted[0] = %+v", sorted[0])
	}
}
