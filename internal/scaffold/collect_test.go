// Where: internal/scaffold/collect_test.go
// What: Tests for the interactive question sequence.
// Why: Branching must skip questions made irrelevant by earlier answers.
package scaffold

import (
	"fmt"
	"testing"

	"github.com/stackforge-dev/stackforge/internal/prompt"
)

// scriptPrompter replays canned answers keyed by prompt title.
type scriptPrompter struct {
	inputs   map[string]string
	selects  map[string]string
	multis   map[string][]string
	confirms map[string]bool
	asked    []string
}

func (s *scriptPrompter) Input(title string, _ []string) (string, error) {
	s.asked = append(s.asked, title)
	if v, ok := s.inputs[title]; ok {
		return v, nil
	}
	return "", nil
}

func (s *scriptPrompter) SelectValue(title string, options []prompt.SelectOption) (string, error) {
	answer, err := s.selectAnswer(title)
	if err != nil {
		return "", err
	}
	for _, opt := range options {
		if opt.Value == answer {
			return answer, nil
		}
	}
	return "", fmt.Errorf("scripted answer %q not offered for %q", answer, title)
}

func (s *scriptPrompter) selectAnswer(title string) (string, error) {
	s.asked = append(s.asked, title)
	if v, ok := s.selects[title]; ok {
		return v, nil
	}
	return "", fmt.Errorf("unexpected select %q", title)
}

func (s *scriptPrompter) MultiSelect(title string, _ []prompt.SelectOption) ([]string, error) {
	s.asked = append(s.asked, title)
	return s.multis[title], nil
}

func (s *scriptPrompter) Confirm(title string, def bool) (bool, error) {
	s.asked = append(s.asked, title)
	if v, ok := s.confirms[title]; ok {
		return v, nil
	}
	return def, nil
}

func (s *scriptPrompter) wasAsked(title string) bool {
	for _, q := range s.asked {
		if q == title {
			return true
		}
	}
	return false
}

func fullStackScript() *scriptPrompter {
	return &scriptPrompter{
		inputs: map[string]string{"Project name": "acme-shop"},
		selects: map[string]string{
			"Package manager":    PackageManagerPnpm,
			"Monorepo tool":      MonorepoTurborepo,
			"Frontend framework": FrontendNextJS,
			"UI library":         UIShadcn,
			"Backend layer":      BackendTRPC,
			"ORM":                ORMPrisma,
			"Database provider":  DatabasePostgres,
			"Where will postgres run during development?": DatabaseHostDocker,
			"Auth provider":     AuthAuthJS,
			"Payment provider":  PaymentsStripe,
			"Realtime provider": RealtimeSocketIO,
		},
		multis: map[string][]string{
			"Testing tools": {TestingVitest, TestingPlaywright},
			"CI/CD tools":   {CICDGitHubActions},
			"Extras":        {ExtraPrettier},
		},
		confirms: map[string]bool{
			"Initialize a git repository?":           true,
			"Install dependencies after scaffolding?": false,
		},
	}
}

func TestCollectFullStack(t *testing.T) {
	p := fullStackScript()
	a, err := Collect(p, Defaults())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if a.ProjectName != "acme-shop" {
		t.Fatalf("ProjectName = %q", a.ProjectName)
	}
	if a.Database != DatabasePostgres || a.DatabaseHost != DatabaseHostDocker {
		t.Fatalf("database answers = %q/%q", a.Database, a.DatabaseHost)
	}
	if a.InstallDeps {
		t.Fatal("InstallDeps must honor the scripted confirm")
	}
	if len(a.Testing) != 2 {
		t.Fatalf("Testing = %v", a.Testing)
	}
}

func TestCollectSkipsDatabaseWithoutORM(t *testing.T) {
	p := fullStackScript()
	p.selects["ORM"] = ORMNone
	delete(p.selects, "Database provider")
	delete(p.selects, "Where will postgres run during development?")

	a, err := Collect(p, Defaults())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if p.wasAsked("Database provider") {
		t.Fatal("database question must be skipped without an ORM")
	}
	if a.Database != DatabaseNone || a.DatabaseHost != DatabaseHostNone {
		t.Fatalf("database answers = %q/%q", a.Database, a.DatabaseHost)
	}
}

func TestCollectSkipsHostForSQLite(t *testing.T) {
	p := fullStackScript()
	p.selects["Database provider"] = DatabaseSQLite

	a, err := Collect(p, Defaults())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if p.wasAsked("Where will postgres run during development?") {
		t.Fatal("host question must be skipped for sqlite")
	}
	if a.DatabaseHost != DatabaseHostNone {
		t.Fatalf("DatabaseHost = %q", a.DatabaseHost)
	}
}

func TestCollectHidesShadcnForAstro(t *testing.T) {
	p := fullStackScript()
	p.selects["Frontend framework"] = FrontendAstro
	p.selects["Auth provider"] = AuthClerk

	_, err := Collect(p, Defaults())
	if err == nil {
		t.Fatal("expected error: shadcn must not be offered for astro")
	}
}

func TestCollectKeepsDefaultNameOnEmptyInput(t *testing.T) {
	p := fullStackScript()
	p.inputs["Project name"] = "  "

	a, err := Collect(p, Defaults())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if a.ProjectName != Defaults().ProjectName {
		t.Fatalf("ProjectName = %q, want default", a.ProjectName)
	}
}
