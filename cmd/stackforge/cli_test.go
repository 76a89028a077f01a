// Where: cmd/stackforge/cli_test.go
// What: Tests for dependency wiring.
package main

import "testing"

func TestBuildDependencies(t *testing.T) {
	deps := buildDependencies()
	if deps.Out == nil {
		t.Fatal("Out not wired")
	}
	if deps.Prompter == nil {
		t.Fatal("Prompter not wired")
	}
	if deps.Runner == nil {
		t.Fatal("Runner not wired")
	}
	if deps.Docker == nil {
		t.Fatal("Docker factory not wired")
	}
	if deps.Now == nil {
		t.Fatal("Now not wired")
	}
}
