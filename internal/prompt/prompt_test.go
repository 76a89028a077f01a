// Where: internal/prompt/prompt_test.go
// What: Tests for the non-TTY confirmation fallback.
package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestPromptYesNoWithIO(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tc := range cases {
		var out bytes.Buffer
		got, err := PromptYesNoWithIO(strings.NewReader(tc.input), &out, "Continue?")
		if err != nil {
			t.Fatalf("input %q: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("input %q = %v, want %v", tc.input, got, tc.want)
		}
		if !strings.Contains(out.String(), "Continue?") {
			t.Fatalf("prompt not printed for %q", tc.input)
		}
	}
}

func stubConfirmPrompt(t *testing.T, err error) {
	t.Helper()
	original := runConfirmPrompt
	runConfirmPrompt = func(string, *bool) error { return err }
	t.Cleanup(func() { runConfirmPrompt = original })
}

func stubConfirmFallbackIO(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	originalIn, originalOut := confirmFallbackIn, confirmFallbackOut
	out := &bytes.Buffer{}
	confirmFallbackIn = strings.NewReader(input)
	confirmFallbackOut = out
	t.Cleanup(func() {
		confirmFallbackIn, confirmFallbackOut = originalIn, originalOut
	})
	return out
}

func TestConfirmFallsBackToPlainPrompt(t *testing.T) {
	stubConfirmPrompt(t, errors.New("open /dev/tty: no such device"))
	out := stubConfirmFallbackIO(t, "y\n")

	got, err := HuhPrompter{}.Confirm("Initialize git?", false)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !got {
		t.Fatal("fallback answer not honored")
	}
	if !strings.Contains(out.String(), "Initialize git?") {
		t.Fatalf("fallback prompt not printed:\n%s", out.String())
	}
}

func TestConfirmAbortDoesNotFallBack(t *testing.T) {
	stubConfirmPrompt(t, huh.ErrUserAborted)
	stubConfirmFallbackIO(t, "y\n")

	_, err := HuhPrompter{}.Confirm("Initialize git?", false)
	if !IsAborted(err) {
		t.Fatalf("err = %v, want user abort", err)
	}
}
