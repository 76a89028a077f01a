// Where: internal/prompt/huh.go
// What: Interactive prompt implementations using the huh library.
// Why: Provide keyboard-based input and selection for the question flow.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title string, suggestions []string, input *string) error {
	field := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(input)
	if len(suggestions) > 0 {
		field.Placeholder(suggestions[0])
	}
	return field.Run()
}

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

var runMultiSelectPrompt = func(title string, options []huh.Option[string], selected *[]string) error {
	return huh.NewMultiSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

var runConfirmPrompt = func(title string, value *bool) error {
	return huh.NewConfirm().
		Title(title).
		Value(value).
		Run()
}

// IsAborted reports whether err came from the user cancelling a prompt.
func IsAborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := runInputPrompt(title, suggestions, &input)
	if err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return input, nil
}

func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	err := runSelectPrompt(title, huhOptions, &selected)
	if err != nil {
		return "", fmt.Errorf("prompt select value: %w", err)
	}
	return selected, nil
}

func (p HuhPrompter) MultiSelect(title string, options []SelectOption) ([]string, error) {
	if len(options) == 0 {
		return nil, nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected []string
	err := runMultiSelectPrompt(title, huhOptions, &selected)
	if err != nil {
		return nil, fmt.Errorf("prompt multi select: %w", err)
	}
	return selected, nil
}

// confirmFallbackIn and confirmFallbackOut feed the plain-text confirmation
// used when the TUI confirm cannot render (dumb terminals, broken TERM).
var (
	confirmFallbackIn  io.Reader = os.Stdin
	confirmFallbackOut io.Writer = os.Stderr
)

func (p HuhPrompter) Confirm(title string, def bool) (bool, error) {
	value := def
	err := runConfirmPrompt(title, &value)
	if err == nil {
		return value, nil
	}
	if IsAborted(err) {
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	return PromptYesNoWithIO(confirmFallbackIn, confirmFallbackOut, title)
}
