// Where: internal/ports/ui.go
// What: User interface abstraction for workflows.
// Why: Provide a single output surface so workflows stay UI-agnostic.
package ports

import (
	"io"
	"os"

	"github.com/stackforge-dev/stackforge/internal/meta"
	"github.com/stackforge-dev/stackforge/internal/ui"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by workflows.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewConsoleUI returns a UserInterface backed by the console helper.
// Setting STACKFORGE_NO_EMOJI switches to plain-text status prefixes.
func NewConsoleUI(out io.Writer) UserInterface {
	emoji := os.Getenv(meta.EnvPrefix+"_NO_EMOJI") == ""
	return consoleUI{console: ui.NewWithEmoji(out, emoji)}
}

type consoleUI struct {
	console *ui.Console
}

func (c consoleUI) Info(msg string) {
	c.console.Info(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}
