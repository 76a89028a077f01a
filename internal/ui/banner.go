// Where: internal/ui/banner.go
// What: Styled brand banner and step titles.
// Why: Give interactive runs a recognizable header without spreading styles around.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/stackforge-dev/stackforge/internal/meta"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	taglineStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)

	stepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
)

// Banner prints the brand header shown before the interactive prompt flow.
func Banner(out io.Writer, version string) {
	fmt.Fprintln(out, bannerStyle.Render(meta.AppName))
	fmt.Fprintln(out, taglineStyle.Render("scaffold a full-stack starter in one sitting ("+version+")"))
	fmt.Fprintln(out)
}

// StepTitle renders a numbered step heading used by the scaffold summary.
func StepTitle(index, total int, title string) string {
	return stepStyle.Render(fmt.Sprintf("[%d/%d] %s", index, total, title))
}
