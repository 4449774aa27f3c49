package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"evalrunner/internal/logging"
)

var (
	colorOK   = lipgloss.Color("2")
	colorFail = lipgloss.Color("1")
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = logging.IsTerminal

// stylize applies color styling when w is a terminal and NO_COLOR is unset.
func stylize(w io.Writer, text string, color lipgloss.Color) string {
	if os.Getenv("NO_COLOR") != "" || !isTerminal(w) {
		return text
	}
	return lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(color).Render(text)
}
