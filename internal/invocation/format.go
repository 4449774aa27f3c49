package invocation

import (
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// FormatCommand renders binary and args as a shell-escaped command line.
func FormatCommand(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, binary)
	parts = append(parts, args...)
	return shellescape.QuoteCommand(parts)
}

// FormatOverlay renders the overlay as sorted, shell-escaped KEY=VALUE
// assignments suitable for prefixing a command line.
func FormatOverlay(overlay Env) string {
	entries := make([]string, 0, len(overlay))
	for _, key := range overlay.Keys() {
		entries = append(entries, key+"="+shellescape.Quote(overlay[key]))
	}
	return strings.Join(entries, " ")
}
