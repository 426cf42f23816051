// Package styles contains Lip Gloss style definitions.
package styles

import "fmt"

// FormatMilestoneLine formats a single milestone report line:
// "<label>: <words> <badges>". Badges carry no styling of their own,
// the emoji are the decoration.
func FormatMilestoneLine(label, words, badges string) string {
	return fmt.Sprintf("%s: %s %s",
		LabelStyle.Render(label),
		CountStyle.Render(words),
		badges,
	)
}

// FormatSkippedLine formats the stderr notice for a milestone that was
// skipped because its date is in the future.
func FormatSkippedLine(label string, err error) string {
	return WarningStyle.Render(fmt.Sprintf("%s: skipped (%v)", label, err))
}
