package layout

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength returns the cell width of a string, ignoring ANSI codes.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText truncates text to maxWidth runes with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	if utf8.RuneCountInString(text) <= maxWidth {
		return text, false
	}

	// Not enough room for any text + ellipsis
	if maxWidth <= ellipsisLen {
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	return string(runes[:maxWidth-ellipsisLen]) + cfg.Ellipsis, true
}

// TruncateWithPrefix truncates text while keeping prefix intact.
// Example: TruncateWithPrefix("Checkout Flow", 10, "* ", cfg) -> "* Check..."
func TruncateWithPrefix(text string, maxWidth int, prefix string, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	prefixLen := utf8.RuneCountInString(prefix)
	if prefixLen >= maxWidth {
		return TruncateText(prefix+text, maxWidth, cfg)
	}

	body, truncated := TruncateText(text, maxWidth-prefixLen, cfg)
	return prefix + body, truncated
}

// PadRight pads s with spaces to width visible cells.
func PadRight(s string, width int) string {
	for n := VisibleLength(s); n < width; n++ {
		s += " "
	}
	return s
}
