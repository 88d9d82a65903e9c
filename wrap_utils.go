package mdll

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

// fitURL shortens url to limit columns, dropping the scheme first.
func fitURL(url string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}

// wrapBlock wraps body to width columns behind marker. Continuation lines
// are indented by the marker's printable width. A width of zero disables
// wrapping.
func wrapBlock(marker, body string, width int, hard bool) string {
	markerWidth := ansi.PrintableRuneWidth(marker)
	limit := width - markerWidth
	if width <= 0 || limit <= 0 {
		return marker + body
	}
	wrapped := wordwrap.String(body, limit)
	if hard {
		wrapped = wrap.String(wrapped, limit)
	}
	first, rest, found := strings.Cut(wrapped, "\n")
	if !found {
		return marker + first
	}
	return marker + first + "\n" + indent.String(rest, uint(markerWidth))
}
