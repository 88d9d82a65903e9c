package mdll

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the terminal renderer.
type Styles struct {
	Text       Style
	Heading    [3]Style
	Emphasis   Style
	Strong     Style
	CodeInline Style
	Quote      Style
	ListMarker Style
	LinkText   Style
	LinkURL    Style
	Image      Style
}

// Theme provides named styles for terminal rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
)

func fg(hex string) string {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", v>>16&0xff, v>>8&0xff, v&0xff)
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

type palette struct {
	text, h1, h2, h3, emphasis, strong, code, quote, marker, link, url string
}

func stylesFromPalette(p palette) Styles {
	return Styles{
		Text:       style(fg(p.text)),
		Heading:    [3]Style{style(ansiBold, fg(p.h1)), style(ansiBold, fg(p.h2)), style(fg(p.h3))},
		Emphasis:   style(ansiItalic, fg(p.emphasis)),
		Strong:     style(ansiBold, fg(p.strong)),
		CodeInline: style(fg(p.code)),
		Quote:      style(ansiItalic, fg(p.quote)),
		ListMarker: style(fg(p.marker)),
		LinkText:   style(ansiUnderline, fg(p.link)),
		LinkURL:    style(fg(p.url)),
		Image:      style(ansiItalic, fg(p.url)),
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette{
		text: "#d0d0d0", h1: "#ff5f87", h2: "#ffaf5f", h3: "#ffd75f",
		emphasis: "#87d7ff", strong: "#ffffff", code: "#afd787",
		quote: "#8a8a8a", marker: "#ff5f87", link: "#5fafff", url: "#6c6c6c",
	})},
	"gruvbox": theme{name: "gruvbox", styles: stylesFromPalette(palette{
		text: "#ebdbb2", h1: "#fb4934", h2: "#fe8019", h3: "#fabd2f",
		emphasis: "#83a598", strong: "#fbf1c7", code: "#b8bb26",
		quote: "#928374", marker: "#fe8019", link: "#8ec07c", url: "#7c6f64",
	})},
	"nord": theme{name: "nord", styles: stylesFromPalette(palette{
		text: "#d8dee9", h1: "#88c0d0", h2: "#81a1c1", h3: "#5e81ac",
		emphasis: "#b48ead", strong: "#eceff4", code: "#a3be8c",
		quote: "#616e88", marker: "#88c0d0", link: "#8fbcbb", url: "#4c566a",
	})},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette{
		text: "#839496", h1: "#cb4b16", h2: "#b58900", h3: "#859900",
		emphasis: "#6c71c4", strong: "#eee8d5", code: "#2aa198",
		quote: "#586e75", marker: "#d33682", link: "#268bd2", url: "#586e75",
	})},
	"boring": theme{name: "boring"},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	t, ok := builtinThemes[normalized]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
