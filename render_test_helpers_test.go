package mdll

import (
	"bytes"
	"regexp"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	s = osc8Regexp.ReplaceAllString(s, "")
	return s
}

func plainTheme() Theme {
	return NewTheme("plain", Styles{})
}

// renderPlain renders src without styles.
func renderPlain(t *testing.T, src string, width int, opts ...RenderOption) string {
	t.Helper()
	return renderWithTheme(t, src, width, plainTheme(), opts...)
}

func renderWithTheme(t *testing.T, src string, width int, theme Theme, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  bytes.NewReader([]byte(src)),
		Writer:  &out,
		Width:   width,
		Theme:   theme,
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}
