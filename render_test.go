package mdll

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRenderPlainOutput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "blocks",
			src:  "# Title\nSome *it* text\n- item\n> q\n[see](http://x)\n",
			want: "# Title\nSome *it* text\n- item\n> q\nsee (http://x)\n",
		},
		{name: "header level", src: "### Deep", want: "### Deep\n"},
		{name: "inline spans", src: "**b** and *i*", want: "b and *i*\n"},
		{name: "code and italic", src: "*it*`code`", want: "itcode\n"},
		{name: "image", src: "![logo](logo.png)", want: "[image: logo] (logo.png)\n"},
		{name: "blank lines", src: "a\n\nb\n", want: "a\n\nb\n"},
		{name: "empty", src: "", want: "\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := renderPlain(t, tc.src, 0); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRenderWrapsWithHangingIndent(t *testing.T) {
	t.Parallel()
	got := renderPlain(t, "- alpha beta gamma delta epsilon\n", 20)
	want := "- alpha beta gamma\n  delta epsilon\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRenderSoftWrapBreaksLongWords(t *testing.T) {
	t.Parallel()
	src := "abcdefghijklmnop\n"
	if got := renderPlain(t, src, 10); got != "abcdefghijklmnop\n" {
		t.Fatalf("expected long word kept intact, got %q", got)
	}
	if got := renderPlain(t, src, 10, WithSoftWrap(true)); got != "abcdefghij\nklmnop\n" {
		t.Fatalf("expected long word broken, got %q", got)
	}
}

func TestRenderShortensLongURLs(t *testing.T) {
	t.Parallel()
	got := renderPlain(t, "[d](https://example.com/a/very/long/path)\n", 20)
	want := "d (https://e…)\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRenderOSC8Links(t *testing.T) {
	t.Parallel()
	got := renderPlain(t, "[see](http://x)\n", 0, WithOSC8(true))
	want := osc8Start + "http://x" + osc8Close + "see" + osc8End + "\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	img := renderPlain(t, "![alt](a.png)\n", 0, WithOSC8(true))
	if !strings.HasPrefix(img, osc8Start+"a.png"+osc8Close) || stripANSI(img) != "[image: alt]\n" {
		t.Fatalf("unexpected image hyperlink %q", img)
	}
}

func TestRenderDefaultThemeStyles(t *testing.T) {
	t.Parallel()
	out := renderWithTheme(t, "# Title\n**b**\n", 0, DefaultTheme())
	styles := DefaultTheme().Styles()
	if !strings.Contains(out, styles.Heading[0].Prefix+"Title"+ansiReset) {
		t.Fatalf("expected styled heading, got %q", out)
	}
	if !strings.Contains(out, styles.Strong.Prefix+"b"+ansiReset) {
		t.Fatalf("expected styled bold, got %q", out)
	}
	if got := stripANSI(out); got != "# Title\nb\n" {
		t.Fatalf("unexpected plain text %q", got)
	}
}

func TestRenderNilThemeUsesDefault(t *testing.T) {
	t.Parallel()
	out := renderWithTheme(t, "# Title\n", 0, nil)
	if !strings.Contains(out, DefaultTheme().Styles().Heading[0].Prefix) {
		t.Fatalf("expected default theme styles, got %q", out)
	}
}

func TestRenderRejectsBadRequests(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	if err := Render(RenderRequest{Writer: &out}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := Render(RenderRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	err := Render(RenderRequest{Reader: bytes.NewReader([]byte{0xff, 0xfe}), Writer: &out})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on error, got %q", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTerminalRendererWriteError(t *testing.T) {
	t.Parallel()
	err := NewTerminalRenderer(failingWriter{}, 0, plainTheme()).Render(Tokenize("text"))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestTerminalRendererStopsAtEOF(t *testing.T) {
	t.Parallel()
	tokens := []Token{
		{Kind: TokenText, Value: "kept", Line: 1},
		{Kind: TokenEOF, Line: 2},
		{Kind: TokenText, Value: "dropped", Line: 3},
	}
	var out bytes.Buffer
	if err := NewTerminalRenderer(&out, 0, plainTheme()).Render(tokens); err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.String() != "kept\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
