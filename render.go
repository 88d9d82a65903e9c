package mdll

import (
	"fmt"
	"io"
	"strings"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render reads markup from Reader, scans it and writes themed ANSI text to
// Writer. A leading front matter block is dropped unless WithFrontMatter is
// set. Width zero disables wrapping.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	r := NewTerminalRenderer(req.Writer, req.Width, req.Theme, req.Options...)
	text := string(src)
	if !r.cfg.keepFrontMatter {
		text = StripFrontMatter(text)
	}
	return r.Render(Tokenize(text))
}

// TerminalRenderer writes a token sequence as ANSI styled text, one output
// block per source line.
type TerminalRenderer struct {
	w      io.Writer
	width  int
	styles Styles
	cfg    renderConfig

	marker string
	body   strings.Builder
}

// NewTerminalRenderer creates a renderer. A nil theme selects DefaultTheme.
func NewTerminalRenderer(w io.Writer, width int, theme Theme, opts ...RenderOption) *TerminalRenderer {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	return &TerminalRenderer{w: w, width: width, styles: theme.Styles(), cfg: cfg}
}

// Render writes tokens up to the first EOF.
func (r *TerminalRenderer) Render(tokens []Token) error {
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenEOF:
			return r.finish()
		case TokenNewline:
			if err := r.flushLine(); err != nil {
				return err
			}
		default:
			r.token(tok)
		}
	}
	return r.finish()
}

func (r *TerminalRenderer) token(tok Token) {
	st := r.styles
	switch tok.Kind {
	case TokenHeader:
		h := st.Heading[clampLevel(tok.Level)-1]
		r.marker = paint(h, strings.Repeat("#", clampLevel(tok.Level))+" ")
		r.body.WriteString(paint(h, tok.HeadingText()))
	case TokenBold:
		r.body.WriteString(paint(st.Strong, tok.Value))
	case TokenItalic:
		r.body.WriteString(paint(st.Emphasis, tok.Value))
	case TokenCodeInline:
		r.body.WriteString(paint(st.CodeInline, tok.Value))
	case TokenCitation:
		r.marker = paint(st.Quote, "> ")
		r.body.WriteString(paint(st.Quote, tok.Value))
	case TokenList:
		r.marker = paint(st.ListMarker, "- ")
		r.body.WriteString(paint(st.Text, tok.Value))
	case TokenLink:
		text, url := tok.Pair()
		if r.cfg.osc8 {
			r.body.WriteString(hyperlink(url, paint(st.LinkText, text)))
			return
		}
		r.body.WriteString(paint(st.LinkText, text))
		r.body.WriteString(" " + paint(st.LinkURL, "("+fitURL(url, r.width/2)+")"))
	case TokenImage:
		alt, url := tok.Pair()
		label := paint(st.Image, "[image: "+alt+"]")
		if r.cfg.osc8 {
			r.body.WriteString(hyperlink(url, label))
			return
		}
		r.body.WriteString(label + " " + paint(st.LinkURL, "("+fitURL(url, r.width/2)+")"))
	case TokenText:
		r.body.WriteString(paint(st.Text, tok.Value))
	}
}

func (r *TerminalRenderer) flushLine() error {
	out := wrapBlock(r.marker, r.body.String(), r.width, r.cfg.softWrap)
	r.marker = ""
	r.body.Reset()
	if _, err := io.WriteString(r.w, out+"\n"); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

func (r *TerminalRenderer) finish() error {
	if r.marker == "" && r.body.Len() == 0 {
		return nil
	}
	return r.flushLine()
}

func paint(st Style, s string) string {
	if st.Prefix == "" || s == "" {
		return s
	}
	return st.Prefix + s + ansiReset
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 3 {
		return 3
	}
	return level
}
