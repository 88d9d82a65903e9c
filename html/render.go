// Package html renders an mdll token sequence to HTML.
//
// The renderer is a single linear walk over the tokens produced by
// mdll.Tokenize. It does not look at parser diagnostics.
//
// Example:
//
//	tokens := mdll.Tokenize("# Hello\n\n- one\n- two\n")
//	fmt.Println(html.String(tokens))
package html

import (
	"fmt"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
	"pkt.systems/mdll"
)

// RenderRequest contains inputs for HTML rendering.
type RenderRequest struct {
	Tokens []mdll.Token
	Writer io.Writer
}

// Render writes the HTML for req.Tokens followed by a newline.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("html render: writer is nil")
	}
	if _, err := io.WriteString(req.Writer, String(req.Tokens)+"\n"); err != nil {
		return fmt.Errorf("html render: write: %w", err)
	}
	return nil
}

// String renders tokens to HTML, one element per line.
func String(tokens []mdll.Token) string {
	var r renderer
	for _, tok := range tokens {
		if tok.Kind == mdll.TokenEOF {
			break
		}
		r.token(tok)
	}
	r.closeList()
	return strings.Join(r.out, "\n")
}

type renderer struct {
	out []string
	// listOpen is set between <ul> and </ul>; lineHasItem marks that the
	// current source line carried a list item.
	listOpen    bool
	lineHasItem bool
}

func (r *renderer) token(tok mdll.Token) {
	switch tok.Kind {
	case mdll.TokenNewline:
		if !r.lineHasItem {
			r.closeList()
		}
		r.lineHasItem = false
		return
	case mdll.TokenList:
		if !r.listOpen {
			r.emit("<ul>")
			r.listOpen = true
		}
		r.lineHasItem = true
		r.emit("<li>" + esc(tok.Value) + "</li>")
		return
	}
	if !r.lineHasItem {
		r.closeList()
	}
	switch tok.Kind {
	case mdll.TokenHeader:
		level := headerLevel(tok.Level)
		r.emit(fmt.Sprintf("<h%d>%s</h%d>", level, esc(tok.HeadingText()), level))
	case mdll.TokenBold:
		r.emit("<strong>" + esc(tok.Value) + "</strong>")
	case mdll.TokenItalic:
		r.emit("<em>" + esc(tok.Value) + "</em>")
	case mdll.TokenCodeInline:
		r.emit("<code>" + esc(tok.Value) + "</code>")
	case mdll.TokenCitation:
		r.emit("<blockquote>" + esc(tok.Value) + "</blockquote>")
	case mdll.TokenLink:
		text, url := tok.Pair()
		r.emit(`<a href="` + esc(url) + `">` + esc(text) + "</a>")
	case mdll.TokenImage:
		alt, url := tok.Pair()
		r.emit(`<img src="` + esc(url) + `" alt="` + esc(alt) + `">`)
	case mdll.TokenText:
		r.emit("<p>" + esc(tok.Value) + "</p>")
	}
}

func (r *renderer) closeList() {
	if r.listOpen {
		r.emit("</ul>")
		r.listOpen = false
	}
}

func (r *renderer) emit(s string) {
	r.out = append(r.out, s)
}

func headerLevel(level int) int {
	switch {
	case level < 1:
		return 1
	case level > 3:
		return 3
	default:
		return level
	}
}

func esc(s string) string {
	return xhtml.EscapeString(s)
}
