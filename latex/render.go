// Package latex renders an mdll token sequence to LaTeX body text.
//
// Text is emitted verbatim; LaTeX special characters in the source are not
// escaped.
package latex

import (
	"fmt"
	"io"
	"strings"

	"pkt.systems/mdll"
)

// RenderRequest contains inputs for LaTeX rendering.
type RenderRequest struct {
	Tokens []mdll.Token
	Writer io.Writer
}

// Render writes the LaTeX for req.Tokens followed by a newline.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("latex render: writer is nil")
	}
	if _, err := io.WriteString(req.Writer, String(req.Tokens)+"\n"); err != nil {
		return fmt.Errorf("latex render: write: %w", err)
	}
	return nil
}

var sectionCommands = [...]string{"section", "subsection", "subsubsection"}

// String renders tokens to LaTeX, one command per line.
func String(tokens []mdll.Token) string {
	var (
		out         []string
		inItemize   bool
		lineHasItem bool
	)
	endItemize := func() {
		if inItemize {
			out = append(out, `\end{itemize}`)
			inItemize = false
		}
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case mdll.TokenEOF:
			endItemize()
			return strings.Join(out, "\n")
		case mdll.TokenNewline:
			if !lineHasItem {
				endItemize()
			}
			lineHasItem = false
			continue
		case mdll.TokenList:
			if !inItemize {
				out = append(out, `\begin{itemize}`)
				inItemize = true
			}
			lineHasItem = true
			out = append(out, `\item `+tok.Value)
			continue
		}
		if !lineHasItem {
			endItemize()
		}
		switch tok.Kind {
		case mdll.TokenHeader:
			out = append(out, `\`+section(tok.Level)+`{`+tok.HeadingText()+`}`)
		case mdll.TokenBold:
			out = append(out, `\textbf{`+tok.Value+`}`)
		case mdll.TokenItalic:
			out = append(out, `\textit{`+tok.Value+`}`)
		case mdll.TokenCodeInline:
			out = append(out, `\texttt{`+tok.Value+`}`)
		case mdll.TokenCitation:
			out = append(out, `\begin{quote}`+tok.Value+`\end{quote}`)
		case mdll.TokenLink:
			text, url := tok.Pair()
			out = append(out, `\href{`+url+`}{`+text+`}`)
		case mdll.TokenImage:
			alt, url := tok.Pair()
			out = append(out, `\begin{figure}\includegraphics[width=\linewidth]{`+url+`}\caption{`+alt+`}\end{figure}`)
		case mdll.TokenText:
			out = append(out, tok.Value)
		}
	}
	endItemize()
	return strings.Join(out, "\n")
}

func section(level int) string {
	switch {
	case level <= 1:
		return sectionCommands[0]
	case level == 2:
		return sectionCommands[1]
	default:
		return sectionCommands[2]
	}
}
