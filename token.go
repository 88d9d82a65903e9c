package mdll

import (
	"fmt"
	"strings"
)

// TokenKind classifies a scanned token.
type TokenKind uint8

const (
	// TokenNewline terminates every input line.
	TokenNewline TokenKind = iota + 1
	// TokenHeader is a line starting with one to three '#' and a space.
	TokenHeader
	// TokenBold is a **strong** span.
	TokenBold
	// TokenItalic is an *emphasis* span.
	TokenItalic
	// TokenCodeInline is a `code` span.
	TokenCodeInline
	// TokenCitation is a line starting with "> ".
	TokenCitation
	// TokenList is a line starting with "- ".
	TokenList
	// TokenComment is reserved and never produced by the default patterns.
	TokenComment
	// TokenLink is a [text](url) span.
	TokenLink
	// TokenImage is a ![alt](url) span.
	TokenImage
	// TokenText is the plain text fallback.
	TokenText
	// TokenCodeBlock is reserved and never produced by the default patterns.
	TokenCodeBlock
	// TokenError is reserved and never produced by the default patterns.
	TokenError
	// TokenEOF closes every token sequence.
	TokenEOF
)

var tokenKindNames = [...]string{
	TokenNewline:    "NEWLINE",
	TokenHeader:     "HEADER",
	TokenBold:       "BOLD",
	TokenItalic:     "ITALIC",
	TokenCodeInline: "CODE_INLINE",
	TokenCitation:   "CITATION",
	TokenList:       "LIST",
	TokenComment:    "COMMENT",
	TokenLink:       "LINK",
	TokenImage:      "IMAGE",
	TokenText:       "TEXT",
	TokenCodeBlock:  "CODE_BLOCK",
	TokenError:      "ERROR",
	TokenEOF:        "EOF",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Token is a classified lexical unit with its source position.
// Lines are 1-based, columns are 0-based byte offsets into the line.
type Token struct {
	Kind TokenKind
	// Value holds the captured text. For links it is the link text, for
	// images the alt text.
	Value string
	// Target holds the URL of a link or image.
	Target string
	// Level is the header level (1-3) of a HEADER token.
	Level  int
	Line   int
	Column int
}

// Pair returns the (text, url) payload of a LINK or IMAGE token.
func (t Token) Pair() (string, string) {
	return t.Value, t.Target
}

// HasPair reports whether the token payload is a (text, url) pair.
func (t Token) HasPair() bool {
	return t.Kind == TokenLink || t.Kind == TokenImage
}

// HeadingText returns the header text without stray markers or padding.
func (t Token) HeadingText() string {
	return strings.TrimSpace(strings.Trim(t.Value, "# "))
}

// String formats the token the way the token dump prints it.
func (t Token) String() string {
	if t.HasPair() {
		return fmt.Sprintf("%d:%d %s (%q, %q)", t.Line, t.Column, t.Kind, t.Value, t.Target)
	}
	if t.Kind == TokenHeader {
		return fmt.Sprintf("%d:%d %s%d %q", t.Line, t.Column, t.Kind, t.Level, t.Value)
	}
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Column, t.Kind, t.Value)
}
