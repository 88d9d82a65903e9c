package mdll

import "regexp"

// Pattern is one rule of the scanner's ordered pattern table.
//
// Expr is matched against the remainder of the line starting at the scan
// cursor and only counts when the match starts at the cursor. Capture groups
// feed the token payload: HEADER expects (markers, text), LINK and IMAGE
// expect (text, url), every other kind uses the first group, or the whole
// match when the expression has no groups.
type Pattern struct {
	Kind TokenKind
	Expr *regexp.Regexp
}

var defaultPatterns = []Pattern{
	{Kind: TokenHeader, Expr: regexp.MustCompile(`^(#{1,3}) (.*)`)},
	{Kind: TokenBold, Expr: regexp.MustCompile(`^\*\*(.*?)\*\*`)},
	{Kind: TokenItalic, Expr: regexp.MustCompile(`^\*(.*?)\*`)},
	{Kind: TokenCodeInline, Expr: regexp.MustCompile("^`(.*?)`")},
	{Kind: TokenCitation, Expr: regexp.MustCompile(`^> (.*)`)},
	{Kind: TokenList, Expr: regexp.MustCompile(`^- (.*)`)},
	{Kind: TokenLink, Expr: regexp.MustCompile(`^\[([^\]]+)\]\(([^\)]+)\)`)},
	{Kind: TokenImage, Expr: regexp.MustCompile(`^!\[([^\]]*)\]\(([^\)]+)\)`)},
	{Kind: TokenText, Expr: regexp.MustCompile(`^(.+)$`)},
}

// DefaultPatterns returns a copy of the built-in pattern table in priority
// order. The compiled expressions are shared and safe for concurrent use.
func DefaultPatterns() []Pattern {
	out := make([]Pattern, len(defaultPatterns))
	copy(out, defaultPatterns)
	return out
}

// token builds a token from a submatch index slice of p.Expr over src.
func (p Pattern) token(src string, loc []int, line, col int) Token {
	tok := Token{Kind: p.Kind, Line: line, Column: col}
	group := func(i int) string {
		if 2*i+1 >= len(loc) || loc[2*i] < 0 {
			return ""
		}
		return src[loc[2*i]:loc[2*i+1]]
	}
	groups := p.Expr.NumSubexp()
	switch {
	case groups == 0:
		tok.Value = group(0)
	case p.Kind == TokenHeader && groups >= 2:
		tok.Level = len(group(1))
		tok.Value = group(2)
	case p.Kind == TokenHeader:
		tok.Level = 1
		tok.Value = group(1)
	case tok.HasPair():
		tok.Value = group(1)
		tok.Target = group(2)
	default:
		tok.Value = group(1)
	}
	return tok
}
