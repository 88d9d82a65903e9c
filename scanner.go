package mdll

import "strings"

// Scanner turns text into a positioned token sequence using an ordered
// pattern table. A Scanner is immutable and safe for concurrent use.
type Scanner struct {
	patterns []Pattern
}

// NewScanner returns a Scanner using patterns in priority order. A nil or
// empty table selects DefaultPatterns.
func NewScanner(patterns []Pattern) *Scanner {
	if len(patterns) == 0 {
		return &Scanner{patterns: defaultPatterns}
	}
	ps := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		if p.Expr != nil {
			ps = append(ps, p)
		}
	}
	return &Scanner{patterns: ps}
}

var defaultScanner = NewScanner(nil)

// Tokenize scans text with the default pattern table.
func Tokenize(text string) []Token {
	return defaultScanner.Tokenize(text)
}

// Tokenize scans text line by line. It never fails: every line ends with a
// NEWLINE token at the line's length and the sequence ends with an EOF token
// one line past the last line.
func (s *Scanner) Tokenize(text string) []Token {
	lines := splitLines(text)
	tokens := make([]Token, 0, len(lines)*2+1)
	for i, line := range lines {
		lineNo := i + 1
		tokens = s.scanLine(tokens, line, lineNo)
		tokens = append(tokens, Token{Kind: TokenNewline, Line: lineNo, Column: len(line)})
	}
	tokens = append(tokens, Token{Kind: TokenEOF, Line: len(lines) + 1})
	return tokens
}

func (s *Scanner) scanLine(dst []Token, line string, lineNo int) []Token {
	cursor := 0
	for cursor < len(line) {
		tok, n, ok := s.match(line[cursor:], lineNo, cursor)
		if !ok {
			// Only reachable with a custom table lacking a fallback.
			dst = append(dst, Token{Kind: TokenText, Value: line[cursor:], Line: lineNo, Column: cursor})
			break
		}
		dst = append(dst, tok)
		cursor += n
	}
	return dst
}

// match tries every pattern at the start of rest and returns the first hit
// with a non-empty span.
func (s *Scanner) match(rest string, lineNo, col int) (Token, int, bool) {
	for _, p := range s.patterns {
		loc := p.Expr.FindStringSubmatchIndex(rest)
		if len(loc) == 0 || loc[0] != 0 || loc[1] == 0 {
			continue
		}
		return p.token(rest, loc, lineNo, col), loc[1], true
	}
	return Token{}, 0, false
}

// splitLines splits on '\n', drops one trailing '\r' per line and does not
// produce an extra empty line for a final terminator. Empty input is one
// empty line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
