package mdll

import (
	"strings"
	"testing"
)

func TestDefaultGrammarTable(t *testing.T) {
	g := DefaultGrammar()
	if g.Start() != SymDocument {
		t.Fatalf("expected Document start symbol, got %s", g.Start())
	}
	if g.Len() != 45 {
		t.Fatalf("expected 45 table entries, got %d", g.Len())
	}
	tests := []struct {
		top  Symbol
		kind TokenKind
		want string
	}{
		{SymDocument, TokenHeader, "Paragraph $"},
		{SymDocument, TokenEOF, "$"},
		{SymParagraph, TokenNewline, "Newline"},
		{SymParagraph, TokenEOF, "ε"},
		{SymHeader, TokenText, "Text Newline OptionalParagraph"},
		{SymHeader, TokenCitation, "Citation OptionalParagraph"},
		{SymText, TokenText, "Text Newline"},
		{SymNewline, TokenNewline, "Newline"},
		{SymCitation, TokenCitation, "Citation Newline"},
	}
	for _, tc := range tests {
		body, ok := g.Lookup(tc.top, tc.kind)
		if !ok {
			t.Fatalf("missing entry (%s, %s)", tc.top, tc.kind)
		}
		if body.String() != tc.want {
			t.Fatalf("(%s, %s): want %q, got %q", tc.top, tc.kind, tc.want, body.String())
		}
	}
	undefined := []struct {
		top  Symbol
		kind TokenKind
	}{
		{SymDocument, TokenBold},
		{SymHeader, TokenNewline},
		{SymText, TokenCitation},
		{SymCitation, TokenList},
		{SymEnd, TokenText},
	}
	for _, tc := range undefined {
		if _, ok := g.Lookup(tc.top, tc.kind); ok {
			t.Fatalf("unexpected entry (%s, %s)", tc.top, tc.kind)
		}
	}
}

func TestNewGrammarRejectsDuplicates(t *testing.T) {
	_, err := NewGrammar(SymDocument, []Rule{
		{Top: SymDocument, Lookahead: TokenText, Body: Production{SymText}},
		{Top: SymDocument, Lookahead: TokenText, Body: Production{SymList}},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate rule for (Document, TEXT)") {
		t.Fatalf("expected duplicate rule error, got %v", err)
	}
}

func TestNewGrammarCopiesBodies(t *testing.T) {
	body := Production{SymText}
	g, err := NewGrammar(SymDocument, []Rule{{Top: SymDocument, Lookahead: TokenText, Body: body}})
	if err != nil {
		t.Fatalf("NewGrammar: %v", err)
	}
	body[0] = SymList
	got, _ := g.Lookup(SymDocument, TokenText)
	if got[0] != SymText {
		t.Fatalf("grammar must not alias caller slices")
	}
}

func TestSymbolString(t *testing.T) {
	if SymEnd.String() != "$" || SymOptionalParagraph.String() != "OptionalParagraph" {
		t.Fatalf("unexpected symbol names")
	}
	if got := Symbol(42).String(); got != "Symbol(42)" {
		t.Fatalf("unexpected unknown symbol name %q", got)
	}
}
