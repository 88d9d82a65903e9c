package mdll

import (
	"fmt"
	"strings"
)

// Symbol is a grammar symbol on the parse stack.
type Symbol uint8

const (
	// SymEnd is the end-marker at the bottom of the parse stack. It is
	// matched against the EOF token and never pushed from a production.
	SymEnd Symbol = iota
	SymDocument
	SymParagraph
	SymOptionalParagraph
	SymHeader
	SymText
	SymList
	SymCitation
	SymNewline
)

var symbolNames = [...]string{
	SymEnd:               "$",
	SymDocument:          "Document",
	SymParagraph:         "Paragraph",
	SymOptionalParagraph: "OptionalParagraph",
	SymHeader:            "Header",
	SymText:              "Text",
	SymList:              "List",
	SymCitation:          "Citation",
	SymNewline:           "Newline",
}

func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// defersInput reports whether a non-empty rewrite of s leaves the lookahead
// for a nested step to consume.
func (s Symbol) defersInput() bool {
	return s == SymOptionalParagraph || s == SymNewline
}

// Production is the ordered right-hand side of a table entry. The first
// symbol becomes the new stack top.
type Production []Symbol

func (p Production) String() string {
	if len(p) == 0 {
		return "ε"
	}
	names := make([]string, len(p))
	for i, sym := range p {
		names[i] = sym.String()
	}
	return strings.Join(names, " ")
}

// Rule is one entry of a grammar table.
type Rule struct {
	Top       Symbol
	Lookahead TokenKind
	Body      Production
}

type ruleKey struct {
	top  Symbol
	kind TokenKind
}

// Grammar maps (stack top, lookahead kind) to a production. A Grammar is
// immutable after construction and safe for concurrent use.
type Grammar struct {
	start Symbol
	rules map[ruleKey]Production
}

// NewGrammar builds a table from rules. Duplicate keys are an error.
func NewGrammar(start Symbol, rules []Rule) (*Grammar, error) {
	g := &Grammar{start: start, rules: make(map[ruleKey]Production, len(rules))}
	for _, r := range rules {
		key := ruleKey{r.Top, r.Lookahead}
		if _, dup := g.rules[key]; dup {
			return nil, fmt.Errorf("grammar: duplicate rule for (%s, %s)", r.Top, r.Lookahead)
		}
		body := make(Production, len(r.Body))
		copy(body, r.Body)
		g.rules[key] = body
	}
	return g, nil
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Lookup returns the production for (top, kind). The returned slice must
// not be modified.
func (g *Grammar) Lookup(top Symbol, kind TokenKind) (Production, bool) {
	p, ok := g.rules[ruleKey{top, kind}]
	return p, ok
}

// Len returns the number of table entries.
func (g *Grammar) Len() int {
	return len(g.rules)
}

func rule(top Symbol, kind TokenKind, body ...Symbol) Rule {
	return Rule{Top: top, Lookahead: kind, Body: body}
}

var defaultGrammar = mustGrammar(SymDocument, []Rule{
	rule(SymDocument, TokenHeader, SymParagraph, SymEnd),
	rule(SymDocument, TokenText, SymParagraph, SymEnd),
	rule(SymDocument, TokenList, SymParagraph, SymEnd),
	rule(SymDocument, TokenCitation, SymParagraph, SymEnd),
	rule(SymDocument, TokenNewline, SymParagraph, SymEnd),
	rule(SymDocument, TokenEOF, SymEnd),

	rule(SymParagraph, TokenHeader, SymHeader, SymOptionalParagraph),
	rule(SymParagraph, TokenText, SymText, SymOptionalParagraph),
	rule(SymParagraph, TokenList, SymList, SymOptionalParagraph),
	rule(SymParagraph, TokenCitation, SymCitation, SymOptionalParagraph),
	rule(SymParagraph, TokenNewline, SymNewline),
	rule(SymParagraph, TokenEOF),

	rule(SymOptionalParagraph, TokenHeader, SymParagraph),
	rule(SymOptionalParagraph, TokenText, SymParagraph),
	rule(SymOptionalParagraph, TokenList, SymParagraph),
	rule(SymOptionalParagraph, TokenCitation, SymParagraph),
	rule(SymOptionalParagraph, TokenNewline),
	rule(SymOptionalParagraph, TokenEOF),

	rule(SymHeader, TokenHeader, SymText, SymNewline, SymOptionalParagraph),
	rule(SymHeader, TokenText, SymText, SymNewline, SymOptionalParagraph),
	rule(SymHeader, TokenList, SymList, SymNewline, SymOptionalParagraph),
	rule(SymHeader, TokenCitation, SymCitation, SymOptionalParagraph),
	rule(SymHeader, TokenEOF),

	rule(SymText, TokenHeader, SymParagraph),
	rule(SymText, TokenText, SymText, SymNewline),
	rule(SymText, TokenList, SymList, SymNewline),
	rule(SymText, TokenNewline),
	rule(SymText, TokenEOF),

	rule(SymList, TokenHeader, SymParagraph),
	rule(SymList, TokenText, SymText, SymNewline),
	rule(SymList, TokenList, SymList, SymNewline),
	rule(SymList, TokenCitation, SymCitation, SymOptionalParagraph),
	rule(SymList, TokenNewline),
	rule(SymList, TokenEOF),

	rule(SymCitation, TokenHeader, SymParagraph),
	rule(SymCitation, TokenText, SymText, SymNewline),
	rule(SymCitation, TokenCitation, SymCitation, SymNewline),
	rule(SymCitation, TokenNewline),
	rule(SymCitation, TokenEOF),

	rule(SymNewline, TokenHeader, SymParagraph),
	rule(SymNewline, TokenText, SymText),
	rule(SymNewline, TokenList, SymList),
	rule(SymNewline, TokenCitation, SymCitation),
	rule(SymNewline, TokenNewline, SymNewline),
	rule(SymNewline, TokenEOF),
})

func mustGrammar(start Symbol, rules []Rule) *Grammar {
	g, err := NewGrammar(start, rules)
	if err != nil {
		panic(err)
	}
	return g
}

// DefaultGrammar returns the built-in paragraph grammar.
func DefaultGrammar() *Grammar {
	return defaultGrammar
}
