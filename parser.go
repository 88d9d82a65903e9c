package mdll

import (
	"context"
	"fmt"
	"log/slog"
)

// Result is the outcome of a parse run.
type Result struct {
	// Accepted is true when the end-marker was matched against EOF with an
	// otherwise empty stack. Recovered errors still leave Accepted set.
	Accepted bool
	// Diagnostics lists every reported problem in order.
	Diagnostics []string
}

// OK reports whether the input was accepted without diagnostics.
func (r Result) OK() bool {
	return r.Accepted && len(r.Diagnostics) == 0
}

// syncKinds are the restart points of panic-mode recovery.
var syncKinds = map[TokenKind]bool{
	TokenEOF:      true,
	TokenNewline:  true,
	TokenHeader:   true,
	TokenText:     true,
	TokenList:     true,
	TokenCitation: true,
}

// stepsPerToken bounds the loop for custom tables whose delegations cycle
// without consuming input. The built-in table stays well below it.
const stepsPerToken = 32

type stepResult uint8

const (
	stepContinue stepResult = iota
	stepAccept
	stepHalt
)

// Parser is a table-driven predictive parser over a materialized token
// sequence. A Parser is single use and not safe for concurrent use.
type Parser struct {
	tokens  []Token
	grammar *Grammar
	logger  *slog.Logger

	stack []Symbol
	pos   int
	cur   Token
	diags []string
	steps int
	limit int
}

// Parse validates tokens with a fresh Parser.
func Parse(tokens []Token, opts ...ParserOption) Result {
	return NewParser(tokens, opts...).Parse()
}

// NewParser prepares a parser with the stack set to [end-marker, start].
func NewParser(tokens []Token, opts ...ParserOption) *Parser {
	cfg := parserConfig{grammar: defaultGrammar}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	p := &Parser{
		tokens:  tokens,
		grammar: cfg.grammar,
		logger:  cfg.logger,
		stack:   []Symbol{SymEnd, cfg.grammar.Start()},
		limit:   stepsPerToken * (len(tokens) + 1),
	}
	if len(tokens) > 0 {
		p.cur = tokens[0]
	} else {
		p.cur = Token{Kind: TokenEOF}
	}
	return p
}

// Current returns the lookahead token.
func (p *Parser) Current() Token {
	return p.cur
}

// Stack returns a copy of the parse stack, bottom first.
func (p *Parser) Stack() []Symbol {
	out := make([]Symbol, len(p.stack))
	copy(out, p.stack)
	return out
}

// Diagnostics returns the diagnostics reported so far.
func (p *Parser) Diagnostics() []string {
	out := make([]string, len(p.diags))
	copy(out, p.diags)
	return out
}

// Steps returns the number of loop iterations executed.
func (p *Parser) Steps() int {
	return p.steps
}

// Parse runs the driving loop until the input is accepted or the parser
// halts. It always returns; problems are reported as diagnostics.
func (p *Parser) Parse() Result {
	for len(p.stack) > 0 {
		switch p.step() {
		case stepAccept:
			p.logger.Debug("parse accepted", "steps", p.steps, "diagnostics", len(p.diags))
			return Result{Accepted: true, Diagnostics: p.Diagnostics()}
		case stepHalt:
			return Result{Diagnostics: p.Diagnostics()}
		}
	}
	p.report("parsing completed but stack is not empty")
	return Result{Diagnostics: p.Diagnostics()}
}

func (p *Parser) step() stepResult {
	p.steps++
	if p.steps > p.limit {
		p.report(fmt.Sprintf("parsing completed but stack is not empty: no progress after %d steps", p.limit))
		return stepHalt
	}
	top := p.stack[len(p.stack)-1]
	kind := p.cur.Kind

	if top == SymEnd && kind == TokenEOF {
		p.pop()
		if len(p.stack) == 0 {
			return stepAccept
		}
		p.report(fmt.Sprintf("stack not empty after accept: %v", p.stack))
		return stepHalt
	}

	body, ok := p.grammar.Lookup(top, kind)
	if !ok {
		p.report(fmt.Sprintf("line %d, column %d: unexpected %s with %s on top of stack",
			p.cur.Line, p.cur.Column, kind, top))
		if kind == TokenEOF {
			p.report("parsing completed but stack is not empty")
			return stepHalt
		}
		p.synchronize()
		return stepContinue
	}

	p.pop()
	for i := len(body) - 1; i >= 0; i-- {
		if body[i] != SymEnd {
			p.stack = append(p.stack, body[i])
		}
	}
	consume := p.consumes(top, body, kind)
	if p.logger.Enabled(context.Background(), slog.LevelDebug) {
		p.logger.Debug("parser step",
			"top", top.String(),
			"lookahead", kind.String(),
			"line", p.cur.Line,
			"column", p.cur.Column,
			"production", body.String(),
			"consume", consume,
			"depth", len(p.stack),
		)
	}
	if consume {
		p.advance()
	}
	return stepContinue
}

// consumes decides whether rewriting top with body uses up the lookahead.
// Empty rewrites only consume at EOF, delegations defer to the next step and
// a self-rewrite consumes so that repeated lookaheads are skipped.
func (p *Parser) consumes(top Symbol, body Production, kind TokenKind) bool {
	switch {
	case len(body) == 0:
		return kind == TokenEOF
	case len(body) == 1 && body[0] == top:
		return true
	case top.defersInput():
		return false
	default:
		return true
	}
}

func (p *Parser) pop() {
	p.stack = p.stack[:len(p.stack)-1]
}

// advance moves to the next token. Past the last token it yields a
// synthetic EOF one line below the current token.
func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
		p.cur = p.tokens[p.pos]
		return
	}
	p.cur = Token{Kind: TokenEOF, Line: p.cur.Line + 1}
}

// synchronize discards tokens up to a synchronizing kind and, unless that is
// EOF, one token past it. The stack is left untouched.
func (p *Parser) synchronize() {
	skipped := 0
	for !syncKinds[p.cur.Kind] {
		p.advance()
		skipped++
	}
	if p.cur.Kind != TokenEOF {
		p.advance()
		skipped++
	}
	p.logger.Debug("panic-mode recovery", "skipped", skipped, "resume", p.cur.Kind.String())
}

func (p *Parser) report(msg string) {
	p.diags = append(p.diags, msg)
	p.logger.Warn("parse diagnostic", "message", msg)
}
