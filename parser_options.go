package mdll

import "log/slog"

// ParserOption configures a Parser.
type ParserOption func(*parserConfig)

type parserConfig struct {
	grammar *Grammar
	logger  *slog.Logger
}

// WithGrammar replaces the built-in grammar table.
func WithGrammar(g *Grammar) ParserOption {
	return func(cfg *parserConfig) {
		if g != nil {
			cfg.grammar = g
		}
	}
}

// WithLogger traces every parser step at debug level. Diagnostics are logged
// at warn level.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(cfg *parserConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
