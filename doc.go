// Package mdll scans a lightweight Markdown-like markup into positioned
// tokens and validates them with a table-driven LL(1) parser.
//
// The scanner tries an ordered pattern table at a cursor and takes the first
// match, falling back to plain text, so it never fails. The parser drives an
// explicit symbol stack against the token sequence, reports diagnostics and
// recovers in panic mode instead of aborting. Renderers consume the raw token
// sequence independently of the parser verdict: see the html and latex
// subpackages, and TerminalRenderer for themed ANSI output.
//
// Example:
//
//	tokens := mdll.Tokenize("# Title\nSome text\n")
//	res := mdll.Parse(tokens)
//	for _, d := range res.Diagnostics {
//		fmt.Fprintln(os.Stderr, d)
//	}
//	err := mdll.NewTerminalRenderer(os.Stdout, 80, mdll.DefaultTheme()).Render(tokens)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Parser steps can be traced with WithLogger and any *slog.Logger.
package mdll

//go:generate go run ./cmd/gen-golden
