package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdll"
	"pkt.systems/mdll/html"
	"pkt.systems/mdll/latex"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultFormat    = "html"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/mdll")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	format          string
	outPath         string
	themeName       string
	width           int
	osc8            string
	boring          bool
	softWrap        bool
	listThemes      bool
	strict          bool
	quiet           bool
	keepFrontMatter bool
	verbose         bool
	traceFile       string
	showVersion     bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("mdll", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.format, "format", "f", defaultFormat, "Output format: html|latex|ansi|tokens|none")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name for ansi output")
	flags.IntVarP(&opts.width, "width", "w", 0, "Wrap width for ansi output and diagnostics (0 uses terminal width if available)")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "OSC8 hyperlinks in ansi output: auto|on|off")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate ansi output without styles")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the wrap width")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&opts.strict, "strict", false, "Refuse to render when the parser reports diagnostics")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print diagnostics")
	flags.BoolVar(&opts.keepFrontMatter, "keep-front-matter", false, "Do not strip a leading front matter block")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Trace parser steps to stderr")
	flags.StringVar(&opts.traceFile, "trace-file", "", "Write a JSON parser trace to this file")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdll [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nInputs are files, file:// or http(s):// URLs. If no input is provided, markup is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		for _, name := range mdll.AvailableThemes() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}
	format, err := parseFormat(opts.format)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --format %q: %v\n", opts.format, err)
		return 2
	}
	theme, ok := mdll.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n", opts.themeName)
		return 2
	}
	if opts.boring {
		theme = boringTheme()
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", opts.osc8, err)
		return 2
	}

	logger, closeTrace, err := newLogger(stderr, opts.verbose, opts.traceFile)
	if err != nil {
		fmt.Fprintf(stderr, "open trace file: %v\n", err)
		return 1
	}
	if closeTrace != nil {
		defer func() { _ = closeTrace.Close() }()
	}

	text, err := readInputs(context.Background(), flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}
	if !opts.keepFrontMatter {
		text = mdll.StripFrontMatter(text)
	}

	tokens := mdll.Tokenize(text)
	var parserOpts []mdll.ParserOption
	if logger != nil {
		parserOpts = append(parserOpts, mdll.WithLogger(logger))
	}
	res := mdll.Parse(tokens, parserOpts...)
	if !opts.quiet && len(res.Diagnostics) > 0 {
		printDiagnostics(stderr, res, resolveWidth(opts.width, stderr))
	}
	if opts.strict && len(res.Diagnostics) > 0 {
		fmt.Fprintf(stderr, "refusing to render: %d diagnostic(s) with --strict\n", len(res.Diagnostics))
		return 1
	}

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	switch format {
	case "html":
		err = html.Render(html.RenderRequest{Tokens: tokens, Writer: writer})
	case "latex":
		err = latex.Render(latex.RenderRequest{Tokens: tokens, Writer: writer})
	case "ansi":
		err = mdll.NewTerminalRenderer(writer, resolveWidth(opts.width, writer), theme,
			mdll.WithOSC8(osc8), mdll.WithSoftWrap(opts.softWrap)).Render(tokens)
	case "tokens":
		err = writeTokens(writer, tokens)
	}
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}
	return 0
}

func parseFormat(value string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(value)); f {
	case "html", "latex", "ansi", "tokens", "none":
		return f, nil
	case "tex":
		return "latex", nil
	default:
		return "", fmt.Errorf("expected html|latex|ansi|tokens|none")
	}
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return mdll.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func boringTheme() mdll.Theme {
	return mdll.NewTheme("boring", mdll.Styles{})
}

// newLogger fans parser tracing out to stderr (verbose) and a JSON trace
// file. It returns a nil logger when neither is requested.
func newLogger(stderr io.Writer, verbose bool, tracePath string) (*slog.Logger, io.Closer, error) {
	var (
		handlers []slog.Handler
		closer   io.Closer
	)
	if verbose {
		handlers = append(handlers, slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if tracePath != "" {
		f, err := os.Create(normalizePath(tracePath))
		if err != nil {
			return nil, nil, err
		}
		closer = f
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if len(handlers) == 0 {
		return nil, nil, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

func printDiagnostics(w io.Writer, res mdll.Result, width int) {
	verdict := "accepted"
	if !res.Accepted {
		verdict = "rejected"
	}
	fmt.Fprintf(w, "%d diagnostic(s), input %s:\n", len(res.Diagnostics), verdict)
	for _, d := range res.Diagnostics {
		fmt.Fprintln(w, formatDiagnostic(d, width))
	}
}

// formatDiagnostic renders one bullet, wrapped to width with continuation
// lines aligned under the text.
func formatDiagnostic(msg string, width int) string {
	const bullet = "  - "
	limit := width - len(bullet)
	if limit <= 0 {
		return bullet + msg
	}
	first, rest, found := strings.Cut(wordwrap.String(msg, limit), "\n")
	if !found {
		return bullet + first
	}
	return bullet + first + "\n" + indent.String(rest, uint(len(bullet)))
}

func writeTokens(w io.Writer, tokens []mdll.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok.String()); err != nil {
			return fmt.Errorf("write tokens: %w", err)
		}
	}
	return nil
}

func readInputs(ctx context.Context, args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		if err := mdll.ValidateInput(data); err != nil {
			return "", fmt.Errorf("stdin: %w", err)
		}
		return string(data), nil
	}
	var b strings.Builder
	for _, raw := range args {
		text, err := readInput(ctx, raw)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

func readInput(ctx context.Context, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty input argument")
	}
	path := raw
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return mdll.Fetch(ctx, mdll.FetchRequest{URL: raw})
		case "file":
			path = u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
		}
	}
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		return "", err
	}
	if err := mdll.ValidateInput(data); err != nil {
		return "", fmt.Errorf("%s: %w", raw, err)
	}
	return string(data), nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cols, err := strconv.Atoi(value); err == nil && cols > 0 {
			return cols
		}
	}
	return fallback
}
