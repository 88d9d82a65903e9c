package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdll"
	"pkt.systems/mdll/html"
	"pkt.systems/mdll/latex"
)

type renderer struct {
	ext    string
	render func([]mdll.Token) string
}

var renderers = []renderer{
	{ext: ".html.golden", render: html.String},
	{ext: ".tex.golden", render: latex.String},
}

func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markup files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		tokens := mdll.Tokenize(string(src))
		base := strings.TrimSuffix(path, ".md")
		for _, r := range renderers {
			goldenPath := base + r.ext
			if err := os.WriteFile(goldenPath, []byte(r.render(tokens)+"\n"), 0o644); err != nil {
				fatalf("write %s: %v", goldenPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
