package mdll

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"testing"
)

func mustReadSample(tb testing.TB, path string, repeat int) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read %s: %v", path, err)
	}
	return bytes.Repeat(data, repeat)
}

func BenchmarkTokenize(b *testing.B) {
	data := string(mustReadSample(b, "testdata/basic.md", 100))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = Tokenize(data)
	}
}

func BenchmarkParse(b *testing.B) {
	for _, repeat := range []int{1, 10, 100} {
		tokens := Tokenize(string(mustReadSample(b, "testdata/basic.md", repeat)))
		b.Run(strconv.Itoa(len(tokens))+"tokens", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Parse(tokens)
			}
		})
	}
}

func BenchmarkRender(b *testing.B) {
	data := mustReadSample(b, "testdata/basic.md", 100)
	widths := []int{0, 60, 80}
	for _, width := range widths {
		width := width
		b.Run("w"+strconv.Itoa(width), func(b *testing.B) {
			b.ReportAllocs()
			reader := bytes.NewReader(data)
			for i := 0; i < b.N; i++ {
				reader.Reset(data)
				_ = Render(RenderRequest{
					Reader: reader,
					Writer: io.Discard,
					Width:  width,
					Theme:  DefaultTheme(),
				})
			}
		})
	}
}
