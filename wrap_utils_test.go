package mdll

import "testing"

func TestFitURL(t *testing.T) {
	tests := []struct {
		url   string
		limit int
		want  string
	}{
		{url: "https://example.com/docs", limit: 0, want: "https://example.com/docs"},
		{url: "https://example.com/docs", limit: 40, want: "https://example.com/docs"},
		{url: "https://example.com/docs", limit: 16, want: "example.com/docs"},
		{url: "https://example.com/docs", limit: 8, want: "https:/…"},
		{url: "logo.png", limit: 1, want: "…"},
	}
	for _, tc := range tests {
		if got := fitURL(tc.url, tc.limit); got != tc.want {
			t.Fatalf("fitURL(%q, %d): want %q, got %q", tc.url, tc.limit, tc.want, got)
		}
	}
}

func TestWrapBlock(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		body   string
		width  int
		want   string
	}{
		{name: "no width", marker: "> ", body: "one two three", width: 0, want: "> one two three"},
		{name: "fits", marker: "- ", body: "one two", width: 20, want: "- one two"},
		{name: "hanging indent", marker: "> ", body: "one two three", width: 9, want: "> one two\n  three"},
		{name: "marker wider than width", marker: "### ", body: "x y", width: 3, want: "### x y"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := wrapBlock(tc.marker, tc.body, tc.width, false); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}
