package mdll

import (
	"reflect"
	"testing"
)

func TestThemeByName(t *testing.T) {
	expected := []string{"boring", "default", "gruvbox", "nord", "solarized-dark"}
	if got := AvailableThemes(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("want themes %v, got %v", expected, got)
	}
	for _, name := range expected {
		th, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
		if th.Name() != name {
			t.Fatalf("theme %q reports name %q", name, th.Name())
		}
	}
	if th, ok := ThemeByName("  Nord "); !ok || th.Name() != "nord" {
		t.Fatalf("expected case and space insensitive lookup")
	}
	if th, ok := ThemeByName(""); !ok || th.Name() != "default" {
		t.Fatalf("expected empty name to select default")
	}
	if _, ok := ThemeByName("missing"); ok {
		t.Fatalf("expected unknown theme to be rejected")
	}
}

func TestBoringThemeHasNoStyles(t *testing.T) {
	th, _ := ThemeByName("boring")
	if th.Styles() != (Styles{}) {
		t.Fatalf("expected empty styles, got %+v", th.Styles())
	}
}

func TestForegroundColor(t *testing.T) {
	if got := fg("#ff5f87"); got != "\x1b[38;2;255;95;135m" {
		t.Fatalf("unexpected sequence %q", got)
	}
	if got := fg("zz"); got != "" {
		t.Fatalf("expected empty sequence for bad color, got %q", got)
	}
}
