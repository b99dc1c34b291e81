package main

import (
	"strings"
	"testing"
)

func TestClipLine(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		col   int
		width int
		want  string
	}{
		{"fits", "hello", 0, 10, "hello"},
		{"clipped right", "hello world", 0, 5, "hello"},
		{"offset", "hello world", 6, 5, "world"},
		{"offset past end", "short", 10, 5, ""},
		{"zero width", "hello", 0, 0, ""},
		{"runes not bytes", "héllo wörld", 6, 5, "wörld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := clipLine(tc.line, tc.col, tc.width); got != tc.want {
				t.Fatalf("clipLine(%q, %d, %d) = %q, want %q", tc.line, tc.col, tc.width, got, tc.want)
			}
		})
	}
}

func TestViewShowsPendingKeystring(t *testing.T) {
	path := writeFile(t, "a.txt", manyLines(30)...)
	m := newTestModel(t, path)

	m = press(t, m, "3", "g")
	if !strings.Contains(m.View(), "3g") {
		t.Fatal("view should show the pending 3g sequence")
	}
}

func TestViewTabBarNumbersTabs(t *testing.T) {
	pathA := writeFile(t, "alpha.txt", "a")
	pathB := writeFile(t, "beta.txt", "b")
	m := newTestModel(t, pathA, pathB)

	view := m.View()
	if !strings.Contains(view, "1:alpha.txt") || !strings.Contains(view, "2:beta.txt") {
		t.Fatalf("tab bar missing labels:\n%s", view)
	}
}

func TestViewStatusShowsTargetAndPosition(t *testing.T) {
	path := writeFile(t, "a.txt", manyLines(30)...)
	m := newTestModel(t, path)

	view := m.View()
	if !strings.Contains(view, "a.txt") || !strings.Contains(view, "0%") {
		t.Fatalf("status line missing target or position:\n%s", view)
	}
}

func TestViewEmptyUntilSized(t *testing.T) {
	path := writeFile(t, "a.txt", "x")
	m := newTestModel(t, path)
	m.width, m.height = 0, 0
	if got := m.View(); got != "" {
		t.Fatalf("view before sizing = %q, want empty", got)
	}
}

func TestViewSurfacesErrorStatus(t *testing.T) {
	path := writeFile(t, "a.txt", "x")
	m := newTestModel(t, path)

	m = press(t, m, "x")
	if !strings.Contains(m.View(), "no binding matches: x") {
		t.Fatal("view should surface the error status")
	}
}

func TestViewFillsShortPagesWithTildes(t *testing.T) {
	path := writeFile(t, "a.txt", "only line")
	m := newTestModel(t, path)

	if !strings.Contains(m.View(), "~") {
		t.Fatal("view should mark rows past the end of the page")
	}
}
