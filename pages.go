package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jask/quire/internal/command"
	"github.com/jask/quire/internal/history"
	"github.com/jask/quire/internal/keyseq"
)

// internalScheme prefixes synthetic pages: quire:help, quire:history.
const internalScheme = "quire:"

// page is loaded content ready for a tab.
type page struct {
	title string
	lines []string
}

// pageSource loads files and synthesizes quire: pages. store may be
// nil when history is disabled.
type pageSource struct {
	registry *command.Registry
	bindings *keyseq.Bindings
	store    *history.Store
	tabWidth int
	histRows int
}

// load resolves target to a page. quire: targets are synthetic,
// anything else is a file path.
func (p pageSource) load(target string) (page, error) {
	if rest, ok := strings.CutPrefix(target, internalScheme); ok {
		switch rest {
		case "help":
			return p.helpPage(), nil
		case "history":
			return p.historyPage(p.histRows)
		}
		return page{}, fmt.Errorf("no such page: %s", target)
	}
	return p.filePage(target)
}

func (p pageSource) filePage(path string) (page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return page{}, fmt.Errorf("open %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = expandTabs(l, p.tabWidth)
	}
	return page{title: filepath.Base(path), lines: lines}, nil
}

// expandTabs replaces tabs with spaces up to the next tab stop, so
// column scrolling stays in plain rune units.
func expandTabs(s string, width int) string {
	if width <= 0 {
		width = 8
	}
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

func (p pageSource) helpPage() page {
	lines := []string{
		"quire help",
		"",
		"Commands",
		"--------",
	}
	for _, c := range p.registry.All() {
		count := ""
		if c.AcceptsCount {
			count = "  [count]"
		}
		lines = append(lines, fmt.Sprintf("  %-16s %s%s", c.Name, c.Description, count))
	}
	lines = append(lines, "", "Bindings", "--------")
	for _, b := range p.bindings.All() {
		lines = append(lines, fmt.Sprintf("  %-12s %s", keyseq.FormatSequence(b.Seq), b.Command))
	}
	lines = append(lines,
		"",
		"Press : for the command line. A leading number repeats where",
		"the command supports it, for example 5j or :5 scroll 0 1.",
	)
	return page{title: "help", lines: lines}
}

func (p pageSource) historyPage(n int) (page, error) {
	if p.store == nil {
		return page{}, fmt.Errorf("history is disabled")
	}
	entries, err := p.store.Recent(n)
	if err != nil {
		return page{}, err
	}
	lines := []string{
		"quire history",
		"",
	}
	if len(entries) == 0 {
		lines = append(lines, "  (empty)")
	}
	for _, e := range entries {
		parts := make([]string, 0, len(e.Args)+2)
		if e.HasCount {
			parts = append(parts, fmt.Sprintf("%d", e.Count))
		}
		parts = append(parts, e.Name)
		parts = append(parts, e.Args...)
		lines = append(lines, fmt.Sprintf("  %s  %s",
			e.At.Local().Format("2006-01-02 15:04:05"), strings.Join(parts, " ")))
	}
	return page{title: "history", lines: lines}, nil
}
