package main

import (
	"fmt"
	"strconv"

	"github.com/jask/quire/internal/command"
)

// countCap bounds how far a repeat count multiplies a scroll.
const countCap = 1_000_000

// registerCommands wires every user-facing command to the session.
// Descriptions show up on the quire:help page.
func registerCommands(reg *command.Registry, s *session) error {
	cmds := []command.Command{
		{
			Name: "open", Description: "open a file in the current tab",
			MinArgs: 1, MaxArgs: 1,
			Action: func(inv command.Invocation) error { return s.openCurrent(inv.Args[0]) },
		},
		{
			Name: "tabopen", Description: "open a file in a new tab",
			MinArgs: 1, MaxArgs: 1,
			Action: func(inv command.Invocation) error { return s.openTab(inv.Args[0]) },
		},
		{
			Name: "tabclose", Description: "close the current tab",
			Action: func(command.Invocation) error { s.closeTab(); return nil },
		},
		{
			Name: "undo", Description: "reopen the last closed tab",
			Action: func(command.Invocation) error { return s.undoClose() },
		},
		{
			Name: "tabnext", Description: "focus the next tab",
			Action: func(command.Invocation) error { s.nextTab(); return nil },
		},
		{
			Name: "tabprev", Description: "focus the previous tab",
			Action: func(command.Invocation) error { s.prevTab(); return nil },
		},
		{
			Name: "back", Description: "go back in this tab's history",
			Action: func(command.Invocation) error { return s.goBack() },
		},
		{
			Name: "forward", Description: "go forward in this tab's history",
			Action: func(command.Invocation) error { return s.goForward() },
		},
		{
			Name: "reload", Description: "re-read the current tab from disk",
			Action: func(command.Invocation) error { return s.reload() },
		},
		{
			Name: "scroll", Description: "scroll by columns and rows",
			AcceptsCount: true, MinArgs: 2, MaxArgs: 2,
			Action: s.scrollAction,
		},
		{
			Name: "scroll_perc_x", Description: "scroll horizontally to a percentage",
			AcceptsCount: true, MaxArgs: 1,
			Action: func(inv command.Invocation) error { return s.scrollPercAction(inv, false) },
		},
		{
			Name: "scroll_perc_y", Description: "scroll vertically to a percentage",
			AcceptsCount: true, MaxArgs: 1,
			Action: func(inv command.Invocation) error { return s.scrollPercAction(inv, true) },
		},
		{
			Name: "history", Description: "show recently executed commands",
			AcceptsCount: true,
			Action: s.historyAction,
		},
		{
			Name: "help", Description: "show commands and bindings",
			Action: func(command.Invocation) error { return s.openTab("quire:help") },
		},
		{
			Name: "quit", Description: "exit quire",
			Action: func(command.Invocation) error { s.quitting = true; return nil },
		},
	}
	for _, c := range cmds {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) scrollAction(inv command.Invocation) error {
	t := s.current()
	if t == nil {
		return fmt.Errorf("no open tab")
	}
	dx, err := strconv.Atoi(inv.Args[0])
	if err != nil {
		return fmt.Errorf("scroll: bad column delta %q", inv.Args[0])
	}
	dy, err := strconv.Atoi(inv.Args[1])
	if err != nil {
		return fmt.Errorf("scroll: bad row delta %q", inv.Args[1])
	}
	n := 1
	if inv.HasCount {
		n = int(min(inv.Count, countCap))
	}
	t.scrollBy(dx*n, dy*n)
	return nil
}

// scrollPercAction picks the percentage the way the bindings expect:
// an explicit argument wins, then the count, then 100. That makes
// G jump to the bottom while 30G stops at 30 percent.
func (s *session) scrollPercAction(inv command.Invocation, vertical bool) error {
	t := s.current()
	if t == nil {
		return fmt.Errorf("no open tab")
	}
	perc := 100
	switch {
	case len(inv.Args) == 1:
		p, err := strconv.Atoi(inv.Args[0])
		if err != nil {
			return fmt.Errorf("bad percentage %q", inv.Args[0])
		}
		perc = p
	case inv.HasCount:
		perc = int(min(inv.Count, 100))
	}
	if vertical {
		t.scrollPercY(perc)
	} else {
		t.scrollPercX(perc)
	}
	return nil
}

func (s *session) historyAction(inv command.Invocation) error {
	n := s.pages.histRows
	if inv.HasCount {
		n = int(min(inv.Count, 10_000))
	}
	p, err := s.pages.historyPage(n)
	if err != nil {
		return err
	}
	s.pushPage(p, "quire:history")
	return nil
}
