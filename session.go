package main

import (
	"fmt"
	"slices"
)

// session is the mutable application state the registered commands
// act on. Commands close over the one session, so it lives behind a
// pointer while the bubbletea model stays a value.
type session struct {
	pages  pageSource
	tabs   []*tab
	active int
	closed []*tab

	quitting bool
	prefill  string
}

// tab is one open page plus its location history and scroll state.
// row and col are the top-left corner of the visible window.
type tab struct {
	title   string
	target  string
	lines   []string
	row     int
	col     int
	back    []string
	forward []string
}

func newSession(pages pageSource) *session {
	return &session{pages: pages}
}

func (s *session) current() *tab {
	if len(s.tabs) == 0 {
		return nil
	}
	return s.tabs[s.active]
}

// openCurrent replaces the current tab's page, pushing the old
// location onto the tab's back history.
func (s *session) openCurrent(target string) error {
	t := s.current()
	if t == nil {
		return s.openTab(target)
	}
	p, err := s.pages.load(target)
	if err != nil {
		return err
	}
	if t.target != "" {
		t.back = append(t.back, t.target)
	}
	t.forward = nil
	t.show(p, target)
	return nil
}

// openTab loads target into a new tab next to the active one and
// focuses it.
func (s *session) openTab(target string) error {
	p, err := s.pages.load(target)
	if err != nil {
		return err
	}
	s.pushPage(p, target)
	return nil
}

func (s *session) pushPage(p page, target string) {
	t := &tab{}
	t.show(p, target)
	if len(s.tabs) == 0 {
		s.tabs = []*tab{t}
		s.active = 0
		return
	}
	s.active++
	s.tabs = slices.Insert(s.tabs, s.active, t)
}

// closeTab pushes the current tab onto the undo stack. Closing the
// last tab ends the session.
func (s *session) closeTab() {
	t := s.current()
	if t == nil {
		s.quitting = true
		return
	}
	s.closed = append(s.closed, t)
	s.tabs = slices.Delete(s.tabs, s.active, s.active+1)
	if len(s.tabs) == 0 {
		s.quitting = true
		return
	}
	if s.active >= len(s.tabs) {
		s.active = len(s.tabs) - 1
	}
}

// undoClose reopens the most recently closed tab with its scroll
// position and history intact.
func (s *session) undoClose() error {
	if len(s.closed) == 0 {
		return fmt.Errorf("nothing to undo")
	}
	t := s.closed[len(s.closed)-1]
	s.closed = s.closed[:len(s.closed)-1]
	if len(s.tabs) == 0 {
		s.tabs = []*tab{t}
		s.active = 0
		return nil
	}
	s.active++
	s.tabs = slices.Insert(s.tabs, s.active, t)
	return nil
}

func (s *session) nextTab() {
	if len(s.tabs) > 1 {
		s.active = (s.active + 1) % len(s.tabs)
	}
}

func (s *session) prevTab() {
	if len(s.tabs) > 1 {
		s.active = (s.active - 1 + len(s.tabs)) % len(s.tabs)
	}
}

// goBack revisits the previous location of the current tab.
func (s *session) goBack() error {
	t := s.current()
	if t == nil || len(t.back) == 0 {
		return fmt.Errorf("at start of history")
	}
	target := t.back[len(t.back)-1]
	p, err := s.pages.load(target)
	if err != nil {
		return err
	}
	t.back = t.back[:len(t.back)-1]
	t.forward = append(t.forward, t.target)
	t.show(p, target)
	return nil
}

func (s *session) goForward() error {
	t := s.current()
	if t == nil || len(t.forward) == 0 {
		return fmt.Errorf("at end of history")
	}
	target := t.forward[len(t.forward)-1]
	p, err := s.pages.load(target)
	if err != nil {
		return err
	}
	t.forward = t.forward[:len(t.forward)-1]
	t.back = append(t.back, t.target)
	t.show(p, target)
	return nil
}

// reload re-reads the current tab's target, keeping the scroll
// position where the fresh content still allows it.
func (s *session) reload() error {
	t := s.current()
	if t == nil {
		return fmt.Errorf("no tab to reload")
	}
	p, err := s.pages.load(t.target)
	if err != nil {
		return err
	}
	row, col := t.row, t.col
	t.title = p.title
	t.lines = p.lines
	t.row = min(row, t.maxRow())
	t.col = min(col, t.maxCol())
	return nil
}

func (t *tab) show(p page, target string) {
	t.title = p.title
	t.target = target
	t.lines = p.lines
	t.row = 0
	t.col = 0
}

func (t *tab) maxRow() int {
	if len(t.lines) == 0 {
		return 0
	}
	return len(t.lines) - 1
}

func (t *tab) maxCol() int {
	longest := 0
	for _, l := range t.lines {
		if n := len([]rune(l)); n > longest {
			longest = n
		}
	}
	if longest == 0 {
		return 0
	}
	return longest - 1
}

func (t *tab) scrollBy(dx, dy int) {
	t.col = clamp(t.col+dx, 0, t.maxCol())
	t.row = clamp(t.row+dy, 0, t.maxRow())
}

func (t *tab) scrollPercX(p int) {
	t.col = t.maxCol() * clamp(p, 0, 100) / 100
}

func (t *tab) scrollPercY(p int) {
	t.row = t.maxRow() * clamp(p, 0, 100) / 100
}

func (t *tab) scrollPercent() string {
	if t.maxRow() == 0 {
		return "all"
	}
	return fmt.Sprintf("%d%%", t.row*100/t.maxRow())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
