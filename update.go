package main

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/quire/internal/command"
	"github.com/jask/quire/internal/logging"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	if m.cfg.Input.TimeoutMS > 0 {
		return tick()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cmdline.Width = msg.Width - 2
		return m, nil
	case tickMsg:
		if m.timeoutElapsed() {
			m.matcher.Reset()
		}
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) timeoutElapsed() bool {
	timeout := time.Duration(m.cfg.Input.TimeoutMS) * time.Millisecond
	return timeout > 0 && m.matcher.Busy() && time.Since(m.lastKey) >= timeout
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.lastKey = time.Now()
	if m.cmdOpen {
		return m.updateCmdline(msg)
	}
	if msg.String() == ":" && !m.matcher.Busy() {
		m.openCmdline("")
		return m, textinput.Blink
	}
	return m.updateMatcher(msg)
}

func (m model) updateCmdline(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeCmdline()
		return m, nil
	case "enter":
		line := strings.TrimSpace(m.cmdline.Value())
		m.closeCmdline()
		if line == "" {
			return m, nil
		}
		m.cmdHistory = append(m.cmdHistory, line)
		m.runLine(line, false)
		if m.session.quitting {
			return m, tea.Quit
		}
		return m, nil
	case "up":
		m.historyPrev()
		return m, nil
	case "down":
		m.historyNext()
		return m, nil
	}
	var cmd tea.Cmd
	m.cmdline, cmd = m.cmdline.Update(msg)
	return m, cmd
}

func (m model) updateMatcher(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.matcher.Feed(msg.String())
	for _, line := range res.Lines {
		m.runLine(line, true)
		if m.session.quitting {
			return m, tea.Quit
		}
	}
	if res.Err != nil {
		m.setError(res.Err)
	}
	if m.session.prefill != "" {
		prefill := m.session.prefill
		m.session.prefill = ""
		m.openCmdline(prefill)
		return m, textinput.Blink
	}
	return m, nil
}

func (m *model) openCmdline(text string) {
	m.matcher.Reset()
	m.cmdline.SetValue(text)
	m.cmdline.CursorEnd()
	m.cmdline.Focus()
	m.cmdOpen = true
	m.cmdCursor = len(m.cmdHistory)
	m.cmdDraft = ""
}

func (m *model) closeCmdline() {
	m.cmdline.Blur()
	m.cmdline.Reset()
	m.cmdOpen = false
}

func (m *model) historyPrev() {
	if m.cmdCursor == 0 || len(m.cmdHistory) == 0 {
		return
	}
	if m.cmdCursor == len(m.cmdHistory) {
		m.cmdDraft = m.cmdline.Value()
	}
	m.cmdCursor--
	m.cmdline.SetValue(m.cmdHistory[m.cmdCursor])
	m.cmdline.CursorEnd()
}

func (m *model) historyNext() {
	if m.cmdCursor >= len(m.cmdHistory) {
		return
	}
	m.cmdCursor++
	if m.cmdCursor == len(m.cmdHistory) {
		m.cmdline.SetValue(m.cmdDraft)
	} else {
		m.cmdline.SetValue(m.cmdHistory[m.cmdCursor])
	}
	m.cmdline.CursorEnd()
}

// runLine dispatches one command line. A line that came from a key binding
// and failed only on argument count reopens as a prefilled command box so
// the missing arguments can be typed.
func (m *model) runLine(line string, fromKeys bool) {
	err := m.dispatch.Run(line)
	if err == nil {
		m.clearStatus()
		return
	}
	if fromKeys && errors.Is(err, command.ErrWrongArgCount) {
		m.session.prefill = line + " "
		return
	}
	m.setError(err)
}

func (m *model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	logging.L().Warnf("%v", err)
}

func (m *model) clearStatus() {
	m.status = ""
	m.statusErr = false
}
