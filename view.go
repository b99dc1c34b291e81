package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(m.renderPage())
	b.WriteString("\n")
	if m.cmdOpen {
		b.WriteString(m.cmdline.View())
	} else {
		b.WriteString(m.renderStatus())
	}
	return b.String()
}

// pageHeight is the rows left between the tab bar and the bottom line.
func (m model) pageHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m model) renderPage() string {
	t := m.session.current()
	if t == nil {
		return strings.Repeat("\n", m.pageHeight()-1)
	}
	rows := make([]string, 0, m.pageHeight())
	for i := 0; i < m.pageHeight(); i++ {
		idx := t.row + i
		if idx < len(t.lines) {
			rows = append(rows, clipLine(t.lines[idx], t.col, m.width))
		} else {
			rows = append(rows, emptyLineStyle.Render("~"))
		}
	}
	return strings.Join(rows, "\n")
}

// clipLine returns the window of line visible at horizontal offset col.
func clipLine(line string, col, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(line)
	if col >= len(runes) {
		return ""
	}
	end := col + width
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[col:end])
}

func (m model) renderTabBar() string {
	labels := make([]string, 0, len(m.session.tabs))
	for i, t := range m.session.tabs {
		label := fmt.Sprintf(" %d:%s ", i+1, t.title)
		if i == m.session.active {
			labels = append(labels, tabActiveStyle.Render(label))
		} else {
			labels = append(labels, tabInactiveStyle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
}

// renderStatus draws the bottom line: an error or info message on the
// left (falling back to the current target and scroll position) and the
// partial key sequence on the right.
func (m model) renderStatus() string {
	var left string
	switch {
	case m.statusErr:
		left = statusErrStyle.Render(m.status)
	case m.status != "":
		left = statusInfoStyle.Render(m.status)
	default:
		if t := m.session.current(); t != nil {
			left = statusInfoStyle.Render(fmt.Sprintf("%s  %s", t.target, t.scrollPercent()))
		}
	}
	right := keystringStyle.Render(m.matcher.Keystring())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left + " " + right)
	}
	return left + strings.Repeat(" ", gap) + right
}
