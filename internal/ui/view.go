package ui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewCurrent())
	if h := m.viewHistory(); h != "" {
		b.WriteString("\n")
		b.WriteString(h)
	}
	return m.styles.Box.Render(b.String()) + "\n"
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("prettybytes")
	signed := "off"
	if m.cfg.Signed() {
		signed = "on"
	}
	sub := m.styles.Subtitle.Render(fmt.Sprintf("%s • precision %d • signed %s", m.cfg.System(), m.cfg.Precision(), signed))
	keys := m.styles.Faint.Render("tab: system • ↑/↓: precision • ctrl+s: signed • enter: keep • esc: quit")
	return title + "  " + sub + "\n" + keys
}

func (m Model) viewCurrent() string {
	switch {
	case m.err != nil:
		return m.styles.Error.Render(m.err.Error())
	case m.current == nil:
		return m.styles.Faint.Render("waiting for input")
	}
	line1 := m.styles.Result.Render(m.current.Display)
	line2 := m.styles.Label.Render("json ") + m.styles.Record.Render(record(*m.current))
	return line1 + "\n" + line2
}

func (m Model) viewHistory() string {
	if len(m.history) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Kept:"))
	b.WriteString("\n")
	for _, r := range m.history {
		b.WriteString(m.styles.Label.Render(fmt.Sprintf("  %s → ", truncate(r.Input, 24))))
		b.WriteString(r.Display)
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if n <= 0 || len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
