package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
)

// entryListModel lists one portfolio collection. The same model serves
// projects and qualifications; kind decides which one.
type entryListModel struct {
	kind    entryKind
	items   []entry
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newEntryListModel(kind entryKind) entryListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return entryListModel{kind: kind, spinner: s, loading: true}
}

func (m entryListModel) current() (entry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return entry{}, false
	}
	return m.items[m.idx], true
}

func (m *entryListModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m entryListModel) view(isAdmin bool) string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else if len(m.items) == 0 {
		b.WriteString("Nothing here yet\n")
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s  %s\n",
				cursor,
				item.Completion.Format("2006-01-02"),
				fitText(item.Title, 44)))
		}
		b.WriteString("\n" + formatCount(len(m.items), m.kind.noun()))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	help := "enter: open │ ↑/↓: move │ r: reload │ esc: back"
	if isAdmin {
		help = "enter: open │ n: new │ e: edit │ d: delete │ r: reload │ esc: back"
	}

	return renderPage(m.kind.title(), strings.TrimRight(b.String(), "\n"), help)
}
