package tui

import (
	"fmt"
	"strings"
)

type entryDetailModel struct {
	kind   entryKind
	item   entry
	status string
}

func (m entryDetailModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.item.Title) + "\n\n")
	b.WriteString(fmt.Sprintf("Author:     %s %s\n", m.item.Firstname, m.item.Lastname))
	b.WriteString(fmt.Sprintf("Email:      %s\n", dashIfEmpty(m.item.Email)))
	b.WriteString(fmt.Sprintf("Completion: %s\n", m.item.Completion.Format("2006-01-02")))
	b.WriteString("\n")
	b.WriteString(m.item.Description)

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage(m.kind.title(), strings.TrimRight(b.String(), "\n"),
		"c: copy email │ e: edit │ d: delete │ esc: back")
}
