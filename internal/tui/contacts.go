package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/mnpat/go-portfolio/models"
)

// contactListModel is the admin-only inbox of submitted contact messages.
type contactListModel struct {
	items       []models.Contact
	idx         int
	loading     bool
	spinner     spinner.Model
	status      string
	showMessage bool
}

func newContactListModel() contactListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return contactListModel{spinner: s, loading: true}
}

func (m contactListModel) current() (models.Contact, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Contact{}, false
	}
	return m.items[m.idx], true
}

func (m *contactListModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m contactListModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else if len(m.items) == 0 {
		b.WriteString("Inbox is empty\n")
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s %s <%s>  %s\n",
				cursor, item.Firstname, item.Lastname, item.Email,
				fitText(item.Message, 30)))
		}
		b.WriteString("\n" + formatCount(len(m.items), "message"))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	page := renderPage("CONTACT INBOX", strings.TrimRight(b.String(), "\n"),
		"enter: read │ ↑/↓: move │ c: copy email │ d: delete │ r: reload │ esc: back")

	if item, ok := m.current(); ok && m.showMessage {
		content := fmt.Sprintf("From %s %s <%s>\n", item.Firstname, item.Lastname, item.Email)
		if item.Phone != "" {
			content += "Phone: " + item.Phone + "\n"
		}
		content += "\n" + dashIfEmpty(item.Message) + "\n\nenter / esc to close"
		page += "\n\n" + overlayBoxStyle.Render(content)
	}

	return page
}
