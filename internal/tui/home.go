package tui

import (
	"fmt"
	"strings"
)

type homeItem struct {
	label  string
	target screen
}

type homeModel struct {
	items []homeItem
	idx   int
}

func newHomeModel() homeModel {
	return homeModel{
		items: []homeItem{
			{label: "Projects", target: screenProjects},
			{label: "Qualifications", target: screenQualifications},
			{label: "Get in touch", target: screenContactForm},
			{label: "My profile", target: screenProfile},
			{label: "Contact inbox (admin)", target: screenContacts},
		},
	}
}

func (m homeModel) view(signedInAs string) string {
	var b strings.Builder

	if signedInAs != "" {
		b.WriteString("Signed in as " + signedInAs + "\n\n")
	} else {
		b.WriteString("Browsing as guest\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, item.label))
	}

	help := "enter: open │ ↑/↓: move │ s: sign in │ q: quit"
	if signedInAs != "" {
		help = "enter: open │ ↑/↓: move │ l: sign out │ q: quit"
	}

	return renderPage("PORTFOLIO", strings.TrimRight(b.String(), "\n"), help)
}
