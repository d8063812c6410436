package tui

import (
	"fmt"
	"strings"

	"github.com/mnpat/go-portfolio/models"
)

// profileModel shows the signed-in user's server-side record. Refreshing
// re-reads it so a role change made by an admin becomes visible without a
// new sign-in.
type profileModel struct {
	user       models.PublicUser
	refreshing bool
	status     string
}

func (m profileModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Name:   %s\n", m.user.Name))
	b.WriteString(fmt.Sprintf("Email:  %s\n", m.user.Email))
	b.WriteString(fmt.Sprintf("Role:   %s\n", m.user.Role))
	if !m.user.CreatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("Member since: %s\n", m.user.CreatedAt.Format("2006-01-02")))
	}

	if m.refreshing {
		b.WriteString("\nRefreshing...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"),
		"r: refresh │ l: sign out │ esc: back")
}
