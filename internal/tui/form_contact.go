package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mnpat/go-portfolio/models"
)

// contactFormModel is the public "get in touch" form. Submitting requires
// no account.
type contactFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	sent       bool
}

func newContactFormModel() contactFormModel {
	inputs := make([]textinput.Model, 5)
	placeholders := []string{"firstname", "lastname", "email", "phone (optional)", "message (optional)"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].Width = 50
	}
	inputs[4].CharLimit = 2000
	inputs[0].Focus()

	return contactFormModel{inputs: inputs}
}

// toContact validates and collects the form. The returned string is a
// user-facing problem description, empty on success.
func (m contactFormModel) toContact() (models.Contact, string) {
	contact := models.Contact{
		Firstname: strings.TrimSpace(m.inputs[0].Value()),
		Lastname:  strings.TrimSpace(m.inputs[1].Value()),
		Email:     strings.TrimSpace(m.inputs[2].Value()),
		Phone:     strings.TrimSpace(m.inputs[3].Value()),
		Message:   strings.TrimSpace(m.inputs[4].Value()),
	}

	if contact.Firstname == "" || contact.Lastname == "" || contact.Email == "" {
		return models.Contact{}, "firstname, lastname and email are required"
	}

	return contact, ""
}

func (m contactFormModel) View() string {
	if m.sent {
		return renderPage("GET IN TOUCH", "Thanks! Your message has been sent.", "esc: back")
	}

	var b strings.Builder
	labels := []string{"Firstname:", "Lastname: ", "Email:    ", "Phone:    ", "Message:  "}
	for i, label := range labels {
		b.WriteString(fmt.Sprintf("%s [%s]\n", label, m.inputs[i].View()))
	}

	if m.submitting {
		b.WriteString("\n[Sending...]\n")
	} else {
		b.WriteString("\n[Send]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("GET IN TOUCH", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: send")
}
