// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type signUpModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newSignUpModel() signUpModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password (min 6 characters)"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	repeatInput := textinput.New()
	repeatInput.Placeholder = "repeat password"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return signUpModel{inputs: []textinput.Model{nameInput, emailInput, passwordInput, repeatInput}}
}

func (m signUpModel) name() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m signUpModel) email() string {
	return strings.TrimSpace(m.inputs[1].Value())
}

func (m signUpModel) password() string {
	return m.inputs[2].Value()
}

func (m signUpModel) repeat() string {
	return m.inputs[3].Value()
}

func (m signUpModel) View() string {
	var b strings.Builder
	b.WriteString("Name:            [" + m.inputs[0].View() + "]\n")
	b.WriteString("Email:           [" + m.inputs[1].View() + "]\n")
	b.WriteString("Password:        [" + m.inputs[2].View() + "]\n")
	b.WriteString("Repeat password: [" + m.inputs[3].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: submit")
}
