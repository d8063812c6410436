// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// signInModel is the sign-in form: email and password inputs plus
// submission state. The async login command is owned by the app model so
// that its result can update the shared session.
type signInModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newSignInModel() signInModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return signInModel{inputs: []textinput.Model{emailInput, passwordInput}}
}

func (m signInModel) email() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m signInModel) password() string {
	return m.inputs[1].Value()
}

func (m signInModel) View() string {
	var b strings.Builder
	b.WriteString("Email:    [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password: [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: submit │ ctrl+n: create an account")
}
