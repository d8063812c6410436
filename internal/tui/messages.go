package tui

import (
	"github.com/mnpat/go-portfolio/models"
)

// hydratedMsg signals that the persisted session has been restored (or
// found absent) and route guards may decide.
type hydratedMsg struct{}

type authDoneMsg struct {
	auth models.AuthResponse
	err  error
}

type profileLoadedMsg struct {
	user models.PublicUser
	err  error
}

type entriesLoadedMsg struct {
	kind  entryKind
	items []entry
	err   error
}

type contactsLoadedMsg struct {
	items []models.Contact
	err   error
}

type contactSubmittedMsg struct {
	err error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
