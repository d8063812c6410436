// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mnpat/go-portfolio/internal/adapter"
	"github.com/mnpat/go-portfolio/internal/session"
	"github.com/mnpat/go-portfolio/models"
)

type screen int

const (
	screenNone screen = iota
	screenLoadingSession
	screenHome
	screenSignIn
	screenSignUp
	screenProjects
	screenQualifications
	screenEntryDetail
	screenEntryForm
	screenContactForm
	screenContacts
	screenProfile
)

// routeFor maps every screen to its access requirements. The guard never
// sees a screen that is missing here: unknown screens are public.
func routeFor(s screen) Route {
	switch s {
	case screenProfile:
		return Route{Name: "profile", RequiresAuth: true}
	case screenContacts:
		return Route{Name: "contacts", AdminOnly: true}
	case screenEntryForm:
		return Route{Name: "entry-form", AdminOnly: true}
	default:
		return Route{Name: "public"}
	}
}

// appModel is the single Bubble Tea model of the client:
// 1) routes between screens, asking the guard before every transition
// 2) owns all async commands against the server adapter
// 3) owns the overlays (error, delete confirmation, access denied)
type appModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	session *session.Session
	guard   *Guard

	currentScreen screen

	// pendingScreen is where the user wanted to go before hydration or
	// sign-in got in the way. Restored after either finishes.
	pendingScreen screen

	home           homeModel
	signIn         signInModel
	signUp         signUpModel
	projects       entryListModel
	qualifications entryListModel
	detail         entryDetailModel
	entryForm      entryFormModel
	contactForm    contactFormModel
	contacts       contactListModel
	profile        profileModel

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	showDenied   bool

	pendingDeleteID      int64
	pendingDeleteContact bool

	quitByUser bool
}

func newAppModel(ctx context.Context, serverAdapter adapter.ServerAdapter, sess *session.Session) appModel {
	return appModel{
		ctx:            ctx,
		adapter:        serverAdapter,
		session:        sess,
		guard:          NewGuard(sess),
		currentScreen:  screenHome,
		home:           newHomeModel(),
		signIn:         newSignInModel(),
		signUp:         newSignUpModel(),
		projects:       newEntryListModel(kindProject),
		qualifications: newEntryListModel(kindQualification),
		contactForm:    newContactFormModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdHydrate())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showDenied {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showDenied = false
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDeletePending()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDeleteID = 0
				m.pendingDeleteContact = false
			}
			return m, nil
		}

	case hydratedMsg:
		if m.currentScreen == screenLoadingSession {
			target := m.pendingScreen
			m.pendingScreen = screenNone
			if target == screenNone {
				target = screenHome
			}
			return m.navigate(target)
		}
		return m, nil

	case authDoneMsg:
		return m.handleAuthDone(msg)

	case profileLoadedMsg:
		m.profile.refreshing = false
		if msg.err != nil {
			if m.session.HandleUnauthorized(msg.err) {
				return m.navigate(screenSignIn)
			}
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.profile.user = msg.user
		m.profile.status = "Up to date"
		return m, cmdClearStatus()

	case entriesLoadedMsg:
		list := m.listFor(msg.kind)
		list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		list.items = msg.items
		list.clampIdx()
		return m, nil

	case contactsLoadedMsg:
		m.contacts.loading = false
		if msg.err != nil {
			if m.session.HandleUnauthorized(msg.err) {
				return m.navigate(screenSignIn)
			}
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.contacts.items = msg.items
		m.contacts.clampIdx()
		return m, nil

	case contactSubmittedMsg:
		m.contactForm.submitting = false
		if msg.err != nil {
			m.contactForm.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.contactForm.sent = true
		return m, nil

	case itemSavedMsg:
		m.entryForm.submitting = false
		if msg.err != nil {
			if m.session.HandleUnauthorized(msg.err) {
				return m.navigate(screenSignIn)
			}
			if m.currentScreen == screenEntryForm {
				m.entryForm.errMsg = humanizeError(msg.err)
			} else {
				m.showErrorf(humanizeError(msg.err))
			}
			return m, nil
		}
		return m.navigate(listScreenFor(m.entryForm.kind))

	case itemDeletedMsg:
		if msg.err != nil {
			if m.session.HandleUnauthorized(msg.err) {
				return m.navigate(screenSignIn)
			}
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if m.pendingDeleteContact {
			m.pendingDeleteContact = false
			m.contacts.loading = true
			return m, tea.Batch(m.contacts.spinner.Tick, m.cmdLoadContacts())
		}
		if m.currentScreen == screenEntryDetail {
			m.currentScreen = listScreenFor(m.detail.kind)
		}
		return m, m.reloadCurrentList()

	case copiedMsg:
		m.detail.status = "Copied!"
		m.contacts.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.contacts.status = ""
		m.projects.status = ""
		m.qualifications.status = ""
		m.profile.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.projects.loading {
			var cmd tea.Cmd
			m.projects.spinner, cmd = m.projects.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.qualifications.loading {
			var cmd tea.Cmd
			m.qualifications.spinner, cmd = m.qualifications.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.contacts.loading {
			var cmd tea.Cmd
			m.contacts.spinner, cmd = m.contacts.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenHome:
		return m.updateHome(msg)
	case screenSignIn:
		return m.updateSignIn(msg)
	case screenSignUp:
		return m.updateSignUp(msg)
	case screenProjects, screenQualifications:
		return m.updateEntryList(msg)
	case screenEntryDetail:
		return m.updateEntryDetail(msg)
	case screenEntryForm:
		return m.updateEntryForm(msg)
	case screenContactForm:
		return m.updateContactForm(msg)
	case screenContacts:
		return m.updateContacts(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string

	switch m.currentScreen {
	case screenLoadingSession:
		body = renderPage("PORTFOLIO", "Restoring session...", "")
	case screenHome:
		body = m.home.view(m.signedInAs())
	case screenSignIn:
		body = m.signIn.View()
	case screenSignUp:
		body = m.signUp.View()
	case screenProjects:
		body = m.projects.view(m.session.IsAdmin())
	case screenQualifications:
		body = m.qualifications.view(m.session.IsAdmin())
	case screenEntryDetail:
		body = m.detail.View()
	case screenEntryForm:
		body = m.entryForm.View()
	case screenContactForm:
		body = m.contactForm.View()
	case screenContacts:
		body = m.contacts.View()
	case screenProfile:
		body = m.profile.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showDenied {
		content := errorStyle.Render("Access denied") + "\n\nThis section requires the admin role.\n\nenter / esc to close"
		body += "\n\n" + overlayBoxStyle.Render(content)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// navigate asks the guard whether target may open and either opens it or
// parks the user on the appropriate interstitial. The denied case keeps
// the current screen so the user does not lose their place.
func (m appModel) navigate(target screen) (tea.Model, tea.Cmd) {
	switch m.guard.Evaluate(routeFor(target)) {
	case DecisionWait:
		m.pendingScreen = target
		m.currentScreen = screenLoadingSession
		return m, nil

	case DecisionRedirectSignIn:
		m.pendingScreen = target
		m.signIn = newSignInModel()
		m.signIn.errMsg = ""
		m.currentScreen = screenSignIn
		return m, textinput.Blink

	case DecisionDenied:
		m.showDenied = true
		return m, nil
	}

	m.currentScreen = target
	return m, m.screenInitCmd(target)
}

// screenInitCmd returns the load command a screen needs when it opens.
func (m *appModel) screenInitCmd(s screen) tea.Cmd {
	switch s {
	case screenProjects:
		m.projects.loading = true
		return tea.Batch(m.projects.spinner.Tick, m.cmdLoadEntries(kindProject))
	case screenQualifications:
		m.qualifications.loading = true
		return tea.Batch(m.qualifications.spinner.Tick, m.cmdLoadEntries(kindQualification))
	case screenContacts:
		m.contacts = newContactListModel()
		return tea.Batch(m.contacts.spinner.Tick, m.cmdLoadContacts())
	case screenProfile:
		if user, ok := m.session.User(); ok {
			m.profile = profileModel{user: user, refreshing: true}
		}
		return m.cmdRefreshProfile()
	case screenContactForm:
		m.contactForm = newContactFormModel()
		return textinput.Blink
	case screenSignUp:
		m.signUp = newSignUpModel()
		return textinput.Blink
	case screenEntryForm:
		return textinput.Blink
	}
	return nil
}

func (m appModel) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.signIn.submitting = false
	m.signUp.submitting = false

	if msg.err != nil {
		errMsg := humanizeError(msg.err)
		if m.currentScreen == screenSignUp {
			m.signUp.errMsg = errMsg
		} else {
			m.signIn.errMsg = errMsg
		}
		return m, nil
	}

	m.session.Login(msg.auth)
	m.signIn = newSignInModel()
	m.signUp = newSignUpModel()

	target := m.pendingScreen
	m.pendingScreen = screenNone
	if target == screenNone {
		target = screenHome
	}
	return m.navigate(target)
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.items)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.navigate(m.home.items[m.home.idx].target)
	case keyMsg.String() == "s":
		if !m.session.IsAuthenticated() {
			return m.navigate(screenSignIn)
		}
	case key.Matches(keyMsg, keys.logout):
		if m.session.IsAuthenticated() {
			m.session.Logout()
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateSignIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.pendingScreen = screenNone
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.signIn = focusNextSignIn(m.signIn)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signIn = focusPrevSignIn(m.signIn)
			return m, nil
		case keyMsg.String() == "ctrl+n":
			m.currentScreen = screenSignUp
			return m, m.screenInitCmd(screenSignUp)
		case key.Matches(keyMsg, keys.enter):
			if m.signIn.submitting {
				return m, nil
			}
			if m.signIn.email() == "" || m.signIn.password() == "" {
				m.signIn.errMsg = "email and password are required"
				return m, nil
			}
			m.signIn.errMsg = ""
			m.signIn.submitting = true
			return m, m.cmdSignIn(m.signIn.email(), m.signIn.password())
		}
	}

	var cmd tea.Cmd
	m.signIn.inputs[m.signIn.focus], cmd = m.signIn.inputs[m.signIn.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSignUp(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenSignIn
			return m, textinput.Blink
		case key.Matches(keyMsg, keys.tab):
			m.signUp = focusNextSignUp(m.signUp)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signUp = focusPrevSignUp(m.signUp)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.signUp.submitting {
				return m, nil
			}
			if m.signUp.name() == "" || m.signUp.email() == "" || m.signUp.password() == "" {
				m.signUp.errMsg = "name, email and password are required"
				return m, nil
			}
			if m.signUp.password() != m.signUp.repeat() {
				m.signUp.errMsg = "passwords do not match"
				return m, nil
			}
			m.signUp.errMsg = ""
			m.signUp.submitting = true
			return m, m.cmdSignUp(models.RegisterRequest{
				Name:     m.signUp.name(),
				Email:    m.signUp.email(),
				Password: m.signUp.password(),
			})
		}
	}

	var cmd tea.Cmd
	m.signUp.inputs[m.signUp.focus], cmd = m.signUp.inputs[m.signUp.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateEntryList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	kind := kindProject
	if m.currentScreen == screenQualifications {
		kind = kindQualification
	}
	list := m.listFor(kind)

	switch {
	case key.Matches(keyMsg, keys.up):
		if list.idx > 0 {
			list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if list.idx < len(list.items)-1 {
			list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := list.current()
		if !ok {
			return m, nil
		}
		m.detail = entryDetailModel{kind: kind, item: item}
		m.currentScreen = screenEntryDetail
	case key.Matches(keyMsg, keys.newItem):
		m.entryForm = newEntryFormModel(kind, nil)
		return m.navigate(screenEntryForm)
	case key.Matches(keyMsg, keys.edit):
		item, ok := list.current()
		if !ok {
			return m, nil
		}
		m.entryForm = newEntryFormModel(kind, &item)
		return m.navigate(screenEntryForm)
	case key.Matches(keyMsg, keys.delete):
		item, ok := list.current()
		if !ok {
			return m, nil
		}
		if !m.session.IsAdmin() {
			m.showDenied = true
			return m, nil
		}
		m.detail.kind = kind
		m.showConfirm = true
		m.confirm.message = item.Title
		m.pendingDeleteID = item.ID
	case key.Matches(keyMsg, keys.refresh):
		list.loading = true
		return m, tea.Batch(list.spinner.Tick, m.cmdLoadEntries(kind))
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateEntryDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = listScreenFor(m.detail.kind)
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.detail.item.Email == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.item.Email)
	case key.Matches(keyMsg, keys.edit):
		item := m.detail.item
		m.entryForm = newEntryFormModel(m.detail.kind, &item)
		return m.navigate(screenEntryForm)
	case key.Matches(keyMsg, keys.delete):
		if !m.session.IsAdmin() {
			m.showDenied = true
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = m.detail.item.Title
		m.pendingDeleteID = m.detail.item.ID
	}

	return m, nil
}

func (m appModel) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.entryForm.editing {
				m.currentScreen = screenEntryDetail
			} else {
				m.currentScreen = listScreenFor(m.entryForm.kind)
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.entryForm = focusNextEntryForm(m.entryForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.entryForm = focusPrevEntryForm(m.entryForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.entryForm.submitting {
				return m, nil
			}
			item, problem := m.entryForm.toEntry()
			if problem != "" {
				m.entryForm.errMsg = problem
				return m, nil
			}
			m.entryForm.errMsg = ""
			m.entryForm.submitting = true
			return m, m.cmdSaveEntry(item, m.entryForm.kind, m.entryForm.editing)
		}
	}

	var cmd tea.Cmd
	m.entryForm.inputs[m.entryForm.focus], cmd = m.entryForm.inputs[m.entryForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateContactForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.contactForm = focusNextContactForm(m.contactForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.contactForm = focusPrevContactForm(m.contactForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.contactForm.submitting || m.contactForm.sent {
				return m, nil
			}
			contact, problem := m.contactForm.toContact()
			if problem != "" {
				m.contactForm.errMsg = problem
				return m, nil
			}
			m.contactForm.errMsg = ""
			m.contactForm.submitting = true
			return m, m.cmdSubmitContact(contact)
		}
	}

	if m.contactForm.sent {
		return m, nil
	}

	var cmd tea.Cmd
	m.contactForm.inputs[m.contactForm.focus], cmd = m.contactForm.inputs[m.contactForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateContacts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.contacts.showMessage {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.contacts.showMessage = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.contacts.current(); ok {
			m.contacts.showMessage = true
		}
	case key.Matches(keyMsg, keys.up):
		if m.contacts.idx > 0 {
			m.contacts.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.contacts.idx < len(m.contacts.items)-1 {
			m.contacts.idx++
		}
	case key.Matches(keyMsg, keys.copy):
		item, ok := m.contacts.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(item.Email)
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.contacts.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fmt.Sprintf("%s %s", item.Firstname, item.Lastname)
		m.pendingDeleteID = item.ID
		m.pendingDeleteContact = true
	case key.Matches(keyMsg, keys.refresh):
		m.contacts.loading = true
		return m, tea.Batch(m.contacts.spinner.Tick, m.cmdLoadContacts())
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.refresh):
		if m.profile.refreshing {
			return m, nil
		}
		m.profile.refreshing = true
		return m, m.cmdRefreshProfile()
	case key.Matches(keyMsg, keys.logout):
		m.session.Logout()
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) listFor(kind entryKind) *entryListModel {
	if kind == kindQualification {
		return &m.qualifications
	}
	return &m.projects
}

func (m *appModel) reloadCurrentList() tea.Cmd {
	switch m.currentScreen {
	case screenProjects:
		m.projects.loading = true
		return tea.Batch(m.projects.spinner.Tick, m.cmdLoadEntries(kindProject))
	case screenQualifications:
		m.qualifications.loading = true
		return tea.Batch(m.qualifications.spinner.Tick, m.cmdLoadEntries(kindQualification))
	}
	return nil
}

func (m appModel) signedInAs() string {
	if user, ok := m.session.User(); ok {
		return user.Email
	}
	return ""
}

func listScreenFor(kind entryKind) screen {
	if kind == kindQualification {
		return screenQualifications
	}
	return screenProjects
}

func (m appModel) cmdHydrate() tea.Cmd {
	ctx := m.ctx
	sess := m.session
	return func() tea.Msg {
		sess.Hydrate(ctx)
		return hydratedMsg{}
	}
}

func (m appModel) cmdSignIn(email, password string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		auth, err := serverAdapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
		return authDoneMsg{auth: auth, err: err}
	}
}

func (m appModel) cmdSignUp(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		auth, err := serverAdapter.Register(ctx, req)
		return authDoneMsg{auth: auth, err: err}
	}
}

func (m appModel) cmdRefreshProfile() tea.Cmd {
	ctx := m.ctx
	sess := m.session
	return func() tea.Msg {
		if err := sess.Refresh(ctx); err != nil {
			return profileLoadedMsg{err: err}
		}
		user, _ := sess.User()
		return profileLoadedMsg{user: user}
	}
}

func (m appModel) cmdLoadEntries(kind entryKind) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		if kind == kindQualification {
			qualifications, err := serverAdapter.ListQualifications(ctx)
			items := make([]entry, 0, len(qualifications))
			for _, q := range qualifications {
				items = append(items, entryFromQualification(q))
			}
			return entriesLoadedMsg{kind: kind, items: items, err: err}
		}

		projects, err := serverAdapter.ListProjects(ctx)
		items := make([]entry, 0, len(projects))
		for _, p := range projects {
			items = append(items, entryFromProject(p))
		}
		return entriesLoadedMsg{kind: kind, items: items, err: err}
	}
}

func (m appModel) cmdLoadContacts() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		items, err := serverAdapter.ListContacts(ctx)
		return contactsLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdSubmitContact(contact models.Contact) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		_, err := serverAdapter.SubmitContact(ctx, contact)
		return contactSubmittedMsg{err: err}
	}
}

func (m appModel) cmdSaveEntry(item entry, kind entryKind, editing bool) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		var err error
		switch {
		case kind == kindQualification && editing:
			_, err = serverAdapter.UpdateQualification(ctx, item.ID, item.toQualificationUpdate())
		case kind == kindQualification:
			_, err = serverAdapter.CreateQualification(ctx, item.toQualification())
		case editing:
			_, err = serverAdapter.UpdateProject(ctx, item.ID, item.toProjectUpdate())
		default:
			_, err = serverAdapter.CreateProject(ctx, item.toProject())
		}
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdDeletePending() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	id := m.pendingDeleteID
	isContact := m.pendingDeleteContact
	kind := m.detail.kind
	return func() tea.Msg {
		var err error
		switch {
		case isContact:
			err = serverAdapter.DeleteContact(ctx, id)
		case kind == kindQualification:
			err = serverAdapter.DeleteQualification(ctx, id)
		default:
			err = serverAdapter.DeleteProject(ctx, id)
		}
		return itemDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return itemSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextSignIn(m signInModel) signInModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevSignIn(m signInModel) signInModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextSignUp(m signUpModel) signUpModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevSignUp(m signUpModel) signUpModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextEntryForm(m entryFormModel) entryFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevEntryForm(m entryFormModel) entryFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextContactForm(m contactFormModel) contactFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevContactForm(m contactFormModel) contactFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
