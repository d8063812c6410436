package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

const completionLayout = "2006-01-02"

// entryFormModel creates or edits a project/qualification record. All six
// fields are plain text inputs; the completion date is typed as YYYY-MM-DD
// and parsed on submit.
type entryFormModel struct {
	kind       entryKind
	inputs     []textinput.Model
	focus      int
	editing    bool
	entryID    int64
	submitting bool
	errMsg     string
}

func newEntryFormModel(kind entryKind, item *entry) entryFormModel {
	inputs := make([]textinput.Model, 6)
	placeholders := []string{"title", "firstname", "lastname", "email", completionLayout, "description"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].Width = 50
	}
	inputs[5].CharLimit = 2000
	inputs[0].Focus()

	m := entryFormModel{kind: kind, inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.entryID = item.ID
	m.inputs[0].SetValue(item.Title)
	m.inputs[1].SetValue(item.Firstname)
	m.inputs[2].SetValue(item.Lastname)
	m.inputs[3].SetValue(item.Email)
	m.inputs[4].SetValue(item.Completion.Format(completionLayout))
	m.inputs[5].SetValue(item.Description)
	return m
}

// toEntry validates and collects the form into an entry. The returned
// string is a user-facing problem description, empty on success.
func (m entryFormModel) toEntry() (entry, string) {
	e := entry{
		ID:          m.entryID,
		Title:       strings.TrimSpace(m.inputs[0].Value()),
		Firstname:   strings.TrimSpace(m.inputs[1].Value()),
		Lastname:    strings.TrimSpace(m.inputs[2].Value()),
		Email:       strings.TrimSpace(m.inputs[3].Value()),
		Description: strings.TrimSpace(m.inputs[5].Value()),
	}

	if e.Title == "" || e.Firstname == "" || e.Lastname == "" || e.Email == "" || e.Description == "" {
		return entry{}, "all fields are required"
	}

	completion, err := time.Parse(completionLayout, strings.TrimSpace(m.inputs[4].Value()))
	if err != nil {
		return entry{}, "completion date must be " + completionLayout
	}
	e.Completion = completion

	return e, ""
}

func (m entryFormModel) View() string {
	title := "New " + m.kind.noun()
	if m.editing {
		title = "Edit: " + m.inputs[0].Value()
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")
	labels := []string{"Title:      ", "Firstname:  ", "Lastname:   ", "Email:      ", "Completion: ", "Description:"}
	for i, label := range labels {
		b.WriteString(fmt.Sprintf("%s [%s]\n", label, m.inputs[i].View()))
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(m.kind.title(), strings.TrimRight(b.String(), "\n"),
		"esc: cancel │ tab: next field │ enter: save")
}
