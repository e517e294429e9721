// Package tui provides the interactive terminal client for issuetrack.
//
// The model hosts the form state machine and the displayed-list reconciler;
// all server traffic runs through api.Client commands, one submission at a
// time.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trailhead-labs/issuetrack/internal/api"
	"github.com/trailhead-labs/issuetrack/internal/debug"
	"github.com/trailhead-labs/issuetrack/internal/form"
	"github.com/trailhead-labs/issuetrack/internal/reconcile"
	"github.com/trailhead-labs/issuetrack/internal/types"
)

// focus zones: the three form fields, then the issue list.
const (
	focusID = iota
	focusTitle
	focusDescription
	focusList
	focusZones
)

var fieldForFocus = map[int]form.Field{
	focusID:          form.FieldID,
	focusTitle:       form.FieldTitle,
	focusDescription: form.FieldDescription,
}

// Model is the bubbletea model for the issue tracker UI.
type Model struct {
	client *api.Client
	form   *form.Form
	list   *reconcile.List

	inputs [3]textinput.Model
	focus  int

	selected int
	loaded   bool

	keys   KeyMap
	status string

	width, height int
}

// NewModel creates the UI model for the given client.
func NewModel(client *api.Client) *Model {
	var inputs [3]textinput.Model
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 200
	}
	inputs[focusID].Placeholder = "4-digit ID"
	inputs[focusID].CharLimit = 5
	inputs[focusTitle].Placeholder = "Title"
	inputs[focusDescription].Placeholder = "Description"
	inputs[focusID].Focus()

	return &Model{
		client: client,
		form:   form.New(),
		list:   reconcile.NewList(nil),
		inputs: inputs,
		keys:   DefaultKeyMap(),
		status: "loading issues...",
	}
}

// Init starts the one-time list fetch.
func (m *Model) Init() tea.Cmd {
	return m.fetchIssues()
}

func (m *Model) fetchIssues() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		issues, err := client.ListWithRetry(context.Background(), 10*time.Second)
		if err != nil {
			return requestFailedMsg{Op: "list", Err: err}
		}
		return issuesLoadedMsg{Issues: issues}
	}
}

// Update advances the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case issuesLoadedMsg:
		m.list = reconcile.NewList(msg.Issues)
		m.loaded = true
		m.status = ""
		return m, nil

	case createdMsg:
		m.form.SubmitSucceeded()
		m.list.ApplyCreate(msg.Issue)
		m.clearInputs()
		m.status = "created"
		return m, nil

	case updatedMsg:
		m.form.SubmitSucceeded()
		m.list.ApplyUpdate(msg.Issue)
		m.clearInputs()
		m.status = "updated"
		return m, nil

	case deletedMsg:
		m.list.ApplyDelete(msg.ID)
		if m.selected >= m.list.Len() && m.selected > 0 {
			m.selected--
		}
		m.status = "deleted"
		return m, nil

	case requestFailedMsg:
		return m.handleFailure(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleFailure(msg requestFailedMsg) (tea.Model, tea.Cmd) {
	if (msg.Op == "create" || msg.Op == "update") && m.form.State() == form.StateSubmitting {
		if api.IsDuplicateID(msg.Err) {
			m.form.SubmitFailedDuplicate("ID already exists")
			return m, nil
		}
		// Any other failure: keep the draft, log, surface nothing per-field.
		m.form.SubmitFailed()
	}
	debug.Logf("%s failed: %v", msg.Op, msg.Err)
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && (m.focus == focusList || msg.String() == "ctrl+c") {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.form.Mode() == form.ModeEdit {
			m.form.Cancel()
			m.clearInputs()
			m.setFocus(focusID)
			m.status = "edit cancelled"
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit) && m.focus != focusList:
		return m, m.submit()
	}

	if m.focus == focusList {
		return m.handleListKey(msg)
	}

	return m.handleFieldKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < m.list.Len()-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Edit):
		if m.selected < m.list.Len() {
			m.beginEdit(m.list.At(m.selected))
		}
	case key.Matches(msg, m.keys.Delete):
		if m.selected < m.list.Len() {
			return m, m.deleteIssue(m.list.At(m.selected).ID)
		}
	}
	return m, nil
}

func (m *Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The ID input is locked while editing an existing issue.
	if m.focus == focusID && m.form.IDLocked() {
		return m, nil
	}
	// The state machine ignores input in flight; so does the view.
	if m.form.State() == form.StateSubmitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.form.SetField(fieldForFocus[m.focus], m.inputs[m.focus].Value())
	return m, cmd
}

func (m *Model) beginEdit(issue types.Issue) {
	m.form.BeginEdit(issue)
	m.inputs[focusID].SetValue(m.form.Value(form.FieldID))
	m.inputs[focusTitle].SetValue(issue.Title)
	m.inputs[focusDescription].SetValue(issue.Description)
	m.setFocus(focusTitle)
	m.status = ""
}

// submit dispatches a create or update depending on mode. The submit gate
// lives in the form: nothing is dispatched unless the draft is dirty,
// valid, and not already in flight.
func (m *Model) submit() tea.Cmd {
	if !m.form.BeginSubmit() {
		return nil
	}

	client := m.client
	issue := m.form.Issue()
	if m.form.Mode() == form.ModeEdit {
		return func() tea.Msg {
			updated, err := client.Update(context.Background(), issue.ID, issue.Title, issue.Description)
			if err != nil {
				return requestFailedMsg{Op: "update", Err: err}
			}
			return updatedMsg{Issue: updated}
		}
	}
	return func() tea.Msg {
		created, err := client.Create(context.Background(), issue)
		if err != nil {
			return requestFailedMsg{Op: "create", Err: err}
		}
		return createdMsg{Issue: created}
	}
}

func (m *Model) deleteIssue(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.Delete(context.Background(), id); err != nil {
			return requestFailedMsg{Op: "delete", Err: err}
		}
		return deletedMsg{ID: id}
	}
}

func (m *Model) cycleFocus(dir int) {
	next := (m.focus + dir + focusZones) % focusZones
	// Skip the locked ID field while editing.
	if next == focusID && m.form.IDLocked() {
		next = (next + dir + focusZones) % focusZones
	}
	m.setFocus(next)
}

func (m *Model) setFocus(zone int) {
	m.focus = zone
	for i := range m.inputs {
		if i == zone {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *Model) clearInputs() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.setFocus(focusID)
}
