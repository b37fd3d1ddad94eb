// Package tuibind renders a form as a Bubble Tea model.
//
// The binding demonstrates the contract the form core expects from any
// rendering layer: keystrokes flow through the text adapters' SetText
// (the user-interaction path), and after every update the model runs a
// render pass when the form's generation counter has moved, so each field
// re-evaluates its autovalidate condition before the next View.
package tuibind

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/formstate/pkg/adapter"
	"github.com/go-drift/formstate/pkg/form"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Row pairs a display label with the text adapter that backs it.
type Row struct {
	Label string
	Input *adapter.Text
}

// Model is a Bubble Tea model that drives a form.
//
//	model := tuibind.NewModel("Sign in", ctrl, rows)
//	_, err := tea.NewProgram(model).Run()
type Model struct {
	title          string
	form           *form.Controller
	rows           []Row
	focus          int
	status         string
	lastGeneration int
}

// NewModel creates a model over an already-wired form. The rows' fields are
// expected to be mounted into ctrl.
func NewModel(title string, ctrl *form.Controller, rows []Row) Model {
	return Model{
		title:          title,
		form:           ctrl,
		rows:           rows,
		lastGeneration: ctrl.Generation(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Edits route through the focused adapter's
// SetText; enter force-validates and saves; ctrl+r resets the form.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		if len(m.rows) > 0 {
			m.focus = (m.focus + 1) % len(m.rows)
		}
	case "shift+tab", "up":
		if len(m.rows) > 0 {
			m.focus = (m.focus + len(m.rows) - 1) % len(m.rows)
		}
	case "enter":
		if m.form.Validate() {
			m.form.Save()
			m.status = "saved"
		} else {
			m.status = "fix the errors above"
		}
	case "ctrl+r":
		m.form.Reset()
		m.status = "reset"
	case "backspace":
		if row := m.focusedRow(); row != nil {
			text := row.Input.Text()
			if text != "" {
				runes := []rune(text)
				row.Input.SetText(string(runes[:len(runes)-1]))
			}
		}
	default:
		if keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace {
			if row := m.focusedRow(); row != nil {
				row.Input.SetText(row.Input.Text() + string(keyMsg.Runes))
			}
		}
	}

	m.pump()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n\n")
	}

	for i, row := range m.rows {
		label := labelStyle.Render(row.Label)
		cursor := "  "
		if i == m.focus {
			label = focusStyle.Render(row.Label)
			cursor = focusStyle.Render("> ")
		}
		b.WriteString(cursor + label + ": " + valueStyle.Render(row.Input.Text()))
		b.WriteString("\n")
		if row.Input.HasError() {
			b.WriteString("    " + errorStyle.Render(row.Input.ErrorText()))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab: next field • enter: submit • ctrl+r: reset • esc: quit") + "\n")
	return b.String()
}

// pump runs one render pass when the generation counter has moved since the
// last pass, the way a push-based binding re-renders on notification.
func (m *Model) pump() {
	if m.form.Generation() == m.lastGeneration {
		return
	}
	m.lastGeneration = m.form.Generation()
	m.form.Rebuild()
}

func (m *Model) focusedRow() *Row {
	if m.focus < 0 || m.focus >= len(m.rows) {
		return nil
	}
	return &m.rows[m.focus]
}
