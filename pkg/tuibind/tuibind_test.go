package tuibind_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/formstate/pkg/adapter"
	"github.com/go-drift/formstate/pkg/form"
	"github.com/go-drift/formstate/pkg/tuibind"
)

func newLoginModel() (tuibind.Model, *adapter.Text, *adapter.Text) {
	ctrl := form.NewController(form.Config{Autovalidate: true})

	email := adapter.NewText(adapter.TextConfig{
		Validator: func(value string) string {
			if !strings.Contains(value, "@") {
				return "enter a valid email"
			}
			return ""
		},
	})
	email.Field().Mount(ctrl)

	password := adapter.NewText(adapter.TextConfig{
		Validator: func(value string) string {
			if len(value) < 8 {
				return "password too short"
			}
			return ""
		},
	})
	password.Field().Mount(ctrl)

	model := tuibind.NewModel("Sign in", ctrl, []tuibind.Row{
		{Label: "email", Input: email},
		{Label: "password", Input: password},
	})
	return model, email, password
}

func typeString(t *testing.T, model tea.Model, text string) tea.Model {
	t.Helper()
	for _, r := range text {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}

func TestModelTypingSurfacesErrorOnlyForTouchedField(t *testing.T) {
	model, email, password := newLoginModel()

	view := model.View()
	if strings.Contains(view, "enter a valid email") || strings.Contains(view, "password too short") {
		t.Fatalf("errors shown before any input:\n%s", view)
	}

	var next tea.Model = model
	next = typeString(t, next, "nope")

	if got := email.ErrorText(); got != "enter a valid email" {
		t.Errorf("expected email error after typing, got %q", got)
	}
	if password.HasError() {
		t.Errorf("untouched password field surfaced error %q", password.ErrorText())
	}

	view = next.(tuibind.Model).View()
	if !strings.Contains(view, "enter a valid email") {
		t.Errorf("email error missing from view:\n%s", view)
	}
	if strings.Contains(view, "password too short") {
		t.Errorf("password error shown without input:\n%s", view)
	}
}

func TestModelEnterForcesValidation(t *testing.T) {
	model, email, password := newLoginModel()

	var next tea.Model = model
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !email.HasError() || !password.HasError() {
		t.Error("submit did not force-validate untouched fields")
	}

	view := next.(tuibind.Model).View()
	if !strings.Contains(view, "fix the errors above") {
		t.Errorf("expected failure status in view:\n%s", view)
	}
}

func TestModelTabMovesFocus(t *testing.T) {
	model, email, password := newLoginModel()

	var next tea.Model = model
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	next = typeString(t, next, "secret")

	if email.Field().IsDirty() {
		t.Error("typing after tab edited the first field")
	}
	if password.Text() != "secret" {
		t.Errorf("expected second field to receive input, got %q", password.Text())
	}
}

func TestModelBackspace(t *testing.T) {
	model, email, _ := newLoginModel()

	var next tea.Model = model
	next = typeString(t, next, "ab")
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	if email.Text() != "a" {
		t.Errorf("expected %q after backspace, got %q", "a", email.Text())
	}

	// Backspace on an empty field is a no-op.
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if _, cmd := next.Update(tea.KeyMsg{Type: tea.KeyBackspace}); cmd != nil {
		t.Error("backspace on empty field produced a command")
	}
}

func TestModelReset(t *testing.T) {
	model, email, _ := newLoginModel()

	var next tea.Model = model
	next = typeString(t, next, "bad")
	if !email.HasError() {
		t.Fatal("expected error before reset")
	}

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	if email.Text() != "" || email.HasError() {
		t.Errorf("reset left text=%q error=%q", email.Text(), email.ErrorText())
	}

	view := next.(tuibind.Model).View()
	if !strings.Contains(view, "reset") {
		t.Errorf("expected reset status in view:\n%s", view)
	}
}

func TestModelQuits(t *testing.T) {
	model, _, _ := newLoginModel()

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if msg := cmd(); msg == nil {
		t.Error("expected quit command to produce a message")
	}
}
