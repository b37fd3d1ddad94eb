// Package adapter provides concrete input adapters built by composition over
// the generic field controller in pkg/form.
//
// An adapter owns a [form.FieldController] and wraps its DidChange entry
// point with input-specific behavior: a text adapter collapses echoed
// updates, a selection adapter enforces that only declared options can be
// chosen. Bindings talk to the adapter for input and read error state
// through it; form-wide operations (validate, save, reset) still flow
// through the underlying controller via the enclosing form.
package adapter

import "github.com/go-drift/formstate/pkg/form"

// TextConfig configures a [Text] adapter.
type TextConfig struct {
	// InitialText is the starting content.
	InitialText string
	// Validator returns an error message or "" if the text is valid.
	Validator func(string) string
	// OnSaved is called with the current text when the form is saved.
	OnSaved func(string)
	// OnChanged is called after each user edit.
	OnChanged func(string)
	// Autovalidate enables re-validation on render once the field is dirty.
	Autovalidate bool
	// Disabled excludes the field from autovalidate participation.
	Disabled bool
}

// Text adapts a text input to a [form.FieldController].
//
// Call [Text.SetText] for user edits and [Text.CorrectText] for
// framework-internal corrections. SetText suppresses no-op updates so that
// an editing controller echoing the current text back (a common pattern
// with IME composition) does not register as a second user edit.
type Text struct {
	field *form.FieldController[string]
}

// NewText creates a Text adapter with an unmounted field controller.
func NewText(cfg TextConfig) *Text {
	return &Text{
		field: form.NewField(form.FieldConfig[string]{
			InitialValue: cfg.InitialText,
			Validator:    cfg.Validator,
			OnSaved:      cfg.OnSaved,
			OnChanged:    cfg.OnChanged,
			Autovalidate: cfg.Autovalidate,
			Disabled:     cfg.Disabled,
		}),
	}
}

// Field returns the underlying controller, for mounting into a form scope
// and for direct state inspection.
func (t *Text) Field() *form.FieldController[string] { return t.field }

// Text returns the current content.
func (t *Text) Text() string { return t.field.Value() }

// SetText records one discrete user edit. Setting the text it already holds
// is a no-op and does not mark the field dirty.
func (t *Text) SetText(text string) {
	if text == t.field.Value() {
		return
	}
	t.field.DidChange(text)
}

// CorrectText replaces the content without marking the field as touched and
// without notifying the form. Reserved for internal corrections that must
// not count as user interaction.
func (t *Text) CorrectText(text string) {
	t.field.SetValue(text)
}

// ErrorText returns the field's current validation message, or "".
func (t *Text) ErrorText() string { return t.field.ErrorText() }

// HasError reports whether the field currently carries an error.
func (t *Text) HasError() bool { return t.field.HasError() }
