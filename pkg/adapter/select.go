package adapter

import (
	"fmt"

	"github.com/go-drift/formstate/pkg/form"
)

// Option is one selectable value of a [Select] adapter.
type Option[T comparable] struct {
	// Value is the option's value.
	Value T
	// Label is the text shown for the option.
	Label string
	// Disabled excludes the option from selection.
	Disabled bool
}

// SelectConfig configures a [Select] adapter.
type SelectConfig[T comparable] struct {
	// Options are the declared selectable values.
	Options []Option[T]
	// InitialValue must match exactly one enabled option.
	InitialValue T
	// Validator returns an error message or "" if the selection is valid.
	Validator func(T) string
	// OnSaved is called with the current selection when the form is saved.
	OnSaved func(T)
	// OnChanged is called after each user selection.
	OnChanged func(T)
	// Autovalidate enables re-validation on render once the field is dirty.
	Autovalidate bool
	// Disabled excludes the field from autovalidate participation.
	Disabled bool
}

// Select adapts a selection input (dropdown, radio group, picker) to a
// [form.FieldController]. Only values declared in Options can be selected.
type Select[T comparable] struct {
	field   *form.FieldController[T]
	options []Option[T]
}

// NewSelect creates a Select adapter with an unmounted field controller.
//
// NewSelect panics when the initial value matches zero or more than one
// enabled option. That configuration is a programmer error, caught at
// construction rather than surfaced as a runtime validation failure.
func NewSelect[T comparable](cfg SelectConfig[T]) *Select[T] {
	matches := 0
	for _, opt := range cfg.Options {
		if !opt.Disabled && opt.Value == cfg.InitialValue {
			matches++
		}
	}
	if matches != 1 {
		panic(fmt.Sprintf(
			"adapter: Select initial value %v must match exactly one enabled option, matched %d",
			cfg.InitialValue, matches))
	}

	options := make([]Option[T], len(cfg.Options))
	copy(options, cfg.Options)

	return &Select[T]{
		field: form.NewField(form.FieldConfig[T]{
			InitialValue: cfg.InitialValue,
			Validator:    cfg.Validator,
			OnSaved:      cfg.OnSaved,
			OnChanged:    cfg.OnChanged,
			Autovalidate: cfg.Autovalidate,
			Disabled:     cfg.Disabled,
		}),
		options: options,
	}
}

// Field returns the underlying controller, for mounting into a form scope
// and for direct state inspection.
func (s *Select[T]) Field() *form.FieldController[T] { return s.field }

// Options returns the declared options.
func (s *Select[T]) Options() []Option[T] {
	out := make([]Option[T], len(s.options))
	copy(out, s.options)
	return out
}

// Value returns the current selection.
func (s *Select[T]) Value() T { return s.field.Value() }

// Select records a user selection. Values that do not match an enabled
// option are rejected and the adapter reports false with no state change.
// Re-selecting the current value is a no-op that still reports true.
func (s *Select[T]) Select(value T) bool {
	if !s.allows(value) {
		return false
	}
	if value == s.field.Value() {
		return true
	}
	s.field.DidChange(value)
	return true
}

// ErrorText returns the field's current validation message, or "".
func (s *Select[T]) ErrorText() string { return s.field.ErrorText() }

// HasError reports whether the field currently carries an error.
func (s *Select[T]) HasError() bool { return s.field.HasError() }

func (s *Select[T]) allows(value T) bool {
	for _, opt := range s.options {
		if !opt.Disabled && opt.Value == value {
			return true
		}
	}
	return false
}
