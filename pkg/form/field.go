package form

import "github.com/go-drift/formstate/pkg/observe"

// FieldConfig configures a [FieldController].
type FieldConfig[T comparable] struct {
	// InitialValue is the field's starting value, and the value Reset
	// returns to.
	InitialValue T
	// Validator returns an error message, or "" when the value is valid.
	Validator func(T) string
	// OnSaved receives the current value when the field (or its form) is
	// saved.
	OnSaved func(T)
	// OnChanged is called after each user-driven value change.
	OnChanged func(T)
	// Autovalidate enables the render-time re-validation check for this
	// field, independent of the form-level setting.
	Autovalidate bool
	// Disabled excludes the field from autovalidate participation.
	Disabled bool
}

// FieldController owns one field's value, dirty flag, and last computed
// validation error.
//
// The controller distinguishes two value-assignment paths:
//
//   - [FieldController.DidChange] is the user-interaction entry point. It is
//     the only path that marks the field dirty, and it notifies the
//     enclosing form.
//   - [FieldController.SetValue] assigns silently. It exists for
//     framework-internal corrections (an adapter snapping an out-of-range
//     value back during the same render pass) that must not count as "the
//     user touched this field".
//
// Error text follows the validator convention: "" means valid or not yet
// validated, anything else is the message to surface. The stored error text
// is the cached result of the last validator run, refreshed only by
// Validate and the render-time autovalidate check — not by value changes
// themselves.
type FieldController[T comparable] struct {
	value        T
	initialValue T
	errorText    string
	dirty        bool

	validator    func(T) string
	onSaved      func(T)
	onChanged    func(T)
	autovalidate bool
	disabled     bool

	form     *Controller
	notifier *observe.Notifier
}

// NewField creates an unmounted field controller. The field starts clean:
// value equals InitialValue, no error text, not dirty.
func NewField[T comparable](cfg FieldConfig[T]) *FieldController[T] {
	return &FieldController[T]{
		value:        cfg.InitialValue,
		initialValue: cfg.InitialValue,
		validator:    cfg.Validator,
		onSaved:      cfg.OnSaved,
		onChanged:    cfg.OnChanged,
		autovalidate: cfg.Autovalidate,
		disabled:     cfg.Disabled,
		notifier:     observe.NewNotifier(),
	}
}

// Mount resolves the enclosing form through scope and registers the field
// with it. Mounting into the same form twice is a no-op; mounting into a
// different form moves the registration. A nil scope, or a scope that
// resolves to no form, leaves the field standalone — every operation still
// works, there is simply no form to broadcast to.
func (c *FieldController[T]) Mount(scope Scope) {
	var form *Controller
	if scope != nil {
		form = scope.EnclosingForm()
	}
	if form == c.form {
		return
	}
	if c.form != nil {
		c.form.Unregister(c)
	}
	c.form = form
	if form != nil {
		form.Register(c)
	}
}

// Unmount unregisters the field from its enclosing form, if any.
func (c *FieldController[T]) Unmount() {
	if c.form != nil {
		c.form.Unregister(c)
		c.form = nil
	}
}

// Form returns the enclosing form, or nil when the field is standalone.
func (c *FieldController[T]) Form() *Controller { return c.form }

// Value returns the current value.
func (c *FieldController[T]) Value() T { return c.value }

// ErrorText returns the last computed validation message, or "".
func (c *FieldController[T]) ErrorText() string { return c.errorText }

// HasError reports whether the field currently carries an error.
func (c *FieldController[T]) HasError() bool { return c.errorText != "" }

// IsDirty reports whether the user has changed the value since construction
// or the last Reset.
func (c *FieldController[T]) IsDirty() bool { return c.dirty }

// IsValid probes the validator against the current value without touching
// the stored error text. A field with no validator is always valid.
func (c *FieldController[T]) IsValid() bool {
	if c.validator == nil {
		return true
	}
	return c.validator(c.value) == ""
}

// AddListener subscribes to this field's local re-renders.
// Returns an unsubscribe function.
func (c *FieldController[T]) AddListener(fn func()) func() {
	return c.notifier.AddListener(fn)
}

// DidChange records a user-driven value change: it assigns the value, marks
// the field dirty, fires the field's OnChanged callback, triggers a local
// re-render, and finally notifies the enclosing form. This is the only path
// that marks a field dirty. The steps run synchronously, in that order,
// before DidChange returns.
func (c *FieldController[T]) DidChange(value T) {
	c.value = value
	c.dirty = true
	if c.onChanged != nil {
		c.onChanged(value)
	}
	c.notifier.Notify()
	if c.form != nil {
		c.form.fieldDidChange()
	}
}

// SetValue assigns the value without marking the field dirty and without
// notifying anyone. See the type documentation for when to use it.
func (c *FieldController[T]) SetValue(value T) {
	c.value = value
}

// Validate recomputes the error text from the current value, triggers a
// local re-render, and reports whether the field is error-free.
//
// A field with no validator leaves its stored error text untouched: such a
// field is silently always valid and never clears an error set through some
// other path.
func (c *FieldController[T]) Validate() bool {
	if c.validator != nil {
		c.errorText = c.validator(c.value)
	}
	c.notifier.Notify()
	return !c.HasError()
}

// Save passes the current value to the OnSaved callback, if configured.
// Save never mutates the field's own state.
func (c *FieldController[T]) Save() {
	if c.onSaved != nil {
		c.onSaved(c.value)
	}
}

// Reset returns the field to its construction-time state: not dirty, value
// back to InitialValue, error text cleared. No user callbacks run on this
// path. Reset does not notify the enclosing form; a caller orchestrating a
// form-wide reset raises one form-level notification instead of one per
// field.
func (c *FieldController[T]) Reset() {
	c.dirty = false
	c.value = c.initialValue
	c.errorText = ""
	c.notifier.Notify()
}

// Rebuild runs the render-time autovalidate check. Bindings call it on
// every re-render of the field. The field re-validates only when
// autovalidate applies (on the field itself or on the enclosing form), the
// field is not disabled, and the field is dirty. Until the first DidChange,
// rendering alone never surfaces an error.
func (c *FieldController[T]) Rebuild() {
	if !c.autovalidateEffective() || c.disabled || !c.dirty {
		return
	}
	if c.validator != nil {
		c.errorText = c.validator(c.value)
	}
}

func (c *FieldController[T]) autovalidateEffective() bool {
	if c.autovalidate {
		return true
	}
	return c.form != nil && c.form.autovalidate
}
