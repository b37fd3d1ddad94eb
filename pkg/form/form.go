package form

import "github.com/go-drift/formstate/pkg/observe"

// Field is the contract a field controller satisfies toward its enclosing
// form. [FieldController] implements it; so can any custom field type that
// wants to participate in form-wide operations.
type Field interface {
	// Validate recomputes the field's error text and reports whether the
	// field is error-free.
	Validate() bool
	// Save passes the current value to the field's save callback.
	Save()
	// Reset returns the field to its construction-time state.
	Reset()
	// Rebuild runs the field's render-time autovalidate check.
	Rebuild()
}

// Scope resolves the nearest enclosing form for a field at mount time.
//
// A binding layer passes a Scope down its component tree so that fields can
// find their form without a global lookup. [Controller] implements Scope by
// returning itself, so the form can be injected directly where no tree
// exists. A nil Scope (or a Scope that resolves to nil) leaves the field
// standalone.
type Scope interface {
	EnclosingForm() *Controller
}

// Config configures a [Controller].
type Config struct {
	// Autovalidate makes every registered field re-validate during render
	// passes once that field has been touched by the user. It acts as a
	// mode default; fields can also opt in individually.
	Autovalidate bool
	// OnChanged is called once per field-level change event.
	OnChanged func()
}

// Controller aggregates registered fields and coordinates validation, save,
// and reset across all of them.
//
// The controller's only own state is a generation counter that increments on
// every externally visible change (field change, forced validate, reset).
// Bindings subscribe to it with AddListener and use it as a change-detection
// token; they never need to deep-compare field state.
//
// Fields register themselves during Mount and unregister during Unmount.
// The controller tracks membership for broadcast only; it does not own
// field lifetime.
type Controller struct {
	fields       map[Field]struct{}
	generation   int
	autovalidate bool
	onChanged    func()
	notifier     *observe.Notifier
}

// NewController creates a Controller with no registered fields.
func NewController(cfg Config) *Controller {
	return &Controller{
		fields:       make(map[Field]struct{}),
		autovalidate: cfg.Autovalidate,
		onChanged:    cfg.OnChanged,
		notifier:     observe.NewNotifier(),
	}
}

// EnclosingForm implements [Scope], so a Controller can be passed directly
// as the ambient scope for its fields.
func (c *Controller) EnclosingForm() *Controller { return c }

// Autovalidate reports the form-level autovalidate mode default.
func (c *Controller) Autovalidate() bool { return c.autovalidate }

// Generation returns the current value of the change-detection counter.
func (c *Controller) Generation() int { return c.generation }

// AddListener subscribes to generation changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	return c.notifier.AddListener(fn)
}

// Register adds a field to the form. Re-registering the same field is a
// no-op. Registration alone triggers no validation and no notification.
func (c *Controller) Register(field Field) {
	c.fields[field] = struct{}{}
}

// Unregister removes a field from the form. No-op if the field is absent.
func (c *Controller) Unregister(field Field) {
	delete(c.fields, field)
}

// FieldCount returns the number of registered fields.
func (c *Controller) FieldCount() int { return len(c.fields) }

// Save calls Save on every registered field. Fields without a save callback
// are skipped silently. No cross-field ordering is defined.
func (c *Controller) Save() {
	for field := range c.fields {
		field.Save()
	}
}

// Reset resets every registered field to its initial value, then raises a
// single form-level change notification. Fields are not reset atomically;
// each reset is independent.
func (c *Controller) Reset() {
	for field := range c.fields {
		field.Reset()
	}
	c.notifyChanged()
}

// Validate forces a fresh render pass, then validates every registered
// field and returns true only if all of them report no error.
//
// Unlike the render-time autovalidate path, Validate bypasses dirty gating:
// callers expect visible error text immediately, even for untouched fields.
func (c *Controller) Validate() bool {
	c.bumpGeneration()
	valid := true
	for field := range c.fields {
		if !field.Validate() {
			valid = false
		}
	}
	return valid
}

// Rebuild runs one render pass over every registered field. Bindings call
// this after a generation change so each field re-evaluates its
// autovalidate condition against the latest state, including values of
// other fields its validator may read.
func (c *Controller) Rebuild() {
	for field := range c.fields {
		field.Rebuild()
	}
}

// fieldDidChange is invoked by a field's user-change path. It fires the
// form-level OnChanged callback and triggers a full re-render so every
// field gets a chance to re-evaluate its autovalidate condition.
func (c *Controller) fieldDidChange() {
	c.notifyChanged()
}

func (c *Controller) notifyChanged() {
	if c.onChanged != nil {
		c.onChanged()
	}
	c.bumpGeneration()
}

func (c *Controller) bumpGeneration() {
	c.generation++
	c.notifier.Notify()
}
