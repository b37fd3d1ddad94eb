// Package form implements a rendering-agnostic form-state layer: a
// [Controller] that aggregates field controllers and fans save, reset, and
// validate operations out to all of them, and a generic [FieldController]
// that owns one field's value, dirty flag, and validation error.
//
// The package has no opinion about how fields are drawn. A binding layer
// (native widget tree, web component, terminal UI) drives the controllers
// and reads their state back each render pass:
//
//   - On every user-driven value change, call [FieldController.DidChange]
//     exactly once. Never use SetValue for user input; it is reserved for
//     framework-internal corrections that must not count as interaction.
//   - Subscribe to the form's generation counter with AddListener. When it
//     changes, re-render and call [Controller.Rebuild] (or each field's
//     Rebuild) so every field re-evaluates its autovalidate condition.
//   - Read ErrorText/HasError each render to decide whether to surface an
//     error indicator.
//
// # Autovalidation
//
// Autovalidation is gated on user interaction. A field re-validates during
// a render pass only when all of the following hold: autovalidate is enabled
// (on the field or on the enclosing form), the field is not disabled, and
// the field is dirty. A field becomes dirty the first time DidChange is
// called on it and stays dirty until Reset. Until then, rendering alone
// never surfaces an error, even when autovalidate was enabled from the very
// first render. Call [Controller.Validate] to force-validate every field
// regardless of dirty state (for example on submit).
//
// Example:
//
//	ctrl := form.NewController(form.Config{Autovalidate: true})
//	email := form.NewField(form.FieldConfig[string]{
//	    Validator: func(value string) string {
//	        if !strings.Contains(value, "@") {
//	            return "enter a valid email address"
//	        }
//	        return ""
//	    },
//	    OnSaved: func(value string) {
//	        // called from ctrl.Save()
//	    },
//	})
//	email.Mount(ctrl)
//
//	email.DidChange("someone@example.com") // user typed
//	if ctrl.Validate() {
//	    ctrl.Save()
//	}
//
// All state lives in memory and every operation is synchronous. The package
// assumes a single logical thread of control; validators and callbacks may
// re-enter the controllers, which simply recurses.
package form
