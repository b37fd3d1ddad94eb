// Package formtest provides a deterministic render-pass harness for testing
// form controllers without a rendering layer.
//
// A Harness stands in for the binding: Pump performs one render pass over
// its targets, and Bind makes the harness pump automatically whenever a
// Listenable (typically a form's generation counter) notifies, the way a
// push-based binding re-renders on change.
package formtest

import "github.com/go-drift/formstate/pkg/observe"

// Rebuilder is anything that participates in a render pass. Both
// form.Controller and form.FieldController satisfy it, so a harness can
// drive a whole form or a standalone field.
type Rebuilder interface {
	Rebuild()
}

// Harness drives render passes over a fixed set of targets.
type Harness struct {
	targets      []Rebuilder
	pumps        int
	unsubscribes []func()
}

// NewHarness creates a harness over the given targets.
func NewHarness(targets ...Rebuilder) *Harness {
	return &Harness{targets: targets}
}

// Pump performs one render pass: every target's Rebuild runs once.
func (h *Harness) Pump() {
	h.pumps++
	for _, target := range h.targets {
		target.Rebuild()
	}
}

// PumpCount returns how many render passes have run.
func (h *Harness) PumpCount() int { return h.pumps }

// Bind subscribes the harness to a change source and pumps on every
// notification. Call Unbind (or the returned function) to stop.
func (h *Harness) Bind(source observe.Listenable) func() {
	unsub := source.AddListener(h.Pump)
	h.unsubscribes = append(h.unsubscribes, unsub)
	return unsub
}

// Unbind removes every subscription made through Bind.
func (h *Harness) Unbind() {
	for _, unsub := range h.unsubscribes {
		unsub()
	}
	h.unsubscribes = nil
}
