// Package observe provides the change-notification primitives that connect
// form controllers to a binding layer.
//
// The controllers in pkg/form expose their state changes through these types:
// a binding subscribes with AddListener and re-runs its render pass whenever
// it is notified. Nothing here is thread-safe; the form layer runs on a
// single logical thread of control (the binding's event loop).
package observe

// Listenable is anything that can notify listeners of changes.
//
// AddListener returns an unsubscribe function. Calling it more than once is
// harmless.
type Listenable interface {
	AddListener(fn func()) func()
}

// Notifier is a basic [Listenable] that broadcasts to registered listeners.
//
// Example:
//
//	notifier := observe.NewNotifier()
//	unsub := notifier.AddListener(func() {
//	    // react to the change
//	})
//	notifier.Notify()
//	unsub()
type Notifier struct {
	listeners      map[int]func()
	nextListenerID int
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener adds a callback that fires on every Notify.
// Returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	id := n.nextListenerID
	n.nextListenerID++
	n.listeners[id] = fn
	return func() {
		delete(n.listeners, id)
	}
}

// Notify calls all registered listeners.
// Listeners may unsubscribe themselves (or others) while being notified.
func (n *Notifier) Notify() {
	fns := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	return len(n.listeners)
}

// Observable holds a value and notifies typed listeners when it changes.
//
// Example:
//
//	counter := observe.NewObservable(0)
//	unsub := counter.AddListener(func(value int) {
//	    // value is the new counter value
//	})
//	counter.Set(counter.Value() + 1)
//	unsub()
type Observable[T any] struct {
	value          T
	listeners      map[int]func(T)
	nextListenerID int
}

// NewObservable creates an Observable with an initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	return o.value
}

// Set updates the value and notifies all listeners.
func (o *Observable[T]) Set(value T) {
	o.value = value
	fns := make([]func(T), 0, len(o.listeners))
	for _, fn := range o.listeners {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(value)
	}
}

// AddListener adds a callback that receives each new value.
// Returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	id := o.nextListenerID
	o.nextListenerID++
	o.listeners[id] = fn
	return func() {
		delete(o.listeners, id)
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	return len(o.listeners)
}
