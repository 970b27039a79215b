package inputfmt

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/inputfmt/internal/debug"
)

// Policy maps a field's displayed text to its formatted display text.
// Policies should be idempotent: formatting already-formatted text must
// yield the same text.
type Policy func(string) string

// Release detaches a binding. It removes every listener the binding
// installed; once it returns the binding never writes to the field again.
// Calling it more than once is a no-op.
type Release func()

// Bind formats f with policy right away and again after every input and
// paste event, until the returned Release is called.
//
// A panic raised by policy is not recovered. It surfaces from Bind itself
// when the initial format fails (no listeners are left installed), or from
// whatever call dispatched the event.
func Bind(f Field, policy Policy) Release {
	if policy == nil {
		panic("inputfmt: nil policy in Bind")
	}
	return attach("generic", f, policy, true)
}

// attach runs the initial format, then subscribes. withPaste selects whether
// paste events are observed in addition to input events.
func attach(name string, f Field, policy Policy, withPaste bool) Release {
	if f == nil {
		panic("inputfmt: nil field in " + name + " binding")
	}

	var released atomic.Bool
	update := func(string) {
		if released.Load() {
			return
		}
		apply(f, policy)
	}

	apply(f, policy)

	unsubs := []Unsubscribe{f.OnInput(update)}
	if withPaste {
		unsubs = append(unsubs, f.OnPaste(update))
	}
	debug.Log("inputfmt: attached %s binding (%d listeners)", name, len(unsubs))

	var once sync.Once
	return func() {
		once.Do(func() {
			released.Store(true)
			for _, unsub := range unsubs {
				unsub()
			}
			debug.Log("inputfmt: released %s binding", name)
		})
	}
}

// apply rewrites the field only when the formatted text differs.
func apply(f Field, policy Policy) {
	current := f.Value()
	if formatted := policy(current); formatted != current {
		f.SetValue(formatted)
	}
}
