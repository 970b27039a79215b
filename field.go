package inputfmt

// Field is a text-entry element whose displayed value a binding observes and
// rewrites. The binding never owns the field; it only installs and removes
// listeners.
type Field interface {
	// Value returns the currently displayed text.
	Value() string

	// SetValue replaces the displayed text. It must not emit input or paste
	// events.
	SetValue(string)

	// OnInput registers fn to run after every user-driven edit, receiving
	// the field's text after the edit.
	OnInput(fn func(string)) Unsubscribe

	// OnPaste registers fn to run after pasted content has been inserted,
	// receiving the field's text after the paste.
	OnPaste(fn func(string)) Unsubscribe
}

var _ Field = (*TextInput)(nil)
