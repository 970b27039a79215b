package inputfmt

// TextInputOption configures a TextInput.
type TextInputOption func(*TextInput)

// WithTextInputValue sets the initial text. The cursor starts at its end.
func WithTextInputValue(s string) TextInputOption {
	return func(t *TextInput) {
		t.initial = s
	}
}

// WithTextInputPlaceholder sets the text rendered while the input is empty.
func WithTextInputPlaceholder(text string) TextInputOption {
	return func(t *TextInput) {
		t.placeholder = text
	}
}

// WithTextInputMaxLength caps the number of runes a user can enter
// (0 = unlimited). Programmatic SetValue calls are not capped.
func WithTextInputMaxLength(runes int) TextInputOption {
	return func(t *TextInput) {
		t.maxLength = runes
	}
}

// WithTextInputOnSubmit sets the callback called when Enter is pressed.
func WithTextInputOnSubmit(fn func(string)) TextInputOption {
	return func(t *TextInput) {
		t.onSubmit = fn
	}
}
