package inputfmt

// fakeField is a Field double that records every programmatic write and lets
// tests dispatch input and paste events directly.
type fakeField struct {
	value  string
	writes []string
	input  *Events[string]
	paste  *Events[string]
}

var _ Field = (*fakeField)(nil)

func newFakeField(value string) *fakeField {
	return &fakeField{
		value: value,
		input: NewEvents[string](),
		paste: NewEvents[string](),
	}
}

func (f *fakeField) Value() string { return f.value }

func (f *fakeField) SetValue(s string) {
	f.value = s
	f.writes = append(f.writes, s)
}

func (f *fakeField) OnInput(fn func(string)) Unsubscribe { return f.input.Subscribe(fn) }

func (f *fakeField) OnPaste(fn func(string)) Unsubscribe { return f.paste.Subscribe(fn) }

// userInput simulates the user changing the text to s.
func (f *fakeField) userInput(s string) {
	f.value = s
	f.input.Emit(s)
}

// userPaste simulates a paste that leaves the text as s. Only the paste
// event is dispatched.
func (f *fakeField) userPaste(s string) {
	f.value = s
	f.paste.Emit(s)
}
