package inputfmt

import (
	"strings"
	"unicode/utf8"

	"github.com/grindlemire/inputfmt/internal/debug"
)

// TextInput is a single-line text input with rune-aware cursor editing.
// It implements Field, so any formatting binding can be attached to it.
//
// Every user edit (typed rune, backspace, delete, kill-line, paste) emits an
// input event after the text changes. A paste additionally emits a paste
// event just before the input event. SetValue and Clear are programmatic and
// emit nothing, which lets listeners rewrite the value without re-entering
// themselves.
type TextInput struct {
	// Configuration (set via options, immutable after construction)
	initial     string
	placeholder string
	maxLength   int
	onSubmit    func(string)

	// Reactive state
	text      *State[string]
	cursorPos *State[int]

	input *Events[string]
	paste *Events[string]
}

// NewTextInput creates a new single-line text input.
func NewTextInput(opts ...TextInputOption) *TextInput {
	t := &TextInput{
		input: NewEvents[string](),
		paste: NewEvents[string](),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.text = NewState(t.initial)
	t.cursorPos = NewState(utf8.RuneCountInString(t.initial))
	return t
}

// --- Field Interface ---

// Value returns the current text content.
func (t *TextInput) Value() string {
	return t.text.Get()
}

// SetValue sets the text and moves the cursor to the end.
func (t *TextInput) SetValue(s string) {
	t.text.Set(s)
	t.cursorPos.Set(utf8.RuneCountInString(s))
}

// OnInput registers fn to run after every user edit.
func (t *TextInput) OnInput(fn func(string)) Unsubscribe {
	return t.input.Subscribe(fn)
}

// OnPaste registers fn to run after pasted text is inserted.
func (t *TextInput) OnPaste(fn func(string)) Unsubscribe {
	return t.paste.Subscribe(fn)
}

// --- State Access ---

// Clear empties the input without emitting events.
func (t *TextInput) Clear() {
	t.text.Set("")
	t.cursorPos.Set(0)
}

// Cursor returns the cursor position in runes.
func (t *TextInput) Cursor() int {
	return t.clampCursorPos()
}

// Watch registers fn to run whenever the text changes, whether by a user
// edit or by SetValue.
func (t *TextInput) Watch(fn func(string)) Unbind {
	return t.text.Bind(fn)
}

// View returns the displayed line: the text with the cursor marked by '|',
// or the placeholder when the input is empty.
func (t *TextInput) View() string {
	text := t.text.Get()
	if text == "" && t.placeholder != "" {
		return t.placeholder
	}
	runes := []rune(text)
	pos := t.clampCursorPos()
	return string(runes[:pos]) + "|" + string(runes[pos:])
}

// --- Events ---

// HandleEvent processes key and paste events. It returns true when the event
// was consumed.
func (t *TextInput) HandleEvent(e Event) bool {
	switch ev := e.(type) {
	case KeyEvent:
		return t.KeyMap().dispatch(ev)
	case PasteEvent:
		t.Paste(ev.Text)
		return true
	default:
		return false
	}
}

// Paste inserts s at the cursor as a single edit. Line breaks are dropped
// and the insertion is truncated to the configured max length.
func (t *TextInput) Paste(s string) {
	s = strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(s)
	ins := []rune(s)
	if t.maxLength > 0 {
		room := t.maxLength - utf8.RuneCountInString(t.text.Get())
		if room < 0 {
			room = 0
		}
		if len(ins) > room {
			ins = ins[:room]
		}
	}
	if len(ins) == 0 {
		return
	}
	debug.Log("TextInput.Paste: inserting %d runes", len(ins))
	t.insertRunes(ins)
	t.paste.Emit(t.text.Get())
	t.input.Emit(t.text.Get())
}

// KeyMap returns the key bindings for the text input.
func (t *TextInput) KeyMap() KeyMap {
	return KeyMap{
		// Text input
		OnRunesStop(t.insertChar),

		// Editing
		OnKeyStop(KeyBackspace, t.backspace),
		OnKeyStop(KeyDelete, t.delete),
		OnKeyStop(KeyCtrlU, t.killLine),

		// Navigation
		OnKeyStop(KeyLeft, t.moveLeft),
		OnKeyStop(KeyRight, t.moveRight),
		OnKeyStop(KeyHome, t.moveHome),
		OnKeyStop(KeyCtrlA, t.moveHome),
		OnKeyStop(KeyEnd, t.moveEnd),
		OnKeyStop(KeyCtrlE, t.moveEnd),

		// Submit
		OnKeyStop(KeyEnter, t.submit),
	}
}

// --- Key Handlers ---

// insertChar inserts a character at the cursor position.
func (t *TextInput) insertChar(ke KeyEvent) {
	if t.maxLength > 0 && utf8.RuneCountInString(t.text.Get()) >= t.maxLength {
		return
	}
	t.insertRunes([]rune{ke.Rune})
	t.input.Emit(t.text.Get())
}

// backspace deletes the character before the cursor.
func (t *TextInput) backspace(ke KeyEvent) {
	runes := []rune(t.text.Get())
	pos := t.clampCursorPos()
	if pos == 0 {
		return
	}
	newRunes := append(runes[:pos-1], runes[pos:]...)
	t.text.Set(string(newRunes))
	t.cursorPos.Set(pos - 1)
	t.input.Emit(t.text.Get())
}

// delete deletes the character at the cursor.
func (t *TextInput) delete(ke KeyEvent) {
	runes := []rune(t.text.Get())
	pos := t.clampCursorPos()
	if pos >= len(runes) {
		return
	}
	newRunes := append(runes[:pos], runes[pos+1:]...)
	t.text.Set(string(newRunes))
	t.input.Emit(t.text.Get())
}

// killLine deletes everything before the cursor.
func (t *TextInput) killLine(ke KeyEvent) {
	runes := []rune(t.text.Get())
	pos := t.clampCursorPos()
	if pos == 0 {
		return
	}
	t.text.Set(string(runes[pos:]))
	t.cursorPos.Set(0)
	t.input.Emit(t.text.Get())
}

// moveLeft moves cursor left.
func (t *TextInput) moveLeft(ke KeyEvent) {
	if pos := t.clampCursorPos(); pos > 0 {
		t.cursorPos.Set(pos - 1)
	}
}

// moveRight moves cursor right.
func (t *TextInput) moveRight(ke KeyEvent) {
	if pos := t.clampCursorPos(); pos < utf8.RuneCountInString(t.text.Get()) {
		t.cursorPos.Set(pos + 1)
	}
}

// moveHome moves cursor to the start of the line.
func (t *TextInput) moveHome(ke KeyEvent) {
	t.cursorPos.Set(0)
}

// moveEnd moves cursor to the end of the line.
func (t *TextInput) moveEnd(ke KeyEvent) {
	t.cursorPos.Set(utf8.RuneCountInString(t.text.Get()))
}

// submit calls the onSubmit callback.
func (t *TextInput) submit(ke KeyEvent) {
	if t.onSubmit != nil {
		debug.Log("TextInput.submit: value=%q", t.text.Get())
		t.onSubmit(t.text.Get())
	}
}

// insertRunes splices ins in at the cursor and advances the cursor past it.
func (t *TextInput) insertRunes(ins []rune) {
	runes := []rune(t.text.Get())
	pos := t.clampCursorPos()
	newRunes := make([]rune, 0, len(runes)+len(ins))
	newRunes = append(newRunes, runes[:pos]...)
	newRunes = append(newRunes, ins...)
	newRunes = append(newRunes, runes[pos:]...)
	t.text.Set(string(newRunes))
	t.cursorPos.Set(pos + len(ins))
}

// clampCursorPos returns the cursor position clamped to the text length.
func (t *TextInput) clampCursorPos() int {
	pos := t.cursorPos.Get()
	n := utf8.RuneCountInString(t.text.Get())
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}
