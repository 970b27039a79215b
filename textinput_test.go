package inputfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(in *TextInput, s string) {
	for _, r := range s {
		in.HandleEvent(KeyEvent{Key: KeyRune, Rune: r})
	}
}

func TestTextInput_SetValue_UsesRuneCursorPosition(t *testing.T) {
	in := NewTextInput()
	in.SetValue("a界")

	assert.Equal(t, 2, in.Cursor())
}

func TestTextInput_Edit_MultibyteRunes(t *testing.T) {
	in := NewTextInput(WithTextInputValue("a界"))
	in.cursorPos.Set(1)

	in.HandleEvent(KeyEvent{Key: KeyRune, Rune: '🙂'})
	require.Equal(t, "a🙂界", in.Value())

	in.HandleEvent(KeyEvent{Key: KeyBackspace})
	require.Equal(t, "a界", in.Value())

	in.HandleEvent(KeyEvent{Key: KeyDelete})
	assert.Equal(t, "a", in.Value())
}

func TestTextInput_Navigation(t *testing.T) {
	type tc struct {
		keys []Key
		want int
	}

	tests := map[string]tc{
		"left from end":        {keys: []Key{KeyLeft}, want: 2},
		"left past start":      {keys: []Key{KeyHome, KeyLeft}, want: 0},
		"right past end":       {keys: []Key{KeyRight, KeyRight}, want: 3},
		"home then end":        {keys: []Key{KeyHome, KeyEnd}, want: 3},
		"emacs start of line":  {keys: []Key{KeyCtrlA}, want: 0},
		"emacs end of line":    {keys: []Key{KeyCtrlA, KeyCtrlE}, want: 3},
		"home then right once": {keys: []Key{KeyHome, KeyRight}, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := NewTextInput(WithTextInputValue("é界x"))
			for _, k := range tt.keys {
				in.HandleEvent(KeyEvent{Key: k})
			}
			assert.Equal(t, tt.want, in.Cursor())
		})
	}
}

func TestTextInput_EmitsInputOnUserEdits(t *testing.T) {
	in := NewTextInput(WithTextInputValue("ab"))

	var got []string
	in.OnInput(func(v string) { got = append(got, v) })

	typeText(in, "c")
	in.HandleEvent(KeyEvent{Key: KeyBackspace})
	in.HandleEvent(KeyEvent{Key: KeyHome})
	in.HandleEvent(KeyEvent{Key: KeyDelete})
	in.HandleEvent(KeyEvent{Key: KeyEnd})
	in.HandleEvent(KeyEvent{Key: KeyCtrlU})

	assert.Equal(t, []string{"abc", "ab", "b", ""}, got)
}

func TestTextInput_NoInputForNoOpEdits(t *testing.T) {
	in := NewTextInput()

	var calls int
	in.OnInput(func(string) { calls++ })

	in.HandleEvent(KeyEvent{Key: KeyBackspace})
	in.HandleEvent(KeyEvent{Key: KeyDelete})
	in.HandleEvent(KeyEvent{Key: KeyCtrlU})
	in.HandleEvent(KeyEvent{Key: KeyLeft})
	in.Paste("")

	assert.Zero(t, calls)
}

func TestTextInput_SetValueEmitsNothing(t *testing.T) {
	in := NewTextInput()

	var calls int
	in.OnInput(func(string) { calls++ })
	in.OnPaste(func(string) { calls++ })

	in.SetValue("programmatic")
	in.Clear()

	assert.Zero(t, calls)
}

func TestTextInput_Paste(t *testing.T) {
	in := NewTextInput(WithTextInputValue("ad"))
	in.cursorPos.Set(1)

	var order []string
	in.OnPaste(func(v string) { order = append(order, "paste:"+v) })
	in.OnInput(func(v string) { order = append(order, "input:"+v) })

	handled := in.HandleEvent(PasteEvent{Text: "b\nc"})

	assert.True(t, handled)
	assert.Equal(t, "abcd", in.Value())
	assert.Equal(t, 3, in.Cursor())
	assert.Equal(t, []string{"paste:abcd", "input:abcd"}, order)
}

func TestTextInput_MaxLength(t *testing.T) {
	in := NewTextInput(WithTextInputMaxLength(4))

	typeText(in, "12345")
	require.Equal(t, "1234", in.Value())

	in.HandleEvent(KeyEvent{Key: KeyBackspace})
	in.Paste("xyz")
	assert.Equal(t, "123x", in.Value())
}

func TestTextInput_Submit(t *testing.T) {
	var submitted string
	in := NewTextInput(
		WithTextInputValue("42"),
		WithTextInputOnSubmit(func(v string) { submitted = v }),
	)

	assert.True(t, in.HandleEvent(KeyEvent{Key: KeyEnter}))
	assert.Equal(t, "42", submitted)
}

func TestTextInput_View(t *testing.T) {
	in := NewTextInput(WithTextInputPlaceholder("amount"))
	assert.Equal(t, "amount", in.View())

	typeText(in, "12")
	in.HandleEvent(KeyEvent{Key: KeyLeft})
	assert.Equal(t, "1|2", in.View())
}

func TestTextInput_Watch(t *testing.T) {
	in := NewTextInput()

	var seen []string
	unbind := in.Watch(func(v string) { seen = append(seen, v) })
	in.SetValue("a")
	typeText(in, "b")
	unbind()
	in.SetValue("c")

	assert.Equal(t, []string{"a", "ab"}, seen)
}

func TestTextInput_UnhandledEvents(t *testing.T) {
	in := NewTextInput()

	assert.False(t, in.HandleEvent(KeyEvent{Key: KeyNone}))
	assert.False(t, in.HandleEvent(nil))
}

func TestTextInput_CurrencyBinding(t *testing.T) {
	in := NewTextInput()
	release := BindCurrency(in)

	typeText(in, "1234")
	assert.Equal(t, "$1,234", in.Value())

	// The cursor follows the rewrite to the end, so the point is typed
	// after the last digit and stripped as a bare trailing point.
	typeText(in, ".")
	assert.Equal(t, "$1,234", in.Value())

	in.Paste("5")
	assert.Equal(t, "$12,345", in.Value())

	release()
	typeText(in, "x")
	assert.Equal(t, "$12,345x", in.Value())
}

func TestTextInput_PercentageBinding(t *testing.T) {
	in := NewTextInput()
	release := BindPercentage(in)
	defer release()

	typeText(in, "45")
	assert.Equal(t, "45%", in.Value())

	typeText(in, ".5")
	assert.Equal(t, "45.5%", in.Value())
	assert.Equal(t, 45.5, ParsePercentageValue(in.Value()))
}

func TestTextInput_GenericBindingObservesPaste(t *testing.T) {
	in := NewTextInput(WithTextInputValue("mixed Case"))

	var calls int
	release := Bind(in, func(s string) string {
		calls++
		return strings.ToUpper(s)
	})
	defer release()
	require.Equal(t, "MIXED CASE", in.Value())

	calls = 0
	in.Paste("!")
	assert.Equal(t, "MIXED CASE!", in.Value())
	assert.Equal(t, 2, calls)
}

func TestTextInput_ModifiedRunesNotInserted(t *testing.T) {
	type tc struct {
		mod Modifier
	}

	tests := map[string]tc{
		"ctrl": {mod: ModCtrl},
		"alt":  {mod: ModAlt},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := NewTextInput(WithTextInputValue("12"))

			var calls int
			in.OnInput(func(string) { calls++ })

			handled := in.HandleEvent(KeyEvent{Key: KeyRune, Rune: 'v', Mod: tt.mod})

			assert.False(t, handled)
			assert.Equal(t, "12", in.Value())
			assert.Zero(t, calls)
		})
	}
}
