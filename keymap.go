package inputfmt

// KeyMap is a list of key bindings returned by TextInput.KeyMap().
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
	Stop    bool // If true, prevent later handlers from firing for this key
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key  // Specific key (KeyBackspace, KeyLeft, etc.), or 0
	Rune          rune // Specific rune, or 0
	AnyRune       bool // Match any printable character
	RequireNoMods bool // When true, event must have no modifiers
}

// matches checks if a key event matches the pattern.
func (p KeyPattern) matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != 0 {
		return false
	}
	if p.AnyRune && ke.Key == KeyRune {
		return true
	}
	if p.Rune != 0 && ke.Rune == p.Rune && ke.Key == KeyRune {
		return true
	}
	if p.Key != 0 && ke.Key == p.Key {
		return true
	}
	return false
}

// OnKeyStop creates a stop-propagation binding for a specific key.
func OnKeyStop(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
		Stop:    true,
	}
}

// OnRunesStop creates a stop-propagation binding for any printable character
// typed without Ctrl, Alt or Shift reported.
func OnRunesStop(handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{AnyRune: true, RequireNoMods: true},
		Handler: handler,
		Stop:    true,
	}
}

// dispatch runs the first matching binding and reports whether it stops
// propagation. Unmatched events report false.
func (km KeyMap) dispatch(ke KeyEvent) bool {
	for _, binding := range km {
		if binding.Pattern.matches(ke) {
			binding.Handler(ke)
			return binding.Stop
		}
	}
	return false
}
