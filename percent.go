package inputfmt

// FormatPercentage strips text down to digits and decimal points and appends
// '%'. The digits are kept verbatim, so "1.2.3" becomes "1.2.3%". Re-applying
// it to its own output is a no-op. Empty text is returned unchanged.
func FormatPercentage(text string) string {
	if text == "" {
		return text
	}
	return strip(text, "%")
}

// BindPercentage keeps f formatted as a percentage. It formats once on attach
// and after every input event.
func BindPercentage(f Field) Release {
	return attach("percentage", f, FormatPercentage, false)
}
