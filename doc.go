// Package inputfmt formats text-entry fields as the user types.
//
// A binding attaches a formatting policy to a Field, rewrites the field's
// current text right away, and rewrites it again after each edit until the
// returned Release is called:
//
//	price := inputfmt.NewTextInput(inputfmt.WithTextInputValue("1234.5"))
//	release := inputfmt.BindCurrency(price) // price.Value() == "$1,234.5"
//	defer release()
//
// Bind accepts any Policy; BindCurrency and BindPercentage use
// FormatCurrency and FormatPercentage. ParseCurrencyValue and
// ParsePercentageValue turn formatted text back into numbers, for example
// when a form is submitted.
//
// TextInput is a single-line terminal input that satisfies Field. Bindings
// work with any other Field implementation as well.
package inputfmt
