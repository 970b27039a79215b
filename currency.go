package inputfmt

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencySymbol = "$"

var (
	// currencyScale is the number of minor-unit digits for US dollars.
	currencyScale, _ = currency.Standard.Rounding(currency.USD)

	currencyPrinter = message.NewPrinter(language.AmericanEnglish)
)

// FormatCurrency renders text as whole or fractional US dollars in en-US
// style: "1234.5" becomes "$1,234.5" and "1234" becomes "$1,234". Amounts are
// rounded half away from zero to cents. Empty text is returned unchanged and
// text holding no number renders as "$0".
func FormatCurrency(text string) string {
	if text == "" {
		return text
	}
	// Text with no number parses as zero.
	d, _ := parseDecimal(text)
	rounded := d.Round(int32(currencyScale))

	amount := rounded.InexactFloat64()
	if math.IsInf(amount, 0) || !decimal.NewFromFloat(amount).Equal(rounded) {
		return currencySymbol + groupDecimal(rounded)
	}
	return currencySymbol + currencyPrinter.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(currencyScale)))
}

// groupDecimal writes a non-negative amount with en-US thousands separators
// straight from its decimal digits. It covers amounts a float64 cannot hold
// exactly, which the number printer would otherwise round or print as ∞.
func groupDecimal(d decimal.Decimal) string {
	intPart, frac, _ := strings.Cut(d.String(), ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// BindCurrency keeps f formatted as US dollars. It formats once on attach and
// after every input event. Paste is not observed separately; TextInput
// reports pastes as input too.
func BindCurrency(f Field) Release {
	return attach("currency", f, FormatCurrency, false)
}
