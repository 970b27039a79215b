package inputfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoNumber is returned by ParseNumber when the text holds no digits that
// can be read as a number.
var ErrNoNumber = errors.New("inputfmt: no number in text")

// strip reduces text to its ASCII digits and decimal points and appends
// suffix. It is the single stripping rule shared by the currency and
// percentage formatters and by both parsers.
func strip(text, suffix string) string {
	stripped := strings.Map(func(r rune) rune {
		if r == '.' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, text)
	return stripped + suffix
}

// numericPrefix returns the longest leading run of stripped text shaped like
// digits[.digits], normalized so it always starts with a digit. A trailing
// bare '.' and anything after a second '.' are ignored.
func numericPrefix(stripped string) string {
	i := 0
	for i < len(stripped) && isDigit(stripped[i]) {
		i++
	}
	intEnd := i
	if i < len(stripped) && stripped[i] == '.' {
		j := i + 1
		for j < len(stripped) && isDigit(stripped[j]) {
			j++
		}
		if j > i+1 {
			if intEnd == 0 {
				return "0" + stripped[:j]
			}
			return stripped[:j]
		}
	}
	return stripped[:intEnd]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseDecimal extracts the number from formatted text.
func parseDecimal(text string) (decimal.Decimal, error) {
	prefix := numericPrefix(strip(text, ""))
	if prefix == "" {
		return decimal.Zero, ErrNoNumber
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero, fmt.Errorf("inputfmt: parse %q: %w", prefix, err)
	}
	return d, nil
}

// ParseNumber strips everything but digits and decimal points from text and
// reads the leading number, so "$1,234.50" is 1234.5 and "1.2.3" is 1.2.
// It returns ErrNoNumber when there is nothing to read, which keeps a real
// zero distinguishable from a failure.
func ParseNumber(text string) (float64, error) {
	d, err := parseDecimal(text)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// ParseCurrencyValue reads the numeric value of currency text such as
// "$1,234.50". Text with no number yields 0, the same as "$0".
func ParseCurrencyValue(text string) float64 {
	v, err := ParseNumber(text)
	if err != nil {
		return 0
	}
	return v
}

// ParsePercentageValue reads the numeric value of percentage text such as
// "12.5%". It applies the same stripping as ParseCurrencyValue and agrees with
// it on every input.
func ParsePercentageValue(text string) float64 {
	v, err := ParseNumber(text)
	if err != nil {
		return 0
	}
	return v
}
