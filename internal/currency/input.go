package currency

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrNotNumeric is returned when the amount text contains anything but
// decimal digits and a single decimal point.
var ErrNotNumeric = errors.New("amount must contain only decimal digits")

// AcceptAmountRune reports whether text, which ends in lastChar, is still a
// valid partial amount. It allows digits and at most one '.'.
// The signature matches tview's InputField acceptance function.
func AcceptAmountRune(text string, lastChar rune) bool {
	if lastChar != '.' && !unicode.IsDigit(lastChar) {
		return false
	}
	dots := 0
	for _, r := range text {
		switch {
		case r == '.':
			dots++
		case unicode.IsDigit(r):
		default:
			return false
		}
	}
	return dots <= 1
}

// ParseInput converts text typed into the amount field into a value. The
// field only ever holds digits and '.', whatever the locale. Empty text is zero.
func ParseInput(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return 0, nil
	}
	if cleaned == "." || !AcceptAmountRune(cleaned, lastRune(cleaned)) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, text)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, text)
	}
	return d.InexactFloat64(), nil
}

// ParseAmount converts currency text written for the formatter's locale into
// a value. The currency sign, the ISO code, spaces and the locale's grouping
// marks are ignored and the locale's decimal mark is honoured, so the output
// of Format parses back. A grouping mark after the decimal mark is rejected.
// Empty text is zero.
func (f *Formatter) ParseAmount(text string) (float64, error) {
	if f == nil {
		return ParseInput(text)
	}

	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, f.Symbol(), "")
	cleaned = strings.ReplaceAll(cleaned, f.Code(), "")
	cleaned = strings.Map(func(r rune) rune {
		if isBlank(r) {
			return -1
		}
		return r
	}, cleaned)

	if group := strings.TrimFunc(f.groupSep, isBlank); group != "" {
		if dec := strings.LastIndex(cleaned, f.decimalSep); dec >= 0 && strings.Contains(cleaned[dec:], group) {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, text)
		}
		cleaned = strings.ReplaceAll(cleaned, group, "")
	}
	if f.decimalSep != "." {
		if strings.Contains(cleaned, ".") {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, text)
		}
		cleaned = strings.ReplaceAll(cleaned, f.decimalSep, ".")
	}

	v, err := ParseInput(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, text)
	}
	return v, nil
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Zs, r)
}

func lastRune(s string) rune {
	r := []rune(s)
	return r[len(r)-1]
}
