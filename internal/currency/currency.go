// Package currency formats amounts in the host's currency and parses what the
// user types into the amount field.
package currency

import (
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCode is used when the locale names no region with a known currency.
const DefaultCode = "USD"

// localeEnv lists the variables consulted for the host locale, in priority order.
var localeEnv = []string{"LC_ALL", "LC_MONETARY", "LANG"}

// Formatter renders amounts as localized currency text.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	scale   int
	printer *message.Printer

	decimalSep string
	groupSep   string
}

// NewFormatter builds a Formatter for the given locale. The currency comes
// from the locale's region, falling back to USD.
func NewFormatter(tag language.Tag) *Formatter {
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}
	scale, _ := currency.Standard.Rounding(unit)
	printer := message.NewPrinter(tag)
	decimalSep, groupSep := separators(printer)
	return &Formatter{
		tag:        tag,
		unit:       unit,
		scale:      scale,
		printer:    printer,
		decimalSep: decimalSep,
		groupSep:   groupSep,
	}
}

// separators reads the locale's decimal and grouping marks off a rendered
// sample number. Locales that do not group the sample report no grouping mark.
func separators(p *message.Printer) (decimalSep, groupSep string) {
	var runs []string
	var cur strings.Builder
	for _, r := range p.Sprint(number.Decimal(1234567.5, number.Scale(1))) {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	switch len(runs) {
	case 0:
		return ".", ""
	case 1:
		return runs[0], ""
	default:
		return runs[len(runs)-1], runs[0]
	}
}

// FromEnvironment builds a Formatter for locale if set, otherwise for the
// host locale taken from LC_ALL, LC_MONETARY or LANG.
func FromEnvironment(locale string) *Formatter {
	if strings.TrimSpace(locale) == "" {
		locale = hostLocale()
	}
	return NewFormatter(ParseLocale(locale))
}

// ParseLocale converts POSIX ("en_GB.UTF-8") or BCP 47 ("en-GB") locale names
// into a language tag. Unparseable or empty names map to en-US.
func ParseLocale(name string) language.Tag {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", "-")
	if name == "" || name == "C" || name == "POSIX" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func hostLocale() string {
	for _, key := range localeEnv {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Code is the ISO 4217 code, e.g. "USD".
func (f *Formatter) Code() string {
	return f.unit.String()
}

// Locale is the language tag the formatter renders for.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Symbol is the currency sign for the formatter's locale, e.g. "$" or "€".
func (f *Formatter) Symbol() string {
	return f.printer.Sprint(currency.Symbol(f.unit))
}

// DecimalSeparator is the mark between whole and fractional digits, e.g. "."
// for en-US or "," for de-DE.
func (f *Formatter) DecimalSeparator() string {
	return f.decimalSep
}

// Scale is the number of fraction digits the currency is shown with.
func (f *Formatter) Scale() int {
	return f.scale
}

// Format renders amount with the currency sign, locale grouping and the
// currency's standard number of decimals.
func (f *Formatter) Format(amount float64) string {
	return f.Symbol() + f.printer.Sprint(number.Decimal(amount, number.Scale(f.scale)))
}
