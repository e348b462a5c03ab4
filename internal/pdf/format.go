package pdf

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// currencySymbols covers the symbols the WinAnsi font can actually draw.
// Everything else falls back to the ISO code prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "CHF ",
	"HKD": "HK$",
}

// FormatCurrency renders a monetary amount for display, grouped per the
// US locale, prefixed with the currency symbol when one is available and
// with the ISO code otherwise. Unknown codes degrade to "<code> <amount>".
func FormatCurrency(amount decimal.Decimal, code string) string {
	f, _ := amount.Float64()
	formatted := printer.Sprintf("%v", number.Decimal(f,
		number.Scale(2),
		number.MinFractionDigits(2),
	))
	if _, err := currency.ParseISO(code); err != nil {
		return code + " " + formatted
	}
	if sym, ok := currencySymbols[code]; ok {
		return sym + formatted
	}
	return code + " " + formatted
}

// FormatDate renders a date in the long month-name US style.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
