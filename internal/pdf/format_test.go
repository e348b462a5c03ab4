package pdf

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(decimal.NewFromFloat(1234.5), "USD")
	if !strings.HasPrefix(got, "$") {
		t.Errorf("USD amount %q should carry the $ symbol", got)
	}
	if !strings.Contains(got, "1,234") {
		t.Errorf("amount %q should be grouped per the US locale", got)
	}

	got = FormatCurrency(decimal.NewFromInt(10), "EUR")
	if !strings.HasPrefix(got, "€") {
		t.Errorf("EUR amount %q should carry the euro symbol", got)
	}

	// Valid ISO code with no drawable symbol: code prefix.
	got = FormatCurrency(decimal.NewFromInt(10), "NOK")
	if !strings.HasPrefix(got, "NOK ") {
		t.Errorf("NOK amount %q should fall back to the code prefix", got)
	}

	// Unknown code degrades rather than failing.
	got = FormatCurrency(decimal.NewFromInt(5), "???")
	if !strings.HasPrefix(got, "??? ") {
		t.Errorf("unknown code fallback = %q", got)
	}
}

func TestFormatCurrencyDeterministic(t *testing.T) {
	a := FormatCurrency(decimal.NewFromFloat(99.99), "USD")
	b := FormatCurrency(decimal.NewFromFloat(99.99), "USD")
	if a != b {
		t.Errorf("formatting not deterministic: %q vs %q", a, b)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := FormatDate(d); got != "March 7, 2026" {
		t.Errorf("FormatDate = %q, want %q", got, "March 7, 2026")
	}
}
