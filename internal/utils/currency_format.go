package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// FallbackCurrency is used whenever a currency code is missing or unknown.
const FallbackCurrency = "USD"

const (
	takaCode   = "BDT"
	takaSymbol = "৳"
	displayDP  = 2
)

var compactBase = decimal.NewFromInt(1000)

// compactSteps are ordered smallest first; each is compactBase times the last.
var compactSteps = []struct {
	size   decimal.Decimal
	suffix string
}{
	{decimal.New(1, 3), "K"},
	{decimal.New(1, 6), "M"},
	{decimal.New(1, 9), "B"},
	{decimal.New(1, 12), "T"},
}

// ResolveCurrencyCode upper-cases code and falls back to USD when it is not
// a recognised ISO 4217 code that can be rendered.
func ResolveCurrencyCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return FallbackCurrency
	}
	if code == takaCode {
		return code
	}
	if _, err := currency.ParseISO(code); err != nil {
		return FallbackCurrency
	}
	if money.GetCurrency(code) == nil {
		return FallbackCurrency
	}
	return code
}

// FormatCurrency renders amount for display, e.g. 1000 USD -> "$1,000.00"
// and 1000 BDT -> "৳1,000.00". Unknown codes render as USD.
func FormatCurrency(amount decimal.Decimal, code string) string {
	symbol, template := displayStyle(ResolveCurrencyCode(code))
	return render(amount, symbol, template)
}

// FormatCurrencyPtr is FormatCurrency for optional amounts; nil renders "-".
func FormatCurrencyPtr(amount *decimal.Decimal, code string) string {
	if amount == nil {
		return "-"
	}
	return FormatCurrency(*amount, code)
}

// FormatCurrencyCompact renders large amounts with a K/M/B/T suffix and at
// most one decimal, e.g. 1500 USD -> "$1.5K".
func FormatCurrencyCompact(amount decimal.Decimal, code string) string {
	code = ResolveCurrencyCode(code)
	symbol := takaSymbol
	if code != takaCode {
		symbol = money.GetCurrency(code).Grapheme
	}
	abs := amount.Abs()
	// the step is chosen on the rounded value so 999.96 becomes 1K, not 1000
	scaled, suffix := abs.Round(1), ""
	for _, step := range compactSteps {
		if scaled.LessThan(compactBase) {
			break
		}
		scaled, suffix = abs.Div(step.size).Round(1), step.suffix
	}
	sign := ""
	if amount.IsNegative() && !scaled.IsZero() {
		sign = "-"
	}
	return sign + symbol + scaled.String() + suffix
}

// FormatCurrencyForExport renders "<ISO code> <grouped number>", e.g.
// "USD 1,000.00". PDF core fonts cannot draw most currency glyphs, so
// exports always use the code.
func FormatCurrencyForExport(amount decimal.Decimal, code string) string {
	return render(amount, ResolveCurrencyCode(code), "$ 1")
}

// FormatAmount renders a grouped two-decimal number without any symbol.
func FormatAmount(amount decimal.Decimal) string {
	return render(amount, "", "1")
}

// FormatWithPrecision formats an amount with the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}

// displayStyle returns the symbol and go-money placement template for code.
// Display always puts the symbol first, the way the dashboard renders it.
func displayStyle(code string) (symbol, template string) {
	if code == takaCode {
		return takaSymbol, "$1"
	}
	return money.GetCurrency(code).Grapheme, "$1"
}

// render fills a go-money style template ("$" is the symbol, "1" the number)
// with amount grouped in thousands at two decimals. It works on the decimal
// text so amounts of any size render exactly.
func render(amount decimal.Decimal, symbol, template string) string {
	rounded := amount.Round(displayDP)
	out := strings.Replace(template, "1", groupThousands(rounded.Abs().StringFixed(displayDP)), 1)
	out = strings.Replace(out, "$", symbol, 1)
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// groupThousands inserts "," separators into the integer part of a plain
// decimal string such as "1234567.89".
func groupThousands(s string) string {
	whole, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
