package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrencySymbol is prepended by Price
const DefaultCurrencySymbol = "$"

var printer = message.NewPrinter(language.English)

// Price formats amount with two decimals and thousands grouping, e.g. $1,234.56
func Price(amount decimal.Decimal) string {
	return PriceWithSymbol(amount, DefaultCurrencySymbol)
}

// PriceWithSymbol is Price with a caller-chosen currency symbol
func PriceWithSymbol(amount decimal.Decimal, symbol string) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	whole, cents, _ := strings.Cut(amount.StringFixed(2), ".")
	return sign + symbol + groupThousands(whole) + "." + cents
}

// groupThousands inserts separators into a string of digits. Amounts that fit
// an int64 go through the locale printer; larger ones are grouped by hand.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprintf("%d", n)
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Truncate shortens text to maxLength runes followed by "...". A negative
// maxLength is treated as zero.
func Truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}
