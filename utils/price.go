package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pricePrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice renders an amount the way the storefront shows it, e.g. "R$ 1.234,50".
// Digits come from the decimal itself, rounded half away from zero to cents.
// An integer part too large for int64 is printed without grouping.
func FormatPrice(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, cents, _ := strings.Cut(fixed, ".")
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = pricePrinter.Sprint(number.Decimal(n))
	}
	return sign + "R$ " + whole + "," + cents
}
