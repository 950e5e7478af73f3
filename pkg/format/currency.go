// Package format renders money amounts for display.
package format

import (
	"math"

	"github.com/iwvelando/youth-budget/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	rounded := mathutil.Round(amount)
	formatted := NumericCurrency(math.Abs(rounded))
	if rounded < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	rounded := mathutil.Round(mathutil.Finite(amount))
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%.2f", rounded)
}
