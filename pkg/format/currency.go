// Package format renders planner numbers for people. Values are rounded half
// away from zero with decimal arithmetic so that display never disagrees with
// the printed precision.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	return currency(amount, 2)
}

// WholeCurrency returns a currency string rounded to whole dollars (e.g., "$1,235").
func WholeCurrency(amount float64) string {
	return currency(amount, 0)
}

// Units returns a whole-unit count with thousands separators (e.g., "13,846").
func Units(value float64) string {
	return Number(value, 0)
}

// Pieces returns a piece count to one decimal place (e.g., "461,538.5").
func Pieces(value float64) string {
	return Number(value, 1)
}

// Number rounds value to places decimals and adds thousands separators.
func Number(value float64, places int32) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	formatted := decimal.NewFromFloat(value).Round(places).StringFixed(places)
	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}
	return sign + group(formatted)
}

func currency(amount float64, places int32) string {
	formatted := Number(amount, places)
	if strings.HasPrefix(formatted, "-") {
		return "-$" + formatted[1:]
	}
	return "$" + formatted
}

func group(formatted string) string {
	intPart, decPart, hasDec := strings.Cut(formatted, ".")

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if !hasDec {
		return intPart
	}
	return intPart + "." + decPart
}
