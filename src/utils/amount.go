package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyStripper removes the currency symbols and thousands separators that
// show up in imported or hand-typed amounts.
var currencyStripper = strings.NewReplacer("$", "", "€", "", "£", "", "¥", "", ",", "")

// ParseAmount converts a currency-formatted string into a number. It is the
// single numeric gateway for every monetary sum in the pipeline: any value it
// cannot parse degrades to 0 so that one malformed record cannot abort an
// aggregation or projection pass. It never returns an error.
func ParseAmount(amount string) float64 {
	cleaned := strings.TrimSpace(currencyStripper.Replace(amount))
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
