// Package money formats and parses the two currencies the storefront
// displays: bolívares ("Bs. 1.234,56", es-VE convention with dot
// thousands separators and a comma decimal) and US dollars ("$8.00").
package money

import (
	"strconv"
	"strings"
)

// FormatVES renders an amount in bolívares with the conventional
// abbreviated symbol, e.g. FormatVES(1234.5) == "Bs. 1.234,50".
func FormatVES(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "Bs. " + b.String() + "," + decPart
}

// FormatUSD renders an amount in US dollars with two decimals.
func FormatUSD(amount float64) string {
	if amount < 0 {
		return "-$" + strconv.FormatFloat(-amount, 'f', 2, 64)
	}
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// ParseDecimal parses a number that may use a decimal comma and dot
// thousands separators ("1.234,56" → 1234.56). Plain dot-decimal
// input ("8.00") parses as-is. Returns 0 on malformed input.
func ParseDecimal(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
