// Package numwords converts amounts to their English words representation in
// the Indian numbering system (thousand, lakh, crore).
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
	"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty",
	"Sixty", "Seventy", "Eighty", "Ninety"}

// NumberToWords converts a non-negative integer to Indian-system words.
// Zero maps to the literal "Zero"; negative input yields an empty string.
func NumberToWords(n int64) string {
	if n < 0 {
		return ""
	}
	if n == 0 {
		return "Zero"
	}
	return strings.TrimSpace(words(n))
}

// words decomposes n by repeatedly extracting the highest applicable
// magnitude group and recursing on the remainder. Zero yields an empty string
// so that round groups ("One Hundred") carry no trailing "Zero".
func words(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return ones[n]
	case n < 100:
		return strings.TrimSpace(tens[n/10] + " " + ones[n%10])
	case n < 1_000:
		return strings.TrimSpace(ones[n/100] + " Hundred " + words(n%100))
	case n < 100_000:
		return strings.TrimSpace(words(n/1_000) + " Thousand " + words(n%1_000))
	case n < 10_000_000:
		return strings.TrimSpace(words(n/100_000) + " Lakh " + words(n%100_000))
	default:
		return strings.TrimSpace(words(n/10_000_000) + " Crore " + words(n%10_000_000))
	}
}

// AmountToWords renders a monetary amount as rupee and paise words, e.g.
// "One Hundred Rupees and Fifty Paise Only". Paise are the fractional part
// rounded to two places; when rounding carries to a full rupee the rupee part
// absorbs it. Negative amounts yield an empty string.
func AmountToWords(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return ""
	}

	rupees := amount.Floor().IntPart()
	paise := amount.Sub(amount.Floor()).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise >= 100 {
		rupees++
		paise = 0
	}

	rupeePart := NumberToWords(rupees)
	if paise > 0 {
		return rupeePart + " Rupees and " + NumberToWords(paise) + " Paise Only"
	}
	return rupeePart + " Rupees Only"
}
