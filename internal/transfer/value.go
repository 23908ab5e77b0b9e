package transfer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

// ErrUnparseableValue marks a value cell that cannot be read as an amount
var ErrUnparseableValue = errors.New("unparseable transfer value")

var magnitudes = map[rune]decimal.Decimal{
	'K': decimal.New(1, 3),
	'M': decimal.New(1, 6),
	'B': decimal.New(1, 9),
}

// ParseValueCeiling returns the upper bound of a transfer-value range
// "Not for Sale" is 0, "100K - 500K" is 500000, a single amount is its own bound
func ParseValueCeiling(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == contracts.NotForSale {
		return 0, nil
	}

	upper := raw
	if i := strings.LastIndex(raw, "-"); i >= 0 {
		upper = raw[i+1:]
	}
	return parseAmount(upper)
}

// parseAmount reads "€1.2M", "500K", "1.234,5K" or "1.500.000 zł"
// With a magnitude suffix the number may carry a decimal mark; without one every separator is a thousands mark
func parseAmount(s string) (int64, error) {
	var num strings.Builder
	multiplier := decimal.New(1, 0)
	hasSuffix := false

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case unicode.IsDigit(r) || r == '.' || r == ',':
			if !hasSuffix {
				num.WriteRune(r)
			}
		default:
			// a magnitude letter that starts a longer word ("Kč") is a currency unit
			if m, ok := magnitudes[r]; ok && num.Len() > 0 && !hasSuffix && !letterAt(runes, i+1) {
				multiplier = m
				hasSuffix = true
			}
		}
	}

	digits := num.String()
	if strings.IndexFunc(digits, unicode.IsDigit) < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnparseableValue, s)
	}

	if hasSuffix {
		// Exact scaling: "1.2M" is 1200000. Expanding the suffix as text before dropping
		// separators would read it as 12000000; that reading is intentionally not kept.
		digits = decimalMark(digits)
	} else {
		digits = strings.NewReplacer(".", "", ",", "").Replace(digits)
	}

	d, err := decimal.NewFromString(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparseableValue, s)
	}
	return d.Mul(multiplier).IntPart(), nil
}

// decimalMark rewrites a suffixed number to use "." as its decimal point
// When both "." and "," appear the last one is the decimal mark and the other groups thousands
func decimalMark(digits string) string {
	dot, comma := strings.LastIndex(digits, "."), strings.LastIndex(digits, ",")
	if dot < 0 || comma < 0 {
		return strings.Replace(digits, ",", ".", 1)
	}

	mark := dot
	if comma > dot {
		mark = comma
	}
	whole := strings.NewReplacer(".", "", ",", "").Replace(digits[:mark])
	return whole + "." + digits[mark+1:]
}

func letterAt(runes []rune, i int) bool {
	return i < len(runes) && unicode.IsLetter(runes[i])
}
