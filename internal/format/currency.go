// Package format renders monetary amounts the way the statement UI shows
// them: yuan sign, thousands grouping, two decimal places.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency renders the absolute value of d, e.g. ¥1,234.56.
func Currency(d decimal.Decimal) string {
	return "¥" + groupThousands(d.Abs().StringFixed(2))
}

// SignedCurrency prefixes Currency with the amount's sign, + for zero.
func SignedCurrency(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + Currency(d)
	}
	return "+" + Currency(d)
}

// groupThousands inserts comma separators into the integer part of a
// non-negative fixed-point decimal string.
func groupThousands(fixed string) string {
	integer, fraction := fixed, ""
	if dot := strings.IndexByte(fixed, '.'); dot >= 0 {
		integer, fraction = fixed[:dot], fixed[dot:]
	}
	if len(integer) <= 3 {
		return fixed
	}

	var b strings.Builder
	lead := len(integer) % 3
	if lead > 0 {
		b.WriteString(integer[:lead])
	}
	for i := lead; i < len(integer); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(integer[i : i+3])
	}
	return b.String() + fraction
}
