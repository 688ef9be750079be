// Package format renders store values for display: zh-CN digit grouping,
// yuan as the default currency symbol, and calendar dates as YYYY-MM-DD.
package format

import (
	"math"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/epeers/portview/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol is used when no currency (or one without a symbol) is given
const DefaultCurrencySymbol = "¥"

// Number renders v with thousands grouping and exactly places fraction digits.
// A null value renders as zero.
func Number(v decimal.NullDecimal, places int) string {
	units, ok := minorUnits(v, places)
	if !ok {
		return groupFixed(v.Decimal, places)
	}
	return newFormatter(places, "", "1").Format(units)
}

// Quantity renders a share quantity with two fraction digits
func Quantity(v decimal.NullDecimal) string {
	return Number(v, 2)
}

// Currency renders v prefixed with the currency's symbol, falling back to
// DefaultCurrencySymbol. The sign follows the symbol: ¥-10.00.
func Currency(v decimal.NullDecimal, cur *models.Currency, places int) string {
	symbol := DefaultCurrencySymbol
	if cur != nil && cur.Symbol != "" {
		symbol = cur.Symbol
	}
	return symbol + Number(v, places)
}

// Percentage renders a ratio (0.1234) as a percentage ("12.34%")
func Percentage(v decimal.NullDecimal, places int) string {
	if places < 0 {
		places = 0
	}
	return v.Decimal.Shift(2).StringFixed(int32(places)) + "%"
}

// Date renders t as YYYY-MM-DD; the zero time renders as ""
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}

func newFormatter(places int, grapheme, template string) *money.Formatter {
	if places < 0 {
		places = 0
	}
	return money.NewFormatter(places, ".", ",", grapheme, template)
}

var (
	maxUnits = decimal.NewFromInt(math.MaxInt64)
	minUnits = decimal.NewFromInt(-math.MaxInt64)
)

// minorUnits scales v to an integer count of 10^-places units, rounding half
// away from zero. ok is false when the count does not fit in an int64.
func minorUnits(v decimal.NullDecimal, places int) (units int64, ok bool) {
	if !v.Valid {
		return 0, true
	}
	if places < 0 {
		places = 0
	}
	scaled := v.Decimal.Shift(int32(places)).Round(0)
	if scaled.GreaterThan(maxUnits) || scaled.LessThan(minUnits) {
		return 0, false
	}
	return scaled.IntPart(), true
}

// groupFixed formats amounts too large for the money formatter
func groupFixed(d decimal.Decimal, places int) string {
	if places < 0 {
		places = 0
	}
	s := d.StringFixed(int32(places))
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
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
