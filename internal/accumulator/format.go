package accumulator

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	maximumExactIntegerMagnitudeConstant = 1 << 63
	floatFormatCompactConstant           = 'g'
	shortestPrecisionConstant            = -1
	floatBitSizeConstant                 = 64
)

// Format renders a number the way the display shows it: whole values without a
// fractional part, everything else in the shortest decimal form.
func Format(number float64) string {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return strconv.FormatFloat(number, floatFormatCompactConstant, shortestPrecisionConstant, floatBitSizeConstant)
	}

	if math.Abs(number) >= maximumExactIntegerMagnitudeConstant {
		return strconv.FormatFloat(number, floatFormatCompactConstant, shortestPrecisionConstant, floatBitSizeConstant)
	}

	if number == math.Trunc(number) {
		return strconv.FormatInt(int64(number), 10)
	}

	return decimal.NewFromFloat(number).String()
}
