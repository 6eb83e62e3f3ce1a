package converter

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/kylycht/converter/model"
	"github.com/shopspring/decimal"
)

const nan = "NaN"

// Recompute returns a copy of rows with the selected row hidden
// and every other row labeled with the converted amount.
// Invalid or empty amount text yields NaN labels
func Recompute(rows []model.Row, selected, amountText string) []model.Row {
	var (
		amount = ParseAmount(amountText)
		from   = math.NaN()
		result = make([]model.Row, len(rows))
	)

	for _, r := range rows {
		if r.Code == selected {
			from = r.Rate
			break
		}
	}

	for i, r := range rows {
		result[i] = r

		if r.Code == selected {
			result[i].Hidden = true
			result[i].Text = r.Code
			continue
		}

		result[i].Hidden = false
		result[i].Text = Label(r.Code, Convert(amount, from, r.Rate))
	}

	return result
}

// Convert converts amount from the currency with rate `from`
// into the currency with rate `to`, both in base units.
// For the base currency `from` is 1 and this reduces to amount / to
func Convert(amount, from, to float64) float64 {
	return amount * from / to
}

// ParseAmount parses typed amount, returns NaN
// for empty or non numeric text.
// Only plain decimal notation with an optional exponent is accepted,
// underscores, hex and inf/nan words are not numbers here
func ParseAmount(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return math.NaN()
	}

	if _, err := decimal.NewFromString(text); err != nil {
		return math.NaN()
	}

	// out of range values come back as ±Inf or 0
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	return v
}

// Label formats row text as "<CODE>: <value>"
func Label(code string, value float64) string {
	return code + ": " + Format(value)
}

// Format renders value with two decimal places,
// halves are rounded away from zero.
// Values rounding to zero print unsigned ("0.00" for -0.001)
// and large values never switch to exponent notation
func Format(value float64) string {
	switch {
	case math.IsNaN(value):
		return nan
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}

	return decimal.NewFromFloat(value).StringFixed(2)
}
