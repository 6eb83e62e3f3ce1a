package model

// Quote holds the official rate of a single currency
// expressed in base currency units per one unit of Code
type Quote struct {
	Code string  `json:"code"` // ISO code of the currency
	Rate float64 `json:"rate"` // base units per one unit, scale applied
}

// TrackedSet is an ordered list of quotes where
// the base currency is always the last element
type TrackedSet []Quote

// Rate returns rate for the given code
func (s TrackedSet) Rate(code string) (float64, bool) {
	for _, q := range s {
		if q.Code == code {
			return q.Rate, true
		}
	}

	return 0, false
}

// Option is a single entry of the currency select
type Option struct {
	Code string `json:"code"`
}

// Row is the in-memory record of one result line
type Row struct {
	Code   string  `json:"code"`   // currency code of the row
	Rate   float64 `json:"rate"`   // rate copied from the quote
	Hidden bool    `json:"hidden"` // true for the selected currency
	Text   string  `json:"text"`   // displayed label
}
