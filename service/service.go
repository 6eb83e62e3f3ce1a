package service

import (
	"context"

	"github.com/kylycht/converter/model"
)

// Exchange interface describes
// methods specs for obtaining exchange rates
type Exchange interface {
	// FetchRates returns quotes for the given codes,
	// present in the upstream data set, followed by
	// the base currency quote.
	// Failures are reported through the result status
	FetchRates(ctx context.Context, codes []string) model.FetchResult

	// Base returns code of the base currency
	Base() string
}
