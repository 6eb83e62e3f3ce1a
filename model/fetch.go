package model

// FetchStatus describes the state of the rate fetch
type FetchStatus string

const (
	Loading FetchStatus = FetchStatus("LOADING") // fetch is in flight
	Ready   FetchStatus = FetchStatus("READY")   // at least one tracked code matched
	Empty   FetchStatus = FetchStatus("EMPTY")   // fetch succeeded, no tracked code matched
	Failed  FetchStatus = FetchStatus("FAILED")  // transport, status or decoding failure
)

// FetchResult is the outcome of a single rate fetch
type FetchResult struct {
	Status FetchStatus // outcome of the fetch
	Set    TrackedSet  // matched quotes followed by base, nil on failure
	Err    error       // cause of the failure, nil otherwise
}

// WidgetSpec describes one converter instance
// to be created and mounted into the host page
type WidgetSpec struct {
	Name       string   `yaml:"name" json:"name"`
	Root       string   `yaml:"root" json:"root" validate:"required"`
	Currencies []string `yaml:"currencies" json:"currencies" validate:"required,min=1,dive,len=3"`
}
