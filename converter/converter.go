package converter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kylycht/converter/metrics"
	"github.com/kylycht/converter/model"
	"github.com/kylycht/converter/service"
	"github.com/rs/zerolog/log"
)

// ErrUnknownCurrency is returned when selected code
// is not among the widget options
var ErrUnknownCurrency = errors.New("unknown currency")

// View is a point in time copy of the widget state
type View struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Root     string            `json:"root"`
	Status   model.FetchStatus `json:"status"`
	Options  []model.Option    `json:"options"`
	Rows     []model.Row       `json:"rows"`
	Selected string            `json:"selected"`
	Amount   string            `json:"amount"`
}

// Loading reports whether rates are still being fetched
func (v View) Loading() bool { return v.Status == model.Loading }

// Failed reports whether rates fetch failed
func (v View) Failed() bool { return v.Status == model.Failed }

// Converter is a single widget instance
type Converter struct {
	id     string           // instance id used by event routes
	spec   model.WidgetSpec // tracked codes and host selector
	source service.Exchange // rates provider
	doneC  chan struct{}    // closed once fetch completes

	lock     sync.Mutex        // guards fields below
	status   model.FetchStatus // fetch status
	fetchErr error             // cause of a failed fetch
	set      model.TrackedSet  // fetched quotes
	options  []model.Option    // select entries
	rows     []model.Row       // result rows
	selected string            // selected "from" code
	amount   string            // raw typed amount
}

// New creates widget instance and starts the rates fetch.
// The instance is in loading state once New returns
func New(ctx context.Context, source service.Exchange, spec model.WidgetSpec) *Converter {
	if spec.Name == "" {
		spec.Name = spec.Root
	}

	c := &Converter{
		id:     uuid.NewString(),
		spec:   spec,
		source: source,
		doneC:  make(chan struct{}),
		status: model.Loading,
	}

	go c.fetch(ctx)

	return c
}

// ID returns instance id
func (c *Converter) ID() string {
	return c.id
}

// Name returns instance name
func (c *Converter) Name() string {
	return c.spec.Name
}

// Done is closed once the fetch completes
func (c *Converter) Done() <-chan struct{} {
	return c.doneC
}

// Result returns the fetch outcome, status
// is model.Loading while the fetch is in flight
func (c *Converter) Result() model.FetchResult {
	c.lock.Lock()
	defer c.lock.Unlock()

	return model.FetchResult{Status: c.status, Set: c.set, Err: c.fetchErr}
}

func (c *Converter) fetch(ctx context.Context) {
	defer close(c.doneC)

	start := time.Now()
	res := c.source.FetchRates(ctx, c.spec.Currencies)
	metrics.FetchDuration.WithLabelValues(c.spec.Name).Observe(time.Since(start).Seconds())
	metrics.FetchesTotal.WithLabelValues(c.spec.Name, string(res.Status)).Inc()

	c.commit(res)
}

// commit applies fetch result, rebuilds presentation
// and runs the first calculation
func (c *Converter) commit(res model.FetchResult) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.status = res.Status
	c.fetchErr = res.Err

	if res.Status == model.Failed {
		c.set, c.options, c.rows = nil, nil, nil
		log.Warn().Str("widget", c.spec.Name).Msg("unable to fetch rates")
		return
	}

	c.set = res.Set
	c.options, c.rows = BuildRows(res.Set)

	if _, ok := c.set.Rate(c.selected); !ok && len(c.options) > 0 {
		c.selected = c.options[0].Code
	}

	log.Debug().Str("widget", c.spec.Name).Int("rows", len(c.rows)).Msg("rates committed")
	c.recompute()
}

// Input handles amount change
func (c *Converter) Input(amountText string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.amount = amountText
	c.recompute()
}

// Select handles "from" currency change
func (c *Converter) Select(code string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.set.Rate(code); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}

	c.selected = code
	c.recompute()

	return nil
}

// Convert computes rows for given selection and amount
// without changing the widget state
func (c *Converter) Convert(from, amountText string) ([]model.Row, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.set.Rate(from); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}

	return Recompute(c.rows, from, amountText), nil
}

// Snapshot returns copy of the current state
func (c *Converter) Snapshot() View {
	c.lock.Lock()
	defer c.lock.Unlock()

	return View{
		ID:       c.id,
		Name:     c.spec.Name,
		Root:     c.spec.Root,
		Status:   c.status,
		Options:  append([]model.Option(nil), c.options...),
		Rows:     append([]model.Row(nil), c.rows...),
		Selected: c.selected,
		Amount:   c.amount,
	}
}

// recompute must be called with lock held
func (c *Converter) recompute() {
	if len(c.rows) == 0 {
		return
	}

	c.rows = Recompute(c.rows, c.selected, c.amount)
	metrics.RecomputesTotal.WithLabelValues(c.spec.Name).Inc()
}
