package nbrb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kylycht/converter/model"
	"github.com/kylycht/converter/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL string = "https://www.nbrb.by/API/" // base URL of National Bank API
	DefaultBase    string = "BYN"                      // currency the bank reports rates in
	ratesPath      string = "ExRates/Rates"            // official rates table
)

// Record is a single entry of the rates response
type Record struct {
	ID           int     `json:"Cur_ID"`
	Date         string  `json:"Date"`
	Abbreviation string  `json:"Cur_Abbreviation"`
	Scale        float64 `json:"Cur_Scale"`
	Name         string  `json:"Cur_Name"`
	OfficialRate float64 `json:"Cur_OfficialRate"`
}

// Config holds client settings
type Config struct {
	BaseURL     string        // base URL of the API, DefaultBaseURL if empty
	Base        string        // base currency code, DefaultBase if empty
	Periodicity int           // periodicity flag sent with every request
	Timeout     time.Duration // request timeout, zero means no timeout
	RPS         float64       // allowed requests per second, zero disables limiting
	Burst       int           // limiter burst
	MaxInFlight int64         // concurrent requests allowed, zero means 1
}

type client struct {
	baseURL     *url.URL            // Base URL for API requests
	base        string              // base currency code
	httpClient  *http.Client        // HTTP client used to communicate with the API.
	rateLimiter *rate.Limiter       // Rate limiter for bank api
	sem         *semaphore.Weighted // bounds requests in flight
}

func New(cfg Config) (service.Exchange, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Base == "" {
		cfg.Base = DefaultBase
	}
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = 1
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}

	periodicity := strconv.Itoa(cfg.Periodicity)

	c := &client{
		rateLimiter: rate.NewLimiter(limit, max(cfg.Burst, 1)),
		sem:         semaphore.NewWeighted(cfg.MaxInFlight),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: roundTripperFn(
				func(req *http.Request) (*http.Response, error) {

					params := req.URL.Query()
					params.Set("Periodicity", periodicity)
					req.URL.RawQuery = params.Encode()

					return http.DefaultTransport.RoundTrip(req)
				},
			),
		},
		baseURL: base,
		base:    cfg.Base,
	}

	return c, nil
}

// Base implements service.Exchange.
func (f *client) Base() string {
	return f.base
}

func (f *client) Do(ctx context.Context, req *http.Request, v interface{}) error {
	if err := f.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer f.sem.Release(1)

	err := f.rateLimiter.Wait(ctx)
	if err != nil {
		return err
	}

	log.Debug().Str("url", req.URL.String()).Msg("fetching information from API")

	resp, err := f.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unable to fetch rates due to code: %d", resp.StatusCode)
	}

	switch v := v.(type) {
	case nil:
	case io.Writer:
		_, err = io.Copy(v, resp.Body)
	default:
		err = json.NewDecoder(resp.Body).Decode(v)
	}

	return err
}

// GetRecords returns every record of the daily rates table.
// GET /ExRates/Rates?Periodicity=0
func (f *client) GetRecords(ctx context.Context) ([]Record, error) {
	u, err := f.baseURL.Parse(ratesPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	var records []Record

	if err := f.Do(ctx, req, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// FetchRates implements service.Exchange.
func (f *client) FetchRates(ctx context.Context, codes []string) model.FetchResult {
	records, err := f.GetRecords(ctx)
	if err != nil {
		return model.FetchResult{Status: model.Failed, Err: err}
	}

	set := Match(records, codes, f.base)
	log.Debug().Int("records", len(records)).Int("matched", len(set)-1).Msg("obtained rates")

	if len(set) == 1 {
		return model.FetchResult{Status: model.Empty, Set: set}
	}

	return model.FetchResult{Status: model.Ready, Set: set}
}

// Match narrows records down to the tracked codes,
// normalizes rates by scale and appends base quote.
// Records are kept in response order
func Match(records []Record, codes []string, base string) model.TrackedSet {
	tracked := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if code == base {
			continue
		}
		tracked[code] = struct{}{}
	}

	set := make(model.TrackedSet, 0, len(tracked)+1)

	for _, r := range records {
		if _, ok := tracked[r.Abbreviation]; !ok {
			continue
		}
		// rate must stay positive
		if r.OfficialRate <= 0 || r.Scale <= 0 {
			continue
		}

		set = append(set, model.Quote{
			Code: r.Abbreviation,
			Rate: r.OfficialRate / r.Scale,
		})
	}

	return append(set, model.Quote{Code: base, Rate: 1})
}

type roundTripperFn func(*http.Request) (*http.Response, error)

func (fn roundTripperFn) RoundTrip(r *http.Request) (*http.Response, error) {
	return fn(r)
}
