package widget

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kylycht/converter/converter"
	"github.com/kylycht/converter/model"
	"github.com/kylycht/converter/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type presetExchange struct {
	result model.FetchResult
}

func (p presetExchange) FetchRates(ctx context.Context, codes []string) model.FetchResult {
	return p.result
}

func (p presetExchange) Base() string { return "BYN" }

var rates = model.TrackedSet{
	{Code: "USD", Rate: 300},
	{Code: "EUR", Rate: 330},
	{Code: "RUB", Rate: 4},
	{Code: "BYN", Rate: 1},
}

const host = `<!DOCTYPE html><html><head></head><body><div id="root"></div><div id="root2"></div></body></html>`

func setup(t *testing.T) (*fiber.App, *converter.Converter, *converter.Converter) {
	t.Helper()

	doc, err := page.Parse(strings.NewReader(host))
	require.NoError(t, err)

	ready := converter.New(context.Background(), presetExchange{model.FetchResult{Status: model.Ready, Set: rates}},
		model.WidgetSpec{Name: "main", Root: "#root", Currencies: []string{"USD", "EUR", "RUB"}})
	failed := converter.New(context.Background(), presetExchange{model.FetchResult{Status: model.Failed, Err: io.ErrUnexpectedEOF}},
		model.WidgetSpec{Name: "side", Root: "#root2", Currencies: []string{"USD"}})

	for _, c := range []*converter.Converter{ready, failed} {
		select {
		case <-c.Done():
		case <-time.After(time.Second):
			t.Fatal("fetch did not complete")
		}
		require.NoError(t, c.Mount(doc, c.Snapshot().Root))
	}

	app := fiber.New()
	New(doc, []*converter.Converter{ready, failed}).Register(app)

	return app, ready, failed
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}

func TestPage(t *testing.T) {
	app, ready, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	html := body(t, resp)
	assert.Contains(t, html, `action="/widgets/`+ready.ID()+`"`)
	assert.Contains(t, html, `<div data-currency="EUR">EUR: NaN</div>`)
	assert.Contains(t, html, `<div id="root2"><div class="inputSide">`)
	assert.Contains(t, html, `<div class="resultSide">Error</div>`)
}

func TestEvent(t *testing.T) {
	app, ready, _ := setup(t)

	form := url.Values{"amount": {"100"}, "from": {"BYN"}}
	req := httptest.NewRequest(http.MethodPost, "/widgets/"+ready.ID(), strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

	view := ready.Snapshot()
	assert.Equal(t, "BYN", view.Selected)
	assert.Equal(t, "100", view.Amount)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	html := body(t, resp)
	assert.Contains(t, html, `<div data-currency="USD">USD: 0.33</div>`)
	assert.Contains(t, html, `<div data-currency="RUB">RUB: 25.00</div>`)
}

func TestEvent_Errors(t *testing.T) {
	app, ready, _ := setup(t)

	form := url.Values{"amount": {"1"}, "from": {"GBP"}}
	req := httptest.NewRequest(http.MethodPost, "/widgets/"+ready.ID(), strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unknown currency: GBP", body(t, resp))
	assert.Equal(t, "1", ready.Snapshot().Amount)
	assert.Equal(t, "USD", ready.Snapshot().Selected)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/widgets/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

type pendingExchange struct {
	release chan struct{}
}

func (p pendingExchange) FetchRates(ctx context.Context, codes []string) model.FetchResult {
	<-p.release
	return model.FetchResult{Status: model.Ready, Set: rates}
}

func (p pendingExchange) Base() string { return "BYN" }

func TestEvent_LoadingKeepsAmount(t *testing.T) {
	doc, err := page.Parse(strings.NewReader(host))
	require.NoError(t, err)

	exchange := pendingExchange{release: make(chan struct{})}
	loading := converter.New(context.Background(), exchange,
		model.WidgetSpec{Name: "main", Root: "#root", Currencies: []string{"USD", "EUR", "RUB"}})
	require.NoError(t, loading.Mount(doc, "#root"))

	app := fiber.New()
	New(doc, []*converter.Converter{loading}).Register(app)

	form := url.Values{"amount": {"10"}, "from": {"USD"}}
	req := httptest.NewRequest(http.MethodPost, "/widgets/"+loading.ID(), strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "10", loading.Snapshot().Amount)

	close(exchange.release)
	select {
	case <-loading.Done():
	case <-time.After(time.Second):
		t.Fatal("fetch did not complete")
	}

	assert.Equal(t, "BYN: 3000.00", loading.Snapshot().Rows[3].Text)
}

func TestList(t *testing.T) {
	app, ready, failed := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/widgets", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var views []converter.View
	require.NoError(t, json.Unmarshal([]byte(body(t, resp)), &views))
	require.Len(t, views, 2)
	assert.Equal(t, ready.ID(), views[0].ID)
	assert.Equal(t, model.Ready, views[0].Status)
	assert.Equal(t, failed.ID(), views[1].ID)
	assert.Equal(t, model.Failed, views[1].Status)
	assert.Empty(t, views[1].Rows)
}

func TestGet(t *testing.T) {
	app, ready, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/widgets/"+ready.ID(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view converter.View
	require.NoError(t, json.Unmarshal([]byte(body(t, resp)), &view))
	assert.Equal(t, "main", view.Name)
	assert.Equal(t, "USD", view.Selected)
	assert.Len(t, view.Options, 4)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/widgets/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestConvert(t *testing.T) {
	app, ready, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/widgets/"+ready.ID()+"/convert?from=USD&amount=10", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []model.Row
	require.NoError(t, json.Unmarshal([]byte(body(t, resp)), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "EUR: 9.09", rows[0].Text)
	assert.Equal(t, "RUB: 750.00", rows[1].Text)
	assert.Equal(t, "BYN: 3000.00", rows[2].Text)
	assert.Equal(t, "USD", ready.Snapshot().Selected)
	assert.Equal(t, "", ready.Snapshot().Amount)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/widgets/"+ready.ID()+"/convert?from=GBP", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
