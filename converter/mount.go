package converter

import (
	"bytes"
	"html/template"

	"github.com/kylycht/converter/metrics"
	"github.com/kylycht/converter/page"
	"github.com/rs/zerolog/log"
)

var widgetTmpl = template.Must(template.New("widget").Parse(
	`<div class="inputSide">` +
		`<form method="post" action="/widgets/{{.ID}}">` +
		`<input type="number" step="any" name="amount" value="{{.Amount}}">` +
		`<select name="from">` +
		`{{range .Options}}<option value="{{.Code}}"{{if eq .Code $.Selected}} selected{{end}}>{{.Code}}</option>{{end}}` +
		`</select>` +
		`<button type="submit">Convert</button>` +
		`</form>` +
		`</div>` +
		`<div class="resultSide">` +
		`{{if .Loading}}Loading...{{else if .Failed}}Error{{else}}` +
		`{{range .Rows}}<div data-currency="{{.Code}}"{{if .Hidden}} class="hidden"{{end}}>{{.Text}}</div>{{end}}` +
		`{{end}}` +
		`</div>`,
))

// Mount attaches widget subtree to the first element
// of the host page matching selector.
// Input events reach the widget through Input and Select
func (c *Converter) Mount(doc *page.Document, selector string) error {
	if err := doc.Attach(selector, c); err != nil {
		metrics.MountsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.MountsTotal.WithLabelValues("mounted").Inc()
	log.Debug().Str("widget", c.spec.Name).Str("root", selector).Msg("widget mounted")

	return nil
}

// RenderHTML implements page.Renderer.
func (c *Converter) RenderHTML() (string, error) {
	var buf bytes.Buffer

	if err := widgetTmpl.Execute(&buf, c.Snapshot()); err != nil {
		return "", err
	}

	return buf.String(), nil
}
