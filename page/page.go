package page

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// ErrRootNotFound is returned when no element
// of the host page matches the mount selector
var ErrRootNotFound = errors.New("root element is not defined")

// Renderer produces the markup of a mounted subtree
type Renderer interface {
	RenderHTML() (string, error)
}

type mount struct {
	selector string   // selector the subtree was mounted with
	renderer Renderer // subtree source
}

// Document is the host page widgets are mounted into.
// Every render starts from the pristine source
type Document struct {
	lock   sync.RWMutex // guards mounts
	source []byte       // host page markup
	mounts []mount      // attached subtrees in mount order
}

// Load reads host page from file
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(bytes.NewReader(content))
}

// Parse reads host page from r
func Parse(r io.Reader) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if _, err := goquery.NewDocumentFromReader(bytes.NewReader(content)); err != nil {
		return nil, err
	}

	return &Document{source: content}, nil
}

// Has reports whether any element matches selector
func (d *Document) Has(selector string) bool {
	doc, err := d.parse()
	if err != nil {
		return false
	}

	return doc.Find(selector).Length() > 0
}

// Attach mounts renderer into the first element matching selector
func (d *Document) Attach(selector string, renderer Renderer) error {
	doc, err := d.parse()
	if err != nil {
		return err
	}

	if doc.Find(selector).Length() == 0 {
		return fmt.Errorf("%w: %s", ErrRootNotFound, selector)
	}

	d.lock.Lock()
	d.mounts = append(d.mounts, mount{selector: selector, renderer: renderer})
	d.lock.Unlock()

	return nil
}

// Render writes host page with every mounted subtree
// appended to its container
func (d *Document) Render(w io.Writer) error {
	doc, err := d.parse()
	if err != nil {
		return err
	}

	d.lock.RLock()
	mounts := make([]mount, len(d.mounts))
	copy(mounts, d.mounts)
	d.lock.RUnlock()

	for _, m := range mounts {
		markup, err := m.renderer.RenderHTML()
		if err != nil {
			return err
		}

		doc.Find(m.selector).First().AppendHtml(markup)
	}

	out, err := doc.Html()
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

func (d *Document) parse() (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(d.source))
}
