// Package head renders the page title and meta tags from declarative metadata.
package head

import (
	"html/template"
	"io"
	"strings"
	"sync"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type Metadata struct {
	Title       string
	Description string
	Keywords    []string
	OGTitle     string
}

// Document is the head of a single render. Metadata applied to it stacks: the most
// recent Apply wins until its release func runs.
type Document struct {
	mu    sync.Mutex
	base  Metadata
	stack []*Metadata
}

func NewDocument(base Metadata) *Document {
	return &Document{base: base}
}

// Apply makes meta current and returns the func that withdraws it. Releasing out of
// order only withdraws the released entry.
func (d *Document) Apply(meta Metadata) (release func()) {
	entry := &meta

	d.mu.Lock()
	d.stack = append(d.stack, entry)
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			for i := len(d.stack) - 1; i >= 0; i-- {
				if d.stack[i] == entry {
					d.stack = append(d.stack[:i], d.stack[i+1:]...)
					return
				}
			}
		})
	}
}

func (d *Document) Current() Metadata {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.stack) == 0 {
		return d.base
	}
	return *d.stack[len(d.stack)-1]
}

func (d *Document) Render(w io.Writer) error {
	return Nodes(d.Current()).Render(w)
}

// HTML renders the current metadata for embedding in a template.
func (d *Document) HTML() (template.HTML, error) {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

func Nodes(meta Metadata) g.Node {
	return g.Group([]g.Node{
		g.If(meta.Title != "", h.TitleEl(g.Text(meta.Title))),
		g.If(meta.Description != "", h.Meta(h.Name("description"), h.Content(meta.Description))),
		g.If(len(meta.Keywords) > 0, h.Meta(h.Name("keywords"), h.Content(strings.Join(meta.Keywords, ", ")))),
		g.If(meta.OGTitle != "", h.Meta(g.Attr("property", "og:title"), h.Content(meta.OGTitle))),
	})
}
