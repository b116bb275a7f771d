// Package document wraps a parsed forest in an HTML > HEAD, BODY skeleton.
package document

import (
	"encoding/json"
	"strings"

	"github.com/dgallion1/domgest/internal/dom"
)

// Document is an assembled page. Its forest always has exactly one root,
// the HTML element, whose first two children are HEAD and BODY.
type Document struct {
	Forest          *dom.Forest
	DocumentElement dom.Handle
	Head            dom.Handle
	Body            dom.Handle

	// Synthesized lists the wrapper elements that were missing from the
	// source and had to be created.
	Synthesized []string
}

// Assemble copies src into a new document. The first HTML root is reused as
// the document element and the content of every other root is merged into
// it. Inside that content the first HEAD and the first BODY are reused;
// everything else is appended to BODY in document order. src is not
// modified.
func Assemble(src *dom.Forest) *Document {
	out := dom.NewForest()
	d := &Document{Forest: out}

	var content []dom.Handle
	foundHTML := false
	for _, r := range src.Roots() {
		if src.IsElement(r, "HTML") {
			foundHTML = true
			content = append(content, src.Children(r)...)
			continue
		}
		content = append(content, r)
	}
	if !foundHTML {
		d.Synthesized = append(d.Synthesized, "HTML")
	}

	head, body := dom.None, dom.None
	for _, h := range content {
		if head == dom.None && src.IsElement(h, "HEAD") {
			head = h
		}
		if body == dom.None && src.IsElement(h, "BODY") {
			body = h
		}
	}
	if head == dom.None {
		d.Synthesized = append(d.Synthesized, "HEAD")
	}
	if body == dom.None {
		d.Synthesized = append(d.Synthesized, "BODY")
	}

	d.DocumentElement = out.AddElement(dom.None, "HTML")
	d.Head = out.AddElement(d.DocumentElement, "HEAD")
	d.Body = out.AddElement(d.DocumentElement, "BODY")

	for _, h := range content {
		switch h {
		case head:
			for _, c := range src.Children(h) {
				out.Import(d.Head, src, c)
			}
		case body:
			for _, c := range src.Children(h) {
				out.Import(d.Body, src, c)
			}
		default:
			out.Import(d.Body, src, h)
		}
	}

	return d
}

// Title returns the trimmed text of the first TITLE element, if any.
func (d *Document) Title() string {
	title := dom.None
	d.Forest.WalkFrom(d.DocumentElement, func(h dom.Handle, _ int) bool {
		if title != dom.None {
			return false
		}
		if d.Forest.IsElement(h, "TITLE") {
			title = h
			return false
		}
		return true
	})
	if title == dom.None {
		return ""
	}
	return strings.TrimSpace(d.Forest.TextContent(title))
}

// MarshalJSON encodes the document element tree together with the list of
// synthesized wrappers.
func (d *Document) MarshalJSON() ([]byte, error) {
	synth := d.Synthesized
	if synth == nil {
		synth = []string{}
	}
	return json.Marshal(struct {
		Title       string       `json:"title,omitempty"`
		Root        dom.JSONNode `json:"root"`
		Synthesized []string     `json:"synthesized"`
	}{
		Title:       d.Title(),
		Root:        d.Forest.Tree(d.DocumentElement),
		Synthesized: synth,
	})
}
