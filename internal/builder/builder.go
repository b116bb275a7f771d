// Package builder reconstructs a node forest from a lexeme stream.
//
// The builder keeps an insertion point and a stack of open tags. Closing
// tags are matched against the most recent open tag of the same name;
// closers with no open match are dropped and closers that match an outer
// element close everything opened after it. Building never fails.
package builder

import (
	"github.com/dgallion1/domgest/internal/dom"
	"github.com/dgallion1/domgest/internal/lexer"
)

// Stats counts how often each repair path fired. It has no effect on the
// tree.
type Stats struct {
	Lexemes   int `json:"lexemes"`
	Nodes     int `json:"nodes"`
	Roots     int `json:"roots"`
	Matched   int `json:"matched_closers"`
	Recovered int `json:"recovered_closers"`
	Spurious  int `json:"spurious_closers"`
	Orphaned  int `json:"orphaned_closers"`
	Displaced int `json:"displaced_closers"`
	Unclosed  int `json:"unclosed_tags"`
}

type openTag struct {
	name string
	node dom.Handle
}

// Builder is the state threaded through one build.
type Builder struct {
	forest  *dom.Forest
	current dom.Handle
	open    []openTag
	stats   Stats
}

// New returns a builder with an empty forest and no insertion point.
func New() *Builder {
	return &Builder{
		forest:  dom.NewForest(),
		current: dom.None,
	}
}

// Build consumes lexemes in order and returns the resulting forest.
func Build(lexemes []string) *dom.Forest {
	b := New()
	for _, lx := range lexemes {
		b.Feed(lx)
	}
	return b.Forest()
}

// Feed processes a single lexeme.
func (b *Builder) Feed(lexeme string) {
	b.stats.Lexemes++

	switch lexer.Classify(lexeme) {
	case lexer.Opening:
		name := lexer.TagName(lexeme)
		h := b.forest.AddElement(b.current, name)
		b.open = append(b.open, openTag{name: name, node: h})
		b.current = h
	case lexer.SelfClosing:
		b.forest.AddElement(b.current, lexer.TagName(lexeme))
	case lexer.Text:
		b.forest.AddText(b.current, lexeme)
	case lexer.Closing:
		b.close(lexer.TagName(lexeme))
	}
}

func (b *Builder) close(name string) {
	i := b.lastOpen(name)
	if i < 0 {
		b.stats.Spurious++
		return
	}

	closed := dom.None
	switch {
	case b.current != dom.None && b.forest.TagName(b.current) == name:
		b.stats.Matched++
		closed = b.current
	default:
		// Close the nearest matching ancestor and everything opened inside it.
		if b.current != dom.None {
			closed = b.forest.Ancestor(b.current, name)
		}
		if closed == dom.None {
			b.stats.Orphaned++
		} else {
			b.stats.Recovered++
		}
	}
	if closed != dom.None {
		b.current = b.forest.Parent(closed)
		// The stack entry and the element actually closed can be different
		// nodes of the same name once an earlier recovery skipped over one.
		if closed != b.open[i].node {
			b.stats.Displaced++
		}
	}

	b.open = append(b.open[:i], b.open[i+1:]...)
}

// lastOpen returns the index of the topmost open tag called name, or -1.
func (b *Builder) lastOpen(name string) int {
	for i := len(b.open) - 1; i >= 0; i-- {
		if b.open[i].name == name {
			return i
		}
	}
	return -1
}

// Forest returns the forest built so far.
func (b *Builder) Forest() *dom.Forest {
	return b.forest
}

// Open returns the names of the tags still open, bottom of the stack first.
func (b *Builder) Open() []string {
	names := make([]string, len(b.open))
	for i, t := range b.open {
		names[i] = t.name
	}
	return names
}

// Stats returns the counters accumulated so far.
func (b *Builder) Stats() Stats {
	s := b.stats
	s.Nodes = b.forest.Len()
	s.Roots = len(b.forest.Roots())
	s.Unclosed = len(b.open)
	return s
}
