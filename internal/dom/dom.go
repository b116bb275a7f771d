// Package dom holds the minimal element/text tree produced by the builder.
//
// Nodes live in an arena owned by a Forest and refer to each other through
// Handles. A node's parent is stored as a Handle, so ownership only flows
// from parent to child and the forest has no pointer cycles.
package dom

import (
	"slices"
	"strings"
)

// Kind distinguishes element nodes from text runs.
type Kind uint8

const (
	Element Kind = iota + 1
	Text
)

func (k Kind) String() string {
	switch k {
	case Element:
		return "element"
	case Text:
		return "text"
	default:
		return "invalid"
	}
}

// Handle addresses a node inside its Forest.
type Handle int

// None is the parent handle of a root node.
const None Handle = -1

// Node is a single element or text run.
type Node struct {
	Kind     Kind
	TagName  string   // Uppercase tag name, elements only.
	Text     string   // Raw lexeme, text nodes only.
	Parent   Handle   // None for roots.
	Children []Handle // Document order.
}

// Forest is an ordered collection of root nodes and the arena backing them.
type Forest struct {
	nodes []Node
	roots []Handle
}

// NewForest returns an empty forest.
func NewForest() *Forest {
	return &Forest{}
}

// AddElement creates an element node. With parent == None the node becomes
// a new root, otherwise it is appended to parent's children.
func (f *Forest) AddElement(parent Handle, tagName string) Handle {
	return f.add(Node{Kind: Element, TagName: tagName, Parent: parent})
}

// AddText creates a text node under parent, or a new root if parent is None.
func (f *Forest) AddText(parent Handle, text string) Handle {
	return f.add(Node{Kind: Text, Text: text, Parent: parent})
}

func (f *Forest) add(n Node) Handle {
	h := Handle(len(f.nodes))
	f.nodes = append(f.nodes, n)
	if n.Parent == None {
		f.roots = append(f.roots, h)
	} else {
		p := &f.nodes[n.Parent]
		p.Children = append(p.Children, h)
	}
	return h
}

// Len returns the number of nodes in the arena.
func (f *Forest) Len() int {
	return len(f.nodes)
}

// Roots returns the root handles in creation order.
func (f *Forest) Roots() []Handle {
	return slices.Clone(f.roots)
}

// Node returns a copy of the node at h.
func (f *Forest) Node(h Handle) Node {
	n := f.nodes[h]
	n.Children = slices.Clone(n.Children)
	return n
}

// Children returns the child handles of h in document order.
func (f *Forest) Children(h Handle) []Handle {
	return slices.Clone(f.nodes[h].Children)
}

// Parent returns the parent of h, or None for a root.
func (f *Forest) Parent(h Handle) Handle {
	return f.nodes[h].Parent
}

// TagName returns the tag name of h, or "" for text nodes.
func (f *Forest) TagName(h Handle) string {
	return f.nodes[h].TagName
}

// IsElement reports whether h is an element with the given tag name.
// The comparison ignores case.
func (f *Forest) IsElement(h Handle, tagName string) bool {
	n := &f.nodes[h]
	return n.Kind == Element && strings.EqualFold(n.TagName, tagName)
}

// Ancestor walks up from h, h included, and returns the first element whose
// tag name equals tagName. It returns None if no such node exists.
func (f *Forest) Ancestor(h Handle, tagName string) Handle {
	for h != None {
		n := &f.nodes[h]
		if n.Kind == Element && n.TagName == tagName {
			return h
		}
		h = n.Parent
	}
	return None
}

// Depth returns the number of ancestors of h.
func (f *Forest) Depth(h Handle) int {
	d := 0
	for p := f.nodes[h].Parent; p != None; p = f.nodes[p].Parent {
		d++
	}
	return d
}

// Walk visits every node in pre-order, roots first to last. Returning false
// from fn skips the children of the node just visited.
func (f *Forest) Walk(fn func(h Handle, depth int) bool) {
	for _, r := range f.roots {
		f.WalkFrom(r, fn)
	}
}

// WalkFrom visits the subtree rooted at h in pre-order.
func (f *Forest) WalkFrom(h Handle, fn func(h Handle, depth int) bool) {
	type frame struct {
		h     Handle
		depth int
	}
	stack := []frame{{h: h}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top.h, top.depth) {
			continue
		}
		kids := f.nodes[top.h].Children
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{h: kids[i], depth: top.depth + 1})
		}
	}
}

// TextContent concatenates the text of every text node under h.
func (f *Forest) TextContent(h Handle) string {
	var buf strings.Builder
	f.WalkFrom(h, func(c Handle, _ int) bool {
		if n := &f.nodes[c]; n.Kind == Text {
			buf.WriteString(n.Text)
		}
		return true
	})
	return buf.String()
}

// Import deep-copies the subtree rooted at h in src into f under parent and
// returns the handle of the copy. src is not modified.
func (f *Forest) Import(parent Handle, src *Forest, h Handle) Handle {
	n := &src.nodes[h]
	var dst Handle
	if n.Kind == Text {
		dst = f.AddText(parent, n.Text)
	} else {
		dst = f.AddElement(parent, n.TagName)
	}
	for _, c := range n.Children {
		f.Import(dst, src, c)
	}
	return dst
}
