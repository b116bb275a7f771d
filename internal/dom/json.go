package dom

import (
	"encoding/json"
)

// JSONNode is the wire form of a node: nested objects in document order.
type JSONNode struct {
	Type     string     `json:"type"`
	Tag      string     `json:"tag,omitempty"`
	Text     string     `json:"text,omitempty"`
	Children []JSONNode `json:"children,omitempty"`
}

// Tree converts the subtree rooted at h into its nested wire form.
func (f *Forest) Tree(h Handle) JSONNode {
	n := &f.nodes[h]
	out := JSONNode{Type: n.Kind.String(), Tag: n.TagName, Text: n.Text}
	if len(n.Children) > 0 {
		out.Children = make([]JSONNode, 0, len(n.Children))
		for _, c := range n.Children {
			out.Children = append(out.Children, f.Tree(c))
		}
	}
	return out
}

// MarshalJSON encodes the forest as an array of root trees.
func (f *Forest) MarshalJSON() ([]byte, error) {
	roots := make([]JSONNode, 0, len(f.roots))
	for _, r := range f.roots {
		roots = append(roots, f.Tree(r))
	}
	return json.Marshal(roots)
}
