package doctree

// DocTree is the heading outline of an assembled document.
type DocTree struct {
	Title    string     `json:"title"`              // From <title>, or the source filename
	Children []*DocNode `json:"children,omitempty"` // Top-level sections
}

// DocNode is a recursive section in the outline.
type DocNode struct {
	Title    string     `json:"title,omitempty"`    // Heading text (empty for leaf text)
	Level    int        `json:"level,omitempty"`    // 1-6 for H1-H6, 0 for leaf text
	Text     string     `json:"text,omitempty"`     // Paragraph text directly under this heading
	Children []*DocNode `json:"children,omitempty"` // Subsections
}

// Sections counts every node in the outline.
func (t *DocTree) Sections() int {
	var count func(nodes []*DocNode) int
	count = func(nodes []*DocNode) int {
		n := len(nodes)
		for _, c := range nodes {
			n += count(c.Children)
		}
		return n
	}
	return count(t.Children)
}
