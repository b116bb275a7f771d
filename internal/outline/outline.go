// Package outline derives a heading outline from an assembled document.
package outline

import (
	"strings"

	"github.com/dgallion1/domgest/internal/doctree"
	"github.com/dgallion1/domgest/internal/document"
	"github.com/dgallion1/domgest/internal/dom"
)

// Build walks the document body and nests sections by heading level. Text of
// paragraph-like elements goes to the nearest enclosing section.
func Build(doc *document.Document, fallbackTitle string) *doctree.DocTree {
	f := doc.Forest
	tree := &doctree.DocTree{Title: fallbackTitle}
	if title := doc.Title(); title != "" {
		tree.Title = title
	}

	type stackEntry struct {
		node  *doctree.DocNode
		level int
	}
	root := &doctree.DocNode{Title: tree.Title}
	stack := []stackEntry{{node: root, level: 0}}
	var currentText strings.Builder

	flushText := func() {
		t := strings.TrimSpace(currentText.String())
		if t != "" {
			top := stack[len(stack)-1].node
			if top.Text != "" {
				top.Text += "\n\n" + t
			} else {
				top.Text = t
			}
		}
		currentText.Reset()
	}

	f.WalkFrom(doc.Body, func(h dom.Handle, _ int) bool {
		tag := f.TagName(h)
		if tag == "" {
			return true
		}

		if level := headingLevel(tag); level > 0 {
			flushText()
			newNode := &doctree.DocNode{
				Title: strings.TrimSpace(f.TextContent(h)),
				Level: level,
			}
			for len(stack) > 1 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, newNode)
			stack = append(stack, stackEntry{node: newNode, level: level})
			return false
		}

		switch tag {
		case "SCRIPT", "STYLE", "NAV", "FOOTER", "HEADER":
			return false
		case "P", "LI", "TD", "BLOCKQUOTE":
			t := strings.TrimSpace(f.TextContent(h))
			if t != "" {
				if currentText.Len() > 0 {
					currentText.WriteString("\n\n")
				}
				currentText.WriteString(t)
			}
			return false
		}
		return true
	})
	flushText()

	tree.Children = root.Children
	if len(tree.Children) == 0 && root.Text != "" {
		tree.Children = []*doctree.DocNode{{Text: root.Text}}
	}

	return tree
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'H' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
