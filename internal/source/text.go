package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/domgest/internal/minify"
)

// TextSource turns blank-line separated paragraphs into <p> elements.
type TextSource struct{}

func (s *TextSource) Load(r io.Reader, filename string) ([]string, error) {
	lines, err := minify.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	var paragraphs []string
	var current strings.Builder

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
			continue
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	body := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		body = append(body, element("p", para))
	}
	return page(BaseName(filename), body), nil
}
