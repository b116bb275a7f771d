package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
)

// MarkdownSource renders Markdown to HTML with goldmark.
type MarkdownSource struct{}

func (s *MarkdownSource) Load(r io.Reader, filename string) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := goldmark.New().Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	body := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	return page(BaseName(filename), body), nil
}
