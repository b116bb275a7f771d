package source

import (
	"fmt"
	"io"

	"github.com/dgallion1/domgest/internal/minify"
)

// HTMLSource passes markup through line by line.
type HTMLSource struct{}

func (s *HTMLSource) Load(r io.Reader, filename string) ([]string, error) {
	lines, err := minify.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("read html: %w", err)
	}
	return lines, nil
}
