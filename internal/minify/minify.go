// Package minify collapses line-oriented markup before tokenizing.
package minify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Lines trims each line and concatenates the results.
func Lines(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(strings.TrimSpace(line))
	}
	return sb.String()
}

// Reader minifies everything r yields, line by line.
func Reader(r io.Reader) (string, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return "", fmt.Errorf("minify: %w", err)
	}
	return Lines(lines), nil
}

// ReadLines splits r into lines with "\n" or "\r\n" removed. Lines may be
// of any length; minified markup is often a single line.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
