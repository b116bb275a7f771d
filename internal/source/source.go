// Package source turns supported document formats into markup lines ready
// for minification and tokenizing.
package source

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ErrUnsupported is returned for file extensions with no Source.
var ErrUnsupported = errors.New("unsupported file extension")

// Source converts raw document bytes into markup lines.
type Source interface {
	Load(r io.Reader, filename string) ([]string, error)
}

// Options tunes the sources that need it.
type Options struct {
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
	".txt":      true,
	".csv":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string, opts Options) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".txt":
		return &TextSource{}, nil
	case ".csv":
		return &CSVSource{}, nil
	case ".pdf":
		return &PDFSource{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXSource{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// BaseName strips the directory and extension from filename.
func BaseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// element wraps escaped text in a start and end tag.
func element(tag, text string) string {
	return "<" + tag + ">" + html.EscapeString(text) + "</" + tag + ">"
}

// page wraps body lines in a complete document with a title.
func page(title string, body []string) []string {
	lines := make([]string, 0, len(body)+6)
	lines = append(lines, "<html>", "<head>", element("title", title), "</head>", "<body>")
	lines = append(lines, body...)
	return append(lines, "</body>", "</html>")
}
