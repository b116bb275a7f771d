package source

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFSource emits one <section> per page. It tries the Go library first,
// then falls back to pdftotext if enabled.
type PDFSource struct {
	FallbackPdftotext bool
}

func (s *PDFSource) Load(r io.Reader, filename string) ([]string, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "domgest-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	text, err := extractPDFText(tmpPath)
	if err != nil && s.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	return page(BaseName(filename), pageSections(text)), nil
}

// pageSections splits form-feed separated page text into sections with one
// paragraph per non-empty line.
func pageSections(text string) []string {
	var body []string
	for i, pg := range strings.Split(text, "\f") {
		if strings.TrimSpace(pg) == "" {
			continue
		}
		body = append(body, "<section>", element("h2", fmt.Sprintf("Page %d", i+1)))
		for _, line := range strings.Split(pg, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				body = append(body, element("p", line))
			}
		}
		body = append(body, "</section>")
	}
	return body
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if i > 1 {
			buf.WriteString("\f")
		}
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
