package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVSource renders a CSV file as a table. The first record is the header
// row.
type CSVSource struct{}

func (s *CSVSource) Load(r io.Reader, filename string) ([]string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return page(BaseName(filename), nil), nil
	}

	body := []string{"<table>", "<thead>", row("th", records[0]), "</thead>", "<tbody>"}
	for _, rec := range records[1:] {
		body = append(body, row("td", rec))
	}
	body = append(body, "</tbody>", "</table>")
	return page(BaseName(filename), body), nil
}

func row(cell string, fields []string) string {
	var sb strings.Builder
	sb.WriteString("<tr>")
	for _, f := range fields {
		sb.WriteString(element(cell, f))
	}
	sb.WriteString("</tr>")
	return sb.String()
}
