// Package importer parses tabular delivery data into candidates for the
// warehouse create-or-merge path. Column headers are matched loosely so
// exports from different spreadsheets map onto the same fields.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nmarkovic/magacin/internal/warehouse"
)

// defaultLowStockThreshold is applied when a row has no threshold column.
const defaultLowStockThreshold = 10

// Parse reads delimiter-separated rows (comma, semicolon or tab) and maps
// them to delivery candidates. Rows missing a code or name are skipped, not
// errors: partial spreadsheets are the norm. Each returned candidate is
// applied independently by the caller.
func Parse(r io.Reader) ([]warehouse.DeliveryCandidate, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import data: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = detectDelimiter(string(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing import data: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("import needs a header row and at least one data row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []warehouse.DeliveryCandidate
	for _, record := range records[1:] {
		cand := warehouse.DeliveryCandidate{
			Project:           "Skladište",
			LowStockThreshold: defaultLowStockThreshold,
		}
		for i, value := range record {
			if i >= len(headers) {
				break
			}
			applyColumn(&cand, headers[i], strings.TrimSpace(value))
		}
		if cand.Code != "" && cand.Name != "" {
			rows = append(rows, cand)
		}
	}
	return rows, nil
}

// applyColumn maps one header/value pair onto the candidate. Header matching
// accepts both the Serbian export names and their English equivalents.
func applyColumn(cand *warehouse.DeliveryCandidate, header, value string) {
	switch {
	case strings.Contains(header, "okov"):
		switch {
		case strings.Contains(header, "ime") || strings.Contains(header, "naziv"):
			cand.OkovName = value
		case strings.Contains(header, "cena"):
			cand.OkovPrice = parsePrice(value)
		case strings.Contains(header, "kom"):
			cand.OkovQty = parseQty(value)
		}
	case strings.Contains(header, "ploc") || strings.Contains(header, "ploč"):
		switch {
		case strings.Contains(header, "ime") || strings.Contains(header, "naziv"):
			cand.PloceName = value
		case strings.Contains(header, "cena"):
			cand.PlocePrice = parsePrice(value)
		case strings.Contains(header, "kom"):
			cand.PloceQty = parseQty(value)
		}
	case strings.Contains(header, "sifra") || strings.Contains(header, "šifra") || strings.Contains(header, "code"):
		cand.Code = value
	case strings.Contains(header, "lokacija") || strings.Contains(header, "location"):
		cand.Location = value
	case strings.Contains(header, "projek") || strings.Contains(header, "project"):
		if value != "" {
			cand.Project = value
		}
	case strings.Contains(header, "naziv") || strings.Contains(header, "ime") || strings.Contains(header, "name"):
		cand.Name = value
	case strings.Contains(header, "dobavljac") || strings.Contains(header, "dobavljač") || strings.Contains(header, "supplier"):
		cand.Supplier = value
	case strings.Contains(header, "cena") || strings.Contains(header, "price"):
		cand.Price = parsePrice(value)
	case strings.Contains(header, "kolicina") || strings.Contains(header, "količina") || strings.Contains(header, "ulaz") || strings.Contains(header, "input") || strings.Contains(header, "quantity"):
		cand.Quantity = parseQty(value)
	case strings.Contains(header, "minimum") || strings.Contains(header, "threshold"):
		cand.LowStockThreshold = parseQtyDefault(value, defaultLowStockThreshold)
	}
}

// detectDelimiter picks the delimiter from the header line.
func detectDelimiter(data string) rune {
	line, _, _ := strings.Cut(data, "\n")
	switch {
	case strings.Contains(line, ";"):
		return ';'
	case strings.Contains(line, "\t"):
		return '\t'
	default:
		return ','
	}
}

// parseQty parses an integer quantity, treating malformed values as zero.
func parseQty(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseQtyDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// parsePrice parses a price, accepting a decimal comma and treating
// malformed values as zero.
func parsePrice(s string) float64 {
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
