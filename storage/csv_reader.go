package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"deals-dashboard/models"
)

// CSVReader loads a CRM export file into raw rows. It enforces the same
// gate the upload widget applies: .csv extension and a size cap.
type CSVReader struct {
	maxFileSizeMB int
}

// NewCSVReader creates a CSVReader with the given size cap in megabytes.
func NewCSVReader(maxFileSizeMB int) *CSVReader {
	return &CSVReader{maxFileSizeMB: maxFileSizeMB}
}

// Read parses the file at path into header-mapped rows. The first record is
// the header; every following record becomes one RawRow keyed by column
// name. Short records are padded with empty cells.
func (r *CSVReader) Read(path string) ([]models.RawRow, error) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return nil, fmt.Errorf("csv: %q is not a .csv file", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("csv: stat %q: %w", path, err)
	}
	if maxBytes := int64(r.maxFileSizeMB) * 1024 * 1024; info.Size() > maxBytes {
		return nil, fmt.Errorf("csv: file %q exceeds %d MB limit", path, r.maxFileSizeMB)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return []models.RawRow{}, nil
	}

	header := records[0]
	if len(header) > 0 {
		// Exports from Excel often carry a UTF-8 BOM.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := make([]models.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(models.RawRow, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
