package services

import (
	"fmt"
	"strings"

	"deals-dashboard/models"
)

// ValidateDataset is the up-front gate run once before any transformation.
// It checks, in order: the dataset is non-empty, the header carries every
// required column, and at least one row fills the three mandatory columns.
// It never parses a value; per-row checks belong to the transformer.
func ValidateDataset(rows []models.RawRow) models.ValidationResult {
	errors := []string{}

	if len(rows) == 0 {
		errors = append(errors, "CSV file is empty")
		return models.ValidationResult{Valid: false, Errors: errors}
	}

	firstRow := rows[0]
	for _, column := range models.RequiredColumns {
		if _, ok := firstRow[column]; !ok {
			errors = append(errors, fmt.Sprintf("missing required column: %s", column))
		}
	}
	if len(errors) > 0 {
		return models.ValidationResult{Valid: false, Errors: errors}
	}

	validRows := 0
	for _, row := range rows {
		if hasMandatoryValues(row) {
			validRows++
		}
	}
	if validRows == 0 {
		errors = append(errors, "no valid rows found in CSV")
		return models.ValidationResult{Valid: false, Errors: errors}
	}

	return models.ValidationResult{Valid: true, Errors: []string{}}
}

func hasMandatoryValues(row models.RawRow) bool {
	for _, column := range models.RequiredColumns {
		if strings.TrimSpace(row[column]) == "" {
			return false
		}
	}
	return true
}
