package services

import (
	"strings"
	"testing"

	"deals-dashboard/models"
)

func validRow() models.RawRow {
	return models.RawRow{
		models.ColTaskName: "John Doe - Acme Corp",
		models.ColStatus:   "prospect",
		models.ColAmount:   "1000",
	}
}

func TestValidateEmptyDataset(t *testing.T) {
	res := ValidateDataset([]models.RawRow{})
	if res.Valid {
		t.Error("empty dataset should not validate")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "empty") {
		t.Errorf("errors: got %v, want one \"empty\" message", res.Errors)
	}
}

func TestValidateMissingColumns(t *testing.T) {
	rows := []models.RawRow{{models.ColTaskName: "John - Acme"}}
	res := ValidateDataset(rows)
	if res.Valid {
		t.Error("dataset without required columns should not validate")
	}
	if len(res.Errors) != 2 {
		t.Fatalf("errors: got %d (%v), want 2", len(res.Errors), res.Errors)
	}
	if !strings.Contains(res.Errors[0], models.ColStatus) {
		t.Errorf("first error %q should name column %q", res.Errors[0], models.ColStatus)
	}
	if !strings.Contains(res.Errors[1], models.ColAmount) {
		t.Errorf("second error %q should name column %q", res.Errors[1], models.ColAmount)
	}
}

func TestValidateNoValidRows(t *testing.T) {
	rows := []models.RawRow{
		{models.ColTaskName: "", models.ColStatus: "prospect", models.ColAmount: "1000"},
		{models.ColTaskName: "John - Acme", models.ColStatus: "", models.ColAmount: "1000"},
		{models.ColTaskName: "John - Acme", models.ColStatus: "prospect", models.ColAmount: ""},
	}
	res := ValidateDataset(rows)
	if res.Valid {
		t.Error("dataset without a single complete row should not validate")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "no valid rows") {
		t.Errorf("errors: got %v, want one \"no valid rows\" message", res.Errors)
	}
}

func TestValidateOK(t *testing.T) {
	rows := []models.RawRow{
		{models.ColTaskName: "", models.ColStatus: "", models.ColAmount: ""},
		validRow(),
	}
	res := ValidateDataset(rows)
	if !res.Valid {
		t.Errorf("dataset should validate, got errors %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("valid result should carry no errors, got %v", res.Errors)
	}
}
