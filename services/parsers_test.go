package services

import (
	"reflect"
	"testing"
	"time"
)

func TestParseTaskName(t *testing.T) {
	tests := []struct {
		raw         string
		wantContact string
		wantCompany string
	}{
		{"John Doe - Acme Corp", "John Doe", "Acme Corp"},
		{"  Jane Roe  -  Globex  ", "Jane Roe", "Globex"},
		{"Solo Contact", "Solo Contact", "N/A"},
		{"A - B - C", "A", "B - C"},
		{" - Acme", "", "Acme"},
		{"", "", "N/A"},
	}

	for _, tt := range tests {
		contact, company := ParseTaskName(tt.raw)
		if contact != tt.wantContact || company != tt.wantCompany {
			t.Errorf("ParseTaskName(%q) = (%q, %q); want (%q, %q)",
				tt.raw, contact, company, tt.wantContact, tt.wantCompany)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"1000", 1000, true},
		{"1 234,50 €", 1234.50, true},
		{"1234.50", 1234.50, true},
		{"$99", 99, true},
		{"-500", -500, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12 €34", 1234, true},
	}

	for _, tt := range tests {
		got, ok := ParseAmount(tt.raw)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseAmount(%q) = (%.2f, %v); want (%.2f, %v)",
				tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseDateFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"25/12/2024", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"2024/03/15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"25-12-2024", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15 10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"March 5, 2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, ok := ParseDate(tt.raw)
		if !ok {
			t.Errorf("ParseDate(%q): no date parsed; want %v", tt.raw, tt.want)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

// An ambiguous day/month string resolves day-first because dd/MM/yyyy
// precedes MM/dd/yyyy in the layout priority list.
func TestParseDateAmbiguityIsDayFirst(t *testing.T) {
	got, ok := ParseDate("03/04/2024")
	if !ok {
		t.Fatal("ParseDate(\"03/04/2024\"): no date parsed")
	}
	want := time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate(\"03/04/2024\") = %v; want %v", got, want)
	}
}

func TestParseDateAbsent(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a date", "99/99/9999"} {
		if _, ok := ParseDate(raw); ok {
			t.Errorf("ParseDate(%q): expected absent", raw)
		}
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"A|B|C", []string{"A", "B", "C"}},
		{" A | B | C ", []string{"A", "B", "C"}},
		{"A|B|C|", []string{"A", "B", "C"}},
		{"single", []string{"single"}},
		{"", []string{}},
		{"   ", []string{}},
		{"||", []string{}},
	}

	for _, tt := range tests {
		got := ParseTags(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTags(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}
