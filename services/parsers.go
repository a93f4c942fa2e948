package services

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// nameSeparator splits a "Contact - Company" task name. Only the first
// occurrence splits; later occurrences stay inside the company name.
const nameSeparator = " - "

// companyFallback is used when a task name carries no separator at all.
const companyFallback = "N/A"

// dateLayouts is the fixed priority list for calendar dates. Order is the
// contract: day-first layouts come before month-first, so an ambiguous
// "03/04/2024" resolves to April 3, 2024.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
	"01-02-2006",
}

// fallbackLayouts is the generic interpretation tried after dateLayouts.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
}

// currencyStripper removes the currency symbols a CRM export may contain.
var currencyStripper = strings.NewReplacer("€", "", "$", "", "£", "")

// ParseTaskName splits a raw task name into contact and company. The split
// happens at the first " - "; everything after it, further separators
// included, becomes the company. Without a separator the whole trimmed input
// is the contact and the company is "N/A". Never fails.
func ParseTaskName(taskName string) (contactName, companyName string) {
	parts := strings.SplitN(taskName, nameSeparator, 2)
	if len(parts) < 2 {
		return strings.TrimSpace(taskName), companyFallback
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// ParseAmount converts a raw amount cell ("1 234,50 €") into a float.
// Whitespace and currency symbols are stripped and a decimal comma becomes a
// dot before parsing. Returns ok == false for empty or non-numeric input.
// Negative amounts parse fine here; the transformer rejects them.
func ParseAmount(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	cleaned = currencyStripper.Replace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// ParseDate interprets a raw date cell against dateLayouts in priority
// order, then against fallbackLayouts. Empty or whitespace-only input is
// absent without any parse attempt. Returns ok == false when nothing fits.
func ParseDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTags splits a pipe-separated tag cell into trimmed tags, dropping
// empty pieces and preserving source order. Empty input yields no tags.
func ParseTags(raw string) []string {
	tags := []string{}
	if strings.TrimSpace(raw) == "" {
		return tags
	}

	for _, piece := range strings.Split(raw, "|") {
		tag := strings.TrimSpace(piece)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
