package services

import (
	"strings"

	"deals-dashboard/models"
)

// FilterDeals returns the deals whose contact name, company name or notes
// contain the query as a case-insensitive substring. An empty or
// whitespace-only query returns the input collection unchanged. The input
// is never mutated and source order is preserved.
func FilterDeals(deals []*models.Deal, query string) []*models.Deal {
	if strings.TrimSpace(query) == "" {
		return deals
	}

	lowerQuery := strings.ToLower(query)
	filtered := make([]*models.Deal, 0, len(deals))
	for _, deal := range deals {
		if strings.Contains(strings.ToLower(deal.ContactName), lowerQuery) ||
			strings.Contains(strings.ToLower(deal.CompanyName), lowerQuery) ||
			strings.Contains(strings.ToLower(deal.Notes), lowerQuery) {
			filtered = append(filtered, deal)
		}
	}
	return filtered
}
