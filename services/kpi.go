package services

import (
	"fmt"
	"math"
	"strings"

	"deals-dashboard/models"
)

// CalculateKPIs computes the aggregate metrics over a deal collection.
// Sum and mean are rounded to two decimals after aggregation, not per
// addend. An empty collection yields all-zero KPIs.
func CalculateKPIs(deals []*models.Deal) models.KPIs {
	if len(deals) == 0 {
		return models.KPIs{}
	}

	var total float64
	for _, deal := range deals {
		total += deal.Amount
	}
	mean := total / float64(len(deals))

	return models.KPIs{
		TotalDeals:   len(deals),
		PipelineBrut: round2(total),
		PanierMoyen:  round2(mean),
	}
}

// round2 rounds half away from zero to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// FormatEUR renders an amount the way the CRM displays it: thousands
// grouped with spaces, no decimals, € suffix.
func FormatEUR(amount float64) string {
	whole := fmt.Sprintf("%.0f", math.Round(amount))

	negative := strings.HasPrefix(whole, "-")
	digits := strings.TrimPrefix(whole, "-")

	var grouped []string
	for len(digits) > 3 {
		grouped = append([]string{digits[len(digits)-3:]}, grouped...)
		digits = digits[:len(digits)-3]
	}
	grouped = append([]string{digits}, grouped...)

	out := strings.Join(grouped, " ")
	if negative {
		out = "-" + out
	}
	return out + " €"
}
