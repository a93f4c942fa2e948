package services

import (
	"fmt"
	"strings"

	"deals-dashboard/models"
	"deals-dashboard/utils"
)

// ReportService renders the dashboard view of an ingested collection.
type ReportService struct {
	logger *utils.Logger
}

func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{logger: logger}
}

// Print writes the KPI cards, the per-status pipeline chart and the deals
// table to stdout. deals is the filtered view; query is shown when set.
// rowLimit caps the table, 0 meaning no cap.
func (s *ReportService) Print(kpis models.KPIs, deals []*models.Deal, query string, rowLimit int) {
	sep := strings.Repeat("═", 72)
	thin := strings.Repeat("─", 72)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 CRM PIPELINE DASHBOARD\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// KPI cards
	fmt.Printf("\033[1;33m  Indicateurs\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total deals   : \033[1m%d\033[0m\n", kpis.TotalDeals)
	fmt.Printf("  Pipeline brut : \033[1;32m%s\033[0m\n", FormatEUR(kpis.PipelineBrut))
	fmt.Printf("  Panier moyen  : \033[1;32m%s\033[0m\n", FormatEUR(kpis.PanierMoyen))
	fmt.Println()

	// Deals per pipeline stage
	fmt.Printf("\033[1;33m  Répartition par étape\033[0m\n")
	fmt.Printf("  %s\n", thin)
	counts := countByStatus(deals)
	for _, status := range models.ValidStatuses {
		bar := strings.Repeat("█", counts[status])
		fmt.Printf("  %-12s %s (%d)\n", models.StatusLabels[status], bar, counts[status])
	}
	fmt.Println()

	// Deals table
	if strings.TrimSpace(query) != "" {
		fmt.Printf("\033[1;33m  Deals — filtre %q (%d)\033[0m\n", query, len(deals))
	} else {
		fmt.Printf("\033[1;33m  Deals (%d)\033[0m\n", len(deals))
	}
	fmt.Printf("  %s\n", thin)
	if len(deals) == 0 {
		fmt.Printf("  Aucun deal à afficher\n")
	} else {
		fmt.Printf("  %-20s %-20s %-12s %12s  %-10s %s\n",
			"Contact", "Entreprise", "Statut", "Montant", "Échéance", "Priorité")
		rows := deals
		if rowLimit > 0 && len(rows) > rowLimit {
			rows = rows[:rowLimit]
		}
		for _, deal := range rows {
			due := "-"
			if deal.DueDate != nil {
				due = deal.DueDate.Format("02/01/2006")
			}
			fmt.Printf("  %-20s %-20s %-12s %12s  %-10s %s\n",
				truncate(deal.ContactName, 20),
				truncate(deal.CompanyName, 20),
				models.StatusLabels[deal.Status],
				FormatEUR(deal.Amount),
				due,
				deal.Priority)
		}
		if rowLimit > 0 && len(deals) > rowLimit {
			fmt.Printf("  … et %d autres\n", len(deals)-rowLimit)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func countByStatus(deals []*models.Deal) map[models.Status]int {
	counts := make(map[models.Status]int, len(models.ValidStatuses))
	for _, deal := range deals {
		counts[deal.Status]++
	}
	return counts
}

// truncate shortens s to max runes. Names in this domain carry accents, so
// cutting by bytes could split a UTF-8 sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
