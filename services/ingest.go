package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"deals-dashboard/models"
	"deals-dashboard/utils"
)

// Ingestor turns raw CSV rows into clean Deal records.
type Ingestor struct {
	logger *utils.Logger
}

// NewIngestor creates an Ingestor with the given logger.
func NewIngestor(logger *utils.Logger) *Ingestor {
	return &Ingestor{logger: logger}
}

// Ingest processes raw rows in source order and returns the accepted deals.
// Rejected rows are skipped and counted, never fatal: the caller decides
// what an all-rows-rejected run means. The structural gate (ValidateDataset)
// is expected to have run already; it is not re-applied per row.
func (ing *Ingestor) Ingest(rows []models.RawRow) *models.IngestResult {
	result := &models.IngestResult{
		RunID: uuid.NewString(),
		Deals: make([]*models.Deal, 0, len(rows)),
	}
	now := time.Now()

	for i, row := range rows {
		deal, reason := transformRow(row, i, now)
		if deal == nil {
			result.Skipped++
			ing.logger.Debug("[ingest] Dropping row %d: %s", i+1, reason)
			continue
		}
		result.Deals = append(result.Deals, deal)
	}

	ing.logger.Info("[ingest] Run %s: %d rows → %d deals (skipped %d)",
		result.RunID, len(rows), len(result.Deals), result.Skipped)
	return result
}

// transformRow builds one Deal from one raw row, or returns nil with the
// rejection reason. Checks run in a fixed order and the first failure wins:
// missing mandatory field, empty contact/company after the name split,
// unrecognized status, absent or negative amount. Optional fields never
// reject a row; they degrade to their defaults.
func transformRow(row models.RawRow, index int, now time.Time) (*models.Deal, string) {
	if row[models.ColTaskName] == "" || row[models.ColStatus] == "" || row[models.ColAmount] == "" {
		return nil, "missing mandatory field"
	}

	contactName, companyName := ParseTaskName(row[models.ColTaskName])
	if contactName == "" || companyName == "" {
		return nil, "empty contact or company name"
	}

	statusRes := NormalizeStatus(row[models.ColStatus])
	if !statusRes.Recognized {
		return nil, fmt.Sprintf("unrecognized status %q", statusRes.Raw)
	}

	amount, ok := ParseAmount(row[models.ColAmount])
	if !ok {
		return nil, fmt.Sprintf("unparseable amount %q", row[models.ColAmount])
	}
	if amount < 0 {
		return nil, fmt.Sprintf("negative amount %.2f", amount)
	}

	return &models.Deal{
		ID:          fmt.Sprintf("deal-%d-%d", index, now.UnixMilli()),
		ContactName: contactName,
		CompanyName: companyName,
		Status:      statusRes.Status,
		Amount:      amount,
		DueDate:     optionalDate(row[models.ColDueDate]),
		StartDate:   optionalDate(row[models.ColStartDate]),
		DateCreated: optionalDate(row[models.ColDateCreated]),
		Priority:    NormalizePriority(row[models.ColPriority]),
		Tags:        ParseTags(row[models.ColTags]),
		Notes:       row[models.ColNotes],
		Assignees:   row[models.ColAssignees],
	}, ""
}

func optionalDate(raw string) *time.Time {
	t, ok := ParseDate(raw)
	if !ok {
		return nil
	}
	return &t
}
