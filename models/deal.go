package models

import "time"

// Status is the canonical pipeline stage of a deal.
type Status string

const (
	StatusProspect      Status = "prospect"
	StatusQualified     Status = "qualified"
	StatusNegotiation   Status = "negotiation"
	StatusWonInProgress Status = "won-in-progress"
)

// Priority is the canonical urgency level of a deal.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidStatuses is the closed set of accepted deal stages.
var ValidStatuses = []Status{
	StatusProspect,
	StatusQualified,
	StatusNegotiation,
	StatusWonInProgress,
}

// ValidPriorities is the closed set of accepted priorities.
var ValidPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// StatusLabels maps each canonical status to its display label.
var StatusLabels = map[Status]string{
	StatusProspect:      "Prospect",
	StatusQualified:     "Qualifié",
	StatusNegotiation:   "Négociation",
	StatusWonInProgress: "Gagné",
}

// CSV column names as exported by the CRM.
const (
	ColTaskName    = "Task Name"
	ColStatus      = "Status"
	ColAmount      = "Montant Deal"
	ColDateCreated = "Date Created"
	ColDueDate     = "Due Date"
	ColStartDate   = "Start Date"
	ColAssignees   = "Assignees"
	ColPriority    = "Priority"
	ColTags        = "Tags"
	ColNotes       = "Task Content"
)

// RequiredColumns must all be present in the CSV header for ingestion to run.
var RequiredColumns = []string{ColTaskName, ColStatus, ColAmount}

// RawRow holds one unprocessed CSV line, keyed by column name.
// This is what the CSV reader produces before any cleaning or transformation.
type RawRow map[string]string

// Deal is the cleaned, validated record the rest of the system works with.
// A Deal is immutable once built; a new upload replaces the whole collection.
type Deal struct {
	ID          string
	ContactName string
	CompanyName string
	Status      Status
	Amount      float64
	DueDate     *time.Time
	StartDate   *time.Time
	DateCreated *time.Time
	Priority    Priority
	Tags        []string
	Notes       string
	Assignees   string
}

// KPIs holds the aggregate metrics computed over a deal collection.
type KPIs struct {
	TotalDeals   int
	PipelineBrut float64
	PanierMoyen  float64
}

// ValidationResult reports whether a raw dataset is structurally ingestible.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// IngestResult is the outcome of one ingestion run.
type IngestResult struct {
	RunID   string
	Deals   []*Deal
	Skipped int
}
