package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"deals-dashboard/models"
)

// foldTransformer strips diacritics so "qualifié" and "qualifie" normalize
// to the same key.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// statusSynonyms maps folded, lower-cased spellings to canonical statuses.
// The CRM export mixes French labels (with and without accents) and a few
// abbreviated "won" variants.
var statusSynonyms = map[string]models.Status{
	"prospect":          models.StatusProspect,
	"qualifie":          models.StatusQualified,
	"qualified":         models.StatusQualified,
	"negociation":       models.StatusNegotiation,
	"negotiation":       models.StatusNegotiation,
	"gagne":             models.StatusWonInProgress,
	"gagne - en cours":  models.StatusWonInProgress,
	"won":               models.StatusWonInProgress,
	"won-in-progress":   models.StatusWonInProgress,
	"won in progress":   models.StatusWonInProgress,
	"won - in progress": models.StatusWonInProgress,
}

// StatusResult is the outcome of normalizing a raw status cell. Recognized
// carries a canonical Status; an unrecognized cell keeps its cleaned raw
// text so the transformer can reject the row explicitly.
type StatusResult struct {
	Status     models.Status
	Recognized bool
	Raw        string
}

// NormalizeStatus lower-cases, trims and diacritic-folds the input, then
// looks it up in the synonym table. It never defaults: an unknown status
// comes back tagged Recognized == false.
func NormalizeStatus(raw string) StatusResult {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if folded, _, err := transform.String(foldTransformer, cleaned); err == nil {
		cleaned = folded
	}

	if status, ok := statusSynonyms[cleaned]; ok {
		return StatusResult{Status: status, Recognized: true, Raw: cleaned}
	}
	return StatusResult{Recognized: false, Raw: cleaned}
}

// NormalizePriority lower-cases and trims the input and returns it when it
// is a canonical priority. Anything else, empty included, silently becomes
// the medium default.
func NormalizePriority(raw string) models.Priority {
	cleaned := models.Priority(strings.ToLower(strings.TrimSpace(raw)))
	for _, p := range models.ValidPriorities {
		if cleaned == p {
			return p
		}
	}
	return models.PriorityMedium
}
