package storage

import "deals-dashboard/models"

// DatasetReader is the interface any raw-dataset source must satisfy.
type DatasetReader interface {
	Read(path string) ([]models.RawRow, error)
}

// DealStore is the interface for holding the current deal collection and
// its derived views.
type DealStore interface {
	Load(deals []*models.Deal) Snapshot
	SetQuery(query string) Snapshot
	Clear() Snapshot
}
