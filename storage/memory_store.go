package storage

import (
	"sync"

	"deals-dashboard/models"
	"deals-dashboard/services"
)

// Snapshot is one consistent view of the store: the loaded collection and
// everything derived from it. Derived values are always recomputed as a
// whole, never patched.
type Snapshot struct {
	Deals    []*models.Deal
	KPIs     models.KPIs
	Query    string
	Filtered []*models.Deal
}

// MemoryStore holds the current deal collection for the session. It is safe
// for concurrent use; when two loads race, the last completed one wins and
// no partial state is ever visible.
type MemoryStore struct {
	mu       sync.Mutex
	deals    []*models.Deal
	kpis     models.KPIs
	query    string
	filtered []*models.Deal
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{deals: []*models.Deal{}, filtered: []*models.Deal{}}
}

// Load replaces the whole collection, recomputes the KPIs and re-applies
// the current query.
func (s *MemoryStore) Load(deals []*models.Deal) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deals = deals
	s.kpis = services.CalculateKPIs(deals)
	s.filtered = services.FilterDeals(deals, s.query)
	return s.snapshot()
}

// SetQuery updates the search query and recomputes the filtered view.
func (s *MemoryStore) SetQuery(query string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.filtered = services.FilterDeals(s.deals, query)
	return s.snapshot()
}

// Clear drops the collection and every derived value.
func (s *MemoryStore) Clear() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deals = []*models.Deal{}
	s.kpis = models.KPIs{}
	s.query = ""
	s.filtered = []*models.Deal{}
	return s.snapshot()
}

func (s *MemoryStore) snapshot() Snapshot {
	return Snapshot{
		Deals:    s.deals,
		KPIs:     s.kpis,
		Query:    s.query,
		Filtered: s.filtered,
	}
}
