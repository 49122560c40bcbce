package repository

import (
	"sync"

	"budget-agent/domain"
)

// AllocationRepositoryMemory keeps the most recent computed allocations in
// memory. Nothing survives a restart, which matches the stateless contract
// of the service.
type AllocationRepositoryMemory struct {
	mu      sync.Mutex
	entries []allocationEntry
	limit   int
}

type allocationEntry struct {
	input  domain.BudgetInput
	result domain.Allocation
}

// NewAllocationRepositoryMemory creates an in-memory repository that retains
// at most limit entries, oldest evicted first. A non-positive limit keeps
// everything.
func NewAllocationRepositoryMemory(limit int) *AllocationRepositoryMemory {
	return &AllocationRepositoryMemory{limit: limit}
}

// Save stores the allocation, evicting the oldest entry past the limit.
func (r *AllocationRepositoryMemory) Save(
	input domain.BudgetInput,
	result domain.Allocation,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, allocationEntry{input: input, result: result})
	if r.limit > 0 && len(r.entries) > r.limit {
		r.entries = r.entries[len(r.entries)-r.limit:]
	}
	return nil
}

// Len reports how many allocations are currently retained.
func (r *AllocationRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
