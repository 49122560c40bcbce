package repository

import "budget-agent/domain"

// AllocationRepository records computed budget splits. Persistence is not a
// contract of the engine; implementations may simply keep a bounded
// in-process history for inspection.
type AllocationRepository interface {
	Save(input domain.BudgetInput, result domain.Allocation) error
}
