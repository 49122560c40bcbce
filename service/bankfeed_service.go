package service

import (
	"math/rand"
	"sync"

	"budget-agent/domain"
)

// transactionDescriptions maps each category to the labels the simulator
// draws from.
var transactionDescriptions = map[domain.Category][]string{
	domain.CategorySavings:     {"Transfer to Savings", "Fixed Deposit", "Recurring Deposit"},
	domain.CategoryInvestments: {"Mutual Fund SIP", "Stock Purchase", "ETF Investment", "PPF Deposit"},
	domain.CategoryPersonal:    {"Shopping", "Dining", "Entertainment", "Clothing", "Electronics"},
	domain.CategoryMisc:        {"Groceries", "Transportation", "Utilities", "Phone Bill", "Internet"},
}

// BankFeedService stands in for a real bank-feed integration. It is the only
// non-deterministic part of the system, so the randomness source is injected
// and tests can pass a fixed seed.
type BankFeedService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewBankFeedService(src rand.Source) *BankFeedService {
	return &BankFeedService{rng: rand.New(src)}
}

// Simulate fabricates two to four categorized transactions per category.
// Per category the amounts sum exactly to the allocated amount: the last
// transaction absorbs whatever the jittered earlier ones left over.
func (s *BankFeedService) Simulate(
	allocation domain.Allocation,
	variance float64,
) domain.FeedResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		transactions    []domain.Transaction
		totals          domain.Allocation
		confidenceSum   float64
		autoCategorized int
	)

	for _, category := range domain.Categories {
		allocated := allocation.Amount(category)
		count := 2 + s.rng.Intn(3)
		remaining := allocated

		for i := 0; i < count; i++ {
			var amount float64
			if i == count-1 {
				amount = remaining
			} else {
				base := allocated / float64(count)
				amount = base * (1 + (s.rng.Float64()*2-1)*variance)
				if amount < 0 {
					amount = 0
				}
				if amount > remaining {
					amount = remaining
				}
			}

			if amount <= 0 {
				continue
			}

			descriptions := transactionDescriptions[category]
			confidence := 0.85 + s.rng.Float64()*0.14

			transactions = append(transactions, domain.Transaction{
				Category:        category,
				Description:     descriptions[s.rng.Intn(len(descriptions))],
				Amount:          roundTo2Decimals(amount),
				AutoCategorized: true,
				Confidence:      confidence,
			})
			totals.SetAmount(category, totals.Amount(category)+roundTo2Decimals(amount))
			confidenceSum += confidence
			autoCategorized++
			remaining -= amount
		}
	}

	var avgConfidence float64
	if len(transactions) > 0 {
		avgConfidence = confidenceSum / float64(len(transactions))
	}

	return domain.FeedResult{
		Transactions:         transactions,
		CategoryTotals:       totals,
		TotalTransactions:    len(transactions),
		AutoCategorizedCount: autoCategorized,
		AvgConfidence:        avgConfidence,
	}
}
