package domain

// Transaction is one simulated bank transaction, already categorized.
type Transaction struct {
	Category        Category `json:"category"`
	Description     string   `json:"description"`
	Amount          float64  `json:"amount"`
	AutoCategorized bool     `json:"auto_categorized"`
	Confidence      float64  `json:"confidence"`
}

// FeedResult is the output of the bank-feed simulator. Per category the
// transaction amounts sum exactly to the allocated amount.
type FeedResult struct {
	Transactions         []Transaction `json:"transactions"`
	CategoryTotals       Allocation    `json:"category_totals"`
	TotalTransactions    int           `json:"total_transactions"`
	AutoCategorizedCount int           `json:"auto_categorized_count"`
	AvgConfidence        float64       `json:"avg_confidence"`
}
