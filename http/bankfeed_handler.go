package http

import (
	"net/http"

	"budget-agent/service"
)

// BankFeedHandler serves the simulated bank feed endpoint.
type BankFeedHandler struct {
	feed *service.BankFeedService
}

func NewBankFeedHandler(feed *service.BankFeedService) *BankFeedHandler {
	return &BankFeedHandler{feed: feed}
}

// SimulateFeed generates categorized transactions matching the allocation.
func (h *BankFeedHandler) SimulateFeed(w http.ResponseWriter, r *http.Request) {
	var req BankFeedRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err)
		return
	}

	result := h.feed.Simulate(req.Allocation, *req.Variance)
	respondJSON(w, http.StatusOK, result)
}
