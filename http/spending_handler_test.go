package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget-agent/service"
)

func newTestSpendingHandler() *SpendingHandler {
	return NewSpendingHandler(service.NewSpendingService())
}

func TestIncomeVolatilityHandler_OK(t *testing.T) {
	handler := newTestSpendingHandler()

	body := []byte(`{"income_history": [5000, 5000, 5000, 5000]}`)
	w := httptest.NewRecorder()
	handler.IncomeVolatility(w, postJSON("/api/income-volatility", body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestIncomeVolatilityHandler_RejectsZeroIncome(t *testing.T) {
	handler := newTestSpendingHandler()

	// A zero mean would make the volatility ratio meaningless.
	body := []byte(`{"income_history": [0, 0]}`)
	w := httptest.NewRecorder()
	handler.IncomeVolatility(w, postJSON("/api/income-volatility", body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestIncomeVolatilityHandler_RejectsNegativeIncome(t *testing.T) {
	handler := newTestSpendingHandler()

	body := []byte(`{"income_history": [5000, -200, 5000]}`)
	w := httptest.NewRecorder()
	handler.IncomeVolatility(w, postJSON("/api/income-volatility", body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestMicroSavingsHandler_DefaultThreshold(t *testing.T) {
	handler := newTestSpendingHandler()

	// Threshold omitted: defaults to 50, so the 80 win is swept.
	body := []byte(`{"transactions": [{"category": "groceries", "budgeted": 500, "actual": 420}]}`)
	w := httptest.NewRecorder()
	handler.MicroSavings(w, postJSON("/api/micro-savings", body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp microSavingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.HasSavings {
		t.Error("expected has_savings true")
	}
}
