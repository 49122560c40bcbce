package domain

// MarketStatus describes where the market currently sits in its cycle.
type MarketStatus string

const (
	MarketDip        MarketStatus = "dip"
	MarketCorrection MarketStatus = "correction"
	MarketNeutral    MarketStatus = "neutral"
	MarketStable     MarketStatus = "stable"
	MarketPeak       MarketStatus = "peak"
	MarketOvervalued MarketStatus = "overvalued"
)

// ValidMarketStatus reports whether s names a known market status.
func ValidMarketStatus(s string) bool {
	switch MarketStatus(s) {
	case MarketDip, MarketCorrection, MarketNeutral, MarketStable, MarketPeak, MarketOvervalued:
		return true
	}
	return false
}

// Volatility is the current market volatility band.
type Volatility string

const (
	VolatilityLow    Volatility = "low"
	VolatilityMedium Volatility = "medium"
	VolatilityHigh   Volatility = "high"
)

// ValidVolatility reports whether s names a known volatility band.
func ValidVolatility(s string) bool {
	switch Volatility(s) {
	case VolatilityLow, VolatilityMedium, VolatilityHigh:
		return true
	}
	return false
}

// MarketConditions is an immutable snapshot of the market state supplied by
// the caller; the engine never fetches market data itself.
type MarketConditions struct {
	Status     MarketStatus `json:"status"`
	Volatility Volatility   `json:"volatility"`
}

// MarketRecommendation is one rule-table hit: what to do and why.
type MarketRecommendation struct {
	Type      string `json:"type"`
	Action    string `json:"action"`
	Reasoning string `json:"reasoning"`
	RiskLevel string `json:"risk_level"`
}

// InvestmentAdjustment carries the concrete amount by which the advisor
// suggests growing the monthly investment, when it suggests one at all.
type InvestmentAdjustment struct {
	IncreaseInvestment float64 `json:"increase_investment"`
}

// MarketAdvice is the full advisor output for one market snapshot.
type MarketAdvice struct {
	MarketStatus    MarketStatus           `json:"market_status"`
	Volatility      Volatility             `json:"volatility"`
	Recommendations []MarketRecommendation `json:"recommendations"`
	Adjustment      *InvestmentAdjustment  `json:"allocation_adjustments,omitempty"`
}
