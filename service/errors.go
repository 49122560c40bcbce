package service

import "errors"

// Sentinel errors the presentation layer maps to client errors. Advisory
// operations that legitimately produce nothing (no suggestions, no harvest
// opportunities) return nil results without an error instead.
var (
	ErrInsufficientGoals   = errors.New("at least two goals are required")
	ErrInsufficientHistory = errors.New("not enough history to analyze")
	ErrNoMarketData        = errors.New("market conditions are required")
	ErrNothingToAdjust     = errors.New("no goals to adjust or non-positive inflation rate")
)
