// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/youth-budget/internal/budget"
)

// FindRecommendation finds a recommendation by code in the slice.
// Returns a pointer to the recommendation if found, nil otherwise.
func FindRecommendation(recs []budget.Recommendation, code string) *budget.Recommendation {
	for i := range recs {
		if recs[i].Code == code {
			return &recs[i]
		}
	}
	return nil
}

// Codes returns the recommendation codes in order.
func Codes(recs []budget.Recommendation) []string {
	codes := make([]string, 0, len(recs))
	for _, rec := range recs {
		codes = append(codes, rec.Code)
	}
	return codes
}
