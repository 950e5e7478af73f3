package testutil

import (
	"reflect"
	"testing"

	"github.com/iwvelando/youth-budget/internal/budget"
)

func TestFindRecommendation(t *testing.T) {
	recs := []budget.Recommendation{
		{Severity: budget.SeverityRequired, Code: budget.CodeYouthSafety, Message: "Contact Youth Safety Manager"},
		{Severity: budget.SeverityWarning, Code: budget.CodeEmploymentDuration, Message: "Employment Duration Consideration"},
	}

	tests := []struct {
		name          string
		code          string
		expectFound   bool
		expectMessage string
	}{
		{
			name:          "Find required recommendation",
			code:          budget.CodeYouthSafety,
			expectFound:   true,
			expectMessage: "Contact Youth Safety Manager",
		},
		{
			name:          "Find warning",
			code:          budget.CodeEmploymentDuration,
			expectFound:   true,
			expectMessage: "Employment Duration Consideration",
		},
		{
			name:        "Missing code",
			code:        budget.CodeYouthPrizeFood,
			expectFound: false,
		},
		{
			name:        "Empty code",
			code:        "",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindRecommendation(recs, tt.code)

			if tt.expectFound {
				if result == nil {
					t.Fatalf("Expected to find recommendation '%s', but got nil", tt.code)
				}
				if result.Message != tt.expectMessage {
					t.Errorf("Expected message '%s', got '%s'", tt.expectMessage, result.Message)
				}
			} else if result != nil {
				t.Errorf("Expected not to find recommendation '%s', but found %+v", tt.code, *result)
			}
		})
	}
}

func TestFindRecommendationReturnsPointerIntoSlice(t *testing.T) {
	recs := []budget.Recommendation{{Code: budget.CodeYouthSafety}}

	result := FindRecommendation(recs, budget.CodeYouthSafety)
	result.Message = "changed"
	if recs[0].Message != "changed" {
		t.Error("expected pointer into the original slice")
	}

	if FindRecommendation(nil, budget.CodeYouthSafety) != nil {
		t.Error("expected nil for an empty slice")
	}
}

func TestCodes(t *testing.T) {
	recs := budget.Recommend(budget.Program{
		HasMinors:              true,
		Stationary:             true,
		QualifiesForYouthPrize: true,
		Paid:                   true,
		ProgramDays:            61,
	})

	expected := []string{budget.CodeYouthSafety, budget.CodeYouthPrizeFood, budget.CodeEmploymentDuration}
	if got := Codes(recs); !reflect.DeepEqual(got, expected) {
		t.Errorf("Codes() = %v, expected %v", got, expected)
	}
	if got := Codes(nil); len(got) != 0 {
		t.Errorf("Codes(nil) = %v, expected empty", got)
	}
}
