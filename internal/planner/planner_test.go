package planner

import (
	"errors"
	"testing"

	"github.com/iwvelando/youth-budget/internal/budget"
	"github.com/iwvelando/youth-budget/pkg/mathutil"
	"go.uber.org/zap"
)

func TestMaxParticipants(t *testing.T) {
	tests := []struct {
		name         string
		ceiling      float64
		participants int
		headroom     float64
	}{
		{"Exact default budget", 29960, 10, 0},
		{"Just below default budget", 29959.99, 9, 29959.99 - (9*1820 + 2*5040 + 1680)},
		{"Bus side fits", 50000, 15, 1580},
		{"Fixed cost only", 1680, 0, 0},
	}

	runner := NewRunner(zap.NewNop(), 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := runner.MaxParticipants(budget.DefaultProgram(), budget.DefaultRates(), tt.ceiling)
			if err != nil {
				t.Fatalf("MaxParticipants() error = %v", err)
			}
			if result.Participants != tt.participants {
				t.Errorf("participants = %d, expected %d", result.Participants, tt.participants)
			}
			if !mathutil.WithinTolerance(result.Headroom, tt.headroom, 1e-6) {
				t.Errorf("headroom = %.2f, expected %.2f", result.Headroom, tt.headroom)
			}
			if result.Breakdown.Total > tt.ceiling {
				t.Errorf("total %.2f exceeds ceiling %.2f", result.Breakdown.Total, tt.ceiling)
			}
			if fullyUsed := len(result.Notes) > 0; fullyUsed != (tt.headroom == 0) {
				t.Errorf("notes = %v with headroom %.2f", result.Notes, result.Headroom)
			}
			if result.Coordinators != budget.Coordinators(float64(result.Participants)) {
				t.Errorf("coordinators = %d", result.Coordinators)
			}
		})
	}
}

func TestMaxParticipantsCheaperBus(t *testing.T) {
	// A bus cheaper than a van makes eleven participants cheaper to move than ten.
	rates := budget.DefaultRates()
	rates.VanCost = 1000
	rates.BusCostPerHour = 1

	program := budget.DefaultProgram()
	runner := NewRunner(nil, 0)

	ceiling := budget.Estimate(budget.Program{
		Participants:         11,
		ProgramDays:          program.ProgramDays,
		HoursPerDay:          program.HoursPerDay,
		HasMinors:            true,
		Stationary:           true,
		NeedsFoodProgram:     true,
		DailyTransportNeeded: true,
	}, rates).Total

	result, err := runner.MaxParticipants(program, rates, ceiling)
	if err != nil {
		t.Fatalf("MaxParticipants() error = %v", err)
	}
	if result.Participants != 11 {
		t.Errorf("participants = %d, expected 11", result.Participants)
	}
}

func TestMaxParticipantsLimit(t *testing.T) {
	runner := NewRunner(zap.NewNop(), 12)
	result, err := runner.MaxParticipants(budget.DefaultProgram(), budget.DefaultRates(), 1e9)
	if err != nil {
		t.Fatalf("MaxParticipants() error = %v", err)
	}
	if result.Participants != 12 {
		t.Errorf("participants = %d, expected 12", result.Participants)
	}
	if !result.Capped || len(result.Notes) == 0 {
		t.Error("expected capped result with a note")
	}
}

func TestMaxParticipantsErrors(t *testing.T) {
	runner := NewRunner(zap.NewNop(), 0)

	if _, err := runner.MaxParticipants(budget.DefaultProgram(), budget.DefaultRates(), -1); !errors.Is(err, ErrNegativeCeiling) {
		t.Errorf("expected ErrNegativeCeiling, got %v", err)
	}

	if _, err := runner.MaxParticipants(budget.DefaultProgram(), budget.DefaultRates(), 1000); !errors.Is(err, ErrCeilingTooLow) {
		t.Errorf("expected ErrCeilingTooLow, got %v", err)
	}

	rates := budget.DefaultRates()
	rates.LaptopCost = -600
	if _, err := runner.MaxParticipants(budget.DefaultProgram(), rates, 50000); !errors.Is(err, ErrNonMonotonic) {
		t.Errorf("expected ErrNonMonotonic, got %v", err)
	}
}
