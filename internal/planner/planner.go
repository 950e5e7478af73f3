// Package planner answers what-if questions against the budget model, such as
// how many participants a fixed budget can support.
package planner

import (
	"errors"
	"fmt"

	"github.com/iwvelando/youth-budget/internal/budget"
	"github.com/iwvelando/youth-budget/pkg/constants"
	"github.com/iwvelando/youth-budget/pkg/format"
	"github.com/iwvelando/youth-budget/pkg/mathutil"
	"go.uber.org/zap"
)

var (
	// ErrNegativeCeiling is returned for a budget ceiling below zero.
	ErrNegativeCeiling = errors.New("budget ceiling cannot be negative")

	// ErrCeilingTooLow is returned when even an empty program exceeds the ceiling.
	ErrCeilingTooLow = errors.New("budget ceiling is below the fixed program cost")

	// ErrNonMonotonic is returned when negative inputs would let cost fall as
	// participants grow, which defeats the search.
	ErrNonMonotonic = errors.New("negative rates or durations are not supported by the capacity search")
)

// Result describes the largest program that fits a budget ceiling.
type Result struct {
	Participants int              `json:"participants"`
	Coordinators int              `json:"coordinators"`
	Breakdown    budget.Breakdown `json:"costs"`
	Ceiling      float64          `json:"ceiling"`
	Headroom     float64          `json:"headroom"`
	Iterations   int              `json:"iterations"`
	Capped       bool             `json:"capped"`
	Notes        []string         `json:"notes,omitempty"`
}

// Runner searches participant counts for a fixed program shape and rate table.
type Runner struct {
	logger *zap.Logger
	limit  int
}

// NewRunner creates a runner. A non-positive limit uses the default search bound.
func NewRunner(logger *zap.Logger, limit int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = constants.DefaultCapacitySearchLimit
	}
	return &Runner{logger: logger, limit: limit}
}

// MaxParticipants finds the largest participant count whose total cost stays
// within ceiling. Every other program field is held fixed.
func (r *Runner) MaxParticipants(p budget.Program, rates budget.Rates, ceiling float64) (Result, error) {
	if ceiling < 0 {
		return Result{}, ErrNegativeCeiling
	}
	if err := checkMonotonic(p, rates); err != nil {
		return Result{}, err
	}
	p.Normalize()

	total := func(n int) float64 {
		p.Participants = float64(n)
		return budget.Estimate(p, rates).Total
	}

	if total(0) > ceiling {
		return Result{}, fmt.Errorf("%w: %s exceeds %s", ErrCeilingTooLow,
			format.Currency(total(0)), format.Currency(ceiling))
	}

	// Transport switches from van to bus above VanCapacity, so cost is only
	// monotonic within each side of that boundary. Search the bus side first
	// since any fit there is larger.
	iterations := 0
	best := -1
	if r.limit > constants.VanCapacity {
		n, it := searchLargest(constants.VanCapacity+1, r.limit, ceiling, total)
		iterations += it
		best = n
	}
	if best < 0 {
		upper := r.limit
		if upper > constants.VanCapacity {
			upper = constants.VanCapacity
		}
		n, it := searchLargest(0, upper, ceiling, total)
		iterations += it
		best = n
	}

	p.Participants = float64(best)
	breakdown := budget.Estimate(p, rates)
	result := Result{
		Participants: best,
		Coordinators: budget.Coordinators(float64(best)),
		Breakdown:    breakdown,
		Ceiling:      ceiling,
		Headroom:     ceiling - breakdown.Total,
		Iterations:   iterations,
		Capped:       best == r.limit,
	}
	if mathutil.IsZero(result.Headroom) {
		result.Headroom = 0
		result.Notes = append(result.Notes, "the ceiling is used in full")
	}
	if result.Capped {
		result.Notes = append(result.Notes,
			fmt.Sprintf("search stopped at the limit of %d participants", r.limit))
	}

	r.logger.Info("capacity search finished",
		zap.String("op", "planner.MaxParticipants"),
		zap.Float64("ceiling", ceiling),
		zap.Int("participants", result.Participants),
		zap.Float64("total", breakdown.Total),
		zap.Float64("headroom", result.Headroom),
		zap.Int("iterations", iterations),
		zap.Bool("capped", result.Capped),
	)

	return result, nil
}

// searchLargest returns the largest n in [lower, upper] with total(n) <= ceiling,
// or -1 if none fits. total must be non-decreasing over the range.
func searchLargest(lower, upper int, ceiling float64, total func(int) float64) (int, int) {
	iterations := 0
	best := -1
	for lower <= upper {
		mid := lower + (upper-lower)/2
		iterations++
		if total(mid) <= ceiling {
			best = mid
			lower = mid + 1
		} else {
			upper = mid - 1
		}
	}
	return best, iterations
}

func checkMonotonic(p budget.Program, r budget.Rates) error {
	if p.ProgramDays < 0 || p.HoursPerDay < 0 {
		return ErrNonMonotonic
	}
	for _, v := range []float64{
		r.InternHourlyRate, r.CoordinatorHourlyRate, r.DailyFoodCost, r.DailySupplies,
		r.LaptopCost, r.TrainingMaterials, r.VanCost, r.BusCostPerHour,
	} {
		if v < 0 {
			return ErrNonMonotonic
		}
	}
	return nil
}
