package validation

import (
	"fmt"

	"github.com/iwvelando/youth-budget/internal/budget"
)

// A program day cannot run longer than this.
const hoursPerDayLimit = 24

// ValidateProgram returns warnings for program values that are accepted but
// produce meaningless estimates.
func ValidateProgram(p budget.Program) []string {
	var warnings []string

	if p.Participants < 0 {
		warnings = append(warnings, fmt.Sprintf("Participant count is negative (%g) - totals will be negative", p.Participants))
	}
	if p.ProgramDays <= 0 {
		warnings = append(warnings, fmt.Sprintf("Program length is %g days - day-based costs will be zero or negative", p.ProgramDays))
	}
	if p.HoursPerDay < 0 || p.HoursPerDay > hoursPerDayLimit {
		warnings = append(warnings, fmt.Sprintf("Hours per day (%.2f) is outside 0-%d", p.HoursPerDay, hoursPerDayLimit))
	}
	if p.QualifiesForYouthPrize && !p.Stationary {
		warnings = append(warnings, "YouthPrize requires a stationary program - qualifiesForYouthPrize will be ignored")
	}

	return warnings
}

// ValidateRates returns a warning for every negative rate.
func ValidateRates(r budget.Rates) []string {
	var warnings []string

	rates := []struct {
		name  string
		value float64
	}{
		{"internHourlyRate", r.InternHourlyRate},
		{"coordinatorHourlyRate", r.CoordinatorHourlyRate},
		{"dailyFoodCost", r.DailyFoodCost},
		{"dailySupplies", r.DailySupplies},
		{"laptopCost", r.LaptopCost},
		{"trainingMaterials", r.TrainingMaterials},
		{"vanCost", r.VanCost},
		{"busCostPerHour", r.BusCostPerHour},
	}
	for _, rate := range rates {
		if rate.value < 0 {
			warnings = append(warnings, fmt.Sprintf("Rate '%s' is negative (%.2f)", rate.name, rate.value))
		}
	}

	return warnings
}

// ValidateCeiling checks an optional budget ceiling; zero means unset.
func ValidateCeiling(ceiling float64) []string {
	if ceiling < 0 {
		return []string{fmt.Sprintf("Budget ceiling is negative (%.2f) - capacity planning will fail", ceiling)}
	}
	return nil
}
