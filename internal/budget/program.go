// Package budget holds the youth program cost model and the compliance
// recommendations derived from a program configuration.
package budget

import "github.com/iwvelando/youth-budget/pkg/constants"

// Program describes how a youth program is run. Callers own it and may change
// any field; Normalize must run after every change. Participants and
// ProgramDays are not rounded: 10.5 participants need three coordinators and
// a paid 60.5-day program is past the employment limit.
type Program struct {
	Participants           float64 `json:"numberOfParticipants" yaml:"numberOfParticipants" mapstructure:"numberOfParticipants"`
	ProgramDays            float64 `json:"programDays" yaml:"programDays" mapstructure:"programDays"`
	HoursPerDay            float64 `json:"hoursPerDay" yaml:"hoursPerDay" mapstructure:"hoursPerDay"`
	Paid                   bool    `json:"isPaid" yaml:"isPaid" mapstructure:"isPaid"`
	HasMinors              bool    `json:"hasMinors" yaml:"hasMinors" mapstructure:"hasMinors"`
	Stationary             bool    `json:"isStationary" yaml:"isStationary" mapstructure:"isStationary"`
	NeedsFoodProgram       bool    `json:"needsFoodProgram" yaml:"needsFoodProgram" mapstructure:"needsFoodProgram"`
	QualifiesForYouthPrize bool    `json:"qualifiesForYouthPrize" yaml:"qualifiesForYouthPrize" mapstructure:"qualifiesForYouthPrize"`
	DailyTransportNeeded   bool    `json:"dailyTransportNeeded" yaml:"dailyTransportNeeded" mapstructure:"dailyTransportNeeded"`
}

// Rates is the per-unit price table used by Estimate.
type Rates struct {
	InternHourlyRate      float64 `json:"internHourlyRate" yaml:"internHourlyRate" mapstructure:"internHourlyRate"`
	CoordinatorHourlyRate float64 `json:"coordinatorHourlyRate" yaml:"coordinatorHourlyRate" mapstructure:"coordinatorHourlyRate"`
	DailyFoodCost         float64 `json:"dailyFoodCost" yaml:"dailyFoodCost" mapstructure:"dailyFoodCost"`
	DailySupplies         float64 `json:"dailySupplies" yaml:"dailySupplies" mapstructure:"dailySupplies"`
	LaptopCost            float64 `json:"laptopCost" yaml:"laptopCost" mapstructure:"laptopCost"`
	TrainingMaterials     float64 `json:"trainingMaterials" yaml:"trainingMaterials" mapstructure:"trainingMaterials"`
	VanCost               float64 `json:"vanCost" yaml:"vanCost" mapstructure:"vanCost"`
	BusCostPerHour        float64 `json:"busCostPerHour" yaml:"busCostPerHour" mapstructure:"busCostPerHour"`
}

// DefaultProgram returns the program the calculator starts with.
func DefaultProgram() Program {
	return Program{
		Participants:         constants.DefaultParticipants,
		ProgramDays:          constants.DefaultProgramDays,
		HoursPerDay:          constants.DefaultHoursPerDay,
		HasMinors:            true,
		Stationary:           true,
		NeedsFoodProgram:     true,
		DailyTransportNeeded: true,
	}
}

// DefaultRates returns the standard rate table.
func DefaultRates() Rates {
	return Rates{
		InternHourlyRate:      constants.DefaultInternHourlyRate,
		CoordinatorHourlyRate: constants.DefaultCoordinatorHourlyRate,
		DailyFoodCost:         constants.DefaultDailyFoodCost,
		DailySupplies:         constants.DefaultDailySupplies,
		LaptopCost:            constants.DefaultLaptopCost,
		TrainingMaterials:     constants.DefaultTrainingMaterials,
		VanCost:               constants.DefaultVanCost,
		BusCostPerHour:        constants.DefaultBusCostPerHour,
	}
}

// Normalize enforces the cross-field rules of a Program. YouthPrize partnerships
// require a stationary program, so the prize flag is cleared when the program
// is mobile. It reports whether anything changed.
func (p *Program) Normalize() bool {
	if !p.Stationary && p.QualifiesForYouthPrize {
		p.QualifiesForYouthPrize = false
		return true
	}
	return false
}
