package budget

import (
	"github.com/iwvelando/youth-budget/pkg/constants"
	"github.com/iwvelando/youth-budget/pkg/mathutil"
)

// Breakdown is a computed cost estimate. Total is always the sum of the four
// line items.
type Breakdown struct {
	Staffing  float64 `json:"staffing" yaml:"staffing"`
	Food      float64 `json:"food" yaml:"food"`
	Equipment float64 `json:"equipment" yaml:"equipment"`
	Transport float64 `json:"transport" yaml:"transport"`
	Total     float64 `json:"total" yaml:"total"`
}

// Coordinators returns the number of coordinators needed to supervise the
// given participants, one per five rounded up.
func Coordinators(participants float64) int {
	return mathutil.ClampInt(coordinatorCount(participants))
}

func coordinatorCount(participants float64) float64 {
	return mathutil.CeilDiv(participants, constants.ParticipantsPerCoordinator)
}

// Estimate computes the cost breakdown for a program at the given rates.
// Inputs are used as-is; negative values flow through into the totals.
func Estimate(p Program, r Rates) Breakdown {
	participants := p.Participants
	days := p.ProgramDays
	staffHours := p.HoursPerDay * days

	staffing := coordinatorCount(participants) * r.CoordinatorHourlyRate * staffHours
	if p.Paid {
		staffing += participants * r.InternHourlyRate * staffHours
	}

	equipment := participants * (r.LaptopCost + r.TrainingMaterials + r.DailySupplies*days)

	// YouthPrize partners provide meals, so there is no separate food line.
	var food float64
	if p.NeedsFoodProgram && !p.QualifiesForYouthPrize {
		food = participants * r.DailyFoodCost * days
	}

	var transport float64
	if p.DailyTransportNeeded {
		if p.Participants <= constants.VanCapacity {
			transport = r.VanCost * days
		} else {
			transport = r.BusCostPerHour * constants.DailyBusHours * days
		}
	}

	return Breakdown{
		Staffing:  staffing,
		Food:      food,
		Equipment: equipment,
		Transport: transport,
		Total:     staffing + food + equipment + transport,
	}
}
