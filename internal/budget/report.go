package budget

import "github.com/google/uuid"

// Report is a read-only snapshot of a program, its rates and everything derived
// from them.
type Report struct {
	ID              string           `json:"id" yaml:"id"`
	Program         Program          `json:"program" yaml:"program"`
	Rates           Rates            `json:"rates" yaml:"rates"`
	Coordinators    int              `json:"coordinators" yaml:"coordinators"`
	Breakdown       Breakdown        `json:"costs" yaml:"costs"`
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// NewReport normalizes p and computes its estimate and recommendations.
func NewReport(p Program, r Rates) Report {
	p.Normalize()
	return Report{
		ID:              uuid.NewString(),
		Program:         p,
		Rates:           r,
		Coordinators:    Coordinators(p.Participants),
		Breakdown:       Estimate(p, r),
		Recommendations: Recommend(p),
	}
}
