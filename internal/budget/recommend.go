package budget

import "github.com/iwvelando/youth-budget/pkg/constants"

// Severity classifies a recommendation.
type Severity string

const (
	SeverityRequired Severity = "required"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Severities lists every severity from most to least urgent.
var Severities = []Severity{SeverityRequired, SeverityWarning, SeverityInfo}

// Recommendation codes.
const (
	CodeYouthSafety        = "youth-safety"
	CodeYouthPrizeFood     = "youth-prize-food-safety"
	CodeEmploymentDuration = "employment-duration"
)

// Recommendation is a compliance notice raised by a program configuration.
type Recommendation struct {
	Severity Severity `json:"type" yaml:"type"`
	Code     string   `json:"code" yaml:"code"`
	Message  string   `json:"message" yaml:"message"`
	Details  []string `json:"details" yaml:"details"`
}

// Recommend evaluates the compliance rules against p. Rules are independent and
// the result is always ordered: youth safety, YouthPrize food safety, then the
// employment duration limit.
func Recommend(p Program) []Recommendation {
	recs := []Recommendation{}

	if p.HasMinors {
		recs = append(recs, Recommendation{
			Severity: SeverityRequired,
			Code:     CodeYouthSafety,
			Message:  "Contact Youth Safety Manager immediately for program approval and safety protocols.",
			Details: []string{
				"All staff must complete Safety of Minors training",
				"Background checks required for all staff",
				"One-on-one interactions must be monitored",
			},
		})
	}

	if p.QualifiesForYouthPrize {
		recs = append(recs, Recommendation{
			Severity: SeverityRequired,
			Code:     CodeYouthPrizeFood,
			Message:  "Food Safety Training Required for YouthPrize Partnership",
			Details: []string{
				"Two staff members must complete food management training",
				"Food safety certification required",
				"Regular food safety protocols must be maintained",
			},
		})
	}

	if p.Paid && p.ProgramDays > constants.TempEmploymentDayLimit {
		recs = append(recs, Recommendation{
			Severity: SeverityWarning,
			Code:     CodeEmploymentDuration,
			Message:  "Program exceeds 60-day temp casual employment limit.",
			Details: []string{
				"HR consultation required for programs exceeding 60 days",
				"Consider splitting program into segments",
				"Alternative employment categories may be needed",
			},
		})
	}

	return recs
}

// GroupBySeverity buckets recommendations by severity, preserving their order
// within each bucket.
func GroupBySeverity(recs []Recommendation) map[Severity][]Recommendation {
	grouped := make(map[Severity][]Recommendation)
	for _, rec := range recs {
		grouped[rec.Severity] = append(grouped[rec.Severity], rec)
	}
	return grouped
}
