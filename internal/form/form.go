// Package form provides the interactive terminal editor for a budget session.
package form

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/iwvelando/youth-budget/internal/budget"
	"github.com/iwvelando/youth-budget/pkg/coerce"
	"go.uber.org/zap"
)

// ErrAborted is returned by Run when the user quits the form without submitting.
var ErrAborted = errors.New("edit aborted")

// Values mirrors the editable fields as the form sees them. Numbers stay as
// text until Apply so that anything the user types is accepted.
type Values struct {
	Participants string
	ProgramDays  string
	HoursPerDay  string

	Paid                   bool
	HasMinors              bool
	Stationary             bool
	NeedsFoodProgram       bool
	QualifiesForYouthPrize bool
	DailyTransportNeeded   bool

	InternHourlyRate      string
	CoordinatorHourlyRate string
	DailyFoodCost         string
	DailySupplies         string
	LaptopCost            string
	TrainingMaterials     string
	VanCost               string
	BusCostPerHour        string
}

// FromSession captures the current state of a session.
func FromSession(s *budget.Session) Values {
	p := s.Program()
	r := s.Rates()
	return Values{
		Participants: formatFloat(p.Participants),
		ProgramDays:  formatFloat(p.ProgramDays),
		HoursPerDay:  formatFloat(p.HoursPerDay),

		Paid:                   p.Paid,
		HasMinors:              p.HasMinors,
		Stationary:             p.Stationary,
		NeedsFoodProgram:       p.NeedsFoodProgram,
		QualifiesForYouthPrize: p.QualifiesForYouthPrize,
		DailyTransportNeeded:   p.DailyTransportNeeded,

		InternHourlyRate:      formatFloat(r.InternHourlyRate),
		CoordinatorHourlyRate: formatFloat(r.CoordinatorHourlyRate),
		DailyFoodCost:         formatFloat(r.DailyFoodCost),
		DailySupplies:         formatFloat(r.DailySupplies),
		LaptopCost:            formatFloat(r.LaptopCost),
		TrainingMaterials:     formatFloat(r.TrainingMaterials),
		VanCost:               formatFloat(r.VanCost),
		BusCostPerHour:        formatFloat(r.BusCostPerHour),
	}
}

type fieldValue struct {
	name  string
	value string
}

// fields lists the session field names in the order Apply sets them.
// isStationary precedes qualifiesForYouthPrize so that turning both on in one
// edit keeps the prize.
func (v *Values) fields() []fieldValue {
	return []fieldValue{
		{"numberOfParticipants", v.Participants},
		{"programDays", v.ProgramDays},
		{"hoursPerDay", v.HoursPerDay},
		{"isPaid", strconv.FormatBool(v.Paid)},
		{"hasMinors", strconv.FormatBool(v.HasMinors)},
		{"isStationary", strconv.FormatBool(v.Stationary)},
		{"qualifiesForYouthPrize", strconv.FormatBool(v.QualifiesForYouthPrize)},
		{"needsFoodProgram", strconv.FormatBool(v.NeedsFoodProgram)},
		{"dailyTransportNeeded", strconv.FormatBool(v.DailyTransportNeeded)},
		{"internHourlyRate", v.InternHourlyRate},
		{"coordinatorHourlyRate", v.CoordinatorHourlyRate},
		{"dailyFoodCost", v.DailyFoodCost},
		{"dailySupplies", v.DailySupplies},
		{"laptopCost", v.LaptopCost},
		{"trainingMaterials", v.TrainingMaterials},
		{"vanCost", v.VanCost},
		{"busCostPerHour", v.BusCostPerHour},
	}
}

// Apply writes every value into the session through Session.Set, so text that
// does not parse becomes zero.
func Apply(s *budget.Session, v Values) error {
	for _, f := range v.fields() {
		if err := s.Set(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// New builds the form bound to v.
func New(v *Values) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Number of participants").
				Value(&v.Participants),
			huh.NewInput().
				Title("Program days").
				Value(&v.ProgramDays),
			huh.NewInput().
				Title("Hours per day").
				Value(&v.HoursPerDay),
		).Title("Program"),

		huh.NewGroup(
			huh.NewConfirm().
				Title("Paid internship?").
				Value(&v.Paid),
			huh.NewConfirm().
				Title("Participants under 18?").
				Value(&v.HasMinors),
			huh.NewConfirm().
				Title("Stationary program?").
				Description("YouthPrize partnerships require a stationary program.").
				Value(&v.Stationary),
			huh.NewConfirm().
				Title("Food program needed?").
				Value(&v.NeedsFoodProgram),
			huh.NewConfirm().
				Title("Qualifies for YouthPrize?").
				Value(&v.QualifiesForYouthPrize),
			huh.NewConfirm().
				Title("Daily transport needed?").
				Value(&v.DailyTransportNeeded),
		).Title("Program options"),

		huh.NewGroup(
			rateInput("Intern hourly rate", &v.InternHourlyRate),
			rateInput("Coordinator hourly rate", &v.CoordinatorHourlyRate),
			rateInput("Daily food cost per participant", &v.DailyFoodCost),
			rateInput("Daily supplies per participant", &v.DailySupplies),
			rateInput("Laptop cost", &v.LaptopCost),
			rateInput("Training materials", &v.TrainingMaterials),
			rateInput("Van cost per day", &v.VanCost),
			rateInput("Bus cost per hour", &v.BusCostPerHour),
		).Title("Rates"),
	)
}

func rateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Prompt("$ ").
		Value(value)
}

// Run shows the form seeded from the session and applies the submitted values.
func Run(ctx context.Context, logger *zap.Logger, s *budget.Session) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	values := FromSession(s)
	if err := New(&values).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}

	if err := Apply(s, values); err != nil {
		return err
	}

	logger.Debug("form values applied",
		zap.String("op", "form.Run"),
		zap.Float64("total", s.Report().Breakdown.Total),
	)
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(coerce.Float(v), 'f', -1, 64)
}
