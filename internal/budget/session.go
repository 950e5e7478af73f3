package budget

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iwvelando/youth-budget/pkg/coerce"
	"go.uber.org/zap"
)

// ErrUnknownField is returned by Session.Set for a field name it does not know.
var ErrUnknownField = errors.New("unknown field")

type fieldSetter func(p *Program, r *Rates, value string)

// fieldSetters maps the external field names onto Program and Rates. Numeric
// fields silently become 0 when the text does not parse.
var fieldSetters = map[string]fieldSetter{
	"numberOfParticipants":   func(p *Program, _ *Rates, v string) { p.Participants = coerce.Float(v) },
	"programDays":            func(p *Program, _ *Rates, v string) { p.ProgramDays = coerce.Float(v) },
	"hoursPerDay":            func(p *Program, _ *Rates, v string) { p.HoursPerDay = coerce.Float(v) },
	"isPaid":                 func(p *Program, _ *Rates, v string) { p.Paid = coerce.Bool(v) },
	"hasMinors":              func(p *Program, _ *Rates, v string) { p.HasMinors = coerce.Bool(v) },
	"isStationary":           func(p *Program, _ *Rates, v string) { p.Stationary = coerce.Bool(v) },
	"needsFoodProgram":       func(p *Program, _ *Rates, v string) { p.NeedsFoodProgram = coerce.Bool(v) },
	"qualifiesForYouthPrize": func(p *Program, _ *Rates, v string) { p.QualifiesForYouthPrize = coerce.Bool(v) },
	"dailyTransportNeeded":   func(p *Program, _ *Rates, v string) { p.DailyTransportNeeded = coerce.Bool(v) },

	"internHourlyRate":      func(_ *Program, r *Rates, v string) { r.InternHourlyRate = coerce.Float(v) },
	"coordinatorHourlyRate": func(_ *Program, r *Rates, v string) { r.CoordinatorHourlyRate = coerce.Float(v) },
	"dailyFoodCost":         func(_ *Program, r *Rates, v string) { r.DailyFoodCost = coerce.Float(v) },
	"dailySupplies":         func(_ *Program, r *Rates, v string) { r.DailySupplies = coerce.Float(v) },
	"laptopCost":            func(_ *Program, r *Rates, v string) { r.LaptopCost = coerce.Float(v) },
	"trainingMaterials":     func(_ *Program, r *Rates, v string) { r.TrainingMaterials = coerce.Float(v) },
	"vanCost":               func(_ *Program, r *Rates, v string) { r.VanCost = coerce.Float(v) },
	"busCostPerHour":        func(_ *Program, r *Rates, v string) { r.BusCostPerHour = coerce.Float(v) },
}

// Fields returns the settable field names in sorted order.
func Fields() []string {
	names := make([]string, 0, len(fieldSetters))
	for name := range fieldSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Session owns one editable program and rate table together with the report
// derived from them. Every mutation recomputes the report before returning, so
// Report never observes a partial update. A Session is not safe for concurrent
// use.
type Session struct {
	logger  *zap.Logger
	program Program
	rates   Rates
	report  Report
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for update tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session seeded with p and r.
func NewSession(p Program, r Rates, opts ...Option) *Session {
	s := &Session{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.program = p
	s.rates = r
	s.recompute("session.NewSession")
	return s
}

// Set applies a single field edit given as text, then recomputes the report.
func (s *Session) Set(field, value string) error {
	setter, ok := fieldSetters[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	setter(&s.program, &s.rates, value)
	s.logger.Debug("field updated",
		zap.String("op", "budget.Session.Set"),
		zap.String("field", field),
		zap.String("value", value),
	)
	s.recompute("budget.Session.Set")
	return nil
}

// SetProgram replaces the whole program.
func (s *Session) SetProgram(p Program) {
	s.program = p
	s.recompute("budget.Session.SetProgram")
}

// SetRates replaces the whole rate table.
func (s *Session) SetRates(r Rates) {
	s.rates = r
	s.recompute("budget.Session.SetRates")
}

// Program returns the current, normalized program.
func (s *Session) Program() Program {
	return s.program
}

// Rates returns the current rate table.
func (s *Session) Rates() Rates {
	return s.rates
}

// Report returns the latest computed report.
func (s *Session) Report() Report {
	return s.report
}

func (s *Session) recompute(op string) {
	if s.program.Normalize() {
		s.logger.Debug("youth prize cleared for non-stationary program",
			zap.String("op", op),
		)
	}
	s.report = NewReport(s.program, s.rates)
	s.logger.Debug("report recomputed",
		zap.String("op", op),
		zap.String("report", s.report.ID),
		zap.Float64("total", s.report.Breakdown.Total),
		zap.Int("recommendations", len(s.report.Recommendations)),
	)
}
