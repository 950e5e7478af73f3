package budget

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestNewSessionComputesReport(t *testing.T) {
	s := NewSession(DefaultProgram(), DefaultRates(), WithLogger(zap.NewNop()))

	report := s.Report()
	if report.ID == "" {
		t.Fatal("expected report ID")
	}
	if report.Coordinators != 2 {
		t.Errorf("coordinators = %d, expected 2", report.Coordinators)
	}
	if report.Breakdown.Total != 29960 {
		t.Errorf("total = %.2f, expected 29960.00", report.Breakdown.Total)
	}
	// The default program has minors.
	if len(report.Recommendations) != 1 || report.Recommendations[0].Code != CodeYouthSafety {
		t.Errorf("unexpected recommendations: %+v", report.Recommendations)
	}
}

func TestSessionSet(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		value  string
		verify func(t *testing.T, s *Session)
	}{
		{
			name:  "participants",
			field: "numberOfParticipants",
			value: "11",
			verify: func(t *testing.T, s *Session) {
				if s.Program().Participants != 11 {
					t.Errorf("participants = %v", s.Program().Participants)
				}
				if s.Report().Coordinators != 3 {
					t.Errorf("coordinators = %d, expected 3", s.Report().Coordinators)
				}
				if s.Report().Breakdown.Transport != 6000 {
					t.Errorf("transport = %.2f, expected 6000.00", s.Report().Breakdown.Transport)
				}
			},
		},
		{
			name:  "invalid number becomes zero",
			field: "programDays",
			value: "thirty",
			verify: func(t *testing.T, s *Session) {
				if s.Program().ProgramDays != 0 {
					t.Errorf("programDays = %v, expected 0", s.Program().ProgramDays)
				}
			},
		},
		{
			name:  "fractional participants",
			field: "numberOfParticipants",
			value: "10.5",
			verify: func(t *testing.T, s *Session) {
				if s.Program().Participants != 10.5 {
					t.Errorf("participants = %v, expected 10.5", s.Program().Participants)
				}
				if s.Report().Coordinators != 3 {
					t.Errorf("coordinators = %d, expected 3", s.Report().Coordinators)
				}
			},
		},
		{
			name:  "hours accept fractions",
			field: "hoursPerDay",
			value: "6.5",
			verify: func(t *testing.T, s *Session) {
				if s.Program().HoursPerDay != 6.5 {
					t.Errorf("hoursPerDay = %v, expected 6.5", s.Program().HoursPerDay)
				}
			},
		},
		{
			name:  "rate field",
			field: "vanCost",
			value: "60",
			verify: func(t *testing.T, s *Session) {
				if s.Rates().VanCost != 60 {
					t.Errorf("vanCost = %v, expected 60", s.Rates().VanCost)
				}
				if s.Report().Breakdown.Transport != 1800 {
					t.Errorf("transport = %.2f, expected 1800.00", s.Report().Breakdown.Transport)
				}
			},
		},
		{
			name:  "invalid rate becomes zero",
			field: "laptopCost",
			value: "n/a",
			verify: func(t *testing.T, s *Session) {
				if s.Rates().LaptopCost != 0 {
					t.Errorf("laptopCost = %v, expected 0", s.Rates().LaptopCost)
				}
				if s.Report().Breakdown.Equipment != 10*(200+14*30) {
					t.Errorf("equipment = %.2f", s.Report().Breakdown.Equipment)
				}
			},
		},
		{
			name:  "paid flag",
			field: "isPaid",
			value: "true",
			verify: func(t *testing.T, s *Session) {
				if !s.Program().Paid {
					t.Error("expected paid program")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(DefaultProgram(), DefaultRates())
			if err := s.Set(tt.field, tt.value); err != nil {
				t.Fatalf("Set(%s) error = %v", tt.field, err)
			}
			tt.verify(t, s)
		})
	}
}

func TestSessionProgramDaysEmploymentLimit(t *testing.T) {
	tests := []struct {
		days    string
		parsed  float64
		warning bool
	}{
		{"60", 60, false},
		{"60.5", 60.5, true},
		{"1e20", 1e20, true},
	}

	for _, tt := range tests {
		t.Run(tt.days, func(t *testing.T) {
			s := NewSession(DefaultProgram(), DefaultRates())
			if err := s.Set("isPaid", "true"); err != nil {
				t.Fatalf("Set(isPaid) error = %v", err)
			}
			if err := s.Set("programDays", tt.days); err != nil {
				t.Fatalf("Set(programDays) error = %v", err)
			}

			report := s.Report()
			if report.Program.ProgramDays != tt.parsed {
				t.Errorf("programDays = %v, expected %v", report.Program.ProgramDays, tt.parsed)
			}
			if report.Breakdown.Total <= 0 {
				t.Errorf("total = %v, expected a positive amount", report.Breakdown.Total)
			}
			found := false
			for _, rec := range report.Recommendations {
				if rec.Code == CodeEmploymentDuration {
					found = true
				}
			}
			if found != tt.warning {
				t.Errorf("employment warning = %v, expected %v", found, tt.warning)
			}
		})
	}
}

func TestSessionSetUnknownField(t *testing.T) {
	s := NewSession(DefaultProgram(), DefaultRates())
	before := s.Report()

	err := s.Set("numberOfPets", "3")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if s.Report().ID != before.ID {
		t.Error("report should not be recomputed after a rejected update")
	}
}

func TestSessionStationaryClearsPrize(t *testing.T) {
	s := NewSession(DefaultProgram(), DefaultRates())

	if err := s.Set("qualifiesForYouthPrize", "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !s.Program().QualifiesForYouthPrize {
		t.Fatal("expected prize to be set for a stationary program")
	}
	if s.Report().Breakdown.Food != 0 {
		t.Errorf("food = %.2f, expected 0 with YouthPrize", s.Report().Breakdown.Food)
	}

	if err := s.Set("isStationary", "false"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if s.Program().QualifiesForYouthPrize {
		t.Fatal("expected prize cleared when program is not stationary")
	}
	if s.Report().Program.QualifiesForYouthPrize {
		t.Fatal("report still carries the prize flag")
	}
	if s.Report().Breakdown.Food != 6000 {
		t.Errorf("food = %.2f, expected 6000.00 once the prize is cleared", s.Report().Breakdown.Food)
	}

	// Setting the prize while mobile does not stick.
	if err := s.Set("qualifiesForYouthPrize", "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if s.Program().QualifiesForYouthPrize {
		t.Fatal("prize must stay false while the program is not stationary")
	}
}

func TestSessionSetProgramNormalizes(t *testing.T) {
	s := NewSession(DefaultProgram(), DefaultRates())
	p := DefaultProgram()
	p.Stationary = false
	p.QualifiesForYouthPrize = true

	s.SetProgram(p)
	if s.Program().QualifiesForYouthPrize {
		t.Fatal("SetProgram should clear the prize for a mobile program")
	}

	r := DefaultRates()
	r.BusCostPerHour = 0
	s.SetRates(r)
	if s.Rates().BusCostPerHour != 0 {
		t.Fatal("SetRates did not replace the rate table")
	}
}

func TestFields(t *testing.T) {
	fields := Fields()
	if len(fields) != 17 {
		t.Fatalf("expected 17 fields, got %d", len(fields))
	}
	s := NewSession(DefaultProgram(), DefaultRates())
	for _, field := range fields {
		if err := s.Set(field, "1"); err != nil {
			t.Errorf("Set(%s) error = %v", field, err)
		}
	}
}
