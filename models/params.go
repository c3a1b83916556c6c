package models

import (
	"fmt"
	"math"
	"workforce-planner/errors"
)

// ParameterSet holds the scalar and per-period inputs for one planning run.
// It is shared across packages and treated as immutable once validated.
type ParameterSet struct {
	Periods          int       // planning horizon length, in periods
	InitialEmployees float64   // headcount at the start of period 1
	WorkingHours     float64   // regular hours per employee per period
	OvertimeRate     float64   // overtime hours allowed per employee per period
	ServiceRate      float64   // multiplier applied to each period's demand
	HiringCost       float64   // currency per hire
	FiringCost       float64   // currency per fire
	SalaryCost       float64   // currency per employee per period
	OvertimeCost     float64   // currency per overtime hour
	PenaltyCost      float64   // currency per unmet demand hour
	Budget           float64   // ceiling for all costs except the penalty
	Demand           []float64 // demand hours per period; length must equal Periods

	// MaxHiring and MaxFiring cap hires and fires per period. 0 = unlimited.
	MaxHiring float64
	MaxFiring float64
}

// Validate reports the first out-of-range field, wrapped in a ParameterError.
// A nil return means the set can be handed to the model builder as-is.
func (p ParameterSet) Validate() error {
	if p.Periods < 1 {
		return &errors.ParameterError{
			Field: "periods",
			Err:   fmt.Errorf("%w: got %d", errors.ErrHorizonTooShort, p.Periods),
		}
	}

	scalars := []struct {
		name  string
		value float64
	}{
		{"initial_employees", p.InitialEmployees},
		{"working_hours", p.WorkingHours},
		{"overtime_rate", p.OvertimeRate},
		{"service_rate", p.ServiceRate},
		{"hiring_cost", p.HiringCost},
		{"firing_cost", p.FiringCost},
		{"salary_cost", p.SalaryCost},
		{"overtime_cost", p.OvertimeCost},
		{"penalty_cost", p.PenaltyCost},
		{"budget", p.Budget},
		{"max_hiring", p.MaxHiring},
		{"max_firing", p.MaxFiring},
	}
	for _, s := range scalars {
		if err := checkScalar(s.name, s.value); err != nil {
			return err
		}
	}

	if len(p.Demand) != p.Periods {
		return &errors.ParameterError{
			Field: "demand",
			Err:   fmt.Errorf("%w: %d values for %d periods", errors.ErrDemandLength, len(p.Demand), p.Periods),
		}
	}
	for i, d := range p.Demand {
		if err := checkScalar(fmt.Sprintf("demand[%d]", i), d); err != nil {
			return err
		}
	}
	return nil
}

func checkScalar(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &errors.ParameterError{
			Field: name,
			Err:   fmt.Errorf("%w: got %v", errors.ErrNotFinite, value),
		}
	}
	if value < 0 {
		return &errors.ParameterError{
			Field: name,
			Err:   fmt.Errorf("%w: got %v", errors.ErrNegativeValue, value),
		}
	}
	return nil
}

// Grade describes one employee grade contributing to the initial workforce.
type Grade struct {
	Name   string  `yaml:"name" json:"name"`
	Count  float64 `yaml:"count" json:"count"`
	Salary float64 `yaml:"salary" json:"salary"`
}

// EffectiveSalary reduces a grade list to the total initial headcount and the
// headcount-weighted salary scalar the model uses. An empty list or zero
// total headcount yields (0, 0).
func EffectiveSalary(grades []Grade) (initial, salary float64) {
	var weighted float64
	for _, g := range grades {
		initial += g.Count
		weighted += g.Count * g.Salary
	}
	if initial == 0 {
		return 0, 0
	}
	return initial, weighted / initial
}
