package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	customerrors "workforce-planner/errors"
	"workforce-planner/models"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk YAML description of one planning problem.
//
// Either give initial_employees and costs.salary directly, or give a grades
// list and leave both at zero; grades are reduced to a headcount-weighted
// average salary before solving. Likewise either set budget or set
// auto_budget: true to derive one as initial headcount times salary times
// horizon length.
type Scenario struct {
	Periods          int            `yaml:"periods"`
	InitialEmployees float64        `yaml:"initial_employees"`
	WorkingHours     float64        `yaml:"working_hours"`
	OvertimeRate     float64        `yaml:"overtime_rate"`
	ServiceRate      float64        `yaml:"service_rate"`
	Costs            ScenarioCosts  `yaml:"costs"`
	Budget           float64        `yaml:"budget"`
	AutoBudget       bool           `yaml:"auto_budget"`
	Demand           []float64      `yaml:"demand"`
	Grades           []models.Grade `yaml:"grades"`
	MaxHiring        float64        `yaml:"max_hiring"`
	MaxFiring        float64        `yaml:"max_firing"`
}

// ScenarioCosts groups the per-unit cost coefficients.
type ScenarioCosts struct {
	Hiring   float64 `yaml:"hiring"`
	Firing   float64 `yaml:"firing"`
	Salary   float64 `yaml:"salary"`
	Overtime float64 `yaml:"overtime"`
	Penalty  float64 `yaml:"penalty"`
}

// Parse reads a YAML scenario from the reader. It reports syntax problems
// only; range checking happens when the scenario is turned into a parameter
// set.
func Parse(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading scenario: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, customerrors.ErrEmptyScenario
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("error parsing scenario: %w", err)
	}
	return &sc, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening scenario %s: %w", path, err)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// ParameterSet resolves the scenario into a validated parameter set,
// reducing grades to their effective headcount and salary and deriving the
// budget when auto_budget is set.
func (s *Scenario) ParameterSet() (*models.ParameterSet, error) {
	initial := s.InitialEmployees
	salary := s.Costs.Salary

	if len(s.Grades) > 0 {
		if initial != 0 || salary != 0 {
			return nil, &customerrors.ParameterError{Field: "grades", Err: customerrors.ErrConflictingGrades}
		}
		initial, salary = models.EffectiveSalary(s.Grades)
	}

	budget := s.Budget
	if s.AutoBudget {
		if budget != 0 {
			return nil, &customerrors.ParameterError{Field: "auto_budget", Err: customerrors.ErrConflictingBudget}
		}
		budget = initial * salary * float64(s.Periods)
	}

	p := &models.ParameterSet{
		Periods:          s.Periods,
		InitialEmployees: initial,
		WorkingHours:     s.WorkingHours,
		OvertimeRate:     s.OvertimeRate,
		ServiceRate:      s.ServiceRate,
		HiringCost:       s.Costs.Hiring,
		FiringCost:       s.Costs.Firing,
		SalaryCost:       salary,
		OvertimeCost:     s.Costs.Overtime,
		PenaltyCost:      s.Costs.Penalty,
		Budget:           budget,
		Demand:           s.Demand,
		MaxHiring:        s.MaxHiring,
		MaxFiring:        s.MaxFiring,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
