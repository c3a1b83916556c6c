package results_test

import (
	"context"
	"testing"

	"workforce-planner/models"
	"workforce-planner/results"
	"workforce-planner/solver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run the full pipeline against the real simplex backend.

const tol = 1e-6

func threePeriodParams() *models.ParameterSet {
	return &models.ParameterSet{
		Periods:          3,
		InitialEmployees: 1,
		WorkingHours:     160,
		OvertimeRate:     40,
		ServiceRate:      0.95,
		HiringCost:       500,
		FiringCost:       400,
		SalaryCost:       2500,
		OvertimeCost:     5,
		PenaltyCost:      100,
		Budget:           10000,
		Demand:           []float64{100, 200, 150},
	}
}

func solvePlan(t *testing.T, p *models.ParameterSet) *models.Plan {
	t.Helper()
	plan, err := results.Solve(context.Background(), &solver.Simplex{}, p)
	require.NoError(t, err)
	require.NotNil(t, plan)
	return plan
}

func TestSolveThreePeriodScenario(t *testing.T) {
	plan := solvePlan(t, threePeriodParams())

	require.Equal(t, models.StatusOptimal, plan.Summary.Status)
	require.Len(t, plan.Periods, 3)

	// Serviced demand is 95 / 190 / 142.5 hours against 200 hours of
	// capacity per employee (160 regular + 40 overtime). Salary per
	// capacity hour beats the penalty and overtime beats extra salary,
	// so the cheapest path rides the floor E_i = serviced_i/200 with
	// overtime at its cap and nothing unmet.
	expected := []models.PeriodResult{
		{Period: 1, Demand: 100, Hired: 0, Fired: 0.525, Employees: 0.475, Overtime: 19, Unmet: 0},
		{Period: 2, Demand: 200, Hired: 0.475, Fired: 0, Employees: 0.95, Overtime: 38, Unmet: 0},
		{Period: 3, Demand: 150, Hired: 0, Fired: 0.2375, Employees: 0.7125, Overtime: 28.5, Unmet: 0},
	}
	for i, want := range expected {
		got := plan.Periods[i]
		assert.Equal(t, want.Period, got.Period)
		assert.Equal(t, want.Demand, got.Demand)
		assert.InDelta(t, want.Hired, got.Hired, tol, "hired in period %d", want.Period)
		assert.InDelta(t, want.Fired, got.Fired, tol, "fired in period %d", want.Period)
		assert.InDelta(t, want.Employees, got.Employees, tol, "employees in period %d", want.Period)
		assert.InDelta(t, want.Overtime, got.Overtime, tol, "overtime in period %d", want.Period)
		assert.InDelta(t, want.Unmet, got.Unmet, tol, "unmet in period %d", want.Period)
	}

	s := plan.Summary
	assert.InDelta(t, 6313.75, s.Objective, tol)
	assert.InDelta(t, 6313.75, s.TotalCost, tol)
	assert.InDelta(t, -3686.25, s.Variance, tol)
	require.NotNil(t, s.VariancePct)
	assert.InDelta(t, -0.368625, *s.VariancePct, tol)

	assert.InDelta(t, 237.5, s.Costs.Hiring, tol)
	assert.InDelta(t, 305, s.Costs.Firing, tol)
	assert.InDelta(t, 5343.75, s.Costs.Salary, tol)
	assert.InDelta(t, 427.5, s.Costs.Overtime, tol)
	assert.InDelta(t, 0, s.Costs.Penalty, tol)
}

func TestSolveInvariantsHold(t *testing.T) {
	p := &models.ParameterSet{
		Periods:          5,
		InitialEmployees: 1,
		WorkingHours:     160,
		OvertimeRate:     40,
		ServiceRate:      1,
		HiringCost:       500,
		FiringCost:       400,
		SalaryCost:       2500,
		OvertimeCost:     5,
		PenaltyCost:      100,
		Budget:           50000,
		Demand:           []float64{100, 200, 150, 120, 300},
		MaxHiring:        2,
		MaxFiring:        2,
	}
	plan := solvePlan(t, p)

	require.Equal(t, models.StatusOptimal, plan.Summary.Status)
	require.Len(t, plan.Periods, 5)

	prev := p.InitialEmployees
	for i, r := range plan.Periods {
		assert.InDelta(t, prev+r.Hired-r.Fired, r.Employees, tol, "balance in period %d", r.Period)

		served := r.Employees*p.WorkingHours + r.Overtime + r.Unmet
		assert.GreaterOrEqual(t, served+tol, p.Demand[i]*p.ServiceRate, "capacity in period %d", r.Period)

		assert.LessOrEqual(t, r.Overtime, r.Employees*p.OvertimeRate+tol, "overtime cap in period %d", r.Period)
		assert.LessOrEqual(t, r.Hired, p.MaxHiring+tol, "hiring cap in period %d", r.Period)
		assert.LessOrEqual(t, r.Fired, p.MaxFiring+tol, "firing cap in period %d", r.Period)

		prev = r.Employees
	}

	assert.LessOrEqual(t, plan.Summary.TotalCost, p.Budget+tol)
}

func TestSolveZeroDemandIdlePlan(t *testing.T) {
	p := &models.ParameterSet{
		Periods:      4,
		WorkingHours: 160,
		OvertimeRate: 40,
		ServiceRate:  1,
		HiringCost:   500,
		FiringCost:   400,
		SalaryCost:   2500,
		OvertimeCost: 5,
		PenaltyCost:  100,
		Budget:       1000,
		Demand:       []float64{0, 0, 0, 0},
	}
	plan := solvePlan(t, p)

	require.Equal(t, models.StatusOptimal, plan.Summary.Status)
	require.Len(t, plan.Periods, 4)
	for _, r := range plan.Periods {
		assert.InDelta(t, 0, r.Hired, tol)
		assert.InDelta(t, 0, r.Fired, tol)
		assert.InDelta(t, 0, r.Employees, tol)
		assert.InDelta(t, 0, r.Overtime, tol)
		assert.InDelta(t, 0, r.Unmet, tol)
	}
	assert.InDelta(t, 0, plan.Summary.Objective, tol)
	assert.InDelta(t, 0, plan.Summary.TotalCost, tol)
	assert.InDelta(t, -1000, plan.Summary.Variance, tol)
}

func TestSolveZeroBudgetInfeasible(t *testing.T) {
	// Keeping the initial staff costs salary and shedding them costs firing
	// fees, so nothing fits under a zero budget.
	p := &models.ParameterSet{
		Periods:          1,
		InitialEmployees: 5,
		WorkingHours:     160,
		OvertimeRate:     40,
		ServiceRate:      1,
		HiringCost:       500,
		FiringCost:       400,
		SalaryCost:       2500,
		OvertimeCost:     5,
		PenaltyCost:      100,
		Budget:           0,
		Demand:           []float64{100},
	}
	plan := solvePlan(t, p)

	assert.Equal(t, models.StatusInfeasible, plan.Summary.Status)
	assert.Nil(t, plan.Periods)
	assert.Nil(t, plan.Summary.VariancePct)
}

func TestSolveZeroBudgetFreeWorkforceStaysFeasible(t *testing.T) {
	// With every budget-bearing cost at zero the ceiling binds trivially and
	// the idle workforce serves demand for free.
	p := &models.ParameterSet{
		Periods:          1,
		InitialEmployees: 5,
		WorkingHours:     160,
		OvertimeRate:     40,
		ServiceRate:      1,
		PenaltyCost:      100,
		Budget:           0,
		Demand:           []float64{100},
	}
	plan := solvePlan(t, p)

	require.Equal(t, models.StatusOptimal, plan.Summary.Status)
	require.Len(t, plan.Periods, 1)
	assert.InDelta(t, 0, plan.Summary.Objective, tol)
	assert.InDelta(t, 0, plan.Periods[0].Unmet, tol)
}

func TestSolveHugeBudgetNotSolved(t *testing.T) {
	// A budget ceiling wildly out of scale with the cost coefficients makes
	// the backend give up numerically partway through. The give-up surfaces
	// as a status, never as an error.
	p := threePeriodParams()
	p.Budget = 1e8

	plan := solvePlan(t, p)
	assert.Equal(t, models.StatusNotSolved, plan.Summary.Status)
	assert.Nil(t, plan.Periods)
	assert.Nil(t, plan.Summary.VariancePct)
	assert.Equal(t, 1e8, plan.Summary.Budget)
}

func TestSolveHighPenaltyServesAllDemand(t *testing.T) {
	p := &models.ParameterSet{
		Periods:          2,
		InitialEmployees: 0,
		WorkingHours:     160,
		OvertimeRate:     40,
		ServiceRate:      1,
		HiringCost:       300,
		FiringCost:       200,
		SalaryCost:       2000,
		OvertimeCost:     4,
		PenaltyCost:      1e6,
		Budget:           100000,
		Demand:           []float64{400, 800},
	}
	plan := solvePlan(t, p)

	require.Equal(t, models.StatusOptimal, plan.Summary.Status)
	for _, r := range plan.Periods {
		assert.InDelta(t, 0, r.Unmet, tol, "unmet in period %d", r.Period)
	}
	assert.Greater(t, plan.Summary.TotalCost, 0.0)
	assert.InDelta(t, 0, plan.Summary.Costs.Penalty, tol)
}

func TestSolveIdempotent(t *testing.T) {
	first := solvePlan(t, threePeriodParams())
	second := solvePlan(t, threePeriodParams())

	assert.Equal(t, first.Summary.Status, second.Summary.Status)
	assert.InDelta(t, first.Summary.Objective, second.Summary.Objective, 1e-9)
	assert.Equal(t, first.Periods, second.Periods)
}

func TestSolveCostMonotonicity(t *testing.T) {
	base := solvePlan(t, threePeriodParams()).Summary.Objective

	raises := map[string]func(*models.ParameterSet){
		"HiringCost":   func(p *models.ParameterSet) { p.HiringCost *= 2 },
		"FiringCost":   func(p *models.ParameterSet) { p.FiringCost *= 2 },
		"SalaryCost":   func(p *models.ParameterSet) { p.SalaryCost *= 2 },
		"OvertimeCost": func(p *models.ParameterSet) { p.OvertimeCost *= 2 },
		"PenaltyCost":  func(p *models.ParameterSet) { p.PenaltyCost *= 2 },
	}

	for name, raise := range raises {
		t.Run(name, func(t *testing.T) {
			p := threePeriodParams()
			raise(p)
			plan := solvePlan(t, p)

			require.Equal(t, models.StatusOptimal, plan.Summary.Status)
			assert.GreaterOrEqual(t, plan.Summary.Objective+tol, base,
				"raising a cost must not lower the optimum")
		})
	}
}

func TestSolveCancelledContextReturnsNotSolved(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan, err := results.Solve(ctx, &solver.Simplex{}, threePeriodParams())
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotSolved, plan.Summary.Status)
	assert.Nil(t, plan.Periods)
}
