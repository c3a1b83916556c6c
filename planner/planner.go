package planner

import (
	"fmt"
	"workforce-planner/models"
	"workforce-planner/solver"
)

// Model is the assembled workforce linear program together with the
// parameter set it was built from. Variables are laid out family by family
// (all hires, then all fires, headcounts, overtime, unmet demand), each
// family ordered by period.
type Model struct {
	Problem *solver.Problem
	Periods int
	Params  *models.ParameterSet
}

// Hired returns the variable index of the hires made in period i (1-based).
func (m *Model) Hired(i int) int { return i - 1 }

// Fired returns the variable index of the fires made in period i.
func (m *Model) Fired(i int) int { return m.Periods + i - 1 }

// Employees returns the variable index of the headcount in period i.
func (m *Model) Employees(i int) int { return 2*m.Periods + i - 1 }

// Overtime returns the variable index of the overtime hours in period i.
func (m *Model) Overtime(i int) int { return 3*m.Periods + i - 1 }

// Unmet returns the variable index of the unmet demand hours in period i.
func (m *Model) Unmet(i int) int { return 4*m.Periods + i - 1 }

// Variables returns the number of decision variables in the program.
func (m *Model) Variables() int { return len(m.Problem.Minimize) }

// Constraints returns the number of constraint rows in the program.
func (m *Model) Constraints() int { return len(m.Problem.Constraints) }

// Build assembles the linear program for p, which must have passed Validate.
// The same parameter set always produces a structurally identical program.
//
// Rows are laid out as N balance equalities, N capacity floors, N overtime
// caps, optional hiring/firing caps, and one budget ceiling. The budget row
// covers the four operating costs only; the unmet-demand penalty is not
// budgeted.
func Build(p *models.ParameterSet) *Model {
	n := p.Periods
	nv := 5 * n
	m := &Model{Periods: n, Params: p}

	cost := make([]float64, nv)
	names := make([]string, nv)
	for i := 1; i <= n; i++ {
		names[m.Hired(i)] = fmt.Sprintf("H_%d", i)
		names[m.Fired(i)] = fmt.Sprintf("F_%d", i)
		names[m.Employees(i)] = fmt.Sprintf("E_%d", i)
		names[m.Overtime(i)] = fmt.Sprintf("O_%d", i)
		names[m.Unmet(i)] = fmt.Sprintf("U_%d", i)

		cost[m.Hired(i)] = p.HiringCost
		cost[m.Fired(i)] = p.FiringCost
		cost[m.Employees(i)] = p.SalaryCost
		cost[m.Overtime(i)] = p.OvertimeCost
		cost[m.Unmet(i)] = p.PenaltyCost
	}

	cons := make([]solver.Constraint, 0, 3*n+1)

	// Headcount is a running sum of net hires anchored at the initial state:
	// E_1 = initial + H_1 - F_1, then E_i = E_{i-1} + H_i - F_i.
	for i := 1; i <= n; i++ {
		row := make([]float64, nv)
		row[m.Employees(i)] = 1
		row[m.Hired(i)] = -1
		row[m.Fired(i)] = 1
		rhs := 0.0
		if i == 1 {
			rhs = p.InitialEmployees
		} else {
			row[m.Employees(i-1)] = -1
		}
		cons = append(cons, solver.Constraint{
			Name:   fmt.Sprintf("balance_%d", i),
			Coeffs: row,
			Sense:  solver.Equal,
			RHS:    rhs,
		})
	}

	// Regular plus overtime hours must cover serviced demand, with unmet
	// demand as a penalized slack. Shortfall is expensive, never infeasible.
	for i := 1; i <= n; i++ {
		row := make([]float64, nv)
		row[m.Employees(i)] = p.WorkingHours
		row[m.Overtime(i)] = 1
		row[m.Unmet(i)] = 1
		cons = append(cons, solver.Constraint{
			Name:   fmt.Sprintf("capacity_%d", i),
			Coeffs: row,
			Sense:  solver.AtLeast,
			RHS:    p.Demand[i-1] * p.ServiceRate,
		})
	}

	// Overtime is capped by current headcount: O_i <= E_i * overtime_rate.
	for i := 1; i <= n; i++ {
		row := make([]float64, nv)
		row[m.Overtime(i)] = 1
		row[m.Employees(i)] = -p.OvertimeRate
		cons = append(cons, solver.Constraint{
			Name:   fmt.Sprintf("overtime_%d", i),
			Coeffs: row,
			Sense:  solver.AtMost,
			RHS:    0,
		})
	}

	// Per-period churn caps. Zero means unlimited and adds no rows.
	if p.MaxHiring > 0 {
		for i := 1; i <= n; i++ {
			row := make([]float64, nv)
			row[m.Hired(i)] = 1
			cons = append(cons, solver.Constraint{
				Name:   fmt.Sprintf("max_hiring_%d", i),
				Coeffs: row,
				Sense:  solver.AtMost,
				RHS:    p.MaxHiring,
			})
		}
	}
	if p.MaxFiring > 0 {
		for i := 1; i <= n; i++ {
			row := make([]float64, nv)
			row[m.Fired(i)] = 1
			cons = append(cons, solver.Constraint{
				Name:   fmt.Sprintf("max_firing_%d", i),
				Coeffs: row,
				Sense:  solver.AtMost,
				RHS:    p.MaxFiring,
			})
		}
	}

	budget := make([]float64, nv)
	for i := 1; i <= n; i++ {
		budget[m.Hired(i)] = p.HiringCost
		budget[m.Fired(i)] = p.FiringCost
		budget[m.Employees(i)] = p.SalaryCost
		budget[m.Overtime(i)] = p.OvertimeCost
	}
	cons = append(cons, solver.Constraint{
		Name:   "budget",
		Coeffs: budget,
		Sense:  solver.AtMost,
		RHS:    p.Budget,
	})

	m.Problem = &solver.Problem{
		Minimize:    cost,
		VarNames:    names,
		Constraints: cons,
	}
	return m
}
