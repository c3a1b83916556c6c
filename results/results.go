package results

import (
	"context"
	"workforce-planner/models"
	"workforce-planner/planner"
	"workforce-planner/solver"
)

// Extract reads the solved variable values back into a per-period plan with
// aggregate summary. For non-optimal solutions no table is produced and the
// plan carries only the status and budget.
//
// TotalCost is the budget row's left-hand side evaluated at the optimum, so
// it excludes the unmet-demand penalty and can differ from the objective.
func Extract(m *planner.Model, sol *solver.Solution) *models.Plan {
	p := m.Params
	summary := models.Summary{Status: sol.Status, Budget: p.Budget}
	if !sol.Status.IsOptimal() {
		return &models.Plan{Summary: summary}
	}

	periods := make([]models.PeriodResult, 0, m.Periods)
	var costs models.CostBreakdown
	for i := 1; i <= m.Periods; i++ {
		r := models.PeriodResult{
			Period:    i,
			Demand:    p.Demand[i-1],
			Hired:     sol.Value(m.Hired(i)),
			Fired:     sol.Value(m.Fired(i)),
			Employees: sol.Value(m.Employees(i)),
			Overtime:  sol.Value(m.Overtime(i)),
			Unmet:     sol.Value(m.Unmet(i)),
		}
		costs.Hiring += p.HiringCost * r.Hired
		costs.Firing += p.FiringCost * r.Fired
		costs.Salary += p.SalaryCost * r.Employees
		costs.Overtime += p.OvertimeCost * r.Overtime
		costs.Penalty += p.PenaltyCost * r.Unmet
		periods = append(periods, r)
	}

	summary.Objective = sol.Objective
	summary.TotalCost = costs.Hiring + costs.Firing + costs.Salary + costs.Overtime
	summary.Variance = summary.TotalCost - p.Budget
	if p.Budget != 0 {
		pct := summary.Variance / p.Budget
		summary.VariancePct = &pct
	}
	summary.Costs = costs
	return &models.Plan{Periods: periods, Summary: summary}
}

// Solve validates p, builds the workforce program, runs it through s, and
// extracts the plan. Each call builds and solves an independent program, so
// concurrent callers never share model state.
func Solve(ctx context.Context, s solver.Solver, p *models.ParameterSet) (*models.Plan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m := planner.Build(p)
	sol, err := s.Solve(ctx, m.Problem)
	if err != nil {
		return nil, err
	}
	return Extract(m, sol), nil
}
