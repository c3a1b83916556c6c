package models

// Status reports how a solve ended. Non-optimal statuses are ordinary result
// values, not errors: callers can tell "no plan exists under these
// constraints" apart from an environment failure, which surfaces as an error.
type Status string

const (
	StatusOptimal    Status = "Optimal"
	StatusInfeasible Status = "Infeasible"
	StatusUnbounded  Status = "Unbounded"
	StatusNotSolved  Status = "NotSolved"
)

// IsOptimal reports whether a full result table is available.
func (s Status) IsOptimal() bool {
	return s == StatusOptimal
}

// PeriodResult is one row of the plan table: the solved decisions for a
// single period, reported at solver-native precision.
type PeriodResult struct {
	Period    int     `json:"period"`
	Demand    float64 `json:"demand_hours"`
	Hired     float64 `json:"hired"`
	Fired     float64 `json:"fired"`
	Employees float64 `json:"employees"`
	Overtime  float64 `json:"overtime_hours"`
	Unmet     float64 `json:"unmet_demand_hours"`
}

// CostBreakdown splits the solved cost into its components.
type CostBreakdown struct {
	Hiring   float64 `json:"hiring"`
	Firing   float64 `json:"firing"`
	Salary   float64 `json:"salary"`
	Overtime float64 `json:"overtime"`
	Penalty  float64 `json:"penalty"`
}

// Summary aggregates a solved plan. TotalCost covers the four budget-bearing
// components only; Objective additionally includes the unmet-demand penalty,
// so the two differ whenever demand goes unmet. VariancePct is nil when the
// budget is zero.
type Summary struct {
	Status      Status        `json:"status"`
	Objective   float64       `json:"objective"`
	TotalCost   float64       `json:"total_cost"`
	Budget      float64       `json:"budget"`
	Variance    float64       `json:"variance"`
	VariancePct *float64      `json:"variance_pct,omitempty"`
	Costs       CostBreakdown `json:"costs"`
}

// Plan is the result of one solve: a per-period table plus summary. It is
// created fresh on every solve and never mutated afterwards. Periods is nil
// when Status is not Optimal.
type Plan struct {
	Periods []PeriodResult `json:"periods,omitempty"`
	Summary Summary        `json:"summary"`
}
