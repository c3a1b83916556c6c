// Package metrics provides Prometheus observability metrics for the workforce planner.
// It includes Critical and Important metrics for business and operational visibility.
package metrics

import (
	"workforce-planner/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// CRITICAL METRICS - Business Impact Visibility
// =============================================================================

// UnmetHoursTotal tracks demand hours left unserved across the whole horizon.
// High values indicate the budget or hiring caps are too tight for demand.
var UnmetHoursTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "plan",
	Name:      "unmet_demand_hours_total",
	Help:      "Total demand hours left unserved across all periods of the latest plan",
})

// DemandHoursTotal tracks total raw demand across the planning horizon.
var DemandHoursTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "plan",
	Name:      "demand_hours_total",
	Help:      "Total demand hours across all periods of the latest plan",
})

// PeriodsWithUnmetDemand tracks the number of periods where capacity fell short.
var PeriodsWithUnmetDemand = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "plan",
	Name:      "periods_with_unmet_demand",
	Help:      "Number of periods in the latest plan with positive unmet demand",
})

// TotalCost tracks the budget-bearing cost of the latest plan.
var TotalCost = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "plan",
	Name:      "total_cost",
	Help:      "Hiring, firing, salary and overtime cost of the latest plan",
})

// Objective tracks the full minimized objective, penalty included.
var Objective = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "plan",
	Name:      "objective_value",
	Help:      "Minimized objective value of the latest plan including the unmet-demand penalty",
})

// BudgetVariance tracks total cost minus budget for the latest plan.
var BudgetVariance = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "plan",
	Name:      "budget_variance",
	Help:      "Total cost minus budget of the latest plan, negative when under budget",
})

// FinalHeadcount tracks the headcount at the end of the horizon.
var FinalHeadcount = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "plan",
	Name:      "final_headcount",
	Help:      "Employees on staff in the last period of the latest plan",
})

// CostByComponent tracks the latest plan's cost split by component.
var CostByComponent = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "plan",
	Name:      "cost_by_component",
	Help:      "Cost of the latest plan broken down by component",
}, []string{"component"})

// SolvesTotal counts solver invocations by terminal status.
var SolvesTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "solver",
	Name:      "solves_total",
	Help:      "Total solver invocations by terminal status",
}, []string{"status"})

// =============================================================================
// IMPORTANT METRICS - Operational Health
// =============================================================================

// ParserErrorsTotal tracks scenario parse errors by error type.
var ParserErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "errors_total",
	Help:      "Total scenario parse errors by error type",
}, []string{"error_type"})

// ParserScenariosTotal tracks scenarios successfully loaded.
var ParserScenariosTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "scenarios_total",
	Help:      "Total scenario files successfully parsed",
})

// SolverDurationSeconds tracks time spent inside the simplex solve.
var SolverDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "solver",
	Name:      "duration_seconds",
	Help:      "Time taken to solve the linear program",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
})

// BuildDurationSeconds tracks time to assemble the linear program.
var BuildDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "planner",
	Name:      "build_duration_seconds",
	Help:      "Time taken to assemble the linear program from a parameter set",
	Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
})

// ModelVariables tracks the decision variable count of the latest program.
var ModelVariables = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "planner",
	Name:      "decision_variables",
	Help:      "Number of decision variables in the latest linear program",
})

// ModelConstraints tracks the constraint row count of the latest program.
var ModelConstraints = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "planner",
	Name:      "constraint_rows",
	Help:      "Number of constraint rows in the latest linear program",
})

// =============================================================================
// Helper Functions
// =============================================================================

// ResetPlanGauges resets all plan gauges before a new solve.
// Call this at the start of each planning run.
func ResetPlanGauges() {
	UnmetHoursTotal.Set(0)
	DemandHoursTotal.Set(0)
	PeriodsWithUnmetDemand.Set(0)
	TotalCost.Set(0)
	Objective.Set(0)
	BudgetVariance.Set(0)
	FinalHeadcount.Set(0)
	CostByComponent.Reset()
}

// ObserveSolve records the outcome and duration of one solver invocation.
func ObserveSolve(status models.Status, seconds float64) {
	SolvesTotal.WithLabelValues(string(status)).Inc()
	SolverDurationSeconds.Observe(seconds)
}

// ObservePlan publishes the business gauges of a finished plan. Plans without
// a result table leave the gauges at their reset values.
func ObservePlan(plan *models.Plan) {
	if plan == nil {
		return
	}
	s := plan.Summary
	if !s.Status.IsOptimal() {
		return
	}

	var unmet, demand float64
	var shortPeriods int
	for _, r := range plan.Periods {
		unmet += r.Unmet
		demand += r.Demand
		if r.Unmet > 0 {
			shortPeriods++
		}
	}

	UnmetHoursTotal.Set(unmet)
	DemandHoursTotal.Set(demand)
	PeriodsWithUnmetDemand.Set(float64(shortPeriods))
	TotalCost.Set(s.TotalCost)
	Objective.Set(s.Objective)
	BudgetVariance.Set(s.Variance)
	if n := len(plan.Periods); n > 0 {
		FinalHeadcount.Set(plan.Periods[n-1].Employees)
	}

	CostByComponent.WithLabelValues("hiring").Set(s.Costs.Hiring)
	CostByComponent.WithLabelValues("firing").Set(s.Costs.Firing)
	CostByComponent.WithLabelValues("salary").Set(s.Costs.Salary)
	CostByComponent.WithLabelValues("overtime").Set(s.Costs.Overtime)
	CostByComponent.WithLabelValues("penalty").Set(s.Costs.Penalty)
}
