package metrics_test

import (
	"testing"

	"workforce-planner/metrics"
	"workforce-planner/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePlan(t *testing.T) {
	plan := &models.Plan{
		Periods: []models.PeriodResult{
			{Period: 1, Demand: 100, Employees: 2, Unmet: 0},
			{Period: 2, Demand: 300, Employees: 3, Unmet: 40},
			{Period: 3, Demand: 200, Employees: 2.5, Unmet: 10},
		},
		Summary: models.Summary{
			Status:    models.StatusOptimal,
			Objective: 12500,
			TotalCost: 7500,
			Budget:    10000,
			Variance:  -2500,
			Costs: models.CostBreakdown{
				Hiring:   500,
				Firing:   0,
				Salary:   6500,
				Overtime: 500,
				Penalty:  5000,
			},
		},
	}

	metrics.ResetPlanGauges()
	metrics.ObservePlan(plan)

	assert.Equal(t, 50.0, testutil.ToFloat64(metrics.UnmetHoursTotal))
	assert.Equal(t, 600.0, testutil.ToFloat64(metrics.DemandHoursTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.PeriodsWithUnmetDemand))
	assert.Equal(t, 7500.0, testutil.ToFloat64(metrics.TotalCost))
	assert.Equal(t, 12500.0, testutil.ToFloat64(metrics.Objective))
	assert.Equal(t, -2500.0, testutil.ToFloat64(metrics.BudgetVariance))
	assert.Equal(t, 2.5, testutil.ToFloat64(metrics.FinalHeadcount))
	assert.Equal(t, 6500.0, testutil.ToFloat64(metrics.CostByComponent.WithLabelValues("salary")))
	assert.Equal(t, 5000.0, testutil.ToFloat64(metrics.CostByComponent.WithLabelValues("penalty")))

	metrics.ResetPlanGauges()
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.UnmetHoursTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.FinalHeadcount))
}

func TestObservePlanSkipsNonOptimal(t *testing.T) {
	metrics.ResetPlanGauges()
	metrics.ObservePlan(&models.Plan{Summary: models.Summary{Status: models.StatusInfeasible, Budget: 100}})

	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.TotalCost))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.DemandHoursTotal))
}

func TestObserveSolve(t *testing.T) {
	counter := metrics.SolvesTotal.WithLabelValues(string(models.StatusOptimal))
	before := testutil.ToFloat64(counter)

	metrics.ObserveSolve(models.StatusOptimal, 0.25)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.SolverDurationSeconds))
}
