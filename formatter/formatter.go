package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"workforce-planner/models"
)

// FormatText returns the text representation of the plan
func FormatText(plan *models.Plan) string {
	var sb strings.Builder
	s := plan.Summary

	if !s.Status.IsOptimal() {
		sb.WriteString(fmt.Sprintf("⚠️  No plan produced: status=%s\n", s.Status))
		if hint := statusHint(s.Status); hint != "" {
			sb.WriteString("  " + hint + "\n")
		}
		return sb.String()
	}

	for _, r := range plan.Periods {
		sb.WriteString(fmt.Sprintf("Period %d : demand=%s ; employees=%s, hired=%s, fired=%s, overtime=%s, unmet=%s\n",
			r.Period, num(r.Demand), num(r.Employees), num(r.Hired), num(r.Fired), num(r.Overtime), num(r.Unmet)))

		if r.Unmet > 0 {
			sb.WriteString(fmt.Sprintf("  ⚠️  CAPACITY WARNING: %s demand hours unserved\n", num(r.Unmet)))
		}
	}

	sb.WriteString(fmt.Sprintf("Status     : %s\n", s.Status))
	sb.WriteString(fmt.Sprintf("Objective  : %s\n", num(s.Objective)))
	sb.WriteString(fmt.Sprintf("Costs      : hiring=%s, firing=%s, salary=%s, overtime=%s, penalty=%s\n",
		num(s.Costs.Hiring), num(s.Costs.Firing), num(s.Costs.Salary),
		num(s.Costs.Overtime), num(s.Costs.Penalty)))
	sb.WriteString(fmt.Sprintf("Total cost : %s\n", num(s.TotalCost)))
	sb.WriteString(budgetLine(s))

	return sb.String()
}

// FormatJSON returns the JSON representation of the plan
func FormatJSON(plan *models.Plan) string {
	jsonBytes, _ := json.MarshalIndent(plan, "", "  ")
	return string(jsonBytes)
}

// FormatCSV returns the CSV representation of the plan. Plans without a
// result table export a single status record instead.
func FormatCSV(plan *models.Plan) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if !plan.Summary.Status.IsOptimal() {
		writer.Write([]string{"Status"})
		writer.Write([]string{string(plan.Summary.Status)})
		writer.Flush()
		return sb.String()
	}

	writer.Write([]string{
		"Period", "Demand", "Hired", "Fired", "Employees", "Overtime", "Unmet",
	})

	for _, r := range plan.Periods {
		writer.Write([]string{
			strconv.Itoa(r.Period),
			num(r.Demand), num(r.Hired), num(r.Fired),
			num(r.Employees), num(r.Overtime), num(r.Unmet),
		})
	}

	writer.Flush()
	return sb.String()
}

// budgetLine renders the budget verdict with the variance percentage when the
// budget is non-zero.
func budgetLine(s models.Summary) string {
	pct := "n/a"
	if s.VariancePct != nil {
		pct = fmt.Sprintf("%.2f%%", *s.VariancePct*100)
	}
	if s.Variance > 0 {
		return fmt.Sprintf("⚠️  Over budget: budget=%s, variance=%s (%s)\n", num(s.Budget), num(s.Variance), pct)
	}
	return fmt.Sprintf("✅ Within budget: budget=%s, variance=%s (%s)\n", num(s.Budget), num(s.Variance), pct)
}

// statusHint explains a non-optimal status in operator terms
func statusHint(s models.Status) string {
	switch s {
	case models.StatusInfeasible:
		return "No plan satisfies every constraint. The budget is likely too low for the given demand."
	case models.StatusUnbounded:
		return "The objective can decrease without bound. Check the cost coefficients."
	case models.StatusNotSolved:
		return "The solver stopped before reaching an optimum. Try a longer timeout."
	default:
		return ""
	}
}

// num renders a solved value at full precision without trailing zeros
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
