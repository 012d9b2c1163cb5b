package evaluation

import (
	"context"
	"fmt"
	"log/slog"

	"coderank/internal/domain/directory"
)

// AggregateSummary reports what one weekly aggregation pass did.
type AggregateSummary struct {
	Week           string        `json:"week"`
	ResultsCreated int           `json:"resultsCreated"`
	ResultsSkipped int           `json:"resultsSkipped"`
	Results        []Result      `json:"results,omitempty"`
	Errors         []EntityError `json:"errors,omitempty"`
}

// AggregateWeek blends each active employee's completed tasks for
// targetWeek into one finalized Result. An employee with an existing
// result for the week is skipped, and an employee with no completed tasks
// produces nothing. Per-employee failures are collected, not raised.
func AggregateWeek(ctx context.Context, store AggregateStore, targetWeek string, formula Formula) (AggregateSummary, error) {
	summary := AggregateSummary{Week: targetWeek}
	if formula == "" {
		formula = FormulaAdditive
	}

	employees, err := store.ListActiveEmployees(ctx)
	if err != nil {
		return summary, fmt.Errorf("list employees: %w", err)
	}

	for _, employee := range employees {
		if !employee.IsEvaluated {
			continue
		}

		created, err := aggregateEmployee(ctx, store, employee.ID, employee.Role, targetWeek, formula, &summary)
		if err != nil {
			summary.Errors = append(summary.Errors, EntityError{EmployeeID: employee.ID, Message: err.Error()})
			slog.Warn("weekly aggregation failed for employee",
				"employeeId", employee.ID, "week", targetWeek, "err", err)
			continue
		}
		if created {
			summary.ResultsCreated++
		}
	}
	return summary, nil
}

func aggregateEmployee(ctx context.Context, store AggregateStore, employeeID string, role directory.Role, targetWeek string, formula Formula, summary *AggregateSummary) (bool, error) {
	exists, err := store.ResultExists(ctx, employeeID, targetWeek)
	if err != nil {
		return false, err
	}
	if exists {
		summary.ResultsSkipped++
		return false, nil
	}

	tasks, err := store.ListCompletedTasks(ctx, employeeID, targetWeek)
	if err != nil {
		return false, err
	}
	if len(tasks) == 0 {
		return false, nil
	}

	breakdown := Score(role, tasks, formula)
	result := Result{
		EmployeeID:   employeeID,
		Week:         targetWeek,
		Quality:      breakdown.Quality,
		Quantity:     breakdown.Quantity,
		Satisfaction: breakdown.Satisfaction,
		FinalTotal:   breakdown.FinalTotal,
		Formula:      formula,
		Detail:       breakdown,
	}
	id, err := store.CreateResult(ctx, result)
	if err != nil {
		return false, err
	}
	result.ID = id
	summary.Results = append(summary.Results, result)
	return true, nil
}
