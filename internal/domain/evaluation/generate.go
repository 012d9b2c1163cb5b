package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"coderank/internal/domain/directory"
	"coderank/internal/domain/week"
)

// GenerateSummary reports what one weekly generation pass did.
type GenerateSummary struct {
	Week             string        `json:"week"`
	TasksCreated     int           `json:"tasksCreated"`
	TasksSkipped     int           `json:"tasksSkipped"`
	PenaltiesCreated int           `json:"penaltiesCreated"`
	Errors           []EntityError `json:"errors,omitempty"`
}

// GenerateWeeklyTasks creates the pending routine tasks for targetWeek and
// the completed penalty tasks spawned by tasks that went overdue in the
// immediately preceding week. Every insert is guarded by an existence
// check on (evaluator, evaluatee, week, axis), so the pass is re-runnable.
func GenerateWeeklyTasks(ctx context.Context, store GenerateStore, targetWeek string, now time.Time) (GenerateSummary, error) {
	summary := GenerateSummary{Week: targetWeek}

	monday, err := week.Monday(targetWeek)
	if err != nil {
		return summary, err
	}
	dueDate := monday.AddDate(0, 0, 6)

	admin, err := store.AdminIdentity(ctx)
	if err != nil {
		return summary, fmt.Errorf("resolve admin identity: %w", err)
	}

	employees, err := store.ListActiveEmployees(ctx)
	if err != nil {
		return summary, fmt.Errorf("list employees: %w", err)
	}

	for _, employee := range employees {
		if !employee.IsEvaluated || !directory.Evaluated(employee.Role) {
			continue
		}
		if err := generateRoutineTasks(ctx, store, employee, admin, targetWeek, dueDate, &summary); err != nil {
			summary.Errors = append(summary.Errors, EntityError{EmployeeID: employee.ID, Message: err.Error()})
			slog.Warn("weekly task generation failed for employee",
				"employeeId", employee.ID, "week", targetWeek, "err", err)
		}
	}

	if err := spawnOverduePenalties(ctx, store, admin, targetWeek, now, &summary); err != nil {
		return summary, err
	}

	return summary, nil
}

// routing: quality and quantity go to the capability line, satisfaction to
// the project line; a missing manager link falls back to the admin identity.
func generateRoutineTasks(ctx context.Context, store GenerateStore, employee, admin directory.Employee, targetWeek string, dueDate time.Time, summary *GenerateSummary) error {
	type route struct {
		axis        Axis
		evaluatorID string
		role        string
	}

	capabilityID, capabilityRole := admin.ID, EvaluatorAdmin
	if employee.CapabilityManagerID != nil {
		capabilityID, capabilityRole = *employee.CapabilityManagerID, EvaluatorCapabilitySupervisor
	}
	projectID, projectRole := admin.ID, EvaluatorAdmin
	if employee.ProjectManagerID != nil {
		projectID, projectRole = *employee.ProjectManagerID, EvaluatorProjectSupervisor
	}

	routes := []route{
		{AxisQuality, capabilityID, capabilityRole},
		{AxisQuantity, capabilityID, capabilityRole},
		{AxisSatisfaction, projectID, projectRole},
	}

	for _, rt := range routes {
		exists, err := store.TaskExists(ctx, rt.evaluatorID, employee.ID, targetWeek, rt.axis)
		if err != nil {
			return err
		}
		if exists {
			summary.TasksSkipped++
			continue
		}
		_, err = store.CreateTask(ctx, Task{
			EvaluatorID:   rt.evaluatorID,
			EvaluateeID:   employee.ID,
			Week:          targetWeek,
			Axis:          rt.axis,
			Status:        StatusPending,
			EvaluatorRole: rt.role,
			DueDate:       dueDate,
		})
		if err != nil {
			return err
		}
		summary.TasksCreated++
	}
	return nil
}

// spawnOverduePenalties turns every task left overdue in the previous week
// into completed penalty tasks for the current week: a fixed deduction for
// the evaluatee and, when someone else was the evaluator, a smaller one
// for the evaluator who missed the deadline. The admin identity authors
// both so the uniqueness tuple stays stable across re-runs.
func spawnOverduePenalties(ctx context.Context, store GenerateStore, admin directory.Employee, targetWeek string, now time.Time, summary *GenerateSummary) error {
	previousWeek, err := week.Previous(targetWeek)
	if err != nil {
		return err
	}

	overdue, err := store.ListTasksByStatus(ctx, previousWeek, StatusOverdue)
	if err != nil {
		return fmt.Errorf("list overdue tasks for %s: %w", previousWeek, err)
	}

	for _, task := range overdue {
		targets := []struct {
			employeeID string
			points     float64
			rate       float64
		}{
			{task.EvaluateeID, EvaluateePenaltyPoints, EvaluateePenaltyRate},
		}
		if task.EvaluatorID != task.EvaluateeID {
			targets = append(targets, struct {
				employeeID string
				points     float64
				rate       float64
			}{task.EvaluatorID, EvaluatorPenaltyPoints, EvaluatorPenaltyRate})
		}

		for _, target := range targets {
			exists, err := store.TaskExists(ctx, admin.ID, target.employeeID, targetWeek, AxisPenalty)
			if err != nil {
				return err
			}
			if exists {
				summary.TasksSkipped++
				continue
			}
			points, rate := target.points, target.rate
			completedAt := now
			_, err = store.CreateTask(ctx, Task{
				EvaluatorID:   admin.ID,
				EvaluateeID:   target.employeeID,
				Week:          targetWeek,
				Axis:          AxisPenalty,
				Status:        StatusCompleted,
				EvaluatorRole: EvaluatorAdmin,
				DueDate:       now,
				CompletedAt:   &completedAt,
				Scores: TaskScores{
					PenaltyPoints: &points,
					PenaltyRate:   &rate,
				},
			})
			if err != nil {
				return err
			}
			summary.PenaltiesCreated++
		}
	}
	return nil
}
