package evaluation

import (
	"context"

	"coderank/internal/domain/directory"
)

// GenerateStore is what the weekly task-generation pass needs from storage.
type GenerateStore interface {
	ListActiveEmployees(ctx context.Context) ([]directory.Employee, error)
	AdminIdentity(ctx context.Context) (directory.Employee, error)
	TaskExists(ctx context.Context, evaluatorID, evaluateeID, wk string, axis Axis) (bool, error)
	CreateTask(ctx context.Context, task Task) (string, error)
	ListTasksByStatus(ctx context.Context, wk string, status Status) ([]Task, error)
}

// AggregateStore is what the weekly aggregation pass needs from storage.
type AggregateStore interface {
	ListActiveEmployees(ctx context.Context) ([]directory.Employee, error)
	ListCompletedTasks(ctx context.Context, evaluateeID, wk string) ([]Task, error)
	ResultExists(ctx context.Context, employeeID, wk string) (bool, error)
	CreateResult(ctx context.Context, result Result) (string, error)
}
