package evaluation

import (
	"context"
	"fmt"
	"time"

	"coderank/internal/domain/directory"
)

// fakeStore is the in-memory GenerateStore/AggregateStore used by the
// batch tests.
type fakeStore struct {
	employees []directory.Employee
	tasks     []Task
	results   []Result
	nextID    int
}

func (s *fakeStore) id() string {
	s.nextID++
	return fmt.Sprintf("id-%d", s.nextID)
}

func (s *fakeStore) ListActiveEmployees(context.Context) ([]directory.Employee, error) {
	var active []directory.Employee
	for _, e := range s.employees {
		if e.Active() {
			active = append(active, e)
		}
	}
	return active, nil
}

func (s *fakeStore) AdminIdentity(context.Context) (directory.Employee, error) {
	for _, e := range s.employees {
		if e.Role == directory.RoleAdmin && e.Active() {
			return e, nil
		}
	}
	return directory.Employee{}, directory.ErrEmployeeNotFound
}

func (s *fakeStore) TaskExists(_ context.Context, evaluatorID, evaluateeID, wk string, axis Axis) (bool, error) {
	for _, t := range s.tasks {
		if t.EvaluatorID == evaluatorID && t.EvaluateeID == evaluateeID && t.Week == wk && t.Axis == axis {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) CreateTask(_ context.Context, task Task) (string, error) {
	task.ID = s.id()
	s.tasks = append(s.tasks, task)
	return task.ID, nil
}

func (s *fakeStore) ListTasksByStatus(_ context.Context, wk string, status Status) ([]Task, error) {
	var out []Task
	for _, t := range s.tasks {
		if t.Week == wk && t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) ListCompletedTasks(_ context.Context, evaluateeID, wk string) ([]Task, error) {
	var out []Task
	for _, t := range s.tasks {
		if t.EvaluateeID == evaluateeID && t.Week == wk && t.Status == StatusCompleted {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeStore) ResultExists(_ context.Context, employeeID, wk string) (bool, error) {
	for _, r := range s.results {
		if r.EmployeeID == employeeID && r.Week == wk {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) CreateResult(_ context.Context, result Result) (string, error) {
	result.ID = s.id()
	s.results = append(s.results, result)
	return result.ID, nil
}

func strPtr(v string) *string { return &v }

func activeEmployee(id string, role directory.Role, tier string) directory.Employee {
	return directory.Employee{
		ID:             id,
		Name:           id,
		Role:           role,
		Tier:           tier,
		EmploymentType: directory.EmploymentEmployee,
		IsEvaluated:    true,
		CreatedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
