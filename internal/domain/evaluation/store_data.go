package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coderank/internal/domain/directory"
)

// Store is the pgx-backed implementation of GenerateStore and
// AggregateStore. Task sub-metrics and result audit detail are kept as
// JSONB so the axis-specific shapes stay in one column each.
type Store struct {
	DB        *pgxpool.Pool
	Directory *directory.Store
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db, Directory: directory.NewStore(db)}
}

func (s *Store) ListActiveEmployees(ctx context.Context) ([]directory.Employee, error) {
	return s.Directory.ListActive(ctx)
}

func (s *Store) AdminIdentity(ctx context.Context) (directory.Employee, error) {
	return s.Directory.AdminIdentity(ctx)
}

func (s *Store) TaskExists(ctx context.Context, evaluatorID, evaluateeID, wk string, axis Axis) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, `
    SELECT EXISTS (
      SELECT 1 FROM evaluation_tasks
      WHERE evaluator_id = $1 AND evaluatee_id = $2 AND week = $3 AND axis = $4
    )
  `, evaluatorID, evaluateeID, wk, axis).Scan(&exists)
	return exists, err
}

func (s *Store) CreateTask(ctx context.Context, task Task) (string, error) {
	scores, err := json.Marshal(task.Scores)
	if err != nil {
		return "", err
	}
	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO evaluation_tasks
      (evaluator_id, evaluatee_id, week, axis, status, evaluator_role, due_date, completed_at, scores)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, task.EvaluatorID, task.EvaluateeID, task.Week, task.Axis, task.Status,
		task.EvaluatorRole, task.DueDate, task.CompletedAt, scores).Scan(&id)
	return id, err
}

func (s *Store) GetTask(ctx context.Context, id string) (Task, error) {
	task, err := scanTask(s.DB.QueryRow(ctx, `
    SELECT id, evaluator_id, evaluatee_id, week, axis, status, evaluator_role, due_date, completed_at, scores
    FROM evaluation_tasks
    WHERE id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrTaskNotFound
	}
	return task, err
}

func (s *Store) ListTasksByStatus(ctx context.Context, wk string, status Status) ([]Task, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, evaluator_id, evaluatee_id, week, axis, status, evaluator_role, due_date, completed_at, scores
    FROM evaluation_tasks
    WHERE week = $1 AND status = $2
    ORDER BY evaluatee_id, axis
  `, wk, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (s *Store) ListCompletedTasks(ctx context.Context, evaluateeID, wk string) ([]Task, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, evaluator_id, evaluatee_id, week, axis, status, evaluator_role, due_date, completed_at, scores
    FROM evaluation_tasks
    WHERE evaluatee_id = $1 AND week = $2 AND status = $3
    ORDER BY axis
  `, evaluateeID, wk, StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// CompleteTask records an evaluator's submission on a pending task.
func (s *Store) CompleteTask(ctx context.Context, id string, scores TaskScores, completedAt time.Time) error {
	payload, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE evaluation_tasks
    SET status = $2, scores = $3, completed_at = $4
    WHERE id = $1 AND status = $5
  `, id, StatusCompleted, payload, completedAt, StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotPending
	}
	return nil
}

// MarkOverdue flips every pending task of the week whose due date has
// passed. Driven externally by the weekly batch caller.
func (s *Store) MarkOverdue(ctx context.Context, wk string, now time.Time) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE evaluation_tasks
    SET status = $3
    WHERE week = $1 AND status = $2 AND due_date < $4
  `, wk, StatusPending, StatusOverdue, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) ResultExists(ctx context.Context, employeeID, wk string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, `
    SELECT EXISTS (
      SELECT 1 FROM evaluation_results WHERE employee_id = $1 AND week = $2
    )
  `, employeeID, wk).Scan(&exists)
	return exists, err
}

func (s *Store) CreateResult(ctx context.Context, result Result) (string, error) {
	detail, err := json.Marshal(result.Detail)
	if err != nil {
		return "", err
	}
	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO evaluation_results
      (employee_id, week, quality, quantity, satisfaction, final_total, formula, detail)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, result.EmployeeID, result.Week, result.Quality, result.Quantity,
		result.Satisfaction, result.FinalTotal, result.Formula, detail).Scan(&id)
	return id, err
}

func (s *Store) ListResults(ctx context.Context, wk string) ([]Result, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, week, quality, quantity, satisfaction, final_total, formula, detail, created_at
    FROM evaluation_results
    WHERE week = $1
    ORDER BY employee_id
  `, wk)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var detail []byte
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.Week, &r.Quality, &r.Quantity,
			&r.Satisfaction, &r.FinalTotal, &r.Formula, &detail, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(detail, &r.Detail); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// PointsForWeeks sums final totals across the given weeks, the monthly
// points input to the compensation engine.
func (s *Store) PointsForWeeks(ctx context.Context, employeeID string, weeks []string) (float64, error) {
	if len(weeks) == 0 {
		return 0, nil
	}
	var total float64
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(final_total), 0)
    FROM evaluation_results
    WHERE employee_id = $1 AND week = ANY($2)
  `, employeeID, weeks).Scan(&total)
	return total, err
}

func scanTask(row pgx.Row) (Task, error) {
	var t Task
	var scores []byte
	err := row.Scan(&t.ID, &t.EvaluatorID, &t.EvaluateeID, &t.Week, &t.Axis,
		&t.Status, &t.EvaluatorRole, &t.DueDate, &t.CompletedAt, &scores)
	if err != nil {
		return Task{}, err
	}
	if len(scores) > 0 {
		if err := json.Unmarshal(scores, &t.Scores); err != nil {
			return Task{}, err
		}
	}
	return t, nil
}

func collectTasks(rows pgx.Rows) ([]Task, error) {
	var tasks []Task
	for rows.Next() {
		var t Task
		var scores []byte
		if err := rows.Scan(&t.ID, &t.EvaluatorID, &t.EvaluateeID, &t.Week, &t.Axis,
			&t.Status, &t.EvaluatorRole, &t.DueDate, &t.CompletedAt, &scores); err != nil {
			return nil, err
		}
		if len(scores) > 0 {
			if err := json.Unmarshal(scores, &t.Scores); err != nil {
				return nil, err
			}
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
