package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
  id, name, email, role, tier, employment_type, is_evaluated,
  capability_manager_id, project_manager_id, retired_at, created_at
`

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Role, &e.Tier, &e.EmploymentType,
		&e.IsEvaluated, &e.CapabilityManagerID, &e.ProjectManagerID, &e.RetiredAt, &e.CreatedAt)
	return e, err
}

func (s *Store) ListAll(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY created_at, id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) ListActive(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE retired_at IS NULL
    ORDER BY created_at, id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	e, err := scanEmployee(s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	return e, err
}

// AdminIdentity returns the designated admin employee used as the fallback
// evaluator and the root of both manager lines. With several admins the
// oldest one is the designated identity.
func (s *Store) AdminIdentity(ctx context.Context) (Employee, error) {
	e, err := scanEmployee(s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE role = $1 AND retired_at IS NULL
    ORDER BY created_at, id
    LIMIT 1
  `, RoleAdmin))
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	return e, err
}

func (s *Store) SetCapabilityManager(ctx context.Context, employeeID, managerID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET capability_manager_id = $2
    WHERE id = $1 AND capability_manager_id IS NULL
  `, employeeID, managerID)
	return err
}

func (s *Store) SetProjectManager(ctx context.Context, employeeID, managerID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET project_manager_id = $2
    WHERE id = $1 AND project_manager_id IS NULL
  `, employeeID, managerID)
	return err
}

func (s *Store) Create(ctx context.Context, e Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, email, role, tier, employment_type, is_evaluated,
                           capability_manager_id, project_manager_id, retired_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, e.Name, e.Email, e.Role, e.Tier, e.EmploymentType, e.IsEvaluated,
		e.CapabilityManagerID, e.ProjectManagerID, e.RetiredAt).Scan(&id)
	return id, err
}
