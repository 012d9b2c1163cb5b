package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coderank/internal/domain/directory"
	"coderank/internal/platform/config"
)

// Seed makes sure the designated admin identity and the initial salary
// config rows exist. Safe to re-run; nothing is overwritten.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	adminID, err := ensureAdmin(ctx, pool, cfg.SeedAdminName, cfg.SeedAdminEmail)
	if err != nil {
		return err
	}

	if err := ensureSalaryConfigs(ctx, pool); err != nil {
		return err
	}

	if cfg.SeedDemoData {
		if err := ensureDemoDirectory(ctx, pool, adminID); err != nil {
			return err
		}
	}
	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, name, email string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, `
    SELECT id FROM employees WHERE role = $1 ORDER BY created_at LIMIT 1
  `, directory.RoleAdmin).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}

	err = pool.QueryRow(ctx, `
    INSERT INTO employees (name, email, role, tier, employment_type, is_evaluated)
    VALUES ($1, $2, $3, 'TZ', 'Employee', FALSE)
    RETURNING id
  `, name, email, directory.RoleAdmin).Scan(&id)
	return id, err
}

func ensureSalaryConfigs(ctx context.Context, pool *pgxpool.Pool) error {
	baseRows := []struct {
		role   directory.Role
		tier   string
		amount int64
	}{
		{directory.RoleEngineer, "T1", 40000},
		{directory.RoleEngineer, "T2", 50000},
		{directory.RoleEngineer, "T3", 60000},
		{directory.RoleEngineer, "T4", 75000},
		{directory.RoleEngineer, "T5", 90000},
		{directory.RoleCorporate, "T2", 45000},
		{directory.RoleCorporate, "T3", 55000},
		{directory.RoleDesigner, "T2", 42000},
		{directory.RoleDesigner, "T3", 52000},
		{directory.RoleOperator, "T1", 35000},
		{directory.RoleOperator, "T2", 40000},
	}
	for _, row := range baseRows {
		_, err := pool.Exec(ctx, `
      INSERT INTO base_salary_configs (role, tier, effective_month, amount)
      VALUES ($1, $2, '2024-01', $3)
      ON CONFLICT (role, tier, effective_month) DO NOTHING
    `, row.role, row.tier, row.amount)
		if err != nil {
			return err
		}
	}

	incentiveRows := []struct {
		role directory.Role
		min  int64
		max  int64
	}{
		{directory.RoleEngineer, 0, 60000},
		{directory.RoleCorporate, 0, 30000},
		{directory.RoleDesigner, 0, 30000},
		{directory.RoleOperator, 0, 20000},
	}
	for _, row := range incentiveRows {
		_, err := pool.Exec(ctx, `
      INSERT INTO incentive_configs (role, effective_month, min_incentive, max_incentive)
      VALUES ($1, '2024-01', $2, $3)
      ON CONFLICT (role, effective_month) DO NOTHING
    `, row.role, row.min, row.max)
		if err != nil {
			return err
		}
	}

	allowanceRows := []struct {
		employment directory.EmploymentType
		amount     int64
	}{
		{directory.EmploymentEmployee, 30000},
		{directory.EmploymentContract, 5000},
		{directory.EmploymentDelegate, 0},
	}
	for _, row := range allowanceRows {
		_, err := pool.Exec(ctx, `
      INSERT INTO allowance_configs (employment_type, effective_month, amount)
      VALUES ($1, '2024-01', $2)
      ON CONFLICT (employment_type, effective_month) DO NOTHING
    `, row.employment, row.amount)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureDemoDirectory(ctx context.Context, pool *pgxpool.Pool, adminID string) error {
	demo := []struct {
		name       string
		email      string
		role       directory.Role
		tier       string
		employment directory.EmploymentType
	}{
		{"Lead Engineer", "lead.eng@example.com", directory.RoleEngineer, "T5", directory.EmploymentEmployee},
		{"Senior Engineer", "senior.eng@example.com", directory.RoleEngineer, "T3", directory.EmploymentEmployee},
		{"Junior Engineer", "junior.eng@example.com", directory.RoleEngineer, "T1", directory.EmploymentContract},
		{"Designer", "designer@example.com", directory.RoleDesigner, "T2", directory.EmploymentEmployee},
		{"Operator", "operator@example.com", directory.RoleOperator, "T1", directory.EmploymentDelegate},
	}
	for _, row := range demo {
		var exists bool
		if err := pool.QueryRow(ctx, `
      SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)
    `, row.email).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := pool.Exec(ctx, `
      INSERT INTO employees (name, email, role, tier, employment_type, is_evaluated, project_manager_id)
      VALUES ($1, $2, $3, $4, $5, TRUE, $6)
    `, row.name, row.email, row.role, row.tier, row.employment, adminID); err != nil {
			return err
		}
	}
	return nil
}
