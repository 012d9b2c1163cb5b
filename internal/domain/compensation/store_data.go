package compensation

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coderank/internal/domain/directory"
	"coderank/internal/domain/evaluation"
)

// PGStore implements Store over the salary config tables and the
// evaluation results written by the weekly aggregation pass.
type PGStore struct {
	DB         *pgxpool.Pool
	Directory  *directory.Store
	Evaluation *evaluation.Store
}

func NewStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{
		DB:         db,
		Directory:  directory.NewStore(db),
		Evaluation: evaluation.NewStore(db),
	}
}

func (s *PGStore) ListActiveEmployees(ctx context.Context) ([]directory.Employee, error) {
	return s.Directory.ListActive(ctx)
}

func (s *PGStore) PointsForWeeks(ctx context.Context, employeeID string, weeks []string) (float64, error) {
	return s.Evaluation.PointsForWeeks(ctx, employeeID, weeks)
}

// As-of lookup: the most recent row whose effective month is at or before
// the target. "YYYY-MM" strings order lexicographically, so plain string
// comparison is the temporal comparison.
func (s *PGStore) BaseSalary(ctx context.Context, role directory.Role, tier, month string) (int64, bool, error) {
	var amount int64
	err := s.DB.QueryRow(ctx, `
    SELECT amount
    FROM base_salary_configs
    WHERE role = $1 AND tier = $2 AND effective_month <= $3
    ORDER BY effective_month DESC
    LIMIT 1
  `, role, tier, month).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return amount, true, nil
}

func (s *PGStore) IncentiveBounds(ctx context.Context, role directory.Role, month string) (IncentiveConfig, bool, error) {
	var cfg IncentiveConfig
	err := s.DB.QueryRow(ctx, `
    SELECT id, role, effective_month, min_incentive, max_incentive, created_at
    FROM incentive_configs
    WHERE role = $1 AND effective_month <= $2
    ORDER BY effective_month DESC
    LIMIT 1
  `, role, month).Scan(&cfg.ID, &cfg.Role, &cfg.EffectiveMonth, &cfg.MinIncentive, &cfg.MaxIncentive, &cfg.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return IncentiveConfig{}, false, nil
	}
	if err != nil {
		return IncentiveConfig{}, false, err
	}
	return cfg, true, nil
}

func (s *PGStore) Allowance(ctx context.Context, employmentType directory.EmploymentType, month string) (int64, bool, error) {
	var amount int64
	err := s.DB.QueryRow(ctx, `
    SELECT amount
    FROM allowance_configs
    WHERE employment_type = $1 AND effective_month <= $2
    ORDER BY effective_month DESC
    LIMIT 1
  `, employmentType, month).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return amount, true, nil
}

// Config tables are append-only: rows are inserted with a new effective
// month, never updated in place.

func (s *PGStore) AppendBaseSalaryConfig(ctx context.Context, cfg BaseSalaryConfig) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO base_salary_configs (role, tier, effective_month, amount)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, cfg.Role, cfg.Tier, cfg.EffectiveMonth, cfg.Amount).Scan(&id)
	return id, err
}

func (s *PGStore) AppendIncentiveConfig(ctx context.Context, cfg IncentiveConfig) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO incentive_configs (role, effective_month, min_incentive, max_incentive)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, cfg.Role, cfg.EffectiveMonth, cfg.MinIncentive, cfg.MaxIncentive).Scan(&id)
	return id, err
}

func (s *PGStore) AppendAllowanceConfig(ctx context.Context, cfg AllowanceConfig) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO allowance_configs (employment_type, effective_month, amount)
    VALUES ($1,$2,$3)
    RETURNING id
  `, cfg.EmploymentType, cfg.EffectiveMonth, cfg.Amount).Scan(&id)
	return id, err
}

func (s *PGStore) ListBaseSalaryConfigs(ctx context.Context) ([]BaseSalaryConfig, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, role, tier, effective_month, amount, created_at
    FROM base_salary_configs
    ORDER BY role, tier, effective_month
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []BaseSalaryConfig
	for rows.Next() {
		var cfg BaseSalaryConfig
		if err := rows.Scan(&cfg.ID, &cfg.Role, &cfg.Tier, &cfg.EffectiveMonth, &cfg.Amount, &cfg.CreatedAt); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}
