package compensation

import "time"

// Salary configs are append-only rate tables versioned by effective month
// ("YYYY-MM"); lookups select the latest row at or before the target
// month, never an exact match.

type BaseSalaryConfig struct {
	ID             string    `json:"id"`
	Role           string    `json:"role"`
	Tier           string    `json:"tier"`
	EffectiveMonth string    `json:"effectiveMonth"`
	Amount         int64     `json:"amount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type IncentiveConfig struct {
	ID             string    `json:"id"`
	Role           string    `json:"role"`
	EffectiveMonth string    `json:"effectiveMonth"`
	MinIncentive   int64     `json:"minIncentive"`
	MaxIncentive   int64     `json:"maxIncentive"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AllowanceConfig struct {
	ID             string    `json:"id"`
	EmploymentType string    `json:"employmentType"`
	EffectiveMonth string    `json:"effectiveMonth"`
	Amount         int64     `json:"amount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Breakdown is one employee's monthly salary computation.
type Breakdown struct {
	EmployeeID    string  `json:"employeeId"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Tier          string  `json:"tier"`
	Month         string  `json:"month"`
	MonthlyPoints float64 `json:"monthlyPoints"`
	BaseSalary    int64   `json:"baseSalary"`
	Incentive     int64   `json:"incentive"`
	Allowance     int64   `json:"allowance"`
	Gross         int64   `json:"gross"`
	Net           int64   `json:"net"`
}

type EntityError struct {
	EmployeeID string `json:"employeeId"`
	Message    string `json:"message"`
}

// MonthSummary is the output of one monthly compensation pass.
type MonthSummary struct {
	Month      string        `json:"month"`
	Breakdowns []Breakdown   `json:"breakdowns"`
	Errors     []EntityError `json:"errors,omitempty"`
}
