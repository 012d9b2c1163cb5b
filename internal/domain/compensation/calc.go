package compensation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"coderank/internal/domain/directory"
	"coderank/internal/domain/week"
)

const (
	// Verified Employee-type staff receive this flat allowance. The
	// versioned config lookup still runs but its result is discarded for
	// this employment type; the override is deliberate and must not be
	// "fixed" to use the looked-up value.
	employeeAllowanceOverride int64 = 30000

	// Flat deduction applied to gross, floor-rounded.
	netRatio = 0.9
)

// Store is what the monthly compensation pass needs from storage. The
// boolean returns distinguish "no config row" (documented default applies)
// from storage failure.
type Store interface {
	ListActiveEmployees(ctx context.Context) ([]directory.Employee, error)
	BaseSalary(ctx context.Context, role directory.Role, tier, month string) (int64, bool, error)
	IncentiveBounds(ctx context.Context, role directory.Role, month string) (IncentiveConfig, bool, error)
	Allowance(ctx context.Context, employmentType directory.EmploymentType, month string) (int64, bool, error)
	PointsForWeeks(ctx context.Context, employeeID string, weeks []string) (float64, error)
}

// ComputeMonth runs the salary computation for every active employee for
// the target month ("YYYY-MM"). Monthly points come from the weeks
// majority-attributed to the month; the relative incentive ranks each
// employee inside their same-role cohort only.
func ComputeMonth(ctx context.Context, store Store, targetMonth string) (MonthSummary, error) {
	summary := MonthSummary{Month: targetMonth}

	year, month, err := ParseMonth(targetMonth)
	if err != nil {
		return summary, err
	}
	weeks := week.MajorityOfMonth(year, month)

	employees, err := store.ListActiveEmployees(ctx)
	if err != nil {
		return summary, fmt.Errorf("list employees: %w", err)
	}

	// First pass: monthly points per employee, grouped into role cohorts.
	points := map[string]float64{}
	cohorts := map[directory.Role][]float64{}
	for _, employee := range employees {
		total, err := store.PointsForWeeks(ctx, employee.ID, weeks)
		if err != nil {
			summary.Errors = append(summary.Errors, EntityError{EmployeeID: employee.ID, Message: err.Error()})
			slog.Warn("monthly points lookup failed", "employeeId", employee.ID, "month", targetMonth, "err", err)
			continue
		}
		points[employee.ID] = total
		cohorts[employee.Role] = append(cohorts[employee.Role], total)
	}

	for _, employee := range employees {
		total, ok := points[employee.ID]
		if !ok {
			continue
		}
		breakdown, err := computeEmployee(ctx, store, employee, targetMonth, total, cohorts[employee.Role])
		if err != nil {
			summary.Errors = append(summary.Errors, EntityError{EmployeeID: employee.ID, Message: err.Error()})
			slog.Warn("compensation failed for employee", "employeeId", employee.ID, "month", targetMonth, "err", err)
			continue
		}
		summary.Breakdowns = append(summary.Breakdowns, breakdown)
	}
	return summary, nil
}

func computeEmployee(ctx context.Context, store Store, employee directory.Employee, targetMonth string, monthlyPoints float64, cohort []float64) (Breakdown, error) {
	breakdown := Breakdown{
		EmployeeID:    employee.ID,
		Name:          employee.Name,
		Role:          string(employee.Role),
		Tier:          employee.Tier,
		Month:         targetMonth,
		MonthlyPoints: monthlyPoints,
	}

	// Admins operate the platform; every monetary field stays zero.
	if !directory.Compensated(employee.Role) {
		return breakdown, nil
	}

	base, found, err := store.BaseSalary(ctx, employee.Role, employee.Tier, targetMonth)
	if err != nil {
		return breakdown, err
	}
	if found {
		breakdown.BaseSalary = base
	}

	bounds, found, err := store.IncentiveBounds(ctx, employee.Role, targetMonth)
	if err != nil {
		return breakdown, err
	}
	if found {
		breakdown.Incentive = RelativeIncentive(monthlyPoints, cohort, bounds)
	}

	allowance, found, err := store.Allowance(ctx, employee.EmploymentType, targetMonth)
	if err != nil {
		return breakdown, err
	}
	if found {
		breakdown.Allowance = allowance
	}
	if employee.EmploymentType == directory.EmploymentEmployee {
		breakdown.Allowance = employeeAllowanceOverride
	}

	breakdown.Gross = breakdown.BaseSalary + breakdown.Incentive + breakdown.Allowance
	breakdown.Net = int64(math.Floor(float64(breakdown.Gross) * netRatio))
	return breakdown, nil
}

// RelativeIncentive interpolates the employee's incentive between the
// config bounds according to their position inside the cohort's point
// range. A flat cohort earns the midpoint. Round-half-up to whole units.
func RelativeIncentive(points float64, cohort []float64, bounds IncentiveConfig) int64 {
	if len(cohort) == 0 {
		return 0
	}
	minPoints, maxPoints := cohort[0], cohort[0]
	for _, p := range cohort[1:] {
		if p < minPoints {
			minPoints = p
		}
		if p > maxPoints {
			maxPoints = p
		}
	}

	span := float64(bounds.MaxIncentive - bounds.MinIncentive)
	if maxPoints == minPoints {
		return roundHalfUp(float64(bounds.MinIncentive) + span/2)
	}
	position := (points - minPoints) / (maxPoints - minPoints)
	return roundHalfUp(float64(bounds.MinIncentive) + position*span)
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// ParseMonth splits a "YYYY-MM" month identifier.
func ParseMonth(id string) (int, time.Month, error) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month identifier %q", id)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month identifier %q", id)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month identifier %q", id)
	}
	return year, time.Month(month), nil
}
