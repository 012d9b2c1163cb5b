package compensation

import (
	"context"
	"testing"
	"time"

	"coderank/internal/domain/directory"
)

type fakeStore struct {
	employees  []directory.Employee
	points     map[string]float64
	base       map[string]int64
	incentives map[directory.Role]IncentiveConfig
	allowances map[directory.EmploymentType]int64

	allowanceLookups int
}

func (s *fakeStore) ListActiveEmployees(context.Context) ([]directory.Employee, error) {
	return s.employees, nil
}

func (s *fakeStore) BaseSalary(_ context.Context, role directory.Role, tier, _ string) (int64, bool, error) {
	amount, ok := s.base[string(role)+"|"+tier]
	return amount, ok, nil
}

func (s *fakeStore) IncentiveBounds(_ context.Context, role directory.Role, _ string) (IncentiveConfig, bool, error) {
	cfg, ok := s.incentives[role]
	return cfg, ok, nil
}

func (s *fakeStore) Allowance(_ context.Context, employmentType directory.EmploymentType, _ string) (int64, bool, error) {
	s.allowanceLookups++
	amount, ok := s.allowances[employmentType]
	return amount, ok, nil
}

func (s *fakeStore) PointsForWeeks(_ context.Context, employeeID string, weeks []string) (float64, error) {
	if len(weeks) == 0 {
		return 0, nil
	}
	return s.points[employeeID], nil
}

func staff(id string, role directory.Role, tier string, employment directory.EmploymentType) directory.Employee {
	return directory.Employee{
		ID:             id,
		Name:           id,
		Role:           role,
		Tier:           tier,
		EmploymentType: employment,
		IsEvaluated:    true,
		CreatedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func cohortFixture() *fakeStore {
	return &fakeStore{
		employees: []directory.Employee{
			staff("eng-a", directory.RoleEngineer, "T2", directory.EmploymentContract),
			staff("eng-b", directory.RoleEngineer, "T3", directory.EmploymentContract),
			staff("eng-c", directory.RoleEngineer, "T4", directory.EmploymentContract),
		},
		points: map[string]float64{"eng-a": 100, "eng-b": 200, "eng-c": 300},
		base: map[string]int64{
			"engineer|T2": 50000,
			"engineer|T3": 60000,
			"engineer|T4": 70000,
		},
		incentives: map[directory.Role]IncentiveConfig{
			directory.RoleEngineer: {Role: "engineer", MinIncentive: 0, MaxIncentive: 60000},
		},
		allowances: map[directory.EmploymentType]int64{
			directory.EmploymentContract: 5000,
		},
	}
}

func breakdownOf(t *testing.T, summary MonthSummary, id string) Breakdown {
	t.Helper()
	for _, b := range summary.Breakdowns {
		if b.EmployeeID == id {
			return b
		}
	}
	t.Fatalf("no breakdown for %s", id)
	return Breakdown{}
}

func TestComputeMonthRelativeIncentive(t *testing.T) {
	store := cohortFixture()
	summary, err := ComputeMonth(context.Background(), store, "2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", summary.Errors)
	}

	if b := breakdownOf(t, summary, "eng-a"); b.Incentive != 0 {
		t.Fatalf("lowest points must earn the minimum incentive, got %d", b.Incentive)
	}
	if b := breakdownOf(t, summary, "eng-b"); b.Incentive != 30000 {
		t.Fatalf("midpoint of the cohort must earn 30000, got %d", b.Incentive)
	}
	if b := breakdownOf(t, summary, "eng-c"); b.Incentive != 60000 {
		t.Fatalf("highest points must earn the maximum incentive, got %d", b.Incentive)
	}
}

func TestComputeMonthGrossAndNet(t *testing.T) {
	store := cohortFixture()
	summary, err := ComputeMonth(context.Background(), store, "2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := breakdownOf(t, summary, "eng-b")
	if b.BaseSalary != 60000 {
		t.Fatalf("expected base 60000, got %d", b.BaseSalary)
	}
	if b.Allowance != 5000 {
		t.Fatalf("expected contract allowance 5000, got %d", b.Allowance)
	}
	wantGross := int64(60000 + 30000 + 5000)
	if b.Gross != wantGross {
		t.Fatalf("expected gross %d, got %d", wantGross, b.Gross)
	}
	if b.Net != int64(float64(wantGross)*0.9) {
		t.Fatalf("expected net %d, got %d", int64(float64(wantGross)*0.9), b.Net)
	}
}

func TestComputeMonthNetFloored(t *testing.T) {
	store := cohortFixture()
	store.base["engineer|T3"] = 60001 // gross 95001, 10% off leaves 85500.9
	summary, err := ComputeMonth(context.Background(), store, "2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := breakdownOf(t, summary, "eng-b"); b.Net != 85500 {
		t.Fatalf("net must floor, got %d", b.Net)
	}
}

func TestComputeMonthAdminAlwaysZero(t *testing.T) {
	store := cohortFixture()
	store.employees = append(store.employees, staff("admin-1", directory.RoleAdmin, "TZ", directory.EmploymentEmployee))
	store.points["admin-1"] = 500
	store.base["admin|TZ"] = 99999

	summary, err := ComputeMonth(context.Background(), store, "2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := breakdownOf(t, summary, "admin-1")
	if b.BaseSalary != 0 || b.Incentive != 0 || b.Allowance != 0 || b.Gross != 0 || b.Net != 0 {
		t.Fatalf("admin monetary fields must all be zero, got %+v", b)
	}
}

func TestComputeMonthMissingConfigsDefaultToZero(t *testing.T) {
	store := &fakeStore{
		employees: []directory.Employee{staff("op-1", directory.RoleOperator, "T1", directory.EmploymentDelegate)},
		points:    map[string]float64{"op-1": 120},
	}
	summary, err := ComputeMonth(context.Background(), store, "2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := breakdownOf(t, summary, "op-1")
	if b.BaseSalary != 0 || b.Incentive != 0 || b.Allowance != 0 {
		t.Fatalf("missing config rows must yield zeroes, got %+v", b)
	}
}

func TestComputeMonthEmployeeAllowanceOverride(t *testing.T) {
	store := cohortFixture()
	store.employees[0].EmploymentType = directory.EmploymentEmployee
	store.allowances[directory.EmploymentEmployee] = 1234

	summary, err := ComputeMonth(context.Background(), store, "2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := breakdownOf(t, summary, "eng-a")
	if b.Allowance != employeeAllowanceOverride {
		t.Fatalf("Employee type allowance is pinned to %d, got %d", employeeAllowanceOverride, b.Allowance)
	}
	if store.allowanceLookups == 0 {
		t.Fatal("the config lookup still runs even though its result is overridden")
	}
}

func TestComputeMonthInvalidMonth(t *testing.T) {
	store := cohortFixture()
	if _, err := ComputeMonth(context.Background(), store, "2025-13"); err == nil {
		t.Fatal("expected error for invalid month")
	}
	if _, err := ComputeMonth(context.Background(), store, "March"); err == nil {
		t.Fatal("expected error for invalid month")
	}
}

func TestRelativeIncentiveFlatCohortMidpoint(t *testing.T) {
	bounds := IncentiveConfig{MinIncentive: 10000, MaxIncentive: 30000}
	got := RelativeIncentive(150, []float64{150, 150, 150}, bounds)
	if got != 20000 {
		t.Fatalf("flat cohort must earn the midpoint, got %d", got)
	}
}

func TestRelativeIncentiveRoundHalfUp(t *testing.T) {
	bounds := IncentiveConfig{MinIncentive: 0, MaxIncentive: 5}
	// position 0.5 over a span of 5 is 2.5, which rounds up.
	if got := RelativeIncentive(1, []float64{0, 1, 2}, bounds); got != 3 {
		t.Fatalf("expected round-half-up to 3, got %d", got)
	}
}

func TestRelativeIncentiveMonotonic(t *testing.T) {
	bounds := IncentiveConfig{MinIncentive: 0, MaxIncentive: 60000}
	peers := []float64{50, 400}
	previous := int64(-1)
	for points := 50.0; points <= 400; points += 25 {
		cohort := append([]float64{points}, peers...)
		incentive := RelativeIncentive(points, cohort, bounds)
		if incentive < previous {
			t.Fatalf("incentive decreased from %d to %d at %v points", previous, incentive, points)
		}
		previous = incentive
	}
}
