// Package assignment computes the capability-line and project-line
// evaluator links that drive weekly task routing.
package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"coderank/internal/domain/directory"
)

// Store is the slice of directory storage the assignment pass needs.
type Store interface {
	ListActive(ctx context.Context) ([]directory.Employee, error)
	AdminIdentity(ctx context.Context) (directory.Employee, error)
	SetCapabilityManager(ctx context.Context, employeeID, managerID string) error
	SetProjectManager(ctx context.Context, employeeID, managerID string) error
}

type EntityError struct {
	EmployeeID string `json:"employeeId"`
	Message    string `json:"message"`
}

type Summary struct {
	CapabilityAssigned int           `json:"capabilityAssigned"`
	ProjectAssigned    int           `json:"projectAssigned"`
	Errors             []EntityError `json:"errors,omitempty"`
}

// Run fills the missing manager links for every active employee. Existing
// links are never overwritten, so the pass is idempotent.
//
// Capability line: admin has no manager; superuser reports to the admin
// identity; everyone else reports to their nearest senior same-role peer
// (strictly higher tier, lowest such tier), falling back to admin when no
// senior exists. Project line: everyone below the administrative roles
// reports to the admin identity.
func Run(ctx context.Context, store Store) (Summary, error) {
	var summary Summary

	admin, err := store.AdminIdentity(ctx)
	if err != nil {
		return summary, fmt.Errorf("resolve admin identity: %w", err)
	}

	employees, err := store.ListActive(ctx)
	if err != nil {
		return summary, fmt.Errorf("list employees: %w", err)
	}

	for _, employee := range employees {
		if err := assignOne(ctx, store, employee, admin, employees, &summary); err != nil {
			summary.Errors = append(summary.Errors, EntityError{EmployeeID: employee.ID, Message: err.Error()})
			slog.Warn("manager assignment failed for employee", "employeeId", employee.ID, "err", err)
		}
	}
	return summary, nil
}

func assignOne(ctx context.Context, store Store, employee, admin directory.Employee, all []directory.Employee, summary *Summary) error {
	if employee.CapabilityManagerID == nil && employee.Role != directory.RoleRequester {
		if managerID, ok := capabilityManagerFor(employee, admin, all); ok {
			if err := store.SetCapabilityManager(ctx, employee.ID, managerID); err != nil {
				return err
			}
			summary.CapabilityAssigned++
		}
	}

	belowAdministrative := employee.Role != directory.TopAdministrativeRole &&
		employee.Role != directory.SecondaryAdministrativeRole
	if employee.ProjectManagerID == nil && belowAdministrative {
		if err := store.SetProjectManager(ctx, employee.ID, admin.ID); err != nil {
			return err
		}
		summary.ProjectAssigned++
	}
	return nil
}

func capabilityManagerFor(employee, admin directory.Employee, all []directory.Employee) (string, bool) {
	switch employee.Role {
	case directory.TopAdministrativeRole:
		return "", false
	case directory.SecondaryAdministrativeRole:
		return admin.ID, true
	}

	// Nearest senior same-role peer: strictly higher tier, lowest among
	// those. Ties resolve to the first candidate in directory order.
	own := directory.TierOrdinal(employee.Tier)
	var nearest *directory.Employee
	nearestTier := 0
	for i := range all {
		candidate := all[i]
		if candidate.ID == employee.ID || candidate.Role != employee.Role {
			continue
		}
		tier := directory.TierOrdinal(candidate.Tier)
		if tier <= own {
			continue
		}
		if nearest == nil || tier < nearestTier {
			nearest = &all[i]
			nearestTier = tier
		}
	}
	if nearest != nil {
		return nearest.ID, true
	}
	return admin.ID, true
}
