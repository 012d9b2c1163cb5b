package directory

import "time"

// Role is the closed set of employee roles. It drives evaluation routing,
// the scoring coefficient, and compensation eligibility, so new values must
// be added to every switch in this package.
type Role string

const (
	RoleCorporate Role = "corporate"
	RoleEngineer  Role = "engineer"
	RoleDesigner  Role = "designer"
	RoleOperator  Role = "operator"
	RoleAdmin     Role = "admin"
	RoleRequester Role = "requester"
	RoleSuperUser Role = "superuser"
)

type EmploymentType string

const (
	EmploymentEmployee EmploymentType = "Employee"
	EmploymentContract EmploymentType = "Contract"
	EmploymentDelegate EmploymentType = "Delegate"
)

type Employee struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Email               string         `json:"email"`
	Role                Role           `json:"role"`
	Tier                string         `json:"tier"`
	EmploymentType      EmploymentType `json:"employmentType"`
	IsEvaluated         bool           `json:"isEvaluated"`
	CapabilityManagerID *string        `json:"capabilityManagerId,omitempty"`
	ProjectManagerID    *string        `json:"projectManagerId,omitempty"`
	RetiredAt           *time.Time     `json:"retiredAt,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
}

// Active reports whether the employee participates in evaluation and
// compensation passes. Retired employees are excluded everywhere.
func (e Employee) Active() bool {
	return e.RetiredAt == nil
}

// KnownRole reports whether r is one of the closed role values.
func KnownRole(r Role) bool {
	switch r {
	case RoleCorporate, RoleEngineer, RoleDesigner, RoleOperator, RoleAdmin, RoleRequester, RoleSuperUser:
		return true
	}
	return false
}
