package directory

// Administrative hierarchy: admin sits at the top of both the capability
// and project lines; superuser reports to admin.
const (
	TopAdministrativeRole       = RoleAdmin
	SecondaryAdministrativeRole = RoleSuperUser
)

// ScoreCoefficient returns the role-based multiplier applied to an
// employee's provisional weekly total. Roles without an explicit
// coefficient score at face value.
func ScoreCoefficient(r Role) float64 {
	switch r {
	case RoleEngineer:
		return 1.0
	case RoleCorporate:
		return 0.7
	case RoleDesigner:
		return 0.6
	case RoleOperator:
		return 0.5
	default:
		return 1.0
	}
}

// Compensated reports whether the role receives monetary output from the
// monthly salary batch. Admins operate the platform and are always paid
// outside it.
func Compensated(r Role) bool {
	return r != RoleAdmin
}

// Evaluated reports whether the role is subject to routine weekly
// evaluation task generation. Requesters only submit work, they are not
// scored.
func Evaluated(r Role) bool {
	return r != RoleRequester
}
