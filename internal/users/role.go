package users

// Role is the closed set of clinic user roles.
type Role string

const (
	RoleStaff Role = "STAFF"
	// Reserved for v2 role refinement; no capabilities yet.
	RoleFrontDesk Role = "FRONTDESK"
	RoleClinician Role = "CLINICIAN"
)

// Valid reports whether the role is a known enumeration value.
func (r Role) Valid() bool {
	switch r {
	case RoleStaff, RoleFrontDesk, RoleClinician:
		return true
	default:
		return false
	}
}

// CanManageIntake reports whether the role may create uploads and start
// extractions. Only STAFF qualifies today.
func (r Role) CanManageIntake() bool {
	return r == RoleStaff
}
