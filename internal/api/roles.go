// ABOUTME: Role hierarchy for threshold-based authorization checks
// ABOUTME: Mirrors the backend role levels: client < operator < manager < admin

package api

// Role is a backend user role.
type Role string

const (
	RoleClient   Role = "client"
	RoleOperator Role = "operator"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// roleLevels orders roles by privilege.
var roleLevels = map[Role]int{
	RoleClient:   1,
	RoleOperator: 2,
	RoleManager:  3,
	RoleAdmin:    4,
}

// Level returns the privilege level of a role. An unknown role has
// level 0, below every real role.
func (r Role) Level() int {
	return roleLevels[r]
}

// requiredLevel computes the threshold for an acceptable-role set: the
// minimum level across the set. Supplying several roles is an
// "at least as privileged as the least-privileged option" check, not
// set membership. An unknown required role counts as level 99 so it
// can never be satisfied.
func requiredLevel(roles []Role) int {
	required := 99
	for _, r := range roles {
		level, ok := roleLevels[r]
		if !ok {
			level = 99
		}
		if level < required {
			required = level
		}
	}
	return required
}
