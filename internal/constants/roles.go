package constants

// FactionRole represents a member's role within a faction
type FactionRole string

const (
	RoleMember  FactionRole = "MEMBER"
	RoleManager FactionRole = "MANAGER"
	RoleAdmin   FactionRole = "ADMIN"
)

// CanManageCategories reports whether the role may run sync previews,
// apply sync results, and edit memberships.
func (r FactionRole) CanManageCategories() bool {
	return r == RoleManager || r == RoleAdmin
}
