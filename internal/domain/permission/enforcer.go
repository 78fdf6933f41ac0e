// Package permission defines the role-based access control boundary.
package permission

// Objects and actions known to the enforcer.
const (
	ObjectModeration = "workshop:moderation"

	ActionRead  = "read"
	ActionWrite = "write"
)

// Enforcer answers whether a subject may perform an action on an object.
type Enforcer interface {
	Enforce(subject, object, action string) (bool, error)
	AddRoleForUser(user, role string) (bool, error)
	DeleteRoleForUser(user, role string) (bool, error)
	GetRolesForUser(user string) ([]string, error)
}
