package client

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// CanMutate reports whether the role may see and use create, edit and delete
// controls. Viewing lists and details is open to every signed-in role.
func CanMutate(role Role) bool {
	return role == RoleAdmin
}
