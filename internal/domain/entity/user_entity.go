package entity

import "time"

// Role is the authorization role carried in access tokens.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleInstructor Role = "INSTRUCTOR"
	RoleStudent    Role = "STUDENT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserInactive  UserStatus = "INACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
)

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash and must never be serialized to clients.
type User struct {
	ID        string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      Role
	Status    UserStatus
	Bio       string
	Phone     string
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
