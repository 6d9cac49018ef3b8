package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // full access, including deletes
	RoleSupervisor Role = "supervisor" // site supervisor, records attendance and assignments
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleSupervisor:
		return true
	}
	return false
}
