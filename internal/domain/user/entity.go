package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, can approve leave and run payroll
	RoleEmployee Role = "employee" // Regular employee
)

// User is an authenticated identity in the registry.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	FirstName    string
	LastName     string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsEmployee checks if user has the employee role
func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

// CanApprove checks if user can approve leave requests
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}

// FullName returns the display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
