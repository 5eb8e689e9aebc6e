package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	Email        *string
	FullName     *string
	Gender       *string
	CreatedAt    time.Time
}

// IsPayrollEligible reports whether payroll runs may include this user.
// Admin accounts are never paid through the payroll batch.
func (u User) IsPayrollEligible() bool {
	return u.Role != RoleAdmin
}
