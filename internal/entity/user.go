package entity

import "time"

type UserRole string

const (
	RoleSuperUser   UserRole = "super_user"
	RoleRegularUser UserRole = "regular_user"
	RoleSubUser     UserRole = "sub_user"
)

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	Password       string    `json:"-"`
	DateSubscribed time.Time `json:"date_subscribed"`
	IsActive       bool      `json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`
	// VerificationCode is nil once the account has been verified.
	VerificationCode *string   `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Verified reports whether the account has confirmed its email address.
func (u *User) Verified() bool {
	return u.VerificationCode == nil
}

// Role returns the role claim embedded into tokens issued for this user.
func (u *User) Role() UserRole {
	if u.IsSuperuser {
		return RoleSuperUser
	}
	return RoleRegularUser
}
