package model

import "strings"

// User is a dashboard user. UserCode is the short code assigned to users who
// may confirm pickups; pickup confirmation codes are checked against it.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	UserCode     string `json:"userCode,omitempty"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// Roles. The names match the original dataset values.
const (
	RoleAdmin       = "MAGACIN_ADMIN"
	RoleReservation = "REZERVACIJA"
	RolePickup      = "PREUZIMANJE"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleReservation || role == RolePickup
}

// CanPickUp reports whether the user holds a pickup-capable role.
func (u *User) CanPickUp() bool {
	return u.Role == RolePickup || u.Role == RoleAdmin
}

// CodeMatches reports whether the supplied confirmation code equals the
// user's assigned code, ignoring case.
func (u *User) CodeMatches(code string) bool {
	return u.UserCode != "" && strings.EqualFold(code, u.UserCode)
}
