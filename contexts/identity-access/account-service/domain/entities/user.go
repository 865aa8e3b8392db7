package entities

import "time"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func IsSupportedRole(value Role) bool {
	switch value {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// User is a marketplace account. SellerID is set only for seller accounts and
// links the user to its seller profile in the catalog.
type User struct {
	UserID       string
	Email        string
	Name         string
	Role         Role
	SellerID     string
	PasswordHash string
	CreatedAt    time.Time
}
