package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which wallet operations a principal may perform.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleAgent Role = "AGENT"
	RoleUser  Role = "USER"
)

// UserStatus represents the state of a user account.
type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

// User represents a registered account holder.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never expose
	Phone        *string    `json:"phone,omitempty"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsActive returns true if the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// HoldsWallet returns true for roles that own a wallet.
// Admins audit and manage accounts; they hold no balance of their own.
func (r Role) HoldsWallet() bool {
	return r == RoleUser || r == RoleAgent
}
