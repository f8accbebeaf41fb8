package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleLender   Role = "lender"
	RoleBorrower Role = "borrower"
	RoleAnalyst  Role = "analyst"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLender, RoleBorrower, RoleAnalyst:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

type User struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID    string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name      string    `gorm:"size:128" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Role      Role      `gorm:"size:16" json:"role"`
	Status    Status    `gorm:"size:16" json:"status"`
	CreatedAt time.Time `gorm:"type:date" json:"created_at"`
}

func (User) TableName() string { return "users" }
