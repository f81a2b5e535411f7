package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Permission is a named capability granted to a user. Authorization checks
// test intersection against a required set, never exact match.
type Permission string

const (
	PermissionUser             Permission = "USER"
	PermissionAdmin            Permission = "ADMIN"
	PermissionItemCreate       Permission = "ITEMCREATE"
	PermissionItemUpdate       Permission = "ITEMUPDATE"
	PermissionItemDelete       Permission = "ITEMDELETE"
	PermissionPermissionUpdate Permission = "PERMISSIONUPDATE"
)

// User holds account, credential and permission state. Reset token fields are
// nil except between a reset request and its consumption or expiry.
type User struct {
	ID               uuid.UUID                       `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string                          `gorm:"size:255;not null" json:"name"`
	Email            string                          `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password         string                          `gorm:"not null" json:"-"`
	Permissions      datatypes.JSONSlice[Permission] `json:"permissions"`
	ResetToken       *string                         `gorm:"size:64;index" json:"-"`
	ResetTokenExpiry *time.Time                      `json:"-"`
	CreatedAt        time.Time                       `json:"created_at"`
	UpdatedAt        time.Time                       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt                  `gorm:"index" json:"-"`
}

// HasPermission reports whether the user's permission set intersects anyOf.
func (u *User) HasPermission(anyOf ...Permission) bool {
	for _, have := range u.Permissions {
		for _, want := range anyOf {
			if have == want {
				return true
			}
		}
	}
	return false
}
