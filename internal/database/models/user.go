package models

import (
	"github.com/google/uuid"
)

// User is a portal account, optionally managing one organization
type User struct {
	BaseModel
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Password       string     `json:"-" gorm:"not null;size:255"`
	Role           UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'standard'"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}
