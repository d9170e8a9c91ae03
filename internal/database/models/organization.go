package models

import (
	"github.com/google/uuid"
)

// Organization is a social-service provider listed in the directory
type Organization struct {
	BaseModel
	Name       string             `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Phone      string             `json:"phone" gorm:"not null;size:25" validate:"required,max=25"`
	ImagePath  string             `json:"image_path" gorm:"size:255"`
	Status     OrganizationStatus `json:"status" gorm:"type:varchar(50);not null;index" validate:"required"`
	LocationID *uuid.UUID         `json:"location_id,omitempty" gorm:"type:uuid"`
	CreatedBy  *uuid.UUID         `json:"created_by,omitempty" gorm:"type:uuid"`
	UpdatedBy  *uuid.UUID         `json:"updated_by,omitempty" gorm:"type:uuid"`

	// Relationships
	Location  *Location  `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
	Languages []Language `json:"languages,omitempty" gorm:"many2many:languages_organizations;constraint:OnDelete:CASCADE"`
	Hours     []Hours    `json:"hours,omitempty" gorm:"many2many:organizations_hours;constraint:OnDelete:CASCADE"`
	Services  []Service  `json:"services,omitempty" gorm:"many2many:organizations_services;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
