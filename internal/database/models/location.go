package models

import (
	"github.com/google/uuid"
)

// Location is a street address where an organization or service operates
type Location struct {
	BaseModel
	StreetAddress   string     `json:"street_address" gorm:"not null;size:255" validate:"required,max=255"`
	ZipCode         string     `json:"zip_code" gorm:"not null;size:10" validate:"required,max=10"`
	City            string     `json:"city" gorm:"not null;size:100" validate:"required,max=100"`
	State           string     `json:"state" gorm:"not null;size:50" validate:"required,max=50"`
	PrimaryLocation bool       `json:"primary_location" gorm:"not null;default:false"`
	Neighborhood    string     `json:"neighborhood" gorm:"size:100;index"`
	CreatedBy       *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
