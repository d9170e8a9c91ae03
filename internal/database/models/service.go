package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is an offering such as legal aid or a health checkup
type Service struct {
	BaseModel
	Category    string `json:"category" gorm:"not null;size:100;index"`
	Description string `json:"service" gorm:"column:service;not null;size:100"`
	Access      string `json:"access" gorm:"size:100"`
	ServiceNote string `json:"service_note" gorm:"size:255"`

	// Relationships
	ServiceDates []ServiceDate `json:"service_dates,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Locations    []Location    `json:"locations,omitempty" gorm:"many2many:service_locations;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Service
func (Service) TableName() string {
	return "services"
}

// ServiceDate is a scheduled occurrence of a service
type ServiceDate struct {
	BaseModel
	ServiceID uuid.UUID       `json:"service_id" gorm:"type:uuid;not null;index"`
	Date      time.Time       `json:"date" gorm:"type:date;not null"`
	StartTime string          `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime   string          `json:"end_time" gorm:"type:varchar(5);not null"`
	Repeat    RepeatFrequency `json:"repeat" gorm:"type:varchar(20)"`
}

// TableName returns the table name for ServiceDate
func (ServiceDate) TableName() string {
	return "service_dates"
}
