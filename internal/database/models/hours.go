package models

import (
	"github.com/google/uuid"
)

// Hours is one opening segment on a given weekday. Times are "HH:MM".
type Hours struct {
	BaseModel
	DayOfWeek   Weekday    `json:"day_of_week" gorm:"not null;check:chk_hours_day_of_week,day_of_week BETWEEN 1 AND 7"`
	OpeningTime string     `json:"opening_time" gorm:"type:varchar(5);not null"`
	ClosingTime string     `json:"closing_time" gorm:"type:varchar(5);not null"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for Hours
func (Hours) TableName() string {
	return "hours"
}
