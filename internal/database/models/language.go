package models

// Language is a spoken language offered by organizations
type Language struct {
	BaseModel
	Language string `json:"language" gorm:"uniqueIndex;not null;size:50"`
}

// TableName returns the table name for Language
func (Language) TableName() string {
	return "languages"
}
