package models

// OrganizationStatus controls whether an organization is listed publicly
type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "ACTIVE"
	OrganizationStatusSuspended OrganizationStatus = "SUSPENDED"
	OrganizationStatusHidden    OrganizationStatus = "HIDDEN"
)

// UserRole defines what a user may manage
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleStandard UserRole = "standard"
)

// RepeatFrequency defines how often a service date recurs
type RepeatFrequency string

const (
	RepeatEveryDay       RepeatFrequency = "every day"
	RepeatEveryWeek      RepeatFrequency = "every week"
	RepeatEveryMonth     RepeatFrequency = "every month"
	RepeatEveryOtherWeek RepeatFrequency = "every other week"
)

// Service categories offered through the directory
const (
	CategoryLegal  = "legal"
	CategoryHealth = "health"
	CategoryFood   = "food"
)

// Weekday is a day of the week numbered from Monday = 1 to Sunday = 7
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeekdayNames lists the lowercase day names from Monday to Sunday
func WeekdayNames() []string {
	names := make([]string, len(weekdayNames))
	copy(names, weekdayNames[:])
	return names
}

// ParseWeekday resolves a lowercase day name to its Weekday
func ParseWeekday(name string) (Weekday, bool) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i + 1), true
		}
	}
	return 0, false
}

// String returns the lowercase day name, or "" when out of range
func (d Weekday) String() string {
	if !d.IsValid() {
		return ""
	}
	return weekdayNames[d-1]
}

// IsValid checks if the Weekday is within Monday..Sunday
func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// IsValid checks if the OrganizationStatus is valid
func (s OrganizationStatus) IsValid() bool {
	switch s {
	case OrganizationStatusActive, OrganizationStatusSuspended, OrganizationStatusHidden:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleStandard:
		return true
	}
	return false
}

// IsValid checks if the RepeatFrequency is valid
func (r RepeatFrequency) IsValid() bool {
	switch r {
	case RepeatEveryDay, RepeatEveryWeek, RepeatEveryMonth, RepeatEveryOtherWeek:
		return true
	}
	return false
}
