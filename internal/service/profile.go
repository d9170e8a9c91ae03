package service

import (
	"new-arrivals-chi/internal/database/models"

	"github.com/google/uuid"
)

// dateLayout is how service dates are rendered in profiles
const dateLayout = "2006-01-02"

// HoursSlot is one opening segment within a day
type HoursSlot struct {
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

// WeeklyHours maps lowercase weekday names to that day's segments. All seven
// days are always present.
type WeeklyHours map[string][]HoursSlot

// DayHours pairs a weekday with its segments for ordered iteration
type DayHours struct {
	Day   string
	Slots []HoursSlot
}

// Days returns the week from Monday to Sunday
func (w WeeklyHours) Days() []DayHours {
	names := models.WeekdayNames()
	days := make([]DayHours, 0, len(names))
	for _, name := range names {
		days = append(days, DayHours{Day: name, Slots: w[name]})
	}
	return days
}

// LocationProfile holds the address fields shown for a location
type LocationProfile struct {
	StreetAddress   string `json:"street_address"`
	ZipCode         string `json:"zip_code"`
	City            string `json:"city"`
	State           string `json:"state"`
	PrimaryLocation bool   `json:"primary_location"`
	Neighborhood    string `json:"neighborhood"`
}

// ServiceDateProfile is one scheduled occurrence of a service
type ServiceDateProfile struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Repeat    string `json:"repeat"`
}

// ServiceProfile is a service with its dates and locations
type ServiceProfile struct {
	Category    string               `json:"category"`
	Service     string               `json:"service"`
	Access      string               `json:"access"`
	ServiceNote string               `json:"service_note"`
	Dates       []ServiceDateProfile `json:"dates"`
	Locations   []LocationProfile    `json:"locations"`
}

// OrganizationProfile is the aggregated view of an organization. The primary
// location's fields are flattened into the top level.
type OrganizationProfile struct {
	ID         uuid.UUID                 `json:"id"`
	Name       string                    `json:"name"`
	Phone      string                    `json:"phone"`
	Status     models.OrganizationStatus `json:"status"`
	ImagePath  string                    `json:"image_path,omitempty"`
	LocationID *uuid.UUID                `json:"location_id,omitempty"`
	Languages  []string                  `json:"languages"`
	Services   []ServiceProfile          `json:"services"`
	Hours      WeeklyHours               `json:"hours"`
	LocationProfile
}

// GroupHours buckets hours by weekday. Within a day each entry is inserted
// before the first entry whose opening time is strictly later, so entries
// with equal opening times keep their input order. Entries with an out of
// range day are skipped.
func GroupHours(hours []models.Hours) WeeklyHours {
	grouped := make(WeeklyHours, 7)
	for _, name := range models.WeekdayNames() {
		grouped[name] = []HoursSlot{}
	}

	for _, h := range hours {
		day := h.DayOfWeek.String()
		if day == "" {
			continue
		}
		slot := HoursSlot{OpeningTime: h.OpeningTime, ClosingTime: h.ClosingTime}

		slots := grouped[day]
		pos := len(slots)
		for i, existing := range slots {
			if existing.OpeningTime > slot.OpeningTime {
				pos = i
				break
			}
		}
		slots = append(slots, HoursSlot{})
		copy(slots[pos+1:], slots[pos:])
		slots[pos] = slot
		grouped[day] = slots
	}

	return grouped
}

// BuildProfile aggregates an organization loaded with all relations
func BuildProfile(org *models.Organization) *OrganizationProfile {
	profile := &OrganizationProfile{
		ID:         org.ID,
		Name:       org.Name,
		Phone:      org.Phone,
		Status:     org.Status,
		ImagePath:  org.ImagePath,
		LocationID: org.LocationID,
		Languages:  make([]string, 0, len(org.Languages)),
		Services:   make([]ServiceProfile, 0, len(org.Services)),
		Hours:      GroupHours(org.Hours),
	}

	for _, l := range org.Languages {
		profile.Languages = append(profile.Languages, l.Language)
	}

	for _, svc := range org.Services {
		sp := ServiceProfile{
			Category:    svc.Category,
			Service:     svc.Description,
			Access:      svc.Access,
			ServiceNote: svc.ServiceNote,
			Dates:       make([]ServiceDateProfile, 0, len(svc.ServiceDates)),
			Locations:   make([]LocationProfile, 0, len(svc.Locations)),
		}
		for _, d := range svc.ServiceDates {
			sp.Dates = append(sp.Dates, ServiceDateProfile{
				Date:      d.Date.Format(dateLayout),
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
				Repeat:    string(d.Repeat),
			})
		}
		for i := range svc.Locations {
			sp.Locations = append(sp.Locations, locationProfile(&svc.Locations[i]))
		}
		profile.Services = append(profile.Services, sp)
	}

	if org.Location != nil {
		profile.LocationProfile = locationProfile(org.Location)
	}

	return profile
}

func locationProfile(l *models.Location) LocationProfile {
	return LocationProfile{
		StreetAddress:   l.StreetAddress,
		ZipCode:         l.ZipCode,
		City:            l.City,
		State:           l.State,
		PrimaryLocation: l.PrimaryLocation,
		Neighborhood:    l.Neighborhood,
	}
}
