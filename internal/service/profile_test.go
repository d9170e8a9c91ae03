package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"new-arrivals-chi/internal/database/models"
	"new-arrivals-chi/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(day models.Weekday, opening, closing string) models.Hours {
	return models.Hours{DayOfWeek: day, OpeningTime: opening, ClosingTime: closing}
}

func TestGroupHoursAllDaysPresent(t *testing.T) {
	grouped := service.GroupHours(nil)

	assert.Len(t, grouped, 7)
	for _, day := range models.WeekdayNames() {
		slots, ok := grouped[day]
		assert.True(t, ok, day)
		assert.NotNil(t, slots, day)
		assert.Empty(t, slots, day)
	}
}

func TestGroupHoursOrdersByOpeningTime(t *testing.T) {
	grouped := service.GroupHours([]models.Hours{
		hours(models.Monday, "13:00", "17:00"),
		hours(models.Monday, "08:00", "12:00"),
		hours(models.Monday, "10:00", "11:00"),
		hours(models.Wednesday, "09:00", "17:00"),
	})

	assert.Equal(t, []service.HoursSlot{
		{OpeningTime: "08:00", ClosingTime: "12:00"},
		{OpeningTime: "10:00", ClosingTime: "11:00"},
		{OpeningTime: "13:00", ClosingTime: "17:00"},
	}, grouped["monday"])
	assert.Equal(t, []service.HoursSlot{{OpeningTime: "09:00", ClosingTime: "17:00"}}, grouped["wednesday"])
	assert.Empty(t, grouped["tuesday"])
}

func TestGroupHoursTiesKeepInputOrder(t *testing.T) {
	grouped := service.GroupHours([]models.Hours{
		hours(models.Friday, "09:00", "10:00"),
		hours(models.Friday, "09:00", "12:00"),
		hours(models.Friday, "07:00", "08:00"),
		hours(models.Friday, "09:00", "11:00"),
	})

	assert.Equal(t, []service.HoursSlot{
		{OpeningTime: "07:00", ClosingTime: "08:00"},
		{OpeningTime: "09:00", ClosingTime: "10:00"},
		{OpeningTime: "09:00", ClosingTime: "12:00"},
		{OpeningTime: "09:00", ClosingTime: "11:00"},
	}, grouped["friday"])
}

func TestGroupHoursSkipsInvalidDays(t *testing.T) {
	grouped := service.GroupHours([]models.Hours{
		hours(0, "09:00", "10:00"),
		hours(8, "09:00", "10:00"),
		hours(models.Sunday, "11:00", "15:00"),
	})

	assert.Len(t, grouped, 7)
	assert.Len(t, grouped["sunday"], 1)
	total := 0
	for _, slots := range grouped {
		total += len(slots)
	}
	assert.Equal(t, 1, total)
}

func TestWeeklyHoursDaysOrder(t *testing.T) {
	days := service.GroupHours([]models.Hours{hours(models.Sunday, "10:00", "12:00")}).Days()

	require.Len(t, days, 7)
	assert.Equal(t, "monday", days[0].Day)
	assert.Equal(t, "sunday", days[6].Day)
	assert.Len(t, days[6].Slots, 1)
}

func TestBuildProfile(t *testing.T) {
	orgID := uuid.New()
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: orgID},
		Name:      "Heartland Alliance",
		Phone:     "3125550100",
		Status:    models.OrganizationStatusActive,
		Location: &models.Location{
			StreetAddress:   "208 S LaSalle St",
			ZipCode:         "60604",
			City:            "Chicago",
			State:           "IL",
			PrimaryLocation: true,
			Neighborhood:    "Loop",
		},
		Languages: []models.Language{{Language: "English"}, {Language: "Spanish"}},
		Hours: []models.Hours{
			hours(models.Tuesday, "12:00", "16:00"),
			hours(models.Tuesday, "09:00", "11:00"),
		},
		Services: []models.Service{
			{
				Category:    models.CategoryLegal,
				Description: "Asylum consultations",
				Access:      "appointment",
				ServiceNote: "Call ahead",
				ServiceDates: []models.ServiceDate{{
					Date:      time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC),
					StartTime: "10:00",
					EndTime:   "12:00",
					Repeat:    models.RepeatEveryOtherWeek,
				}},
				Locations: []models.Location{{StreetAddress: "1 Main St", City: "Chicago", State: "IL", ZipCode: "60601", Neighborhood: "Loop"}},
			},
		},
	}

	profile := service.BuildProfile(org)

	assert.Equal(t, orgID, profile.ID)
	assert.Equal(t, "Heartland Alliance", profile.Name)
	assert.Equal(t, []string{"English", "Spanish"}, profile.Languages)
	assert.Equal(t, "208 S LaSalle St", profile.StreetAddress)
	assert.True(t, profile.PrimaryLocation)
	assert.Equal(t, "09:00", profile.Hours["tuesday"][0].OpeningTime)
	require.Len(t, profile.Services, 1)
	svc := profile.Services[0]
	assert.Equal(t, "Asylum consultations", svc.Service)
	require.Len(t, svc.Dates, 1)
	assert.Equal(t, "2024-05-06", svc.Dates[0].Date)
	assert.Equal(t, "every other week", svc.Dates[0].Repeat)
	require.Len(t, svc.Locations, 1)
	assert.Equal(t, "1 Main St", svc.Locations[0].StreetAddress)
}

func TestBuildProfileWithoutLocation(t *testing.T) {
	profile := service.BuildProfile(&models.Organization{Name: "New Org", Status: models.OrganizationStatusHidden})

	assert.Equal(t, "", profile.StreetAddress)
	assert.Equal(t, "", profile.Neighborhood)
	assert.NotNil(t, profile.Languages)
	assert.NotNil(t, profile.Services)
	assert.Len(t, profile.Hours, 7)
}

func TestProfileJSONFlattensLocation(t *testing.T) {
	profile := service.BuildProfile(&models.Organization{
		Name:     "Flat",
		Location: &models.Location{StreetAddress: "5 Elm St", Neighborhood: "Pilsen"},
	})

	raw, err := json.Marshal(profile)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "5 Elm St", decoded["street_address"])
	assert.Equal(t, "Pilsen", decoded["neighborhood"])
	hoursMap, ok := decoded["hours"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, hoursMap, 7)
}
