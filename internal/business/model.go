// Package business holds the single business profile that drives both the
// public booking page and the owner dashboard.
package business

import "time"

// DaysOfWeek lists weekday names in display order. Availability always
// carries exactly one row per entry.
var DaysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Service is one bookable offering.
type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"` // decimal as string, e.g. "45.00"
	Description     string `json:"description,omitempty"`
}

// DayAvailability is one weekday's open/closed status and operating hours.
// Times are local wall-clock "HH:MM" strings in 24-hour format.
type DayAvailability struct {
	Day       string `json:"day"`
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Config is the root aggregate describing one business. It is persisted and
// replaced as a whole on every edit; mutations never modify a value in place.
type Config struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	WhatsAppNumber string `json:"whatsapp_number"`
	// CountryCode replaces a leading "0" when the WhatsApp number is
	// normalized into international format for wa.me links.
	CountryCode  string            `json:"country_code"`
	PrimaryColor string            `json:"primary_color"`
	LogoURL      string            `json:"logo_url,omitempty"`
	Tagline      string            `json:"tagline"`
	Services     []Service         `json:"services"`
	Availability []DayAvailability `json:"availability"`
}

// FindService returns the service with the given id, if present.
func (c *Config) FindService(id string) (Service, bool) {
	for _, svc := range c.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

// AvailabilityFor returns the availability row for a weekday name.
func (c *Config) AvailabilityFor(day string) (DayAvailability, bool) {
	for _, row := range c.Availability {
		if row.Day == day {
			return row, true
		}
	}
	return DayAvailability{}, false
}

// AvailabilityForDate resolves a calendar date to its weekday row.
func (c *Config) AvailabilityForDate(date time.Time) (DayAvailability, bool) {
	return c.AvailabilityFor(date.Weekday().String())
}

// DefaultConfig returns the built-in seed profile used until the owner saves
// their own.
func DefaultConfig(defaultCountryCode string) *Config {
	if defaultCountryCode == "" {
		defaultCountryCode = "60"
	}

	availability := make([]DayAvailability, 0, len(DaysOfWeek))
	for _, day := range DaysOfWeek {
		availability = append(availability, DayAvailability{
			Day:       day,
			IsOpen:    day != "Saturday" && day != "Sunday",
			StartTime: "09:00",
			EndTime:   "18:00",
		})
	}

	return &Config{
		ID:             "default-business",
		Name:           "Luxe Hair & Spa",
		WhatsAppNumber: "60125976284",
		CountryCode:    defaultCountryCode,
		PrimaryColor:   "#6366f1",
		LogoURL:        "https://picsum.photos/seed/spa/200/200",
		Tagline:        "Expert grooming for the modern professional.",
		Services: []Service{
			{ID: "1", Name: "Executive Haircut", DurationMinutes: 45, Price: "45.00", Description: "Precision cut, wash, and styling."},
			{ID: "2", Name: "Beard Grooming", DurationMinutes: 30, Price: "25.00", Description: "Trimming, shaping, and conditioning."},
			{ID: "3", Name: "Classic Shave", DurationMinutes: 40, Price: "35.00", Description: "Traditional hot towel straight razor shave."},
		},
		Availability: availability,
	}
}
