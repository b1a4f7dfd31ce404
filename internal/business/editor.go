package business

import "github.com/google/uuid"

// The editor operations below implement the dashboard's mutations. Each one
// returns a new Config value and leaves its input untouched, so a reader of
// the old value never observes a partially applied edit.

// ServicePatch carries the fields of a service edit. Nil fields are left as
// they are.
type ServicePatch struct {
	Name            *string `json:"name,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Price           *string `json:"price,omitempty"`
	Description     *string `json:"description,omitempty"`
}

// AvailabilityPatch carries the fields of a weekday-hours edit.
type AvailabilityPatch struct {
	IsOpen    *bool   `json:"is_open,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// ProfilePatch carries the fields of a business-identity edit.
type ProfilePatch struct {
	Name           *string `json:"name,omitempty"`
	WhatsAppNumber *string `json:"whatsapp_number,omitempty"`
	CountryCode    *string `json:"country_code,omitempty"`
	PrimaryColor   *string `json:"primary_color,omitempty"`
	LogoURL        *string `json:"logo_url,omitempty"`
	Tagline        *string `json:"tagline,omitempty"`
}

// AddService appends a new service with generated id and fixed defaults,
// returning the new config and the created service.
func AddService(cfg Config) (Config, Service) {
	svc := Service{
		ID:              uuid.NewString(),
		Name:            "New Service",
		DurationMinutes: 30,
		Price:           "0.00",
		Description:     "",
	}

	services := make([]Service, 0, len(cfg.Services)+1)
	services = append(services, cfg.Services...)
	services = append(services, svc)
	cfg.Services = services
	return cfg, svc
}

// UpdateService applies a patch to the service with the given id. Unknown
// ids are a no-op.
func UpdateService(cfg Config, id string, patch ServicePatch) Config {
	services := make([]Service, len(cfg.Services))
	copy(services, cfg.Services)
	for i := range services {
		if services[i].ID != id {
			continue
		}
		if patch.Name != nil {
			services[i].Name = *patch.Name
		}
		if patch.DurationMinutes != nil {
			services[i].DurationMinutes = *patch.DurationMinutes
		}
		if patch.Price != nil {
			services[i].Price = *patch.Price
		}
		if patch.Description != nil {
			services[i].Description = *patch.Description
		}
		break
	}
	cfg.Services = services
	return cfg
}

// DeleteService removes the service with the given id. Unknown ids are a
// no-op.
func DeleteService(cfg Config, id string) Config {
	services := make([]Service, 0, len(cfg.Services))
	for _, svc := range cfg.Services {
		if svc.ID != id {
			services = append(services, svc)
		}
	}
	cfg.Services = services
	return cfg
}

// UpdateAvailability applies a patch to the named weekday's row. Other days
// are never touched; an unknown day is a no-op.
func UpdateAvailability(cfg Config, day string, patch AvailabilityPatch) Config {
	availability := make([]DayAvailability, len(cfg.Availability))
	copy(availability, cfg.Availability)
	for i := range availability {
		if availability[i].Day != day {
			continue
		}
		if patch.IsOpen != nil {
			availability[i].IsOpen = *patch.IsOpen
		}
		if patch.StartTime != nil {
			availability[i].StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			availability[i].EndTime = *patch.EndTime
		}
		break
	}
	cfg.Availability = availability
	return cfg
}

// UpdateProfile applies a patch to the business identity fields.
func UpdateProfile(cfg Config, patch ProfilePatch) Config {
	if patch.Name != nil {
		cfg.Name = *patch.Name
	}
	if patch.WhatsAppNumber != nil {
		cfg.WhatsAppNumber = *patch.WhatsAppNumber
	}
	if patch.CountryCode != nil {
		cfg.CountryCode = *patch.CountryCode
	}
	if patch.PrimaryColor != nil {
		cfg.PrimaryColor = *patch.PrimaryColor
	}
	if patch.LogoURL != nil {
		cfg.LogoURL = *patch.LogoURL
	}
	if patch.Tagline != nil {
		cfg.Tagline = *patch.Tagline
	}
	return cfg
}
