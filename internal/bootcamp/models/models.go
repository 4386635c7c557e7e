// Package models holds the bootcamp domain entities and the read models
// assembled from remote service data.
package models

import "time"

// Bootcamp is the single durable entity owned by this service. ID is zero
// until the store assigns one.
type Bootcamp struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ReleaseDate time.Time `json:"releaseDate"`
	Duration    int       `json:"duration"`
}

// TechnologySummary is a technology belonging to a capacity, supplied by the
// capacity service.
type TechnologySummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CapacityWithTechnologies is a capacity and its technologies, owned by the
// capacity service.
type CapacityWithTechnologies struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Technologies []TechnologySummary `json:"technologies"`
}

// Person is a registered person, owned by the person service.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BootcampWithCapacitiesAndTechnologies is the listing read model: a persisted
// bootcamp enriched per request with remote capacity data. Never persisted.
type BootcampWithCapacitiesAndTechnologies struct {
	ID          int64                      `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	ReleaseDate time.Time                  `json:"releaseDate"`
	Duration    int                        `json:"duration"`
	Capacities  []CapacityWithTechnologies `json:"capacities"`
}

// BootcampWithCapacitiesAndPersons composes a bootcamp with its registered
// persons and capacities; used to find the bootcamp with the most persons.
type BootcampWithCapacitiesAndPersons struct {
	ID                int64                      `json:"id"`
	Name              string                     `json:"name"`
	Description       string                     `json:"description"`
	ReleaseDate       time.Time                  `json:"releaseDate"`
	Duration          int                        `json:"duration"`
	RegisteredPersons []Person                   `json:"registeredPersons"`
	Capacities        []CapacityWithTechnologies `json:"capacities"`
}

// BootcampReportData aggregates identity fields with derived counts and is
// posted to the report service. Never persisted locally.
type BootcampReportData struct {
	BootcampID            int64     `json:"bootcampId"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	ReleaseDate           time.Time `json:"releaseDate"`
	Duration              int       `json:"duration"`
	RegisteredPersonCount int       `json:"registeredPersonCount"`
	CapacityCount         int       `json:"capacityCount"`
	TotalTechnologyCount  int       `json:"totalTechnologyCount"`
}

// RelationCount is one entry of the capacity service's relation-count listing.
type RelationCount struct {
	BootcampID    int64 `json:"bootcampId"`
	RelationCount int   `json:"relationCount"`
}

// CapacitySummary is the capacity service's per-bootcamp count summary.
type CapacitySummary struct {
	CapacityCount        int `json:"capacityCount"`
	TotalTechnologyCount int `json:"totalTechnologyCount"`
}

// Event is a best-effort lifecycle notification.
type Event struct {
	Type       string    `json:"type"`
	BootcampID int64     `json:"bootcampId"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Lifecycle event types.
const (
	EventBootcampCreated = "bootcamp.created"
	EventBootcampDeleted = "bootcamp.deleted"
)
