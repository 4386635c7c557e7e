package client

import (
	"context"
	"fmt"

	"bootcamp-service/internal/bootcamp/models"
	"bootcamp-service/internal/platform/httpclient"
)

// Person talks to the person service, which owns person registrations.
type Person struct {
	client *httpclient.Client
}

// NewPerson constructs a person service gateway.
func NewPerson(client *httpclient.Client) *Person {
	return &Person{client: client}
}

// RegisteredPersons fetches the persons registered in the bootcamp.
func (c *Person) RegisteredPersons(ctx context.Context, bootcampID int64) ([]models.Person, error) {
	path := fmt.Sprintf("/person/bootcamp/%d/info", bootcampID)
	var out []models.Person
	if err := c.client.GetJSON(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("fetch registered persons: %w", err)
	}
	return out, nil
}

type personCountResponse struct {
	PersonCount int `json:"personCount"`
}

// Count fetches the number of persons registered in the bootcamp.
func (c *Person) Count(ctx context.Context, bootcampID int64) (int, error) {
	path := fmt.Sprintf("/person/bootcamp/%d/count", bootcampID)
	var out personCountResponse
	if err := c.client.GetJSON(ctx, path, &out); err != nil {
		return 0, fmt.Errorf("fetch person count: %w", err)
	}
	return out.PersonCount, nil
}
