package entities

import "time"

// ClientRole is one profession a provider offers, with the hourly rate
// shown to customers. Toggling Active hides the role from search
// without deleting its history.
type ClientRole struct {
	ProfessionID string  `json:"profession_id"`
	Name         string  `json:"name"`
	Rate         float64 `json:"rate"`
	Active       bool    `json:"active"`
}

// Client is a service provider profile persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (the provider's account id)
//
// AvatarURL points at externally hosted storage; upload mechanics are
// not handled by this service.

type Client struct {
	ID        string       `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Email     string       `json:"email"`
	AvatarURL string       `json:"avatar_url,omitempty"`
	Roles     []ClientRole `json:"roles"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
