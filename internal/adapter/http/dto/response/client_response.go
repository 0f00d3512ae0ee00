package response

import (
	"time"

	"skilllink/internal/domain/entities"
)

type ClientRoleResponse struct {
	ProfessionID string  `json:"profession_id"`
	Name         string  `json:"name"`
	Rate         float64 `json:"rate"`
	Active       bool    `json:"active"`
}

type ClientResponse struct {
	ID        string               `json:"id"`
	FirstName string               `json:"first_name"`
	LastName  string               `json:"last_name"`
	Email     string               `json:"email"`
	AvatarURL string               `json:"avatar_url,omitempty"`
	Roles     []ClientRoleResponse `json:"roles"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	roles := make([]ClientRoleResponse, 0, len(c.Roles))
	for _, role := range c.Roles {
		roles = append(roles, ClientRoleResponse{
			ProfessionID: role.ProfessionID,
			Name:         role.Name,
			Rate:         role.Rate,
			Active:       role.Active,
		})
	}
	return ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		AvatarURL: c.AvatarURL,
		Roles:     roles,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
