package request

import (
	"strings"

	"skilllink/internal/domain/entities"
)

type ClientRoleRequest struct {
	ProfessionID string  `json:"profession_id"`
	Name         string  `json:"name" binding:"required"`
	Rate         float64 `json:"rate"`
	Active       bool    `json:"active"`
}

// UpdateProfileRequest carries the editable part of a provider
// profile. Email is intentionally absent; it is account-owned.
type UpdateProfileRequest struct {
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	AvatarURL string              `json:"avatar_url"`
	Roles     []ClientRoleRequest `json:"roles"`
}

// ToClient maps the payload onto a Client for the given profile id.
func (r UpdateProfileRequest) ToClient(clientID string) entities.Client {
	roles := make([]entities.ClientRole, 0, len(r.Roles))
	for _, role := range r.Roles {
		roles = append(roles, entities.ClientRole{
			ProfessionID: strings.TrimSpace(role.ProfessionID),
			Name:         strings.TrimSpace(role.Name),
			Rate:         role.Rate,
			Active:       role.Active,
		})
	}
	return entities.Client{
		ID:        clientID,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		AvatarURL: strings.TrimSpace(r.AvatarURL),
		Roles:     roles,
	}
}
