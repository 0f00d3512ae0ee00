package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skilllink/internal/domain/entities"
	"skilllink/internal/usecase/interfaces"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
	ErrInvalidRoleRate = errors.New("invalid role rate")
	ErrInvalidRoleName = errors.New("invalid role name")
)

// IClientUseCase exposes provider profile reads and updates. Avatar
// bytes live in external storage; only the URL passes through here.

type IClientUseCase interface {
	GetProfile(ctx context.Context, clientID string) (entities.Client, error)
	UpdateProfile(ctx context.Context, c entities.Client) (entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	now  func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, now: time.Now}
}

func (u *ClientUseCase) GetProfile(ctx context.Context, clientID string) (entities.Client, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) UpdateProfile(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	for i, role := range c.Roles {
		role.Name = strings.TrimSpace(role.Name)
		if role.Name == "" {
			return entities.Client{}, ErrInvalidRoleName
		}
		if role.Rate < 0 {
			return entities.Client{}, ErrInvalidRoleRate
		}
		c.Roles[i] = role
	}

	existing, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	// Email is account-owned and not editable through the profile.
	c.Email = existing.Email
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = u.now().UTC()
	return u.repo.Put(ctx, c)
}
