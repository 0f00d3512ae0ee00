package interfaces

import (
	"context"

	"skilllink/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client profiles.

type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Put(ctx context.Context, c entities.Client) (entities.Client, error)
}
