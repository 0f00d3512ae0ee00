package repository

import (
	"context"
	"time"

	"skilllink/internal/domain/entities"
	"skilllink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientRoleItem struct {
	ProfessionID string `dynamodbav:"profession_id"`
	Name         string `dynamodbav:"name"`
	Rate         string `dynamodbav:"rate"`
	Active       bool   `dynamodbav:"active"`
}

type clientItem struct {
	ID        string           `dynamodbav:"id"`
	FirstName string           `dynamodbav:"first_name"`
	LastName  string           `dynamodbav:"last_name"`
	Email     string           `dynamodbav:"email"`
	AvatarURL string           `dynamodbav:"avatar_url,omitempty"`
	Roles     []clientRoleItem `dynamodbav:"roles,omitempty"`
	CreatedAt string           `dynamodbav:"created_at"`
	UpdatedAt string           `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client profiles in DynamoDB, keyed
// by the client id.

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) Put(ctx context.Context, client entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(client))
	if err != nil {
		return entities.Client{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Client{}, err
	}
	return client, nil
}

func toClientItem(c entities.Client) clientItem {
	roles := make([]clientRoleItem, 0, len(c.Roles))
	for _, role := range c.Roles {
		roles = append(roles, clientRoleItem{
			ProfessionID: role.ProfessionID,
			Name:         role.Name,
			Rate:         floatToString(role.Rate),
			Active:       role.Active,
		})
	}
	return clientItem{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		AvatarURL: c.AvatarURL,
		Roles:     roles,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	roles := make([]entities.ClientRole, 0, len(it.Roles))
	for _, role := range it.Roles {
		roles = append(roles, entities.ClientRole{
			ProfessionID: role.ProfessionID,
			Name:         role.Name,
			Rate:         stringToFloat(role.Rate),
			Active:       role.Active,
		})
	}
	return entities.Client{
		ID:        it.ID,
		FirstName: it.FirstName,
		LastName:  it.LastName,
		Email:     it.Email,
		AvatarURL: it.AvatarURL,
		Roles:     roles,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
