package repository

import (
	"context"
	"errors"
	"time"

	"skilllink/internal/domain/entities"
	"skilllink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	customerIndexName        = "customer_id-index"
	providerIndexName        = "provider_id-index"
)

type bookingItem struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	ProviderID    string `dynamodbav:"provider_id"`
	ServiceLabel  string `dynamodbav:"service_label"`
	ScheduledDate string `dynamodbav:"scheduled_date"`
	ScheduledTime string `dynamodbav:"scheduled_time"`
	Rate          string `dynamodbav:"rate"`
	Status        string `dynamodbav:"status,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_id-index: customer_id (string)
//   - GSI provider_id-index: provider_id (string)
//
// Status transitions go through UpdateStatus, which uses a condition
// expression on the stored status. The store, not the caller, decides
// who wins a concurrent sweep/decide race on one document.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByCustomer(ctx context.Context, customerID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customerIndexName),
		KeyConditionExpression: aws.String("#customer_id = :customer_id"),
		ExpressionAttributeNames: map[string]string{
			"#customer_id": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
}

func (r *BookingDynamoRepository) ListByProviderAndStatus(ctx context.Context, providerID string, status entities.BookingStatus, from, to *time.Time) ([]entities.Booking, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(providerIndexName),
		KeyConditionExpression: aws.String("#provider_id = :provider_id"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#provider_id": "provider_id",
			"#status":      "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":provider_id": &types.AttributeValueMemberS{Value: providerID},
			":status":      &types.AttributeValueMemberS{Value: string(status)},
		},
	}
	if from != nil && to != nil {
		in.FilterExpression = aws.String("#status = :status AND #scheduled_date BETWEEN :from AND :to")
		in.ExpressionAttributeNames["#scheduled_date"] = "scheduled_date"
		in.ExpressionAttributeValues[":from"] = &types.AttributeValueMemberS{Value: from.UTC().Format(entities.DateLayout)}
		in.ExpressionAttributeValues[":to"] = &types.AttributeValueMemberS{Value: to.UTC().Format(entities.DateLayout)}
	}
	return r.queryIndex(ctx, in)
}

// ListPending scans for documents still awaiting a decision. A missing
// status attribute also counts as pending.
func (r *BookingDynamoRepository) ListPending(ctx context.Context) ([]entities.Booking, error) {
	var bookings []entities.Booking
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status = :pending OR attribute_not_exists(#status)"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: string(entities.BookingStatusPending)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []bookingItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			bookings = append(bookings, fromBookingItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return bookings, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// UpdateStatus moves a booking from expected to next atomically. When
// the stored status no longer matches expected the update does not
// apply and a zero-value Booking is returned with a nil error.
func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.BookingStatus) (entities.Booking, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	condition := "attribute_exists(#id) AND #status = :expected"
	values := map[string]types.AttributeValue{
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
		":status":     &types.AttributeValueMemberS{Value: string(next)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if expected == entities.BookingStatusPending {
		// Documents written before the status attribute existed read
		// as pending.
		condition = "attribute_exists(#id) AND (#status = :expected OR attribute_not_exists(#status))"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) queryIndex(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Booking, error) {
	var bookings []entities.Booking
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}

		var items []bookingItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			bookings = append(bookings, fromBookingItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return bookings, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		ProviderID:    b.ProviderID,
		ServiceLabel:  b.ServiceLabel,
		ScheduledDate: b.ScheduledDate.UTC().Format(entities.DateLayout),
		ScheduledTime: b.ScheduledTime,
		Rate:          floatToString(b.Rate),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	scheduledDate, _ := time.Parse(entities.DateLayout, it.ScheduledDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Booking{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		ProviderID:    it.ProviderID,
		ServiceLabel:  it.ServiceLabel,
		ScheduledDate: scheduledDate,
		ScheduledTime: it.ScheduledTime,
		Rate:          stringToFloat(it.Rate),
		Status:        entities.BookingStatus(it.Status),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
