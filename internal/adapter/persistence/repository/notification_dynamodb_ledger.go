package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"fastfood_payment/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultNotificationsTableName = "payment_notifications"

type notificationItem struct {
	ID          string `dynamodbav:"id"`
	Resource    string `dynamodbav:"resource"`
	Status      string `dynamodbav:"status"`
	PaymentID   string `dynamodbav:"payment_id"`
	ProcessedAt string `dynamodbav:"processed_at"`
}

// NotificationDynamoLedger records applied webhook notifications.
//
// Table requirements:
//   - PK: id (string), "<resource>#<STATUS>"

type NotificationDynamoLedger struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.INotificationLedger = (*NotificationDynamoLedger)(nil)

func NewNotificationDynamoLedger(ddb DynamoDBAPI, tableName string) *NotificationDynamoLedger {
	if tableName == "" {
		tableName = defaultNotificationsTableName
	}
	return &NotificationDynamoLedger{ddb: ddb, tableName: tableName}
}

func (l *NotificationDynamoLedger) Exists(ctx context.Context, key string) (bool, error) {
	out, err := l.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(l.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

// Record is a no-op when the key is already present.
func (l *NotificationDynamoLedger) Record(ctx context.Context, key string, paymentID string) error {
	resource, status := splitNotificationKey(key)
	av, err := attributevalue.MarshalMap(notificationItem{
		ID:          key,
		Resource:    resource,
		Status:      status,
		PaymentID:   paymentID,
		ProcessedAt: formatTime(time.Now()),
	})
	if err != nil {
		return err
	}

	_, err = l.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(l.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func splitNotificationKey(key string) (resource, status string) {
	i := strings.LastIndex(key, "#")
	if i < 0 {
		return key, ""
	}
	return key[:i], key[i+1:]
}
