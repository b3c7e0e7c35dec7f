package repository

import (
	"context"
	"errors"
	"time"

	"fastfood_payment/internal/domain/entities"
	"fastfood_payment/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type productItem struct {
	IDProduct   string  `dynamodbav:"id_product"`
	Name        string  `dynamodbav:"name"`
	Observation string  `dynamodbav:"observation,omitempty"`
	UnitValue   float64 `dynamodbav:"unit_value"`
	Price       float64 `dynamodbav:"price,omitempty"`
	Amount      int     `dynamodbav:"amount"`
}

type orderItem struct {
	IDOrder     string        `dynamodbav:"id_order"`
	IDClient    string        `dynamodbav:"id_client,omitempty"`
	CPF         string        `dynamodbav:"cpf,omitempty"`
	Name        string        `dynamodbav:"name,omitempty"`
	Email       string        `dynamodbav:"email,omitempty"`
	Status      string        `dynamodbav:"status,omitempty"`
	Value       string        `dynamodbav:"value"`
	Items       []productItem `dynamodbav:"items"`
	PaymentID   string        `dynamodbav:"payment_id,omitempty"`
	PaymentLink string        `dynamodbav:"payment_link,omitempty"`
}

type paymentItem struct {
	ID          string    `dynamodbav:"id"`
	Order       orderItem `dynamodbav:"order"`
	PaymentLink string    `dynamodbav:"payment_link"`
	Status      string    `dynamodbav:"status"`
	Total       string    `dynamodbav:"total"`
	CreatedAt   string    `dynamodbav:"created_at"`
	UpdatedAt   string    `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string), equal to the order id
//
// Create is conditional on the key so an order can only be charged once.

type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentsTableName
	}
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (string, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return "", err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return "", interfaces.ErrDuplicatePayment
		}
		return "", err
	}
	return p.ID, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// UpdateStatus only touches status and updated_at. A missing record yields a
// zero Payment and no error.
func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *PaymentDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Payment, error) {
	updateExpr, values, names := build(formatTime(time.Now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:          p.ID,
		Order:       toOrderItem(p.Order),
		PaymentLink: p.PaymentLink,
		Status:      string(p.Status),
		Total:       floatToString(p.Total),
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:          it.ID,
		Order:       fromOrderItem(it.Order),
		PaymentLink: it.PaymentLink,
		Status:      entities.PaymentStatus(it.Status),
		Total:       stringToFloat(it.Total),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]productItem, 0, len(o.Items))
	for _, p := range o.Items {
		items = append(items, productItem{
			IDProduct:   p.IDProduct,
			Name:        p.Name,
			Observation: p.Observation,
			UnitValue:   p.UnitValue,
			Price:       p.Price,
			Amount:      p.Amount,
		})
	}
	return orderItem{
		IDOrder:     o.IDOrder,
		IDClient:    o.IDClient,
		CPF:         o.CPF,
		Name:        o.Name,
		Email:       o.Email,
		Status:      string(o.Status),
		Value:       floatToString(o.Value),
		Items:       items,
		PaymentID:   o.PaymentID,
		PaymentLink: o.PaymentLink,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.Product, 0, len(it.Items))
	for _, p := range it.Items {
		items = append(items, entities.Product{
			IDProduct:   p.IDProduct,
			Name:        p.Name,
			Observation: p.Observation,
			UnitValue:   p.UnitValue,
			Price:       p.Price,
			Amount:      p.Amount,
		})
	}
	return entities.Order{
		IDOrder:     it.IDOrder,
		IDClient:    it.IDClient,
		CPF:         it.CPF,
		Name:        it.Name,
		Email:       it.Email,
		Status:      entities.OrderStatus(it.Status),
		Value:       stringToFloat(it.Value),
		Items:       items,
		PaymentID:   it.PaymentID,
		PaymentLink: it.PaymentLink,
	}
}
