package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fastfood_payment/internal/domain/entities"
	"fastfood_payment/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayment() entities.Payment {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return entities.Payment{
		ID: "O1",
		Order: entities.Order{
			IDOrder: "O1",
			CPF:     "12345678900",
			Name:    "Ana",
			Status:  entities.OrderStatusWaitingPayment,
			Value:   20.5,
			Items: []entities.Product{
				{IDProduct: "P1", Name: "Burger", Observation: "no onion", UnitValue: 10.25, Amount: 2},
			},
		},
		PaymentLink: "data:image/png;base64,AAA",
		Status:      entities.PaymentStatusAwaiting,
		Total:       20.5,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestNewPaymentDynamoRepository_DefaultTable(t *testing.T) {
	r := NewPaymentDynamoRepository(newFakeDynamo(), "")
	assert.Equal(t, "payments", r.tableName)
}

func TestPaymentDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	r := NewPaymentDynamoRepository(ddb, "payments-test")
	ctx := context.Background()

	id, err := r.Create(ctx, samplePayment())
	require.NoError(t, err)
	assert.Equal(t, "O1", id)
	assert.Equal(t, "payments-test", aws.ToString(ddb.lastPut.TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(ddb.lastPut.ConditionExpression))

	total, ok := ddb.items["O1"]["total"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "20.5", total.Value)

	got, err := r.GetByID(ctx, "O1")
	require.NoError(t, err)
	assert.True(t, aws.ToBool(ddb.lastGet.ConsistentRead))
	assert.Equal(t, samplePayment(), got)
}

func TestPaymentDynamoRepository_CreateDuplicate(t *testing.T) {
	r := NewPaymentDynamoRepository(newFakeDynamo(), "")
	ctx := context.Background()

	_, err := r.Create(ctx, samplePayment())
	require.NoError(t, err)

	_, err = r.Create(ctx, samplePayment())
	assert.ErrorIs(t, err, interfaces.ErrDuplicatePayment)
}

func TestPaymentDynamoRepository_CreateError(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.putErr = errors.New("throttled")
	r := NewPaymentDynamoRepository(ddb, "")

	_, err := r.Create(context.Background(), samplePayment())
	require.Error(t, err)
	assert.NotErrorIs(t, err, interfaces.ErrDuplicatePayment)
}

func TestPaymentDynamoRepository_GetByID(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		r := NewPaymentDynamoRepository(newFakeDynamo(), "")

		got, err := r.GetByID(context.Background(), "missing")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("store error", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.getErr = errors.New("unavailable")
		r := NewPaymentDynamoRepository(ddb, "")

		_, err := r.GetByID(context.Background(), "O1")
		assert.EqualError(t, err, "unavailable")
	})
}

func TestPaymentDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("updates status only", func(t *testing.T) {
		ddb := newFakeDynamo()
		r := NewPaymentDynamoRepository(ddb, "")
		ctx := context.Background()
		_, err := r.Create(ctx, samplePayment())
		require.NoError(t, err)

		updated, err := r.UpdateStatus(ctx, "O1", entities.PaymentStatusPaid)
		require.NoError(t, err)
		assert.Equal(t, "attribute_exists(#id)", aws.ToString(ddb.lastUpdate.ConditionExpression))
		assert.Equal(t, types.ReturnValueAllNew, ddb.lastUpdate.ReturnValues)

		assert.Equal(t, entities.PaymentStatusPaid, updated.Status)
		assert.Equal(t, 20.5, updated.Total)
		assert.Equal(t, samplePayment().Order, updated.Order)
		assert.Equal(t, samplePayment().PaymentLink, updated.PaymentLink)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

		stored, err := r.GetByID(ctx, "O1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, stored.Status)
	})

	t.Run("absent", func(t *testing.T) {
		r := NewPaymentDynamoRepository(newFakeDynamo(), "")

		updated, err := r.UpdateStatus(context.Background(), "missing", entities.PaymentStatusPaid)
		require.NoError(t, err)
		assert.Empty(t, updated.ID)
	})

	t.Run("store error", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.updateErr = errors.New("unavailable")
		r := NewPaymentDynamoRepository(ddb, "")

		_, err := r.UpdateStatus(context.Background(), "O1", entities.PaymentStatusPaid)
		assert.EqualError(t, err, "unavailable")
	})
}
