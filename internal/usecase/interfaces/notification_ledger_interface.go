package interfaces

import "context"

// INotificationLedger remembers webhook notifications that were fully applied.
//
// Keys are built from the gateway resource and the resolved status, so a
// redelivered notification is recognized while a later status change for the
// same resource is not.
type INotificationLedger interface {
	Exists(ctx context.Context, key string) (bool, error)
	Record(ctx context.Context, key string, paymentID string) error
}
