package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//検索（同じキーなら同じ結果を返す）
	FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error)

	//決済側の参照ID
	FindByStripeSessionID(ctx context.Context, sessionID string) (model.Order, error)
	SetStripeSessionID(ctx context.Context, orderID int64, sessionID string) error
	SetStripePaymentIntentID(ctx context.Context, orderID int64, paymentIntentID string) error
}
