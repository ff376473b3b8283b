package repository

import (
	"context"

	"app/internal/domain/model"
)

type ShopRepository interface {
	List(ctx context.Context) ([]model.Shop, error)
	FindByID(ctx context.Context, id int64) (model.Shop, error)
}
