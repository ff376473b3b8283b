package repository

import "context"

// 在庫の増減だけを約束。減算は在庫が足りるときだけ成功する。
type InventoryRepository interface {
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
	IncreaseStock(ctx context.Context, productID int64, qty int64) error
}
