package model

import "time"

// 注文明細。注文時点の商品名・ティア・単価をスナップショットで保存。
type OrderItem struct {
	ID                  int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64       `gorm:"not null;index" json:"order_id"`
	ProductID           int64       `gorm:"not null;index" json:"product_id"`
	ProductNameSnapshot string      `gorm:"type:varchar(255);not null" json:"product_name_snapshot"`
	Tier                ProductTier `gorm:"type:varchar(20);not null" json:"tier"`
	UnitPriceSnapshot   int64       `gorm:"not null" json:"unit_price_snapshot"`
	Quantity            int64       `gorm:"not null" json:"quantity"`
	CreatedAt           time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
