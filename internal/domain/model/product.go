package model

import (
	"time"

	"gorm.io/gorm"
)

// 商品ティア（standard / deluxe / premium）
type ProductTier string

const (
	TierStandard ProductTier = "standard"
	TierDeluxe   ProductTier = "deluxe"
	TierPremium  ProductTier = "premium"
)

// 花束・アレンジメント商品。価格はすべてセント単位。
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopID      int64  `gorm:"not null;index" json:"shop_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	//ティア別価格（セント）
	PriceStandardCents int64 `gorm:"not null" json:"price_standard_cents"`
	PriceDeluxeCents   int64 `gorm:"not null" json:"price_deluxe_cents"`
	PricePremiumCents  int64 `gorm:"not null" json:"price_premium_cents"`

	Stock    int64 `gorm:"not null" json:"stock"`
	IsActive bool  `gorm:"not null;default:false" json:"is_active"`

	//画像は外部ストレージ参照のみ（変換はしない）
	ImageURL      string `gorm:"type:varchar(512)" json:"image_url"`
	ImagePublicID string `gorm:"type:varchar(255)" json:"-"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ティアに対応する単価を返す。未指定はstandard。
func (p Product) PriceForTier(tier ProductTier) (int64, bool) {
	switch tier {
	case "", TierStandard:
		return p.PriceStandardCents, true
	case TierDeluxe:
		return p.PriceDeluxeCents, true
	case TierPremium:
		return p.PricePremiumCents, true
	default:
		return 0, false
	}
}
