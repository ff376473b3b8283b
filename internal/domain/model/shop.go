package model

import "time"

// 店舗。受け取り（ピックアップ）場所にもなる。
type Shop struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	Street     string `gorm:"type:varchar(255);not null" json:"street"`
	City       string `gorm:"type:varchar(255);not null" json:"city"`
	Province   string `gorm:"type:varchar(100);not null" json:"province"`
	PostalCode string `gorm:"type:varchar(20);not null" json:"postal_code"`
	Country    string `gorm:"type:varchar(2);not null;default:'CA'" json:"country"`

	Phone string `gorm:"type:varchar(30)" json:"phone"`
	Email string `gorm:"type:varchar(255)" json:"email"`

	//店頭受け取り可か
	IsPickupLocation bool `gorm:"not null;default:true" json:"is_pickup_location"`

	//営業時間の表示用テキスト
	OpeningHours string `gorm:"type:varchar(255)" json:"opening_hours"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
