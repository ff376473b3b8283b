package model

import "time"

// 認証は外部IdPに委譲。ここはIdPのsubjectとの紐付けだけを持つ。
type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	SubjectID string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
