package models

import "time"

type SigningKey struct {
	UserID        string `gorm:"type:varchar(255);primaryKey"`
	PublicKey     string `gorm:"type:varchar(255);not null"`
	SealedPrivate string `gorm:"type:text;not null"`
	CreatedAt     time.Time
}
