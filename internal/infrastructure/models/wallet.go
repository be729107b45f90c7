package models

import "time"

type Wallet struct {
	UserID    string `gorm:"type:varchar(255);primaryKey"`
	Address   string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}
