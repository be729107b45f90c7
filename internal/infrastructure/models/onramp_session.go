package models

import "time"

type OnrampSession struct {
	ID         string `gorm:"type:varchar(255);primaryKey"`
	UserID     string `gorm:"type:varchar(255);not null;index"`
	Status     string `gorm:"type:varchar(50);not null"`
	AmountUSDC string `gorm:"column:amount_usdc;type:varchar(78);not null"`
	CreatedAt  time.Time
}
