package models

import "time"

type Session struct {
	ID        string `gorm:"type:varchar(255);primaryKey"`
	UserID    string `gorm:"type:varchar(255);not null;index"`
	Assertion string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
