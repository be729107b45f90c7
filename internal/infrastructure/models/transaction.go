package models

import "time"

type Transaction struct {
	Hash      string `gorm:"type:varchar(255);primaryKey"`
	Status    string `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
}
