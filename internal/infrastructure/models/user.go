package models

import "time"

type User struct {
	ID        string  `gorm:"type:varchar(255);primaryKey"`
	Email     *string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
