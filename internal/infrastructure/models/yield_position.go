package models

type YieldPosition struct {
	UserID     string  `gorm:"type:varchar(255);primaryKey"`
	Status     string  `gorm:"type:varchar(50);not null"`
	APY        float64 `gorm:"column:apy"`
	AccruedUSD float64 `gorm:"column:accrued_usd"`
}
