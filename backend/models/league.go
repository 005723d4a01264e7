package models

import "gorm.io/gorm"

// LeagueMembership is one user's standing in one competitive period. Rank 0
// means unranked. A new row is created per period; settlement closes the old
// period's rows and seeds the next tier.
type LeagueMembership struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex:idx_user_period"`
	PeriodID int  `gorm:"uniqueIndex:idx_user_period;index"`
	CohortID uint `gorm:"index"`
	Rank     int  `gorm:"default:0"`
	PeriodXP int  `gorm:"default:0"`
	League   string
	Settled  bool `gorm:"default:false"`
}
