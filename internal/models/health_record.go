package models

import "time"

// HealthRecord is a per-day measurement row, at most one per user per
// calendar day. CreatedAt is stamped on first insert and never changes on
// subsequent upserts of the same day.
type HealthRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_health_user_date" json:"userId"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_health_user_date" json:"date"`
	Weight     *float64  `json:"weight"`
	Bmi        *float64  `json:"bmi"`
	HeartRate  *int      `json:"heartRate"`
	SleepHours *float64  `json:"sleepHours"`
	Note       string    `gorm:"size:500" json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
