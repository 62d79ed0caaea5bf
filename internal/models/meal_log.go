package models

import "time"

// MealLog records what a user ate in one meal-type slot of one day, at most
// one row per (user, date, meal type). User, date and meal type are fixed at
// creation; the meal reference, quantity and note are replaced on upsert.
type MealLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:uidx_meal_log_slot" json:"userId"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:uidx_meal_log_slot" json:"date"`
	MealType      string    `gorm:"not null;size:20;uniqueIndex:uidx_meal_log_slot" json:"mealType"`
	MealID        uint      `gorm:"not null" json:"mealId"`
	Quantity      *float64  `json:"quantity"`
	TotalCalories *float64  `json:"totalCalories"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
