package models

// MealPlan pins one meal per slot to a weekday. Total fields are derived
// from the linked meals and refreshed whenever the plan is saved.
type MealPlan struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Goal         string  `gorm:"not null;default:LOSE_WEIGHT" json:"goal"`
	DayOfWeek    string  `gorm:"not null;size:10" json:"dayOfWeek"`
	BreakfastID  *uint   `json:"breakfastId"`
	LunchID      *uint   `json:"lunchId"`
	DinnerID     *uint   `json:"dinnerId"`
	SnackID      *uint   `json:"snackId"`
	TotalCal     float64 `gorm:"column:total_calories;not null;default:0" json:"totalCalories"`
	TotalProtein float64 `gorm:"not null;default:0" json:"totalProtein"`
	TotalCarbs   float64 `gorm:"not null;default:0" json:"totalCarbs"`
	TotalFat     float64 `gorm:"not null;default:0" json:"totalFat"`
	IsActive     bool    `gorm:"not null;default:true" json:"isActive"`
}
