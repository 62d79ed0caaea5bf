package models

const (
	MealTypeBreakfast = "BREAKFAST"
	MealTypeLunch     = "LUNCH"
	MealTypeDinner    = "DINNER"
	MealTypeSnack     = "SNACK"
	MealTypeOther     = "OTHER"
)

func IsValidMealType(mealType string) bool {
	switch mealType {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeOther:
		return true
	default:
		return false
	}
}

// Meal is a catalog entry managed by admins. Deletion is soft: IsActive is
// flipped off and historical meal logs keep pointing at the row.
type Meal struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null;size:100" json:"name"`
	Category    string   `gorm:"not null;size:20" json:"category"`
	Goal        string   `gorm:"not null;default:LOSE_WEIGHT" json:"goal"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	IsActive    bool     `gorm:"not null;default:true" json:"isActive"`
}
