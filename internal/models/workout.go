package models

const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
)

const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

func IsValidLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

func IsValidDayOfWeek(day string) bool {
	switch day {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday:
		return true
	default:
		return false
	}
}

// WorkoutType is an admin-managed exercise catalog entry. URL points at a
// YouTube embed; incoming watch/short links are normalized before save.
type WorkoutType struct {
	ID                uint     `gorm:"primaryKey" json:"id"`
	Name              string   `gorm:"not null" json:"name"`
	CaloriesPerMinute *float64 `json:"caloriesPerMinute"`
	Description       string   `json:"description"`
	URL               string   `json:"url"`
	Level             string   `gorm:"not null;default:BEGINNER" json:"level"`
	Goal              string   `gorm:"not null;default:LOSE_WEIGHT" json:"goal"`
	IsActive          bool     `gorm:"not null;default:true" json:"isActive"`
}

// WorkoutSchedule assigns a workout type (or a rest day) to a weekday inside
// a named program.
type WorkoutSchedule struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Goal      string `gorm:"not null;default:LOSE_WEIGHT" json:"goal"`
	DayOfWeek string `gorm:"not null;size:10" json:"dayOfWeek"`
	WorkoutID *uint  `json:"workoutId"`
	IsRestDay bool   `gorm:"not null;default:false" json:"isRestDay"`
	IsActive  bool   `gorm:"not null;default:true" json:"isActive"`
}
