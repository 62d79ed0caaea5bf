package services

import (
	"errors"
	"strings"
	"time"

	"github.com/minhngct/vitatrack/internal/models"
)

var (
	ErrMealNotFound      = errors.New("meal not found")
	ErrInvalidMealType   = errors.New("invalid meal type")
	ErrMealLogSaveFailed = errors.New("save meal log failed")
)

// MealLogInput is the raw upsert payload. RawDate is the yyyy-MM-dd string
// straight from the request; empty means today, anything unparseable is
// rejected before any row is touched.
type MealLogInput struct {
	RawDate  string
	MealID   uint
	MealType string
	Quantity *float64
	Note     string
}

type MealLogStore interface {
	ListByUser(userID uint) ([]models.MealLog, error)
	UpsertByUserDayAndType(userID uint, dayStart time.Time, dayEnd time.Time, mealType string, mutate func(entry *models.MealLog, found bool) error) (models.MealLog, bool, error)
}

type MealCatalogStore interface {
	FindByID(mealID uint) (models.Meal, bool, error)
}

type MealLogService struct {
	logs     MealLogStore
	meals    MealCatalogStore
	location *time.Location
	now      func() time.Time
}

func NewMealLogService(logs MealLogStore, meals MealCatalogStore, location *time.Location) *MealLogService {
	if location == nil {
		location = time.UTC
	}
	return &MealLogService{
		logs:     logs,
		meals:    meals,
		location: location,
		now:      time.Now,
	}
}

// Upsert writes the log for (user, day, meal type), replacing the meal
// reference, quantity and note of an existing row or inserting a fresh one.
// The meal lookup does not filter on is_active: logging against a
// soft-deleted catalog entry stays allowed so old habits keep working.
func (service *MealLogService) Upsert(userID uint, input MealLogInput) (models.MealLog, bool, error) {
	if !models.IsValidMealType(input.MealType) {
		return models.MealLog{}, false, ErrInvalidMealType
	}

	day := service.now()
	if strings.TrimSpace(input.RawDate) != "" {
		parsed, err := ParseISODate(input.RawDate, service.location)
		if err != nil {
			return models.MealLog{}, false, err
		}
		day = parsed
	}

	meal, found, err := service.meals.FindByID(input.MealID)
	if err != nil {
		return models.MealLog{}, false, ErrMealLogSaveFailed
	}
	if !found {
		return models.MealLog{}, false, ErrMealNotFound
	}

	dayStart, dayEnd := DayRange(day, service.location)
	entry, wasUpdate, err := service.logs.UpsertByUserDayAndType(userID, dayStart, dayEnd, input.MealType, func(entry *models.MealLog, entryFound bool) error {
		entry.MealID = meal.ID
		entry.Quantity = input.Quantity
		entry.Note = input.Note

		entry.TotalCalories = nil
		if meal.Calories != nil && input.Quantity != nil {
			total := Round2(*meal.Calories * *input.Quantity)
			entry.TotalCalories = &total
		}
		return nil
	})
	if err != nil {
		return models.MealLog{}, false, ErrMealLogSaveFailed
	}
	return entry, wasUpdate, nil
}

func (service *MealLogService) ListForUser(userID uint) ([]models.MealLog, error) {
	return service.logs.ListByUser(userID)
}
