package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/minhngct/vitatrack/internal/models"
)

var (
	ErrNameRequired        = errors.New("name cannot be empty")
	ErrWorkoutNotFound     = errors.New("workout not found")
	ErrMealPlanNotFound    = errors.New("meal plan not found")
	ErrScheduleNotFound    = errors.New("workout schedule not found")
	ErrInvalidDayOfWeek    = errors.New("invalid day of week")
	ErrInvalidLevel        = errors.New("invalid level")
	ErrCatalogWriteFailed  = errors.New("catalog write failed")
	ErrCatalogLookupFailed = errors.New("catalog lookup failed")
)

var (
	youtubeWatchPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/shorts/)([A-Za-z0-9_-]{6,})`)
	youtubeEmbedPattern = regexp.MustCompile(`youtube\.com/embed/[A-Za-z0-9_-]{6,}`)
)

// NormalizeYouTubeURL rewrites watch, share and shorts links to the embed
// form the clients render. URLs that are already embeds, or not recognizably
// YouTube, pass through unchanged.
func NormalizeYouTubeURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if youtubeEmbedPattern.MatchString(url) {
		return url
	}
	matches := youtubeWatchPattern.FindStringSubmatch(url)
	if len(matches) != 2 {
		return url
	}
	return "https://www.youtube.com/embed/" + matches[1]
}

// MealPatch, WorkoutTypePatch, SchedulePatch and MealPlanPatch carry the
// optional fields of the admin PATCH endpoints.
type MealPatch struct {
	Name        *string
	Category    *string
	Goal        *string
	Calories    *float64
	Protein     *float64
	Carbs       *float64
	Fat         *float64
	Description *string
	URL         *string
	IsActive    *bool
}

type WorkoutTypePatch struct {
	Name              *string
	CaloriesPerMinute *float64
	Description       *string
	URL               *string
	Level             *string
	Goal              *string
	IsActive          *bool
}

type SchedulePatch struct {
	Name      *string
	Goal      *string
	DayOfWeek *string
	WorkoutID *uint
	IsRestDay *bool
	IsActive  *bool
}

type MealPlanPatch struct {
	Name        *string
	Goal        *string
	DayOfWeek   *string
	BreakfastID *uint
	LunchID     *uint
	DinnerID    *uint
	SnackID     *uint
	IsActive    *bool
}

type MealWriteStore interface {
	MealCatalogStore
	ListActive() ([]models.Meal, error)
	Create(meal *models.Meal) error
	Save(meal *models.Meal) error
}

type WorkoutTypeStore interface {
	FindByID(workoutID uint) (models.WorkoutType, bool, error)
	ListActive() ([]models.WorkoutType, error)
	Create(workout *models.WorkoutType) error
	Save(workout *models.WorkoutType) error
}

type WorkoutScheduleStore interface {
	FindByID(scheduleID uint) (models.WorkoutSchedule, bool, error)
	ListActive() ([]models.WorkoutSchedule, error)
	Create(schedule *models.WorkoutSchedule) error
	Save(schedule *models.WorkoutSchedule) error
}

type MealPlanStore interface {
	FindByID(planID uint) (models.MealPlan, bool, error)
	ListActive() ([]models.MealPlan, error)
	Create(plan *models.MealPlan) error
	Save(plan *models.MealPlan) error
}

// CatalogService owns the admin-managed reference data: meals, workout
// types, weekly workout schedules and meal plans. All deletes are soft.
type CatalogService struct {
	meals     MealWriteStore
	workouts  WorkoutTypeStore
	schedules WorkoutScheduleStore
	plans     MealPlanStore
}

func NewCatalogService(meals MealWriteStore, workouts WorkoutTypeStore, schedules WorkoutScheduleStore, plans MealPlanStore) *CatalogService {
	return &CatalogService{
		meals:     meals,
		workouts:  workouts,
		schedules: schedules,
		plans:     plans,
	}
}

func (service *CatalogService) ListMeals() ([]models.Meal, error) {
	return service.meals.ListActive()
}

func (service *CatalogService) CreateMeal(meal models.Meal) (models.Meal, error) {
	if strings.TrimSpace(meal.Name) == "" {
		return models.Meal{}, ErrNameRequired
	}
	if meal.Category != "" && !models.IsValidMealType(meal.Category) {
		return models.Meal{}, ErrInvalidMealType
	}
	if err := service.meals.Create(&meal); err != nil {
		return models.Meal{}, ErrCatalogWriteFailed
	}
	return meal, nil
}

func (service *CatalogService) UpdateMeal(mealID uint, patch MealPatch) (models.Meal, error) {
	meal, found, err := service.meals.FindByID(mealID)
	if err != nil {
		return models.Meal{}, ErrCatalogLookupFailed
	}
	if !found {
		return models.Meal{}, ErrMealNotFound
	}

	if patch.Name != nil {
		meal.Name = *patch.Name
	}
	if patch.Category != nil {
		if !models.IsValidMealType(*patch.Category) {
			return models.Meal{}, ErrInvalidMealType
		}
		meal.Category = *patch.Category
	}
	if patch.Goal != nil {
		meal.Goal = *patch.Goal
	}
	if patch.Calories != nil {
		meal.Calories = patch.Calories
	}
	if patch.Protein != nil {
		meal.Protein = patch.Protein
	}
	if patch.Carbs != nil {
		meal.Carbs = patch.Carbs
	}
	if patch.Fat != nil {
		meal.Fat = patch.Fat
	}
	if patch.Description != nil {
		meal.Description = *patch.Description
	}
	if patch.URL != nil {
		meal.URL = *patch.URL
	}
	if patch.IsActive != nil {
		meal.IsActive = *patch.IsActive
	}

	if err := service.meals.Save(&meal); err != nil {
		return models.Meal{}, ErrCatalogWriteFailed
	}
	return meal, nil
}

func (service *CatalogService) DeactivateMeal(mealID uint) error {
	meal, found, err := service.meals.FindByID(mealID)
	if err != nil {
		return ErrCatalogLookupFailed
	}
	if !found {
		return ErrMealNotFound
	}
	meal.IsActive = false
	if err := service.meals.Save(&meal); err != nil {
		return ErrCatalogWriteFailed
	}
	return nil
}

func (service *CatalogService) ListWorkoutTypes() ([]models.WorkoutType, error) {
	return service.workouts.ListActive()
}

func (service *CatalogService) CreateWorkoutType(workout models.WorkoutType) (models.WorkoutType, error) {
	if strings.TrimSpace(workout.Name) == "" {
		return models.WorkoutType{}, ErrNameRequired
	}
	workout.URL = NormalizeYouTubeURL(workout.URL)
	if workout.Level == "" {
		workout.Level = models.LevelBeginner
	}
	if err := service.workouts.Create(&workout); err != nil {
		return models.WorkoutType{}, ErrCatalogWriteFailed
	}
	return workout, nil
}

func (service *CatalogService) UpdateWorkoutType(workoutID uint, patch WorkoutTypePatch) (models.WorkoutType, error) {
	workout, found, err := service.workouts.FindByID(workoutID)
	if err != nil {
		return models.WorkoutType{}, ErrCatalogLookupFailed
	}
	if !found {
		return models.WorkoutType{}, ErrWorkoutNotFound
	}

	if patch.Name != nil {
		workout.Name = *patch.Name
	}
	if patch.CaloriesPerMinute != nil {
		workout.CaloriesPerMinute = patch.CaloriesPerMinute
	}
	if patch.Description != nil {
		workout.Description = *patch.Description
	}
	if patch.URL != nil {
		workout.URL = NormalizeYouTubeURL(*patch.URL)
	}
	if patch.Level != nil {
		if !models.IsValidLevel(*patch.Level) {
			return models.WorkoutType{}, ErrInvalidLevel
		}
		workout.Level = *patch.Level
	}
	if patch.Goal != nil {
		workout.Goal = *patch.Goal
	}
	if patch.IsActive != nil {
		workout.IsActive = *patch.IsActive
	}

	if err := service.workouts.Save(&workout); err != nil {
		return models.WorkoutType{}, ErrCatalogWriteFailed
	}
	return workout, nil
}

func (service *CatalogService) DeactivateWorkoutType(workoutID uint) error {
	workout, found, err := service.workouts.FindByID(workoutID)
	if err != nil {
		return ErrCatalogLookupFailed
	}
	if !found {
		return ErrWorkoutNotFound
	}
	workout.IsActive = false
	if err := service.workouts.Save(&workout); err != nil {
		return ErrCatalogWriteFailed
	}
	return nil
}

func (service *CatalogService) ListWorkoutSchedules() ([]models.WorkoutSchedule, error) {
	return service.schedules.ListActive()
}

func (service *CatalogService) CreateWorkoutSchedule(schedule models.WorkoutSchedule) (models.WorkoutSchedule, error) {
	if strings.TrimSpace(schedule.Name) == "" {
		return models.WorkoutSchedule{}, ErrNameRequired
	}
	if !models.IsValidDayOfWeek(schedule.DayOfWeek) {
		return models.WorkoutSchedule{}, ErrInvalidDayOfWeek
	}
	if schedule.WorkoutID != nil {
		if _, found, err := service.workouts.FindByID(*schedule.WorkoutID); err != nil || !found {
			return models.WorkoutSchedule{}, ErrWorkoutNotFound
		}
	}
	if err := service.schedules.Create(&schedule); err != nil {
		return models.WorkoutSchedule{}, ErrCatalogWriteFailed
	}
	return schedule, nil
}

func (service *CatalogService) UpdateWorkoutSchedule(scheduleID uint, patch SchedulePatch) (models.WorkoutSchedule, error) {
	schedule, found, err := service.schedules.FindByID(scheduleID)
	if err != nil {
		return models.WorkoutSchedule{}, ErrCatalogLookupFailed
	}
	if !found {
		return models.WorkoutSchedule{}, ErrScheduleNotFound
	}

	if patch.Name != nil {
		schedule.Name = *patch.Name
	}
	if patch.Goal != nil {
		schedule.Goal = *patch.Goal
	}
	if patch.DayOfWeek != nil {
		if !models.IsValidDayOfWeek(*patch.DayOfWeek) {
			return models.WorkoutSchedule{}, ErrInvalidDayOfWeek
		}
		schedule.DayOfWeek = *patch.DayOfWeek
	}
	if patch.WorkoutID != nil {
		if _, workoutFound, err := service.workouts.FindByID(*patch.WorkoutID); err != nil || !workoutFound {
			return models.WorkoutSchedule{}, ErrWorkoutNotFound
		}
		schedule.WorkoutID = patch.WorkoutID
	}
	if patch.IsRestDay != nil {
		schedule.IsRestDay = *patch.IsRestDay
	}
	if patch.IsActive != nil {
		schedule.IsActive = *patch.IsActive
	}

	if err := service.schedules.Save(&schedule); err != nil {
		return models.WorkoutSchedule{}, ErrCatalogWriteFailed
	}
	return schedule, nil
}

func (service *CatalogService) DeactivateWorkoutSchedule(scheduleID uint) error {
	schedule, found, err := service.schedules.FindByID(scheduleID)
	if err != nil {
		return ErrCatalogLookupFailed
	}
	if !found {
		return ErrScheduleNotFound
	}
	schedule.IsActive = false
	if err := service.schedules.Save(&schedule); err != nil {
		return ErrCatalogWriteFailed
	}
	return nil
}

func (service *CatalogService) ListMealPlans() ([]models.MealPlan, error) {
	return service.plans.ListActive()
}

func (service *CatalogService) CreateMealPlan(plan models.MealPlan) (models.MealPlan, error) {
	if strings.TrimSpace(plan.Name) == "" {
		return models.MealPlan{}, ErrNameRequired
	}
	if !models.IsValidDayOfWeek(plan.DayOfWeek) {
		return models.MealPlan{}, ErrInvalidDayOfWeek
	}
	if err := service.refreshPlanTotals(&plan); err != nil {
		return models.MealPlan{}, err
	}
	if err := service.plans.Create(&plan); err != nil {
		return models.MealPlan{}, ErrCatalogWriteFailed
	}
	return plan, nil
}

func (service *CatalogService) UpdateMealPlan(planID uint, patch MealPlanPatch) (models.MealPlan, error) {
	plan, found, err := service.plans.FindByID(planID)
	if err != nil {
		return models.MealPlan{}, ErrCatalogLookupFailed
	}
	if !found {
		return models.MealPlan{}, ErrMealPlanNotFound
	}

	if patch.Name != nil {
		plan.Name = *patch.Name
	}
	if patch.Goal != nil {
		plan.Goal = *patch.Goal
	}
	if patch.DayOfWeek != nil {
		if !models.IsValidDayOfWeek(*patch.DayOfWeek) {
			return models.MealPlan{}, ErrInvalidDayOfWeek
		}
		plan.DayOfWeek = *patch.DayOfWeek
	}
	if patch.BreakfastID != nil {
		plan.BreakfastID = patch.BreakfastID
	}
	if patch.LunchID != nil {
		plan.LunchID = patch.LunchID
	}
	if patch.DinnerID != nil {
		plan.DinnerID = patch.DinnerID
	}
	if patch.SnackID != nil {
		plan.SnackID = patch.SnackID
	}
	if patch.IsActive != nil {
		plan.IsActive = *patch.IsActive
	}

	if err := service.refreshPlanTotals(&plan); err != nil {
		return models.MealPlan{}, err
	}
	if err := service.plans.Save(&plan); err != nil {
		return models.MealPlan{}, ErrCatalogWriteFailed
	}
	return plan, nil
}

func (service *CatalogService) DeactivateMealPlan(planID uint) error {
	plan, found, err := service.plans.FindByID(planID)
	if err != nil {
		return ErrCatalogLookupFailed
	}
	if !found {
		return ErrMealPlanNotFound
	}
	plan.IsActive = false
	if err := service.plans.Save(&plan); err != nil {
		return ErrCatalogWriteFailed
	}
	return nil
}

// refreshPlanTotals re-derives the plan's nutrition totals by summing the
// four linked meal slots. Missing slots contribute nothing; a dangling meal
// id is a NotFound error.
func (service *CatalogService) refreshPlanTotals(plan *models.MealPlan) error {
	plan.TotalCal = 0
	plan.TotalProtein = 0
	plan.TotalCarbs = 0
	plan.TotalFat = 0

	for _, slotID := range []*uint{plan.BreakfastID, plan.LunchID, plan.DinnerID, plan.SnackID} {
		if slotID == nil {
			continue
		}
		meal, found, err := service.meals.FindByID(*slotID)
		if err != nil {
			return ErrCatalogLookupFailed
		}
		if !found {
			return ErrMealNotFound
		}
		if meal.Calories != nil {
			plan.TotalCal += *meal.Calories
		}
		if meal.Protein != nil {
			plan.TotalProtein += *meal.Protein
		}
		if meal.Carbs != nil {
			plan.TotalCarbs += *meal.Carbs
		}
		if meal.Fat != nil {
			plan.TotalFat += *meal.Fat
		}
	}
	return nil
}
