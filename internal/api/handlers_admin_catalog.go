package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minhngct/vitatrack/internal/models"
	"github.com/minhngct/vitatrack/internal/services"
)

func (handler *Handler) AdminCreateMeal(c *fiber.Ctx) error {
	var input mealInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	meal, err := handler.catalogService.CreateMeal(models.Meal{
		Name:        input.Name,
		Category:    input.Category,
		Goal:        input.Goal,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		Description: input.Description,
		URL:         input.URL,
		IsActive:    true,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

func (handler *Handler) AdminUpdateMeal(c *fiber.Ctx) error {
	mealID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	var input mealPatchInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	meal, err := handler.catalogService.UpdateMeal(mealID, services.MealPatch{
		Name:        input.Name,
		Category:    input.Category,
		Goal:        input.Goal,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		Description: input.Description,
		URL:         input.URL,
		IsActive:    input.IsActive,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(meal)
}

func (handler *Handler) AdminDeleteMeal(c *fiber.Ctx) error {
	mealID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.ensureDependencies()
	if err := handler.catalogService.DeactivateMeal(mealID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AdminCreateWorkoutType(c *fiber.Ctx) error {
	var input workoutTypeInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	workout, err := handler.catalogService.CreateWorkoutType(models.WorkoutType{
		Name:              input.Name,
		CaloriesPerMinute: input.CaloriesPerMinute,
		Description:       input.Description,
		URL:               input.URL,
		Level:             input.Level,
		Goal:              input.Goal,
		IsActive:          true,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (handler *Handler) AdminUpdateWorkoutType(c *fiber.Ctx) error {
	workoutID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	var input workoutTypePatchInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	workout, err := handler.catalogService.UpdateWorkoutType(workoutID, services.WorkoutTypePatch{
		Name:              input.Name,
		CaloriesPerMinute: input.CaloriesPerMinute,
		Description:       input.Description,
		URL:               input.URL,
		Level:             input.Level,
		Goal:              input.Goal,
		IsActive:          input.IsActive,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(workout)
}

func (handler *Handler) AdminDeleteWorkoutType(c *fiber.Ctx) error {
	workoutID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.ensureDependencies()
	if err := handler.catalogService.DeactivateWorkoutType(workoutID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AdminCreateWorkoutSchedule(c *fiber.Ctx) error {
	var input workoutScheduleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	schedule, err := handler.catalogService.CreateWorkoutSchedule(models.WorkoutSchedule{
		Name:      input.Name,
		Goal:      input.Goal,
		DayOfWeek: input.DayOfWeek,
		WorkoutID: input.WorkoutID,
		IsRestDay: input.IsRestDay,
		IsActive:  true,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

func (handler *Handler) AdminUpdateWorkoutSchedule(c *fiber.Ctx) error {
	scheduleID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	var input workoutSchedulePatchInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	schedule, err := handler.catalogService.UpdateWorkoutSchedule(scheduleID, services.SchedulePatch{
		Name:      input.Name,
		Goal:      input.Goal,
		DayOfWeek: input.DayOfWeek,
		WorkoutID: input.WorkoutID,
		IsRestDay: input.IsRestDay,
		IsActive:  input.IsActive,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(schedule)
}

func (handler *Handler) AdminDeleteWorkoutSchedule(c *fiber.Ctx) error {
	scheduleID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.ensureDependencies()
	if err := handler.catalogService.DeactivateWorkoutSchedule(scheduleID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AdminCreateMealPlan(c *fiber.Ctx) error {
	var input mealPlanInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	plan, err := handler.catalogService.CreateMealPlan(models.MealPlan{
		Name:        input.Name,
		Goal:        input.Goal,
		DayOfWeek:   input.DayOfWeek,
		BreakfastID: input.BreakfastID,
		LunchID:     input.LunchID,
		DinnerID:    input.DinnerID,
		SnackID:     input.SnackID,
		IsActive:    true,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

func (handler *Handler) AdminUpdateMealPlan(c *fiber.Ctx) error {
	planID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	var input mealPlanPatchInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	plan, err := handler.catalogService.UpdateMealPlan(planID, services.MealPlanPatch{
		Name:        input.Name,
		Goal:        input.Goal,
		DayOfWeek:   input.DayOfWeek,
		BreakfastID: input.BreakfastID,
		LunchID:     input.LunchID,
		DinnerID:    input.DinnerID,
		SnackID:     input.SnackID,
		IsActive:    input.IsActive,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(plan)
}

func (handler *Handler) AdminDeleteMealPlan(c *fiber.Ctx) error {
	planID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.ensureDependencies()
	if err := handler.catalogService.DeactivateMealPlan(planID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
