package api

import (
	"github.com/gofiber/fiber/v2"
)

// Read-only catalog endpoints for signed-in users.

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	handler.ensureDependencies()
	meals, err := handler.catalogService.ListMeals()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(meals)
}

func (handler *Handler) ListWorkoutTypes(c *fiber.Ctx) error {
	handler.ensureDependencies()
	workouts, err := handler.catalogService.ListWorkoutTypes()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(workouts)
}

func (handler *Handler) ListWorkoutSchedules(c *fiber.Ctx) error {
	handler.ensureDependencies()
	schedules, err := handler.catalogService.ListWorkoutSchedules()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(schedules)
}

func (handler *Handler) ListMealPlans(c *fiber.Ctx) error {
	handler.ensureDependencies()
	plans, err := handler.catalogService.ListMealPlans()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(plans)
}
