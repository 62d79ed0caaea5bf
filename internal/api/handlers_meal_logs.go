package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minhngct/vitatrack/internal/services"
)

func (handler *Handler) UpsertMealLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input mealLogInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	entry, wasUpdate, err := handler.mealLogService.Upsert(user.ID, services.MealLogInput{
		RawDate:  input.Date,
		MealID:   input.MealID,
		MealType: input.MealType,
		Quantity: input.Quantity,
		Note:     input.Note,
	})
	if err != nil {
		return serviceError(c, err)
	}

	status := fiber.StatusCreated
	if wasUpdate {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(entry)
}

func (handler *Handler) ListMyMealLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	logs, err := handler.mealLogService.ListForUser(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(logs)
}
