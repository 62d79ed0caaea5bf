package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minhngct/vitatrack/internal/services"
)

// UpsertHealthRecord writes the caller's record for a day. The same endpoint
// serves both first write and later corrections; the response status tells
// them apart.
func (handler *Handler) UpsertHealthRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input healthRecordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	patch := services.HealthRecordPatch{
		Weight:     input.Weight,
		HeartRate:  input.HeartRate,
		SleepHours: input.SleepHours,
		Note:       input.Note,
	}
	if input.Date != "" {
		day, err := services.ParseISODate(input.Date, handler.location)
		if err != nil {
			return serviceError(c, err)
		}
		patch.Date = &day
	}

	handler.ensureDependencies()
	record, wasUpdate, err := handler.healthRecordService.Upsert(user.ID, patch)
	if err != nil {
		return serviceError(c, err)
	}

	status := fiber.StatusCreated
	if wasUpdate {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(record)
}

func (handler *Handler) ListMyHealthRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	records, err := handler.healthRecordService.ListForUser(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(records)
}
