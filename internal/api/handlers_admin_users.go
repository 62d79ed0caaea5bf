package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minhngct/vitatrack/internal/models"
)

func (handler *Handler) AdminListUsers(c *fiber.Ctx) error {
	handler.ensureDependencies()
	users, err := handler.repositories.Users.ListByRole(models.RoleUser)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return c.JSON(users)
}

// AdminSetUserStatus activates or deactivates a member account. Admin
// accounts are not managed through this endpoint.
func (handler *Handler) AdminSetUserStatus(c *fiber.Ctx) error {
	userID, err := idParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	var input userStatusInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	user, found, err := handler.repositories.Users.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
	if !found || user.Role != models.RoleUser {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	if err := handler.repositories.Users.UpdateActive(userID, input.IsActive); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
	user.IsActive = input.IsActive
	return c.JSON(user)
}
