package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/minhngct/vitatrack/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func idParam(c *fiber.Ctx, name string) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}

// serviceError maps a service sentinel to its HTTP status. Anything not in
// the table is treated as an internal failure.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidHeight),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrFullNameRequired),
		errors.Is(err, services.ErrInvalidGender),
		errors.Is(err, services.ErrInvalidActivityLevel),
		errors.Is(err, services.ErrInvalidGoal),
		errors.Is(err, services.ErrInvalidMealType),
		errors.Is(err, services.ErrInvalidDayOfWeek),
		errors.Is(err, services.ErrInvalidLevel),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrPasswordSameAsOld),
		errors.Is(err, services.ErrCurrentPasswordBad):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountDeactivated):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrAdminRequired):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMealNotFound),
		errors.Is(err, services.ErrWorkoutNotFound),
		errors.Is(err, services.ErrScheduleNotFound),
		errors.Is(err, services.ErrMealPlanNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
