package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minhngct/vitatrack/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	account, profile, err := handler.profileService.FetchProfile(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"user": account, "profile": profile})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input profileUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	patch := services.ProfilePatch{
		FullName:       input.FullName,
		Gender:         input.Gender,
		HeightCm:       input.HeightCm,
		WeightKg:       input.WeightKg,
		TargetWeightKg: input.TargetWeightKg,
		ActivityLevel:  input.ActivityLevel,
		Goal:           input.Goal,
	}
	if input.BirthDate != nil {
		birthDate, err := services.ParseISODate(*input.BirthDate, handler.location)
		if err != nil {
			return serviceError(c, err)
		}
		patch.BirthDate = &birthDate
	}

	handler.ensureDependencies()
	profile, err := handler.profileService.UpdateProfile(user.ID, patch)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (handler *Handler) GetHome(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	summary, err := handler.homeService.BuildSummary(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(summary)
}
