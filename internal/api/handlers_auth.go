package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minhngct/vitatrack/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	registration := services.RegisterInput{
		Email:          input.Email,
		Password:       input.Password,
		FullName:       input.FullName,
		Gender:         input.Gender,
		HeightCm:       input.HeightCm,
		WeightKg:       input.WeightKg,
		TargetWeightKg: input.TargetWeightKg,
		ActivityLevel:  input.ActivityLevel,
		Goal:           input.Goal,
	}
	if input.BirthDate != "" {
		birthDate, err := services.ParseISODate(input.BirthDate, handler.location)
		if err != nil {
			return serviceError(c, err)
		}
		registration.BirthDate = &birthDate
	}

	if err := services.ValidateRegisterInput(registration); err != nil {
		return serviceError(c, err)
	}

	handler.ensureDependencies()
	user, profile, err := handler.authService.Register(registration)
	if err != nil {
		return serviceError(c, err)
	}

	accessToken, refreshToken, err := handler.buildTokenPair(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "token generation failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":         user,
		"profile":      profile,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	return handler.login(c, false)
}

// AdminLogin is the admin console entry point; non-admin credentials are
// rejected even when valid.
func (handler *Handler) AdminLogin(c *fiber.Ctx) error {
	return handler.login(c, true)
}

func (handler *Handler) login(c *fiber.Ctx, adminOnly bool) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(input.Email, input.Password, adminOnly)
	if err != nil {
		return serviceError(c, err)
	}

	accessToken, refreshToken, err := handler.buildTokenPair(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "token generation failed")
	}

	return c.JSON(fiber.Map{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// RefreshToken exchanges a valid refresh token for a fresh pair. The user is
// re-checked against storage so deactivation takes effect immediately.
func (handler *Handler) RefreshToken(c *fiber.Ctx) error {
	var input refreshInput
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	claims, err := handler.parseToken(input.RefreshToken, tokenPurposeRefresh)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid refresh token")
	}

	handler.ensureDependencies()
	user, found, err := handler.authService.FindByID(claims.UserID)
	if err != nil || !found || !user.IsActive {
		return apiError(c, fiber.StatusUnauthorized, "invalid refresh token")
	}

	accessToken, refreshToken, err := handler.buildTokenPair(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "token generation failed")
	}

	return c.JSON(fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	if err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword, input.ConfirmPassword); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "password changed"})
}
