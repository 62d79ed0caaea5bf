package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/minhngct/vitatrack/internal/models"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

// AdminRequired must run after AuthRequired.
func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if user.Role != models.RoleAdmin {
		return apiError(c, fiber.StatusForbidden, "access denied")
	}
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	rawToken := bearerToken(c)
	if rawToken == "" {
		return nil, errors.New("missing bearer token")
	}

	claims, err := handler.parseToken(rawToken, tokenPurposeAccess)
	if err != nil {
		return nil, err
	}

	handler.ensureDependencies()
	user, found, err := handler.authService.FindByID(claims.UserID)
	if err != nil || !found {
		return nil, errInvalidToken
	}
	if !user.IsActive {
		return nil, errors.New("account deactivated")
	}
	return &user, nil
}

func bearerToken(c *fiber.Ctx) string {
	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
