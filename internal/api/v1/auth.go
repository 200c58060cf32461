package v1

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sashreekm/devfolio/internal/auth"
	"github.com/sashreekm/devfolio/pkg/utils"
)

// Login authenticates the site owner against the configured credentials and
// issues the session cookie pair.
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}
	in := new(LoginInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		Logger.Warn(c.Context()).WithFields("error", err).Logs(fmt.Sprintf("Failed to parse login body: %v", err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
		})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err,
		})
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != Cfg.AdminEmail || utils.ComparePasswords(Cfg.AdminPasswordHash, in.Password) != nil {
		Logger.Warn(c.Context()).WithMeta(utils.Map{"email": email}).Logs("Rejected admin login")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if err := auth.IssueSession(c, AuthOpts, email); err != nil {
		Logger.Error(c.Context()).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to issue admin session")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start session",
		})
	}

	Logger.Info(c.Context()).Logs("Admin logged in")
	return utils.SendSuccess(c, nil)
}

// Refresh rotates the access token off a valid refresh token. The middleware
// already does this transparently; the endpoint exists for explicit clients.
func Refresh(c *fiber.Ctx) error {
	if !auth.HasAdminSession(c, AuthOpts) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Session expired",
		})
	}
	return utils.SendSuccess(c, nil)
}

// Logout blacklists the current session tokens and clears cookies.
func Logout(c *fiber.Ctx) error {
	auth.RevokeSession(c, AuthOpts)
	Logger.Info(c.Context()).Logs("Admin logged out")
	return utils.SendSuccess(c, nil)
}
