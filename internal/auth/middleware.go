package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sashreekm/devfolio/pkg/logger"
	storage "github.com/sashreekm/devfolio/pkg/redis"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"

	refreshTTL = 7 * 24 * time.Hour
)

// Options carries the collaborators the auth middleware needs.
type Options struct {
	Rclient    *storage.RedisClient
	Logger     *logger.Logger
	AdminEmail string
}

// RequireAdmin gates a route behind a valid admin session. An expired access
// token is refreshed transparently when the refresh token is still valid.
func RequireAdmin(opt Options) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := resolveSession(c, opt)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Admin session required",
			})
		}
		c.Locals("admin_id", email)
		return c.Next()
	}
}

// HasAdminSession reports whether the request carries a valid admin session
// without rejecting the request. Used by list endpoints whose visibility
// widens for admins (the `admin=true` query flag).
func HasAdminSession(c *fiber.Ctx, opt Options) bool {
	email, err := resolveSession(c, opt)
	if err != nil {
		return false
	}
	c.Locals("admin_id", email)
	return true
}

func resolveSession(c *fiber.Ctx, opt Options) (string, error) {
	accessToken := c.Cookies(accessCookie)
	refreshToken := c.Cookies(refreshCookie)

	if accessToken != "" && opt.Rclient.Exists(c.Context(), "blacklist:access:"+accessToken).Val() > 0 {
		opt.Logger.Warn(c.Context()).Logs("Attempted use of blacklisted access token")
		return "", ErrInvalidToken
	}
	if refreshToken != "" && opt.Rclient.Exists(c.Context(), "blacklist:refresh:"+refreshToken).Val() > 0 {
		opt.Logger.Warn(c.Context()).Logs("Attempted use of blacklisted refresh token")
		return "", ErrInvalidToken
	}

	if accessToken != "" {
		claims, err := VerifyToken(accessToken)
		if err == nil {
			return claims.AdminEmail, nil
		}
		if err != ErrExpiredToken {
			return "", err
		}
	}

	// No usable access token; try the refresh token.
	newAccess, email, err := refreshSession(c, opt, refreshToken)
	if err != nil {
		return "", err
	}
	setAccessCookie(c, newAccess)
	return email, nil
}

func refreshSession(c *fiber.Ctx, opt Options, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrInvalidToken
	}

	email, err := opt.Rclient.Get(c.Context(), "refresh:"+refreshToken).Result()
	if err != nil || email == "" {
		opt.Logger.Warn(c.Context()).Logs("Refresh token not found or expired")
		return "", "", ErrInvalidToken
	}
	if email != opt.AdminEmail {
		return "", "", ErrInvalidToken
	}

	newAccess, err := GenerateAccessToken(email)
	if err != nil {
		opt.Logger.Error(c.Context()).WithMeta(map[string]string{"error": err.Error()}).Logs("Failed to mint access token on refresh")
		return "", "", err
	}
	return newAccess, email, nil
}

// IssueSession mints a fresh access/refresh cookie pair for the admin and
// registers the refresh token in Redis.
func IssueSession(c *fiber.Ctx, opt Options, email string) error {
	accessToken, err := GenerateAccessToken(email)
	if err != nil {
		return err
	}
	refreshToken := GenerateRefreshToken()
	if err := opt.Rclient.Set(c.Context(), "refresh:"+refreshToken, email, refreshTTL).Err(); err != nil {
		return err
	}

	setAccessCookie(c, accessToken)
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookie,
		Value:    refreshToken,
		Expires:  time.Now().Add(refreshTTL),
		HTTPOnly: true,
		SameSite: "Strict",
	})
	return nil
}

// RevokeSession blacklists both tokens of the current session and clears the
// cookies.
func RevokeSession(c *fiber.Ctx, opt Options) {
	if accessToken := c.Cookies(accessCookie); accessToken != "" {
		opt.Rclient.Set(c.Context(), "blacklist:access:"+accessToken, "1", 15*time.Minute)
	}
	if refreshToken := c.Cookies(refreshCookie); refreshToken != "" {
		opt.Rclient.Set(c.Context(), "blacklist:refresh:"+refreshToken, "1", refreshTTL)
		opt.Rclient.Del(c.Context(), "refresh:"+refreshToken)
	}
	c.ClearCookie(accessCookie)
	c.ClearCookie(refreshCookie)
}

func setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     accessCookie,
		Value:    token,
		Expires:  time.Now().Add(15 * time.Minute),
		HTTPOnly: true,
		SameSite: "Strict",
	})
}
