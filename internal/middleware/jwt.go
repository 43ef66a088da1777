package middleware // package middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/homekeep/home-maintenance-api/internal/utils"
)

// ContextUserID is the echo context key under which JWTAuth stores the
// authenticated user's id (the hex ObjectID from the token's userId claim).
const ContextUserID = "userId"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's user id into the request context. The provided
// secret must match the one used when issuing tokens. Verification is
// stateless: no store is consulted, so a token stays valid until its
// embedded expiry even if the user has since logged in again. Failures are
// 403s with a JSON message, matching the API's error contract.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "no token provided"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			userID, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "invalid or expired token"})
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
