package http

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/adapters/out/auth"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// TokenValidator resolves a bearer token to an authenticated principal.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Principal, error)
}

// AuthMiddleware validates the Authorization header on every request and
// stores the resulting principal in the request context. Requests without a
// valid token never reach the handlers.
func AuthMiddleware(validator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing authorization header",
				})
			}

			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "authorization header must use the Bearer scheme",
				})
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			principal, err := validator.ValidateToken(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom extracts the authenticated principal stored by AuthMiddleware.
func PrincipalFrom(c echo.Context) (auth.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(auth.Principal)
	return principal, ok
}
