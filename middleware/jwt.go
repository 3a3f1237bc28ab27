package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"homebuddy/utils"
)

// JWTMiddleware resolves the acting principal from the bearer token and
// attaches it to the request context. Guarded routes never see a request
// without a valid principal.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Authorization header is required",
				})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Invalid authorization header format",
				})
			}

			tokenString := tokenParts[1]
			claims, err := utils.ValidateJWT(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Invalid token",
				})
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}

// LandlordOnly restricts a route to principals with the landlord role.
// Runs after JWTMiddleware. There is no admin override: ownership of a
// property is the only thing that grants mutation rights.
func LandlordOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("user_role").(string)
			if role != "landlord" {
				return c.JSON(http.StatusForbidden, map[string]string{
					"message": "Landlord access required",
				})
			}
			return next(c)
		}
	}
}
