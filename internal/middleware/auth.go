package middleware

import (
	"net/http"
	"strings"

	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/jwtutil"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/logger"
	"github.com/CodeEntraHQ/codeentra-landing-page/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the JWT token from the Authorization header.
// Failures are returned as errors so the central error handler shapes them
// into the standard envelope.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format, expected Bearer token")
		}

		// Extract the token
		tokenString := parts[1]

		// Validate the token
		claims, err := jwtutil.ValidateToken(tokenString)
		if err != nil {
			log.Warn("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		// Store admin info in context for later use
		c.Set("admin_id", claims.AdminID)
		c.Set("email", claims.Email)

		// Token is valid, proceed with the request
		return next(c)
	}
}
