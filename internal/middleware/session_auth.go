package middleware

import (
	"strings"

	"samayak/internal/domain"
	"samayak/internal/logger"
	"samayak/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SessionIDKey        = "sessionID" // Key for storing the session ID in fiber.Ctx locals
	SessionIDParam      = "id"
)

// SessionToken requires a bearer token issued for the session named in the route.
func SessionToken(tokens service.SessionTokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return domain.NewError(domain.CodeUnauthorized, "Invalid session token", err)
		}

		if sessionID := c.Params(SessionIDParam); sessionID != claims.Subject {
			logger.Get().Warn("Session token used for another session",
				zap.String("token_session", claims.Subject),
				zap.String("route_session", sessionID))
			return domain.NewUnauthorizedError("Token does not belong to this session")
		}

		c.Locals(SessionIDKey, claims.Subject)
		return c.Next()
	}
}
