package middleware

import (
	"errors"
	"strings"

	"quiz-board/internal/logger"
	"quiz-board/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer"
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
)

// Protected rejects requests without a valid access token and stores the
// token's user id under UserIDKey.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return unauthorized(c, "MISSING_AUTH_HEADER", "Authorization header is missing")
		}
		tokenString, ok := bearerToken(authHeader)
		if !ok {
			return unauthorized(c, "INVALID_AUTH_SCHEME", "Authorization scheme is not Bearer")
		}
		if tokenString == "" {
			return unauthorized(c, "EMPTY_TOKEN", "Token is empty")
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrWrongTokenType) {
				return unauthorized(c, "INVALID_TOKEN_TYPE", "Access token required")
			}
			return unauthorized(c, "INVALID_TOKEN", "Token is invalid or expired")
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// OptionalAuth sets UserIDKey when a valid access token is present and
// otherwise lets the request through anonymously.
func OptionalAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		tokenString, ok := bearerToken(authHeader)
		if !ok || tokenString == "" {
			return c.Next()
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("OptionalAuth: proceeding as anonymous", zap.Error(err))
			return c.Next()
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// bearerToken splits "Bearer <token>". The header value may arrive with
// trailing whitespace already trimmed, so a bare "Bearer" is an empty token.
func bearerToken(header string) (string, bool) {
	scheme, token, _ := strings.Cut(strings.TrimSpace(header), " ")
	if scheme != BearerSchema {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}
