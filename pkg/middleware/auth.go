package middleware

import (
	"fmt"
	"strings"

	"github.com/TaskGlass/dreamvault/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

type authMiddleware struct {
	logger    *logrus.Logger
	jwtSecret []byte
}

func NewAuthMiddleware(logger *logrus.Logger, jwtSecret string) Middleware {
	return &authMiddleware{
		logger:    logger,
		jwtSecret: []byte(jwtSecret),
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "malformed authorization header"})
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			m.logger.WithError(err).Debug("rejected invalid token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token missing subject"})
		}

		ctx.Locals(common.UserIDContextKey, subject)
		if email, ok := claims["email"].(string); ok {
			ctx.Locals(common.UserEmailContextKey, email)
		}

		return ctx.Next()
	}
}
