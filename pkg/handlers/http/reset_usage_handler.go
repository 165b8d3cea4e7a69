package http

import (
	"errors"

	appUsage "github.com/TaskGlass/dreamvault/pkg/app/usage"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type resetUsageHandler struct {
	logger   *logrus.Logger
	resetter appUsage.Resetter
}

func NewResetUsageHandler(logger *logrus.Logger, resetter appUsage.Resetter) Handler {
	return &resetUsageHandler{
		logger:   logger,
		resetter: resetter,
	}
}

// Handle @Summary Reset usage
// @Description Deletes the month's usage ledger row; available only in development
// @Tags Usage
// @Success 204 "Usage reset"
// @Failure 403 {object} map[string]interface{} "Disabled outside development"
// @Router /api/v1/usage/reset [post]
func (s *resetUsageHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	if err := s.resetter.Reset(c.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrResetForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "usage reset is disabled"})
		}
		s.logger.WithError(err).Error("failed to reset usage")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to reset usage"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
