package http

import (
	appUsage "github.com/TaskGlass/dreamvault/pkg/app/usage"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getUsageHandler struct {
	logger *logrus.Logger
	reader appUsage.Reader
}

func NewGetUsageHandler(logger *logrus.Logger, reader appUsage.Reader) Handler {
	return &getUsageHandler{
		logger: logger,
		reader: reader,
	}
}

// Handle @Summary Current usage
// @Description Returns the month's consumption and remaining allowance per feature
// @Tags Usage
// @Produce json
// @Success 200 {object} usage.Snapshot "Usage snapshot"
// @Router /api/v1/usage [get]
func (s *getUsageHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	snapshot, err := s.reader.Current(c.Context(), userID)
	if err != nil {
		s.logger.WithError(err).Error("failed to read usage")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read usage"})
	}

	return c.Status(fiber.StatusOK).JSON(snapshot)
}
