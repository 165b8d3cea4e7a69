package http

import (
	"errors"

	appContent "github.com/TaskGlass/dreamvault/pkg/app/content"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getMoonPhaseHandler struct {
	logger *logrus.Logger
	moon   appContent.MoonReader
}

func NewGetMoonPhaseHandler(logger *logrus.Logger, moon appContent.MoonReader) Handler {
	return &getMoonPhaseHandler{
		logger: logger,
		moon:   moon,
	}
}

// Handle @Summary Current moon phase
// @Description Returns today's moon phase and illumination
// @Tags Content
// @Produce json
// @Success 200 {object} content.MoonPhase "Moon phase"
// @Failure 403 {object} map[string]interface{} "Monthly quota exhausted"
// @Router /api/v1/moon-phase [get]
func (s *getMoonPhaseHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	phase, err := s.moon.CurrentPhase(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "monthly moon phase allowance exhausted",
				"code":  CodeQuotaExceeded,
				"quota": phase.Quota,
			})
		}
		s.logger.WithError(err).Error("failed to get moon phase")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get moon phase"})
	}

	return c.Status(fiber.StatusOK).JSON(phase)
}
