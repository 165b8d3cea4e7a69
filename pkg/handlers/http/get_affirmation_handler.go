package http

import (
	"errors"

	appContent "github.com/TaskGlass/dreamvault/pkg/app/content"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getAffirmationHandler struct {
	logger   *logrus.Logger
	affirmer appContent.Affirmer
}

func NewGetAffirmationHandler(logger *logrus.Logger, affirmer appContent.Affirmer) Handler {
	return &getAffirmationHandler{
		logger:   logger,
		affirmer: affirmer,
	}
}

// Handle @Summary Daily affirmation
// @Description Returns today's affirmation
// @Tags Content
// @Produce json
// @Success 200 {object} content.Daily "Affirmation"
// @Failure 403 {object} map[string]interface{} "Monthly quota exhausted"
// @Router /api/v1/affirmation [get]
func (s *getAffirmationHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	daily, err := s.affirmer.DailyAffirmation(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "monthly affirmation allowance exhausted",
				"code":  CodeQuotaExceeded,
				"quota": daily.Quota,
			})
		}
		s.logger.WithError(err).Error("failed to get affirmation")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get affirmation"})
	}

	return c.Status(fiber.StatusOK).JSON(daily)
}
