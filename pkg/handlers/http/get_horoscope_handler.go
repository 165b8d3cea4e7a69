package http

import (
	"errors"

	appContent "github.com/TaskGlass/dreamvault/pkg/app/content"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getHoroscopeHandler struct {
	logger     *logrus.Logger
	horoscoper appContent.Horoscoper
}

func NewGetHoroscopeHandler(logger *logrus.Logger, horoscoper appContent.Horoscoper) Handler {
	return &getHoroscopeHandler{
		logger:     logger,
		horoscoper: horoscoper,
	}
}

// Handle @Summary Daily horoscope
// @Description Returns today's horoscope for the given zodiac sign
// @Tags Content
// @Produce json
// @Param sign path string true "Zodiac sign"
// @Success 200 {object} content.Daily "Horoscope"
// @Failure 400 {object} map[string]interface{} "Unknown zodiac sign"
// @Failure 403 {object} map[string]interface{} "Monthly quota exhausted"
// @Router /api/v1/horoscope/{sign} [get]
func (s *getHoroscopeHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	daily, err := s.horoscoper.DailyHoroscope(c.Context(), userID, c.Params("sign"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidZodiac):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown zodiac sign"})
		case errors.Is(err, domain.ErrQuotaExceeded):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "monthly horoscope allowance exhausted",
				"code":  CodeQuotaExceeded,
				"quota": daily.Quota,
			})
		default:
			s.logger.WithError(err).Error("failed to get horoscope")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get horoscope"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(daily)
}
