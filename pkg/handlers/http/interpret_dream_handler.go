package http

import (
	"errors"

	appInterpretation "github.com/TaskGlass/dreamvault/pkg/app/interpretation"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type interpretDreamHandler struct {
	logger      *logrus.Logger
	interpreter appInterpretation.Interpreter
}

func NewInterpretDreamHandler(logger *logrus.Logger, interpreter appInterpretation.Interpreter) Handler {
	return &interpretDreamHandler{
		logger:      logger,
		interpreter: interpreter,
	}
}

// Handle @Summary Interpret a dream
// @Description Generates an AI interpretation for a dream, consuming one unit
// of the monthly interpretation allowance
// @Tags Dreams
// @Produce json
// @Param dream_id path string true "Dream ID"
// @Success 200 {object} interpretation.Outcome "Interpretation"
// @Failure 404 {object} map[string]interface{} "Dream not found"
// @Failure 403 {object} map[string]interface{} "Monthly quota exhausted"
// @Router /api/v1/dreams/{dream_id}/interpretation [post]
func (s *interpretDreamHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	dreamID, err := uuid.Parse(c.Params("dream_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid dream_id"})
	}

	outcome, err := s.interpreter.Interpret(c.Context(), userID, dreamID)
	if err != nil {
		switch {
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "dream not found"})
		case errors.Is(err, domain.ErrQuotaExceeded):
			// 403 rather than 429: quota exhaustion calls for an upgrade, not
			// a retry, and must stay distinguishable from rate limiting.
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "monthly interpretation allowance exhausted",
				"code":  CodeQuotaExceeded,
				"quota": outcome.Quota,
			})
		default:
			s.logger.WithError(err).Error("failed to interpret dream")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to interpret dream"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(outcome)
}
