package http

import (
	appDream "github.com/TaskGlass/dreamvault/pkg/app/dream"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type deleteDreamHandler struct {
	logger  *logrus.Logger
	deleter appDream.Deleter
}

func NewDeleteDreamHandler(logger *logrus.Logger, deleter appDream.Deleter) Handler {
	return &deleteDreamHandler{
		logger:  logger,
		deleter: deleter,
	}
}

// Handle @Summary Delete a dream
// @Description Deletes one of the authenticated user's dream entries
// @Tags Dreams
// @Param dream_id path string true "Dream ID"
// @Success 204 "Dream deleted"
// @Failure 404 {object} map[string]interface{} "Dream not found"
// @Router /api/v1/dreams/{dream_id} [delete]
func (s *deleteDreamHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	dreamID, err := uuid.Parse(c.Params("dream_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid dream_id"})
	}

	if err := s.deleter.Delete(c.Context(), userID, dreamID); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "dream not found"})
		}
		s.logger.WithError(err).Error("failed to delete dream")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete dream"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
