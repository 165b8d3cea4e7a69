package http

import (
	appDream "github.com/TaskGlass/dreamvault/pkg/app/dream"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getDreamHandler struct {
	logger *logrus.Logger
	finder appDream.Finder
}

func NewGetDreamHandler(logger *logrus.Logger, finder appDream.Finder) Handler {
	return &getDreamHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Retrieve a dream by ID
// @Description Returns one of the authenticated user's dream entries
// @Tags Dreams
// @Produce json
// @Param dream_id path string true "Dream ID"
// @Success 200 {object} dream.Dream "Dream"
// @Failure 404 {object} map[string]interface{} "Dream not found"
// @Router /api/v1/dreams/{dream_id} [get]
func (s *getDreamHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	dreamID, err := uuid.Parse(c.Params("dream_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid dream_id"})
	}

	entry, err := s.finder.GetByID(c.Context(), userID, dreamID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "dream not found"})
		}
		s.logger.WithError(err).Error("failed to get dream")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get dream"})
	}

	return c.Status(fiber.StatusOK).JSON(entry)
}
