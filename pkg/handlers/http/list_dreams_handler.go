package http

import (
	appDream "github.com/TaskGlass/dreamvault/pkg/app/dream"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listDreamsHandler struct {
	logger *logrus.Logger
	finder appDream.Finder
}

func NewListDreamsHandler(logger *logrus.Logger, finder appDream.Finder) Handler {
	return &listDreamsHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary List dreams
// @Description Lists the authenticated user's dreams, newest first
// @Tags Dreams
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dream.Dream "Dreams"
// @Router /api/v1/dreams [get]
func (s *listDreamsHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	dreams, err := s.finder.ListByUser(c.Context(), userID, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		s.logger.WithError(err).Error("failed to list dreams")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list dreams"})
	}

	return c.Status(fiber.StatusOK).JSON(dreams)
}
