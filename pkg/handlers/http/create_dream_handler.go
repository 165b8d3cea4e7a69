package http

import (
	"errors"

	appDream "github.com/TaskGlass/dreamvault/pkg/app/dream"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/TaskGlass/dreamvault/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createDreamHandler struct {
	logger  *logrus.Logger
	creator appDream.Creator
}

func NewCreateDreamHandler(logger *logrus.Logger, creator appDream.Creator) Handler {
	return &createDreamHandler{
		logger:  logger,
		creator: creator,
	}
}

// Handle @Summary Record a dream
// @Description Saves a new dream journal entry for the authenticated user
// @Tags Dreams
// @Accept json
// @Produce json
// @Param dream body request.CreateDreamRequest true "Dream entry"
// @Success 201 {object} dream.Dream "Dream created"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/v1/dreams [post]
func (s *createDreamHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req request.CreateDreamRequest
	if err := c.BodyParser(&req); err != nil {
		s.logger.WithError(err).Error("Failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entry, err := s.creator.Create(c.Context(), userID, appDream.CreateInput{
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Tags:    req.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDreamText) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		s.logger.WithError(err).Error("failed to create dream")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create dream"})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}
