package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KatrinaAgni/ankAsa-Career/internal/models"
	"github.com/KatrinaAgni/ankAsa-Career/internal/services"
)

type BuildHandler struct {
	builderService services.BuilderService
	timeout        time.Duration
}

func NewBuildHandler(builderService services.BuilderService, timeout time.Duration) *BuildHandler {
	return &BuildHandler{
		builderService: builderService,
		timeout:        timeout,
	}
}

// HandleBuild handles POST /build
func (h *BuildHandler) HandleBuild(c *fiber.Ctx) error {
	var req models.CvBuildRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.builderService.Build(ctx, &req)
	if err != nil {
		return respondFlowError(c, "CV build failed. Please try again later.", err)
	}

	return c.JSON(result)
}
