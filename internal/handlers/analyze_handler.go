package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KatrinaAgni/ankAsa-Career/internal/models"
	"github.com/KatrinaAgni/ankAsa-Career/internal/services"
	"github.com/KatrinaAgni/ankAsa-Career/internal/validation"
)

type AnalyzeHandler struct {
	analyzerService services.AnalyzerService
	timeout         time.Duration
}

func NewAnalyzeHandler(analyzerService services.AnalyzerService, timeout time.Duration) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzerService: analyzerService,
		timeout:         timeout,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.analyzerService.Analyze(ctx, &req)
	if err != nil {
		return respondFlowError(c, "CV analysis failed. Please try again later.", err)
	}

	return c.JSON(result)
}

// respondFlowError maps flow failures onto HTTP statuses. Validation
// failures carry the full violation list back to the caller; invocation
// and output-shape failures share one generic user message and differ
// only in what gets logged.
func respondFlowError(c *fiber.Ctx, genericMessage string, err error) error {
	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "Request validation failed",
			"violations": validationErr.Violations,
		})
	}

	var shapeErr *services.OutputShapeError
	if errors.As(err, &shapeErr) {
		log.Printf("❌ Model output shape mismatch: %v\n", shapeErr)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": genericMessage,
		})
	}

	var invocationErr *services.InvocationError
	if errors.As(err, &invocationErr) {
		log.Printf("❌ Model invocation failed: %v\n", invocationErr)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": genericMessage,
		})
	}

	log.Printf("❌ Unexpected flow error: %v\n", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": genericMessage,
	})
}
