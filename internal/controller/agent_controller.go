package controller

import (
	"ai-course-be/internal/pkg/serverutils"
	"ai-course-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	IndexAsync(ctx *fiber.Ctx) error
}

type agentController struct {
	generationService service.IGenerationService
	indexingService   service.IIndexingService
}

func NewAgentController(
	generationService service.IGenerationService,
	indexingService service.IIndexingService,
) IAgentController {
	return &agentController{
		generationService: generationService,
		indexingService:   indexingService,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Post("course/:id/generate", c.Generate)
	h.Post("course/:id/index", c.Index)
	h.Post("course/:id/index/async", c.IndexAsync)
}

func (c *agentController) Generate(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid course ID"))
	}

	res, err := c.generationService.Generate(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Course generated", res))
}

func (c *agentController) Index(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid course ID"))
	}

	res, err := c.indexingService.Index(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Course indexed", res))
}

func (c *agentController) IndexAsync(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid course ID"))
	}

	if err := c.indexingService.IndexAsync(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse[any]("Index request queued", nil))
}
