package controller

import (
	"ai-course-be/internal/dto"
	"ai-course-be/internal/pkg/serverutils"
	"ai-course-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMentorController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
}

type mentorController struct {
	service service.IMentorService
}

func NewMentorController(service service.IMentorService) IMentorController {
	return &mentorController{service: service}
}

func (c *mentorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mentor/v1")
	h.Post("learn-block/:id/ask", c.Ask)
}

func (c *mentorController) Ask(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid learn block ID"))
	}

	var req dto.AskMentorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Ask(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Mentor answer", res))
}
