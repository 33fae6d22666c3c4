package controller

import (
	"context"

	"ai-course-be/internal/dto"
	"ai-course-be/internal/pkg/serverutils"
	"ai-course-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICourseController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	AddFile(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Publish(ctx *fiber.Ctx) error
	Archive(ctx *fiber.Ctx) error
}

type courseController struct {
	service service.ICourseService
}

func NewCourseController(service service.ICourseService) ICourseController {
	return &courseController{service: service}
}

func (c *courseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/course/v1")
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Post(":id/file", c.AddFile)
	h.Post(":id/approve", c.Approve)
	h.Post(":id/publish", c.Publish)
	h.Post(":id/archive", c.Archive)
}

func (c *courseController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Course created", res))
}

func (c *courseController) GetAll(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetAll(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Courses", res))
}

func (c *courseController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid course ID"))
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Course details", res))
}

func (c *courseController) AddFile(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid course ID"))
	}

	var req dto.RegisterCourseFileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.AddFile(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Course file registered", res))
}

func (c *courseController) Approve(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.service.Approve, "Course approved")
}

func (c *courseController) Publish(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.service.Publish, "Course published")
}

func (c *courseController) Archive(ctx *fiber.Ctx) error {
	return c.transition(ctx, c.service.Archive, "Course archived")
}

func (c *courseController) transition(
	ctx *fiber.Ctx,
	fn func(c context.Context, id uuid.UUID) (*dto.CourseStatusResponse, error),
	message string,
) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid course ID"))
	}

	res, err := fn(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(message, res))
}
