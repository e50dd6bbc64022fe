package controller

import (
	"errors"

	"caseflow-be/internal/dto"
	"caseflow-be/internal/pkg/serverutils"
	"caseflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	GetCurrent(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Archive(ctx *fiber.Ctx) error
}

type planController struct {
	planService service.IPlanService
}

func NewPlanController(planService service.IPlanService) IPlanController {
	return &planController{
		planService: planService,
	}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plan/v1")
	h.Get("", c.GetCurrent)
	h.Get(":slug/history", c.History)

	admin := h.Group("")
	admin.Use(serverutils.JwtMiddleware)
	admin.Post("", c.Create)
	admin.Put(":slug", c.Update)
	admin.Delete(":slug", c.Archive)
}

func (c *planController) GetCurrent(ctx *fiber.Ctx) error {
	res, err := c.planService.GetCurrent(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Current plans", res))
}

func (c *planController) History(ctx *fiber.Ctx) error {
	res, err := c.planService.History(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Plan history", res))
}

func (c *planController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.planService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan created", res))
}

func (c *planController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req.CreatePlanRequest); err != nil {
		return err
	}

	res, err := c.planService.Update(ctx.Context(), ctx.Params("slug"), &req)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Plan updated", res))
}

func (c *planController) Archive(ctx *fiber.Ctx) error {
	err := c.planService.Archive(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Plan archived", nil))
}
