package controller

import (
	"errors"

	"caseflow-be/internal/pkg/serverutils"
	"caseflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICaseController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type caseController struct {
	caseService service.ICaseService
}

func NewCaseController(caseService service.ICaseService) ICaseController {
	return &caseController{
		caseService: caseService,
	}
}

func (c *caseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/case/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
}

func (c *caseController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.caseService.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("User cases", res))
}

func (c *caseController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid case ID"))
	}

	res, err := c.caseService.Show(ctx.Context(), userId, id)
	if err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Case detail", res))
}
