package controller

import (
	"errors"

	"caseflow-be/internal/dto"
	"caseflow-be/internal/pkg/serverutils"
	"caseflow-be/internal/service"
	"caseflow-be/pkg/wizard"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWizardController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	Advance(ctx *fiber.Ctx) error
	Retreat(ctx *fiber.Ctx) error
	JumpTo(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	UpdateBasicInfo(ctx *fiber.Ctx) error
	AddParty(ctx *fiber.Ctx) error
	RemoveParty(ctx *fiber.Ctx) error
	AddKeyDate(ctx *fiber.Ctx) error
	RemoveKeyDate(ctx *fiber.Ctx) error
	AddDocument(ctx *fiber.Ctx) error
	RemoveDocument(ctx *fiber.Ctx) error
}

type wizardController struct {
	wizardService service.IWizardService
}

func NewWizardController(wizardService service.IWizardService) IWizardController {
	return &wizardController{
		wizardService: wizardService,
	}
}

func (c *wizardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wizard/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.State)
	h.Post("advance", c.Advance)
	h.Post("retreat", c.Retreat)
	h.Post("jump", c.JumpTo)
	h.Post("clear", c.Clear)
	h.Post("submit", c.Submit)
	h.Put("basic-info", c.UpdateBasicInfo)
	h.Post("parties", c.AddParty)
	h.Delete("parties/:id", c.RemoveParty)
	h.Post("key-dates", c.AddKeyDate)
	h.Delete("key-dates/:id", c.RemoveKeyDate)
	h.Post("documents", c.AddDocument)
	h.Delete("documents/:id", c.RemoveDocument)
}

// actor pulls the authenticated user's id and role out of the JWT locals.
func actor(ctx *fiber.Ctx) (uuid.UUID, wizard.Role) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	userType, _ := ctx.Locals("user_type").(string)
	return userId, wizard.ParseRole(userType)
}

func stepFailure(ctx *fiber.Ctx, state *wizard.State, res *wizard.StepResult) error {
	return ctx.Status(fiber.StatusUnprocessableEntity).JSON(dto.StepFailureResponse{
		Errors:   res.Errors,
		Warnings: res.Warnings,
		State:    *state,
	})
}

func (c *wizardController) State(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	state, err := c.wizardService.State(ctx.Context(), userId, role)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Wizard state", state))
}

func (c *wizardController) Advance(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	state, res, err := c.wizardService.Advance(ctx.Context(), userId, role)
	if err != nil {
		return err
	}
	if !res.Valid {
		return stepFailure(ctx, state, res)
	}

	return ctx.JSON(serverutils.SuccessResponse("Advanced", state))
}

func (c *wizardController) Retreat(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	state, err := c.wizardService.Retreat(ctx.Context(), userId, role)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Moved back", state))
}

func (c *wizardController) JumpTo(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	var req dto.JumpToStepRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	state, err := c.wizardService.JumpTo(ctx.Context(), userId, role, req.Step)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Jumped", state))
}

func (c *wizardController) Clear(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	state, err := c.wizardService.Clear(ctx.Context(), userId, role)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Wizard cleared", state))
}

func (c *wizardController) Submit(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	caseId, state, result, err := c.wizardService.Submit(ctx.Context(), userId, role)
	if err != nil {
		if service.IsSubmitValidation(err) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(dto.SubmitFailureResponse{
				Errors: result.Steps,
				State:  *state,
			})
		}
		if errors.Is(err, service.ErrDuplicateCaseNumber) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Case created", dto.SubmitSuccessResponse{
		CaseId: caseId,
		State:  *state,
	}))
}

func (c *wizardController) UpdateBasicInfo(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	var req dto.UpdateBasicInfoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	state, err := c.wizardService.UpdateBasicInfo(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Basic information updated", state))
}

func (c *wizardController) AddParty(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	var req dto.AddPartyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	state, res, err := c.wizardService.AddParty(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}
	if !res.Valid {
		return stepFailure(ctx, state, res)
	}

	return ctx.JSON(serverutils.SuccessResponse("Party added", state))
}

func (c *wizardController) RemoveParty(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	state, err := c.wizardService.RemoveParty(ctx.Context(), userId, role, ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Party removed", state))
}

func (c *wizardController) AddKeyDate(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	var req dto.AddKeyDateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	state, res, err := c.wizardService.AddKeyDate(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}
	if !res.Valid {
		return stepFailure(ctx, state, res)
	}

	return ctx.JSON(serverutils.SuccessResponse("Key date added", state))
}

func (c *wizardController) RemoveKeyDate(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	state, err := c.wizardService.RemoveKeyDate(ctx.Context(), userId, role, ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Key date removed", state))
}

func (c *wizardController) AddDocument(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	var req dto.AddDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	state, res, err := c.wizardService.AddDocument(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}
	if !res.Valid {
		return stepFailure(ctx, state, res)
	}

	return ctx.JSON(serverutils.SuccessResponse("Document added", state))
}

func (c *wizardController) RemoveDocument(ctx *fiber.Ctx) error {
	userId, role := actor(ctx)

	state, err := c.wizardService.RemoveDocument(ctx.Context(), userId, role, ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Document removed", state))
}
