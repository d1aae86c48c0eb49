// FILE: internal/controller/plan_controller.go
// Controller for the plan registry, Plan↔Module links and the
// entitlement projection endpoints
package controller

import (
	"carelytix-be/internal/dto"
	"carelytix-be/internal/pkg/apperror"
	"carelytix-be/internal/pkg/serverutils"
	"carelytix-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PlanController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type planController struct {
	adminService service.IAdminService
}

func NewPlanController(adminService service.IAdminService) PlanController {
	return &planController{
		adminService: adminService,
	}
}

func (c *planController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	plans := api.Group("/plans", jwtMiddleware)
	plans.Get("/", c.GetAll)
	plans.Post("/", c.Create)
	plans.Get("/:id", c.Get)
	plans.Put("/:id", c.Update)
	plans.Post("/:id/modules", c.AddModules)
	plans.Delete("/:id/modules", c.RemoveModules)
}

// GetAll returns every plan with its resolved entitlement tree.
func (c *planController) GetAll(ctx *fiber.Ctx) error {
	plans, err := c.adminService.GetAllPlans(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", plans))
}

// Get returns one plan's entitlement projection, including subscribers.
func (c *planController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid plan id")
	}

	plan, err := c.adminService.GetPlan(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan retrieved", plan))
}

func (c *planController) Create(ctx *fiber.Ctx) error {
	req, err := serverutils.ParseAndValidate[dto.CreatePlanRequest](ctx)
	if err != nil {
		return err
	}

	plan, err := c.adminService.CreatePlan(ctx.Context(), *req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan created", plan))
}

func (c *planController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid plan id")
	}

	req, err := serverutils.ParseAndValidate[dto.UpdatePlanRequest](ctx)
	if err != nil {
		return err
	}

	plan, err := c.adminService.UpdatePlan(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", plan))
}

func (c *planController) AddModules(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid plan id")
	}

	req, err := serverutils.ParseAndValidate[dto.AddModulesRequest](ctx)
	if err != nil {
		return err
	}

	res, err := c.adminService.AddModules(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Modules linked", res))
}

func (c *planController) RemoveModules(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid plan id")
	}

	req, err := serverutils.ParseAndValidate[dto.RemoveModulesRequest](ctx)
	if err != nil {
		return err
	}

	res, err := c.adminService.RemoveModules(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Modules unlinked", res))
}
