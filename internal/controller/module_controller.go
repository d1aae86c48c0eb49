// FILE: internal/controller/module_controller.go
// Controller for the module registry and Module↔Feature link endpoints
package controller

import (
	"carelytix-be/internal/dto"
	"carelytix-be/internal/pkg/apperror"
	"carelytix-be/internal/pkg/serverutils"
	"carelytix-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ModuleController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type moduleController struct {
	adminService service.IAdminService
}

func NewModuleController(adminService service.IAdminService) ModuleController {
	return &moduleController{
		adminService: adminService,
	}
}

func (c *moduleController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	modules := api.Group("/modules", jwtMiddleware)
	modules.Get("/", c.GetAll)
	modules.Post("/", c.Create)
	modules.Get("/:id", c.Get)
	modules.Put("/:id", c.Update)
	modules.Post("/:id/features", c.AddFeatures)
	modules.Delete("/:id/features", c.RemoveFeatures)
}

func (c *moduleController) GetAll(ctx *fiber.Ctx) error {
	modules, err := c.adminService.GetAllModules(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Modules retrieved", modules))
}

func (c *moduleController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid module id")
	}

	module, err := c.adminService.GetModule(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Module retrieved", module))
}

func (c *moduleController) Create(ctx *fiber.Ctx) error {
	req, err := serverutils.ParseAndValidate[dto.CreateModuleRequest](ctx)
	if err != nil {
		return err
	}

	module, err := c.adminService.CreateModule(ctx.Context(), *req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Module created", module))
}

func (c *moduleController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid module id")
	}

	req, err := serverutils.ParseAndValidate[dto.UpdateModuleRequest](ctx)
	if err != nil {
		return err
	}

	module, err := c.adminService.UpdateModule(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Module updated", module))
}

func (c *moduleController) AddFeatures(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid module id")
	}

	req, err := serverutils.ParseAndValidate[dto.AddFeaturesRequest](ctx)
	if err != nil {
		return err
	}

	res, err := c.adminService.AddFeatures(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Features linked", res))
}

func (c *moduleController) RemoveFeatures(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid module id")
	}

	req, err := serverutils.ParseAndValidate[dto.RemoveFeaturesRequest](ctx)
	if err != nil {
		return err
	}

	res, err := c.adminService.RemoveFeatures(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Features unlinked", res))
}
