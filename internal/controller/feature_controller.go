// FILE: internal/controller/feature_controller.go
// Controller for the feature catalog endpoints
package controller

import (
	"carelytix-be/internal/dto"
	"carelytix-be/internal/pkg/apperror"
	"carelytix-be/internal/pkg/serverutils"
	"carelytix-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FeatureController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type featureController struct {
	adminService service.IAdminService
}

func NewFeatureController(adminService service.IAdminService) FeatureController {
	return &featureController{
		adminService: adminService,
	}
}

func (c *featureController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	features := api.Group("/features", jwtMiddleware)
	features.Get("/", c.GetAll)
	features.Post("/", c.Create)
	features.Get("/:id", c.Get)
	features.Put("/:id", c.Update)
	features.Delete("/:id", c.Delete)
}

func (c *featureController) GetAll(ctx *fiber.Ctx) error {
	features, err := c.adminService.GetAllFeatures(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Features retrieved", features))
}

func (c *featureController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid feature id")
	}

	feature, err := c.adminService.GetFeature(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature retrieved", feature))
}

func (c *featureController) Create(ctx *fiber.Ctx) error {
	req, err := serverutils.ParseAndValidate[dto.CreateFeatureRequest](ctx)
	if err != nil {
		return err
	}

	feature, err := c.adminService.CreateFeature(ctx.Context(), *req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Feature created", feature))
}

func (c *featureController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid feature id")
	}

	req, err := serverutils.ParseAndValidate[dto.UpdateFeatureRequest](ctx)
	if err != nil {
		return err
	}

	feature, err := c.adminService.UpdateFeature(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature updated", feature))
}

func (c *featureController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("invalid feature id")
	}

	if err := c.adminService.DeleteFeature(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feature deleted", nil))
}
