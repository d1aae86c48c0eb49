// FILE: internal/controller/salon_controller.go
// Controller for the salon directory endpoints
package controller

import (
	"carelytix-be/internal/dto"
	"carelytix-be/internal/pkg/apperror"
	"carelytix-be/internal/pkg/serverutils"
	"carelytix-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SalonController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type salonController struct {
	salonService service.ISalonService
}

func NewSalonController(salonService service.ISalonService) SalonController {
	return &salonController{
		salonService: salonService,
	}
}

func (c *salonController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	salons := api.Group("/salons", jwtMiddleware)
	salons.Get("/", c.GetSalons)
	salons.Post("/", c.CreateSalon)
	salons.Get("/:id", c.GetSalon)
	salons.Put("/:id", c.UpdateSalon)
	salons.Delete("/:id", c.DeleteSalon)
	salons.Get("/:id/branches", c.GetBranches)

	branches := api.Group("/branches", jwtMiddleware)
	branches.Post("/", c.CreateBranch)
	branches.Put("/:id", c.UpdateBranch)
	branches.Delete("/:id", c.DeleteBranch)
	branches.Get("/:id/staff", c.GetStaff)
	branches.Get("/:id/offerings", c.GetOfferings)

	staff := api.Group("/staff", jwtMiddleware)
	staff.Post("/", c.CreateStaff)
	staff.Put("/:id", c.UpdateStaff)
	staff.Delete("/:id", c.DeleteStaff)

	offerings := api.Group("/offerings", jwtMiddleware)
	offerings.Post("/", c.CreateOffering)
	offerings.Put("/:id", c.UpdateOffering)
	offerings.Delete("/:id", c.DeleteOffering)
}

func ownerIdFromLocals(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, apperror.Validation("missing user id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid user id")
	}
	return id, nil
}

func paramId(ctx *fiber.Ctx, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid %s id", what)
	}
	return id, nil
}

// --- Salons ---

func (c *salonController) GetSalons(ctx *fiber.Ctx) error {
	ownerId, err := ownerIdFromLocals(ctx)
	if err != nil {
		return err
	}

	salons, err := c.salonService.GetSalonsByOwner(ctx.Context(), ownerId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Salons retrieved", salons))
}

func (c *salonController) GetSalon(ctx *fiber.Ctx) error {
	id, err := paramId(ctx, "salon")
	if err != nil {
		return err
	}

	salon, err := c.salonService.GetSalon(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Salon retrieved", salon))
}

func (c *salonController) CreateSalon(ctx *fiber.Ctx) error {
	ownerId, err := ownerIdFromLocals(ctx)
	if err != nil {
		return err
	}

	req, err := serverutils.ParseAndValidate[dto.CreateSalonRequest](ctx)
	if err != nil {
		return err
	}

	salon, err := c.salonService.CreateSalon(ctx.Context(), ownerId, *req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Salon created", salon))
}

func (c *salonController) UpdateSalon(ctx *fiber.Ctx) error {
	id, err := paramId(ctx, "salon")
	if err != nil {
		return err
	}

	req, err := serverutils.ParseAndValidate[dto.UpdateSalonRequest](ctx)
	if err != nil {
		return err
	}

	salon, err := c.salonService.UpdateSalon(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Salon updated", salon))
}

func (c *salonController) DeleteSalon(ctx *fiber.Ctx) error {
	id, err := paramId(ctx, "salon")
	if err != nil {
		return err
	}

	if err := c.salonService.DeleteSalon(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Salon deleted", nil))
}

// --- Branches ---

func (c *salonController) GetBranches(ctx *fiber.Ctx) error {
	salonId, err := paramId(ctx, "salon")
	if err != nil {
		return err
	}

	branches, err := c.salonService.GetBranchesBySalon(ctx.Context(), salonId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Branches retrieved", branches))
}

func (c *salonController) CreateBranch(ctx *fiber.Ctx) error {
	req, err := serverutils.ParseAndValidate[dto.CreateBranchRequest](ctx)
	if err != nil {
		return err
	}

	branch, err := c.salonService.CreateBranch(ctx.Context(), *req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Branch created", branch))
}

func (c *salonController) UpdateBranch(ctx *fiber.Ctx) error {
	id, err := paramId(ctx, "branch")
	if err != nil {
		return err
	}

	req, err := serverutils.ParseAndValidate[dto.UpdateBranchRequest](ctx)
	if err != nil {
		return err
	}

	branch, err := c.salonService.UpdateBranch(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Branch updated", branch))
}

func (c *salonController) DeleteBranch(ctx *fiber.Ctx) error {
	id, err := paramId(ctx, "branch")
	if err != nil {
		return err
	}

	if err := c.salonService.DeleteBranch(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Branch deleted", nil))
}

// --- Staff ---

func (c *salonController) GetStaff(ctx *fiber.Ctx) error {
	branchId, err := paramId(ctx, "branch")
	if err != nil {
		return err
	}

	staff, err := c.salonService.GetStaffByBranch(ctx.Context(), branchId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff retrieved", staff))
}

func (c *salonController) CreateStaff(ctx *fiber.Ctx) error {
	req, err := serverutils.ParseAndValidate[dto.CreateStaffRequest](ctx)
	if err != nil {
		return err
	}

	staff, err := c.salonService.CreateStaff(ctx.Context(), *req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Staff created", staff))
}

func (c *salonController) UpdateStaff(ctx *fiber.Ctx) error {
	id, err := paramId(ctx, "staff")
	if err != nil {
		return err
	}

	req, err := serverutils.ParseAndValidate[dto.UpdateStaffRequest](ctx)
	if err != nil {
		return err
	}

	staff, err := c.salonService.UpdateStaff(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Staff updated", staff))
}

func (c *salonController) DeleteStaff(ctx *fiber.Ctx) error {
	id, err := paramId(ctx, "staff")
	if err != nil {
		return err
	}

	if err := c.salonService.DeleteStaff(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Staff deleted", nil))
}

// --- Offerings ---

func (c *salonController) GetOfferings(ctx *fiber.Ctx) error {
	branchId, err := paramId(ctx, "branch")
	if err != nil {
		return err
	}

	offerings, err := c.salonService.GetOfferingsByBranch(ctx.Context(), branchId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Offerings retrieved", offerings))
}

func (c *salonController) CreateOffering(ctx *fiber.Ctx) error {
	req, err := serverutils.ParseAndValidate[dto.CreateOfferingRequest](ctx)
	if err != nil {
		return err
	}

	offering, err := c.salonService.CreateOffering(ctx.Context(), *req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Offering created", offering))
}

func (c *salonController) UpdateOffering(ctx *fiber.Ctx) error {
	id, err := paramId(ctx, "offering")
	if err != nil {
		return err
	}

	req, err := serverutils.ParseAndValidate[dto.UpdateOfferingRequest](ctx)
	if err != nil {
		return err
	}

	offering, err := c.salonService.UpdateOffering(ctx.Context(), id, *req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Offering updated", offering))
}

func (c *salonController) DeleteOffering(ctx *fiber.Ctx) error {
	id, err := paramId(ctx, "offering")
	if err != nil {
		return err
	}

	if err := c.salonService.DeleteOffering(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Offering deleted", nil))
}
