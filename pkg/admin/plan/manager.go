package plan

import (
	"context"
	"errors"

	"carelytix-be/internal/dto"
	"carelytix-be/internal/entity"
	"carelytix-be/internal/pkg/apperror"
	"carelytix-be/internal/repository/specification"
	"carelytix-be/internal/repository/unitofwork"
	"carelytix-be/pkg/admin/linking"
	adminmapper "carelytix-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

// Manager handles plan registry operations, the Plan↔Module links and
// the entitlement projection.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// moduleEngine builds the mapping engine for the Plan↔Module relation.
// Every module id must resolve, the duplicate check ignores deactivated
// rows, and removal flips is_active instead of deleting.
func (m *Manager) moduleEngine(uow unitofwork.UnitOfWork, allowPartial bool) *linking.Engine {
	return linking.NewEngine(
		uow.PlanModuleMappingRepository(),
		uow.ModuleRepository().FilterExisting,
		linking.Policy{
			AllowPartialMatch: allowPartial,
			ActiveLinksOnly:   true,
			Unlink:            linking.SoftUnlink,
		},
	)
}

func (m *Manager) GetAll(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Plan, error) {
	return uow.PlanRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
}

func (m *Manager) Get(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Plan, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan not found")
	}
	return plan, nil
}

// Create stores the plan and then links the requested modules. The link
// fan-out is best effort: the plan row stays even when some of the
// mappings fail to land.
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreatePlanRequest) (*entity.Plan, error) {
	existing, err := uow.PlanRepository().FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("plan with name '%s' already exists", req.Name)
	}

	plan := &entity.Plan{
		Name: req.Name,
	}

	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}

	if len(req.ModuleIds) > 0 {
		if _, err := m.moduleEngine(uow, true).Link(ctx, plan.Id, req.ModuleIds); err != nil {
			if errors.Is(err, linking.ErrNoneResolved) {
				return nil, apperror.Validation("modules not found")
			}
			return nil, err
		}
	}

	return plan, nil
}

// Update renames the plan and, when plan_meta is present in the
// request, replaces the stored meta map.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdatePlanRequest) (*entity.Plan, error) {
	plan, err := m.Get(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	colliding, err := uow.PlanRepository().FindOne(ctx, specification.ByNameExcludingID{Name: req.Name, ExcludeID: id})
	if err != nil {
		return nil, err
	}
	if colliding != nil {
		return nil, apperror.Conflict("plan with name '%s' already exists", req.Name)
	}

	plan.Name = req.Name
	if req.PlanMeta != nil {
		plan.PlanMeta = req.PlanMeta
	}

	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// AddModules links modules into the plan. Unlike AddFeatures on the
// module side, every requested id must resolve or the whole call fails.
func (m *Manager) AddModules(ctx context.Context, uow unitofwork.UnitOfWork, planId uuid.UUID, req dto.AddModulesRequest) (*entity.Plan, *linking.Result, error) {
	plan, err := m.Get(ctx, uow, planId)
	if err != nil {
		return nil, nil, err
	}

	result, err := m.moduleEngine(uow, false).Link(ctx, planId, req.ModuleIds)
	if err != nil {
		if errors.Is(err, linking.ErrUnresolved) || errors.Is(err, linking.ErrNoneResolved) {
			return nil, nil, apperror.Validation("modules not found")
		}
		return nil, nil, err
	}

	return plan, result, nil
}

// RemoveModules deactivates the mapping rows for the requested modules.
// The rows stay in place with is_active = false and drop out of the
// entitlement projection. Matching nothing is a no-op with removed = 0.
func (m *Manager) RemoveModules(ctx context.Context, uow unitofwork.UnitOfWork, planId uuid.UUID, req dto.RemoveModulesRequest) (*entity.Plan, *linking.Result, error) {
	plan, err := m.Get(ctx, uow, planId)
	if err != nil {
		return nil, nil, err
	}

	result, err := m.moduleEngine(uow, false).Unlink(ctx, planId, req.ModuleIds)
	if err != nil {
		return nil, nil, err
	}

	return plan, result, nil
}

// GetEntitlement assembles the fully resolved projection for one plan:
// active modules, their active features, and the plan's active
// subscribers. Nothing is cached; every call reads fresh.
func (m *Manager) GetEntitlement(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*dto.PlanEntitlementResponse, error) {
	plan, err := uow.PlanRepository().FindOneResolved(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan not found")
	}

	subscribers, err := uow.PlanUserMappingRepository().FindActiveSubscribers(ctx, id)
	if err != nil {
		return nil, err
	}

	return adminmapper.PlanToEntitlement(plan, len(subscribers), subscribers), nil
}

// GetAllEntitlements is the projection across every plan, newest first.
// The subscriber list is omitted; only the count is reported.
func (m *Manager) GetAllEntitlements(ctx context.Context, uow unitofwork.UnitOfWork) ([]*dto.PlanEntitlementResponse, error) {
	plans, err := uow.PlanRepository().FindAllResolved(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.PlanEntitlementResponse, 0, len(plans))
	for _, plan := range plans {
		count, err := uow.PlanUserMappingRepository().CountActive(ctx, plan.Id)
		if err != nil {
			return nil, err
		}
		responses = append(responses, adminmapper.PlanToEntitlement(plan, count, nil))
	}
	return responses, nil
}
