package service

import (
	"context"

	"carelytix-be/internal/dto"
	"carelytix-be/internal/pkg/logger"
	"carelytix-be/internal/repository/unitofwork"
	adminEvents "carelytix-be/pkg/admin/events"
	"carelytix-be/pkg/admin/feature"
	"carelytix-be/pkg/admin/mapper"
	"carelytix-be/pkg/admin/module"
	"carelytix-be/pkg/admin/plan"

	"github.com/google/uuid"
)

type IAdminService interface {
	// Feature Catalog
	GetAllFeatures(ctx context.Context) ([]*dto.FeatureResponse, error)
	GetFeature(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error)
	CreateFeature(ctx context.Context, req dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	UpdateFeature(ctx context.Context, id uuid.UUID, req dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	DeleteFeature(ctx context.Context, id uuid.UUID) error

	// Module Registry
	GetAllModules(ctx context.Context) ([]*dto.ModuleResponse, error)
	GetModule(ctx context.Context, id uuid.UUID) (*dto.ModuleResponse, error)
	CreateModule(ctx context.Context, req dto.CreateModuleRequest) (*dto.ModuleResponse, error)
	UpdateModule(ctx context.Context, id uuid.UUID, req dto.UpdateModuleRequest) (*dto.ModuleResponse, error)
	AddFeatures(ctx context.Context, moduleId uuid.UUID, req dto.AddFeaturesRequest) (*dto.AddFeaturesResponse, error)
	RemoveFeatures(ctx context.Context, moduleId uuid.UUID, req dto.RemoveFeaturesRequest) (*dto.RemoveFeaturesResponse, error)

	// Plan Registry & Entitlement Projection
	GetAllPlans(ctx context.Context) ([]*dto.PlanEntitlementResponse, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*dto.PlanEntitlementResponse, error)
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, req dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	AddModules(ctx context.Context, planId uuid.UUID, req dto.AddModulesRequest) (*dto.AddModulesResponse, error)
	RemoveModules(ctx context.Context, planId uuid.UUID, req dto.RemoveModulesRequest) (*dto.RemoveModulesResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger

	// Domain Components
	featureManager *feature.Manager
	moduleManager  *module.Manager
	planManager    *plan.Manager
	eventPublisher adminEvents.Publisher
	auditPublisher IPublisherService
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	featureManager *feature.Manager,
	moduleManager *module.Manager,
	planManager *plan.Manager,
	eventPublisher adminEvents.Publisher,
	auditPublisher IPublisherService,
) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		logger:         logger,
		featureManager: featureManager,
		moduleManager:  moduleManager,
		planManager:    planManager,
		eventPublisher: eventPublisher,
		auditPublisher: auditPublisher,
	}
}

func (s *adminService) audit(ctx context.Context, action, entityType string, entityId uuid.UUID, details map[string]interface{}) {
	if s.auditPublisher == nil {
		return
	}
	msg := dto.AuditMessage{
		Action:     action,
		EntityType: entityType,
		EntityId:   entityId,
		Details:    details,
	}
	if err := s.auditPublisher.PublishAudit(ctx, msg); err != nil {
		s.logger.Warn("ADMIN", "Failed to publish audit message", map[string]interface{}{"error": err.Error()})
	}
}

// ============================================================================
// Feature Catalog
// ============================================================================

func (s *adminService) GetAllFeatures(ctx context.Context) ([]*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := s.featureManager.GetAll(ctx, uow)
	if err != nil {
		return nil, err
	}
	return mapper.FeaturesToResponse(features), nil
}

func (s *adminService) GetFeature(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	f, err := s.featureManager.Get(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return mapper.FeatureToResponse(f), nil
}

func (s *adminService) CreateFeature(ctx context.Context, req dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	f, err := s.featureManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ADMIN", "Feature created", map[string]interface{}{"feature_id": f.Id, "name": f.Name})
	s.audit(ctx, "FEATURE_CREATED", "feature", f.Id, map[string]interface{}{"name": f.Name})
	return mapper.FeatureToResponse(f), nil
}

func (s *adminService) UpdateFeature(ctx context.Context, id uuid.UUID, req dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	f, err := s.featureManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return mapper.FeatureToResponse(f), nil
}

func (s *adminService) DeleteFeature(ctx context.Context, id uuid.UUID) error {
	// The in-use check and the delete must see the same rows.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := s.featureManager.Delete(ctx, uow, id); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}
	s.logger.Info("ADMIN", "Feature deleted", map[string]interface{}{"feature_id": id})
	s.audit(ctx, "FEATURE_DELETED", "feature", id, nil)
	return nil
}

// ============================================================================
// Module Registry
// ============================================================================

func (s *adminService) GetAllModules(ctx context.Context) ([]*dto.ModuleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	modules, err := s.moduleManager.GetAll(ctx, uow)
	if err != nil {
		return nil, err
	}
	return mapper.ModulesToResponse(modules), nil
}

func (s *adminService) GetModule(ctx context.Context, id uuid.UUID) (*dto.ModuleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := s.moduleManager.Get(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return mapper.ModuleToResponse(m), nil
}

func (s *adminService) CreateModule(ctx context.Context, req dto.CreateModuleRequest) (*dto.ModuleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := s.moduleManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ADMIN", "Module created", map[string]interface{}{"module_id": m.Id, "name": m.Name})
	s.audit(ctx, "MODULE_CREATED", "module", m.Id, map[string]interface{}{"name": m.Name})
	return mapper.ModuleToResponse(m), nil
}

func (s *adminService) UpdateModule(ctx context.Context, id uuid.UUID, req dto.UpdateModuleRequest) (*dto.ModuleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := s.moduleManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return mapper.ModuleToResponse(m), nil
}

func (s *adminService) AddFeatures(ctx context.Context, moduleId uuid.UUID, req dto.AddFeaturesRequest) (*dto.AddFeaturesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, result, err := s.moduleManager.AddFeatures(ctx, uow, moduleId, req)
	if err != nil {
		return nil, err
	}

	if len(result.Added) > 0 {
		s.eventPublisher.PublishFeaturesLinked(ctx, moduleId, result.Added)
		s.audit(ctx, "MODULE_FEATURES_LINKED", "module", moduleId, map[string]interface{}{"added": result.Added})
	}

	return &dto.AddFeaturesResponse{
		Module:         *mapper.ModuleToResponse(m),
		Added:          result.Added,
		AlreadyPresent: result.AlreadyPresent,
	}, nil
}

func (s *adminService) RemoveFeatures(ctx context.Context, moduleId uuid.UUID, req dto.RemoveFeaturesRequest) (*dto.RemoveFeaturesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, result, err := s.moduleManager.RemoveFeatures(ctx, uow, moduleId, req)
	if err != nil {
		return nil, err
	}

	if result.Removed > 0 {
		s.eventPublisher.PublishFeaturesUnlinked(ctx, moduleId, req.FeatureIds, result.Removed)
		s.audit(ctx, "MODULE_FEATURES_UNLINKED", "module", moduleId, map[string]interface{}{"removed": result.Removed})
	}

	return &dto.RemoveFeaturesResponse{
		Module:  *mapper.ModuleToResponse(m),
		Removed: result.Removed,
	}, nil
}

// ============================================================================
// Plan Registry & Entitlement Projection
// ============================================================================

func (s *adminService) GetAllPlans(ctx context.Context) ([]*dto.PlanEntitlementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.planManager.GetAllEntitlements(ctx, uow)
}

func (s *adminService) GetPlan(ctx context.Context, id uuid.UUID) (*dto.PlanEntitlementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.planManager.GetEntitlement(ctx, uow, id)
}

func (s *adminService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.planManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ADMIN", "Plan created", map[string]interface{}{"plan_id": p.Id, "name": p.Name})
	s.eventPublisher.PublishPlanCreated(ctx, p.Id, p.Name, req.ModuleIds)
	s.audit(ctx, "PLAN_CREATED", "plan", p.Id, map[string]interface{}{"name": p.Name})

	return mapper.PlanToResponse(p), nil
}

func (s *adminService) UpdatePlan(ctx context.Context, id uuid.UUID, req dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.planManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return mapper.PlanToResponse(p), nil
}

func (s *adminService) AddModules(ctx context.Context, planId uuid.UUID, req dto.AddModulesRequest) (*dto.AddModulesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, result, err := s.planManager.AddModules(ctx, uow, planId, req)
	if err != nil {
		return nil, err
	}

	if len(result.Added) > 0 {
		s.eventPublisher.PublishModulesLinked(ctx, planId, result.Added)
		s.audit(ctx, "PLAN_MODULES_LINKED", "plan", planId, map[string]interface{}{"added": result.Added})
	}

	return &dto.AddModulesResponse{
		Plan:  *mapper.PlanToResponse(p),
		Added: len(result.Added),
	}, nil
}

func (s *adminService) RemoveModules(ctx context.Context, planId uuid.UUID, req dto.RemoveModulesRequest) (*dto.RemoveModulesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, result, err := s.planManager.RemoveModules(ctx, uow, planId, req)
	if err != nil {
		return nil, err
	}

	if result.Removed > 0 {
		s.eventPublisher.PublishModulesUnlinked(ctx, planId, req.ModuleIds, result.Removed)
		s.audit(ctx, "PLAN_MODULES_UNLINKED", "plan", planId, map[string]interface{}{"removed": result.Removed})
	}

	return &dto.RemoveModulesResponse{
		Plan:    *mapper.PlanToResponse(p),
		Removed: result.Removed,
	}, nil
}
