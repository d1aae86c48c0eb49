package mapper

import (
	"carelytix-be/internal/dto"
	"carelytix-be/internal/entity"
)

// FeatureToResponse converts entity to response DTO
func FeatureToResponse(f *entity.Feature) *dto.FeatureResponse {
	if f == nil {
		return nil
	}
	return &dto.FeatureResponse{
		Id:        f.Id,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// FeaturesToResponse converts multiple entities to response DTOs
func FeaturesToResponse(features []*entity.Feature) []*dto.FeatureResponse {
	var res []*dto.FeatureResponse
	for _, f := range features {
		res = append(res, FeatureToResponse(f))
	}
	return res
}

// ModuleToResponse converts entity to response DTO
func ModuleToResponse(m *entity.Module) *dto.ModuleResponse {
	if m == nil {
		return nil
	}
	return &dto.ModuleResponse{
		Id:        m.Id,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ModulesToResponse converts multiple entities to response DTOs
func ModulesToResponse(modules []*entity.Module) []*dto.ModuleResponse {
	var res []*dto.ModuleResponse
	for _, m := range modules {
		res = append(res, ModuleToResponse(m))
	}
	return res
}

// PlanToResponse converts entity to response DTO
func PlanToResponse(p *entity.Plan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		Id:        p.Id,
		Name:      p.Name,
		PlanMeta:  p.PlanMeta,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlansToResponse converts multiple entities to response DTOs
func PlansToResponse(plans []*entity.Plan) []*dto.PlanResponse {
	var res []*dto.PlanResponse
	for _, p := range plans {
		res = append(res, PlanToResponse(p))
	}
	return res
}

// PlanToEntitlement builds the resolved projection tree for a plan.
// Only active module links are walked and, under each module, only
// active feature links are emitted. The resolved reads already filter
// on is_active; the checks here keep the projection correct when the
// entity arrives from an unfiltered read.
func PlanToEntitlement(p *entity.Plan, subscriberCount int, subscribers []entity.PlanSubscriber) *dto.PlanEntitlementResponse {
	if p == nil {
		return nil
	}

	modules := make([]dto.PlanModuleEntitlement, 0, len(p.ModuleMappings))
	for _, mm := range p.ModuleMappings {
		if !mm.IsActive || mm.Module == nil {
			continue
		}

		features := make([]dto.PlanFeatureEntitlement, 0, len(mm.Module.FeatureMappings))
		for _, fm := range mm.Module.FeatureMappings {
			if !fm.IsActive || fm.Feature == nil {
				continue
			}
			features = append(features, dto.PlanFeatureEntitlement{
				MappingId: fm.Id,
				Id:        fm.Feature.Id,
				Name:      fm.Feature.Name,
			})
		}

		modules = append(modules, dto.PlanModuleEntitlement{
			MappingId: mm.Id,
			Id:        mm.Module.Id,
			Name:      mm.Module.Name,
			Features:  features,
		})
	}

	var subs []dto.SubscriberResponse
	for _, s := range subscribers {
		subs = append(subs, dto.SubscriberResponse{
			Id:    s.Id,
			Name:  s.Name,
			Email: s.Email,
		})
	}

	return &dto.PlanEntitlementResponse{
		Id:              p.Id,
		Name:            p.Name,
		PlanMeta:        p.PlanMeta,
		Modules:         modules,
		SubscriberCount: subscriberCount,
		Subscribers:     subs,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
