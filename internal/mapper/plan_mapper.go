// FILE: internal/mapper/plan_mapper.go
// Mapper for Plan and PlanModuleMapping conversion
package mapper

import (
	"carelytix-be/internal/entity"
	"carelytix-be/internal/model"

	"gorm.io/datatypes"
)

type PlanMapper struct {
	moduleMapper *ModuleMapper
}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{
		moduleMapper: NewModuleMapper(),
	}
}

func (m *PlanMapper) ToEntity(mdl *model.Plan) *entity.Plan {
	if mdl == nil {
		return nil
	}
	mappings := make([]entity.PlanModuleMapping, 0, len(mdl.ModuleMappings))
	for i := range mdl.ModuleMappings {
		mappings = append(mappings, *m.MappingToEntity(&mdl.ModuleMappings[i]))
	}
	return &entity.Plan{
		Id:             mdl.Id,
		Name:           mdl.Name,
		PlanMeta:       map[string]interface{}(mdl.PlanMeta),
		CreatedAt:      mdl.CreatedAt,
		UpdatedAt:      mdl.UpdatedAt,
		ModuleMappings: mappings,
	}
}

func (m *PlanMapper) ToModel(ent *entity.Plan) *model.Plan {
	if ent == nil {
		return nil
	}
	return &model.Plan{
		Id:        ent.Id,
		Name:      ent.Name,
		PlanMeta:  datatypes.JSONMap(ent.PlanMeta),
		CreatedAt: ent.CreatedAt,
		UpdatedAt: ent.UpdatedAt,
	}
}

func (m *PlanMapper) ToEntities(models []*model.Plan) []*entity.Plan {
	entities := make([]*entity.Plan, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *PlanMapper) MappingToEntity(mdl *model.PlanModuleMapping) *entity.PlanModuleMapping {
	if mdl == nil {
		return nil
	}
	return &entity.PlanModuleMapping{
		Id:        mdl.Id,
		PlanId:    mdl.PlanId,
		ModuleId:  mdl.ModuleId,
		IsActive:  mdl.IsActive,
		CreatedAt: mdl.CreatedAt,
		Module:    m.moduleMapper.ToEntity(mdl.Module),
	}
}
