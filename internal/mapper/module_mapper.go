// FILE: internal/mapper/module_mapper.go
// Mapper for Module and ModuleFeatureMapping conversion
package mapper

import (
	"carelytix-be/internal/entity"
	"carelytix-be/internal/model"
)

type ModuleMapper struct {
	featureMapper *FeatureMapper
}

func NewModuleMapper() *ModuleMapper {
	return &ModuleMapper{
		featureMapper: NewFeatureMapper(),
	}
}

func (m *ModuleMapper) ToEntity(mdl *model.Module) *entity.Module {
	if mdl == nil {
		return nil
	}
	mappings := make([]entity.ModuleFeatureMapping, 0, len(mdl.FeatureMappings))
	for i := range mdl.FeatureMappings {
		mappings = append(mappings, *m.MappingToEntity(&mdl.FeatureMappings[i]))
	}
	return &entity.Module{
		Id:              mdl.Id,
		Name:            mdl.Name,
		CreatedAt:       mdl.CreatedAt,
		UpdatedAt:       mdl.UpdatedAt,
		FeatureMappings: mappings,
	}
}

func (m *ModuleMapper) ToModel(ent *entity.Module) *model.Module {
	if ent == nil {
		return nil
	}
	// Mapping rows are owned by the mapping repository; the module model
	// carries them for reads only.
	return &model.Module{
		Id:        ent.Id,
		Name:      ent.Name,
		CreatedAt: ent.CreatedAt,
		UpdatedAt: ent.UpdatedAt,
	}
}

func (m *ModuleMapper) ToEntities(models []*model.Module) []*entity.Module {
	entities := make([]*entity.Module, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *ModuleMapper) MappingToEntity(mdl *model.ModuleFeatureMapping) *entity.ModuleFeatureMapping {
	if mdl == nil {
		return nil
	}
	return &entity.ModuleFeatureMapping{
		Id:        mdl.Id,
		ModuleId:  mdl.ModuleId,
		FeatureId: mdl.FeatureId,
		IsActive:  mdl.IsActive,
		CreatedAt: mdl.CreatedAt,
		Feature:   m.featureMapper.ToEntity(mdl.Feature),
	}
}
