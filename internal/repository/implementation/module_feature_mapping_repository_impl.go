// FILE: internal/repository/implementation/module_feature_mapping_repository_impl.go
// Implementation of ModuleFeatureMappingRepository (hard-delete relation)
package implementation

import (
	"context"

	"carelytix-be/internal/model"
	"carelytix-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModuleFeatureMappingRepositoryImpl struct {
	db *gorm.DB
}

func NewModuleFeatureMappingRepository(db *gorm.DB) contract.ModuleFeatureMappingRepository {
	return &ModuleFeatureMappingRepositoryImpl{db: db}
}

func (r *ModuleFeatureMappingRepositoryImpl) LinkedChildIDs(ctx context.Context, parentID uuid.UUID, candidates []uuid.UUID, activeOnly bool) ([]uuid.UUID, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	query := r.db.WithContext(ctx).
		Model(&model.ModuleFeatureMapping{}).
		Where("module_id = ? AND feature_id IN ?", parentID, candidates)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var linked []uuid.UUID
	if err := query.Pluck("feature_id", &linked).Error; err != nil {
		return nil, err
	}
	return linked, nil
}

func (r *ModuleFeatureMappingRepositoryImpl) CreateLink(ctx context.Context, parentID, childID uuid.UUID) error {
	m := &model.ModuleFeatureMapping{
		ModuleId:  parentID,
		FeatureId: childID,
		IsActive:  true,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ModuleFeatureMappingRepositoryImpl) DeleteLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("module_id = ? AND feature_id IN ?", parentID, childIDs).
		Delete(&model.ModuleFeatureMapping{})
	return result.RowsAffected, result.Error
}

func (r *ModuleFeatureMappingRepositoryImpl) DeactivateLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ModuleFeatureMapping{}).
		Where("module_id = ? AND feature_id IN ? AND is_active = ?", parentID, childIDs, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *ModuleFeatureMappingRepositoryImpl) CountActiveByFeature(ctx context.Context, featureID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ModuleFeatureMapping{}).
		Where("feature_id = ? AND is_active = ?", featureID, true).
		Count(&count).Error
	return count, err
}
