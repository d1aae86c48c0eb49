// FILE: internal/repository/implementation/plan_module_mapping_repository_impl.go
// Implementation of PlanModuleMappingRepository (soft-delete relation)
package implementation

import (
	"context"

	"carelytix-be/internal/model"
	"carelytix-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanModuleMappingRepositoryImpl struct {
	db *gorm.DB
}

func NewPlanModuleMappingRepository(db *gorm.DB) contract.PlanModuleMappingRepository {
	return &PlanModuleMappingRepositoryImpl{db: db}
}

func (r *PlanModuleMappingRepositoryImpl) LinkedChildIDs(ctx context.Context, parentID uuid.UUID, candidates []uuid.UUID, activeOnly bool) ([]uuid.UUID, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	query := r.db.WithContext(ctx).
		Model(&model.PlanModuleMapping{}).
		Where("plan_id = ? AND module_id IN ?", parentID, candidates)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var linked []uuid.UUID
	if err := query.Pluck("module_id", &linked).Error; err != nil {
		return nil, err
	}
	return linked, nil
}

func (r *PlanModuleMappingRepositoryImpl) CreateLink(ctx context.Context, parentID, childID uuid.UUID) error {
	m := &model.PlanModuleMapping{
		PlanId:   parentID,
		ModuleId: childID,
		IsActive: true,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PlanModuleMappingRepositoryImpl) DeleteLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("plan_id = ? AND module_id IN ?", parentID, childIDs).
		Delete(&model.PlanModuleMapping{})
	return result.RowsAffected, result.Error
}

func (r *PlanModuleMappingRepositoryImpl) DeactivateLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.PlanModuleMapping{}).
		Where("plan_id = ? AND module_id IN ? AND is_active = ?", parentID, childIDs, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
