// FILE: internal/repository/implementation/plan_user_mapping_repository_impl.go
// Implementation of PlanUserMappingRepository (read-only subscriber slice)
package implementation

import (
	"context"

	"carelytix-be/internal/entity"
	"carelytix-be/internal/model"
	"carelytix-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanUserMappingRepositoryImpl struct {
	db *gorm.DB
}

func NewPlanUserMappingRepository(db *gorm.DB) contract.PlanUserMappingRepository {
	return &PlanUserMappingRepositoryImpl{db: db}
}

func (r *PlanUserMappingRepositoryImpl) CountActive(ctx context.Context, planID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PlanUserMapping{}).
		Where("plan_id = ? AND is_active = ?", planID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *PlanUserMappingRepositoryImpl) FindActiveSubscribers(ctx context.Context, planID uuid.UUID) ([]entity.PlanSubscriber, error) {
	var subscribers []entity.PlanSubscriber
	err := r.db.WithContext(ctx).
		Model(&model.PlanUserMapping{}).
		Select("members.id, members.name, members.email").
		Joins("JOIN members ON members.id = plan_user_mappings.user_id").
		Where("plan_user_mappings.plan_id = ? AND plan_user_mappings.is_active = ?", planID, true).
		Scan(&subscribers).Error
	if err != nil {
		return nil, err
	}
	return subscribers, nil
}
