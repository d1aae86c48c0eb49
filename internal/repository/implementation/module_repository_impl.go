// FILE: internal/repository/implementation/module_repository_impl.go
// Implementation of ModuleRepository
package implementation

import (
	"context"
	"errors"

	"carelytix-be/internal/entity"
	"carelytix-be/internal/mapper"
	"carelytix-be/internal/model"
	"carelytix-be/internal/repository/contract"
	"carelytix-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModuleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ModuleMapper
}

func NewModuleRepository(db *gorm.DB) contract.ModuleRepository {
	return &ModuleRepositoryImpl{
		db:     db,
		mapper: mapper.NewModuleMapper(),
	}
}

func (r *ModuleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ModuleRepositoryImpl) Create(ctx context.Context, module *entity.Module) error {
	m := r.mapper.ToModel(module)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*module = *r.mapper.ToEntity(m)
	return nil
}

func (r *ModuleRepositoryImpl) Update(ctx context.Context, module *entity.Module) error {
	m := r.mapper.ToModel(module)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*module = *r.mapper.ToEntity(m)
	return nil
}

func (r *ModuleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Module, error) {
	var m model.Module
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ModuleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Module, error) {
	var models []*model.Module
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ModuleRepositoryImpl) FilterExisting(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var existing []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Module{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}
