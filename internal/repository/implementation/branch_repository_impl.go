// FILE: internal/repository/implementation/branch_repository_impl.go
// Implementation of BranchRepository
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

type BranchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SalonMapper
}

func NewBranchRepository(db *gorm.DB) contract.BranchRepository {
	return &BranchRepositoryImpl{
		db:     db,
		mapper: mapper.NewSalonMapper(),
	}
}

func (r *BranchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BranchRepositoryImpl) Create(ctx context.Context, branch *entity.Branch) error {
	m := r.mapper.BranchToModel(branch)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*branch = *r.mapper.BranchToEntity(m)
	return nil
}

func (r *BranchRepositoryImpl) Update(ctx context.Context, branch *entity.Branch) error {
	m := r.mapper.BranchToModel(branch)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*branch = *r.mapper.BranchToEntity(m)
	return nil
}

func (r *BranchRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Branch{}, id).Error
}

func (r *BranchRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Branch, error) {
	var m model.Branch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BranchToEntity(&m), nil
}

func (r *BranchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Branch, error) {
	var models []*model.Branch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.BranchesToEntities(models), nil
}
