// FILE: internal/repository/implementation/salon_repository_impl.go
// Implementation of SalonRepository
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

type SalonRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SalonMapper
}

func NewSalonRepository(db *gorm.DB) contract.SalonRepository {
	return &SalonRepositoryImpl{
		db:     db,
		mapper: mapper.NewSalonMapper(),
	}
}

func (r *SalonRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SalonRepositoryImpl) Create(ctx context.Context, salon *entity.Salon) error {
	m := r.mapper.ToModel(salon)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*salon = *r.mapper.ToEntity(m)
	return nil
}

func (r *SalonRepositoryImpl) Update(ctx context.Context, salon *entity.Salon) error {
	m := r.mapper.ToModel(salon)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*salon = *r.mapper.ToEntity(m)
	return nil
}

func (r *SalonRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Salon{}, id).Error
}

func (r *SalonRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Salon, error) {
	var m model.Salon
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SalonRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Salon, error) {
	var models []*model.Salon
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
