// FILE: internal/repository/implementation/offering_repository_impl.go
// Implementation of OfferingRepository
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

type OfferingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SalonMapper
}

func NewOfferingRepository(db *gorm.DB) contract.OfferingRepository {
	return &OfferingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSalonMapper(),
	}
}

func (r *OfferingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OfferingRepositoryImpl) Create(ctx context.Context, offering *entity.Offering) error {
	m := r.mapper.OfferingToModel(offering)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*offering = *r.mapper.OfferingToEntity(m)
	return nil
}

func (r *OfferingRepositoryImpl) Update(ctx context.Context, offering *entity.Offering) error {
	m := r.mapper.OfferingToModel(offering)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*offering = *r.mapper.OfferingToEntity(m)
	return nil
}

func (r *OfferingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Offering{}, id).Error
}

func (r *OfferingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Offering, error) {
	var m model.Offering
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.OfferingToEntity(&m), nil
}

func (r *OfferingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Offering, error) {
	var models []*model.Offering
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.OfferingsToEntities(models), nil
}
