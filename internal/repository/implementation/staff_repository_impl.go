// FILE: internal/repository/implementation/staff_repository_impl.go
// Implementation of StaffRepository
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

type StaffRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SalonMapper
}

func NewStaffRepository(db *gorm.DB) contract.StaffRepository {
	return &StaffRepositoryImpl{
		db:     db,
		mapper: mapper.NewSalonMapper(),
	}
}

func (r *StaffRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StaffRepositoryImpl) Create(ctx context.Context, staff *entity.Staff) error {
	m := r.mapper.StaffToModel(staff)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*staff = *r.mapper.StaffToEntity(m)
	return nil
}

func (r *StaffRepositoryImpl) Update(ctx context.Context, staff *entity.Staff) error {
	m := r.mapper.StaffToModel(staff)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*staff = *r.mapper.StaffToEntity(m)
	return nil
}

func (r *StaffRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Staff{}, id).Error
}

func (r *StaffRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Staff, error) {
	var m model.Staff
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StaffToEntity(&m), nil
}

func (r *StaffRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Staff, error) {
	var models []*model.Staff
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.StaffToEntities(models), nil
}
