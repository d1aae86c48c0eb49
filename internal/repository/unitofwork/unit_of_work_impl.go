package unitofwork

import (
	"context"
	"fmt"

	"carelytix-be/internal/repository/contract"
	"carelytix-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // the active transaction, nil when not in one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) FeatureRepository() contract.FeatureRepository {
	return implementation.NewFeatureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ModuleRepository() contract.ModuleRepository {
	return implementation.NewModuleRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PlanRepository() contract.PlanRepository {
	return implementation.NewPlanRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ModuleFeatureMappingRepository() contract.ModuleFeatureMappingRepository {
	return implementation.NewModuleFeatureMappingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PlanModuleMappingRepository() contract.PlanModuleMappingRepository {
	return implementation.NewPlanModuleMappingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PlanUserMappingRepository() contract.PlanUserMappingRepository {
	return implementation.NewPlanUserMappingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SalonRepository() contract.SalonRepository {
	return implementation.NewSalonRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BranchRepository() contract.BranchRepository {
	return implementation.NewBranchRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StaffRepository() contract.StaffRepository {
	return implementation.NewStaffRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OfferingRepository() contract.OfferingRepository {
	return implementation.NewOfferingRepository(u.getDB())
}
