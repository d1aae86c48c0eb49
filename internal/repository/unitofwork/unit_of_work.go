package unitofwork

import (
	"context"

	"carelytix-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FeatureRepository() contract.FeatureRepository
	ModuleRepository() contract.ModuleRepository
	PlanRepository() contract.PlanRepository
	ModuleFeatureMappingRepository() contract.ModuleFeatureMappingRepository
	PlanModuleMappingRepository() contract.PlanModuleMappingRepository
	PlanUserMappingRepository() contract.PlanUserMappingRepository

	SalonRepository() contract.SalonRepository
	BranchRepository() contract.BranchRepository
	StaffRepository() contract.StaffRepository
	OfferingRepository() contract.OfferingRepository
}
