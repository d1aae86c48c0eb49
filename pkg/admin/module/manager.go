package module

import (
	"context"
	"errors"

	"carelytix-be/internal/dto"
	"carelytix-be/internal/entity"
	"carelytix-be/internal/pkg/apperror"
	"carelytix-be/internal/repository/specification"
	"carelytix-be/internal/repository/unitofwork"
	"carelytix-be/pkg/admin/linking"

	"github.com/google/uuid"
)

// Manager handles module registry operations, including the
// Module↔Feature links.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// featureEngine builds the mapping engine for the Module↔Feature
// relation. Unknown feature ids are dropped as long as one resolves,
// and removal deletes the rows outright.
func (m *Manager) featureEngine(uow unitofwork.UnitOfWork) *linking.Engine {
	return linking.NewEngine(
		uow.ModuleFeatureMappingRepository(),
		uow.FeatureRepository().FilterExisting,
		linking.Policy{
			AllowPartialMatch: true,
			ActiveLinksOnly:   true,
			Unlink:            linking.HardUnlink,
		},
	)
}

func (m *Manager) GetAll(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Module, error) {
	return uow.ModuleRepository().FindAll(ctx)
}

func (m *Manager) Get(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Module, error) {
	module, err := uow.ModuleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, apperror.NotFound("module not found")
	}
	return module, nil
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateModuleRequest) (*entity.Module, error) {
	existing, err := uow.ModuleRepository().FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("module with name '%s' already exists", req.Name)
	}

	module := &entity.Module{
		Name: req.Name,
	}

	if err := uow.ModuleRepository().Create(ctx, module); err != nil {
		return nil, err
	}

	return module, nil
}

func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateModuleRequest) (*entity.Module, error) {
	module, err := uow.ModuleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, apperror.NotFound("module not found")
	}

	colliding, err := uow.ModuleRepository().FindOne(ctx, specification.ByNameExcludingID{Name: req.Name, ExcludeID: id})
	if err != nil {
		return nil, err
	}
	if colliding != nil {
		return nil, apperror.Conflict("module with name '%s' already exists", req.Name)
	}

	module.Name = req.Name

	if err := uow.ModuleRepository().Update(ctx, module); err != nil {
		return nil, err
	}

	return module, nil
}

// AddFeatures links features into the module. Ids that do not resolve
// to stored features are dropped; the call fails only when none do.
// Features already linked come back in AlreadyPresent, and a call where
// everything is already linked succeeds with an empty Added set.
func (m *Manager) AddFeatures(ctx context.Context, uow unitofwork.UnitOfWork, moduleId uuid.UUID, req dto.AddFeaturesRequest) (*entity.Module, *linking.Result, error) {
	module, err := m.Get(ctx, uow, moduleId)
	if err != nil {
		return nil, nil, err
	}

	result, err := m.featureEngine(uow).Link(ctx, moduleId, req.FeatureIds)
	if err != nil {
		if errors.Is(err, linking.ErrNoneResolved) {
			return nil, nil, apperror.NotFound("features not found")
		}
		return nil, nil, err
	}

	return module, result, nil
}

// RemoveFeatures deletes the mapping rows for the requested features.
// A call that matches no rows succeeds with removed = 0.
func (m *Manager) RemoveFeatures(ctx context.Context, uow unitofwork.UnitOfWork, moduleId uuid.UUID, req dto.RemoveFeaturesRequest) (*entity.Module, *linking.Result, error) {
	module, err := m.Get(ctx, uow, moduleId)
	if err != nil {
		return nil, nil, err
	}

	result, err := m.featureEngine(uow).Unlink(ctx, moduleId, req.FeatureIds)
	if err != nil {
		return nil, nil, err
	}

	return module, result, nil
}
