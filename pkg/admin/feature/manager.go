package feature

import (
	"context"

	"carelytix-be/internal/dto"
	"carelytix-be/internal/entity"
	"carelytix-be/internal/pkg/apperror"
	"carelytix-be/internal/repository/specification"
	"carelytix-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles feature catalog operations
type Manager struct{}

// NewManager creates a new feature manager
func NewManager() *Manager {
	return &Manager{}
}

// GetAll retrieves every feature in the catalog
func (m *Manager) GetAll(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Feature, error) {
	return uow.FeatureRepository().FindAll(ctx)
}

// Get retrieves one feature by id
func (m *Manager) Get(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Feature, error) {
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, apperror.NotFound("feature not found")
	}
	return feature, nil
}

// Create adds a new feature to the catalog
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateFeatureRequest) (*entity.Feature, error) {
	existing, err := uow.FeatureRepository().FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("feature with name '%s' already exists", req.Name)
	}

	feature := &entity.Feature{
		Name: req.Name,
	}

	if err := uow.FeatureRepository().Create(ctx, feature); err != nil {
		return nil, err
	}

	return feature, nil
}

// Update renames a feature. Renaming to a name held by another feature
// is a conflict; renaming to the feature's own name is not.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateFeatureRequest) (*entity.Feature, error) {
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, apperror.NotFound("feature not found")
	}

	colliding, err := uow.FeatureRepository().FindOne(ctx, specification.ByNameExcludingID{Name: req.Name, ExcludeID: id})
	if err != nil {
		return nil, err
	}
	if colliding != nil {
		return nil, apperror.Conflict("feature with name '%s' already exists", req.Name)
	}

	feature.Name = req.Name

	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	return feature, nil
}

// Delete removes a feature from the catalog. A feature still linked to
// a module cannot be deleted.
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if feature == nil {
		return apperror.NotFound("feature not found")
	}

	inUse, err := uow.ModuleFeatureMappingRepository().CountActiveByFeature(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return apperror.Conflict("feature '%s' is linked to %d module(s)", feature.Name, inUse)
	}

	return uow.FeatureRepository().Delete(ctx, id)
}
