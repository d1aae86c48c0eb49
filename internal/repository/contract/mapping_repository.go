// FILE: internal/repository/contract/mapping_repository.go
// Contracts for the many-to-many link tables. Both mapping repositories
// satisfy linking.Store, so the mapping engine works against either relation.
package contract

import (
	"context"

	"carelytix-be/internal/entity"

	"github.com/google/uuid"
)

// ModuleFeatureMappingRepository persists Module↔Feature link rows
// (hard-delete relation).
type ModuleFeatureMappingRepository interface {
	LinkedChildIDs(ctx context.Context, parentID uuid.UUID, candidates []uuid.UUID, activeOnly bool) ([]uuid.UUID, error)
	CreateLink(ctx context.Context, parentID, childID uuid.UUID) error
	DeleteLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error)
	DeactivateLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error)

	// CountActiveByFeature reports how many active mappings reference the
	// feature, used to block hard feature deletes.
	CountActiveByFeature(ctx context.Context, featureID uuid.UUID) (int64, error)
}

// PlanModuleMappingRepository persists Plan↔Module link rows
// (soft-delete relation).
type PlanModuleMappingRepository interface {
	LinkedChildIDs(ctx context.Context, parentID uuid.UUID, candidates []uuid.UUID, activeOnly bool) ([]uuid.UUID, error)
	CreateLink(ctx context.Context, parentID, childID uuid.UUID) error
	DeleteLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error)
	DeactivateLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error)
}

// PlanUserMappingRepository reads subscriber assignments. The rows are
// written by the member/billing side; this service never mutates them.
type PlanUserMappingRepository interface {
	CountActive(ctx context.Context, planID uuid.UUID) (int, error)
	FindActiveSubscribers(ctx context.Context, planID uuid.UUID) ([]entity.PlanSubscriber, error)
}
