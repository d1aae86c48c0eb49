// FILE: internal/repository/contract/feature_repository.go
package contract

import (
	"context"

	"carelytix-be/internal/entity"
	"carelytix-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	Update(ctx context.Context, feature *entity.Feature) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error)
	// FilterExisting returns the subset of ids that refer to stored features.
	FilterExisting(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
