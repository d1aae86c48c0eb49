// FILE: internal/repository/contract/salon_repository.go
package contract

import (
	"context"

	"carelytix-be/internal/entity"
	"carelytix-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SalonRepository interface {
	Create(ctx context.Context, salon *entity.Salon) error
	Update(ctx context.Context, salon *entity.Salon) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Salon, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Salon, error)
}

type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	Update(ctx context.Context, branch *entity.Branch) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Branch, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Branch, error)
}

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	Update(ctx context.Context, staff *entity.Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Staff, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Staff, error)
}

type OfferingRepository interface {
	Create(ctx context.Context, offering *entity.Offering) error
	Update(ctx context.Context, offering *entity.Offering) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Offering, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Offering, error)
}
