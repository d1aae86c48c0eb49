// FILE: internal/repository/contract/plan_repository.go
package contract

import (
	"context"

	"carelytix-be/internal/entity"
	"carelytix-be/internal/repository/specification"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error)

	// FindOneResolved loads a plan with its active module mappings, each
	// module's active feature mappings and the feature records themselves.
	FindOneResolved(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error)
	// FindAllResolved is FindOneResolved over every plan, newest first.
	FindAllResolved(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error)
}
