// FILE: internal/repository/contract/module_repository.go
package contract

import (
	"context"

	"carelytix-be/internal/entity"
	"carelytix-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ModuleRepository interface {
	Create(ctx context.Context, module *entity.Module) error
	Update(ctx context.Context, module *entity.Module) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Module, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Module, error)
	FilterExisting(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
