// FILE: internal/dto/module_dto.go
// DTOs for the module registry and Module↔Feature linking
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateModuleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type UpdateModuleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type ModuleResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddFeaturesRequest links features into a module. Unknown ids are dropped
// silently as long as at least one id resolves.
type AddFeaturesRequest struct {
	FeatureIds []uuid.UUID `json:"feature_ids" validate:"required"`
}

type RemoveFeaturesRequest struct {
	FeatureIds []uuid.UUID `json:"feature_ids" validate:"required"`
}

// AddFeaturesResponse reports the applied delta.
type AddFeaturesResponse struct {
	Module         ModuleResponse `json:"module"`
	Added          []uuid.UUID    `json:"added"`
	AlreadyPresent []uuid.UUID    `json:"already_present"`
}

type RemoveFeaturesResponse struct {
	Module  ModuleResponse `json:"module"`
	Removed int64          `json:"removed"`
}
