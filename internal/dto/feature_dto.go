// FILE: internal/dto/feature_dto.go
// DTOs for the feature registry
package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateFeatureRequest adds a new feature to the catalog
type CreateFeatureRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// UpdateFeatureRequest renames a feature
type UpdateFeatureRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// FeatureResponse is returned when getting feature(s)
type FeatureResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
