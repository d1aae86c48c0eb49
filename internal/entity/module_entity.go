// FILE: internal/entity/module_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Module groups features into a sellable unit. FeatureMappings is populated
// only on resolved reads; it holds every row the repository was asked to
// fetch (callers filter on IsActive where it matters).
type Module struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	FeatureMappings []ModuleFeatureMapping
}

// ModuleFeatureMapping is the Module↔Feature link row.
type ModuleFeatureMapping struct {
	Id        uuid.UUID
	ModuleId  uuid.UUID
	FeatureId uuid.UUID
	IsActive  bool
	CreatedAt time.Time

	Feature *Feature
}
