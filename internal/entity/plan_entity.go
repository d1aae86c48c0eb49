// FILE: internal/entity/plan_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan is the root of the entitlement hierarchy. PlanMeta is an opaque
// key/value bag owned by the admin frontend.
type Plan struct {
	Id        uuid.UUID
	Name      string
	PlanMeta  map[string]interface{}
	CreatedAt time.Time
	UpdatedAt time.Time

	ModuleMappings []PlanModuleMapping
}

// PlanModuleMapping is the Plan↔Module link row. Removal deactivates the row
// instead of deleting it, so historical rows with IsActive=false exist.
type PlanModuleMapping struct {
	Id        uuid.UUID
	PlanId    uuid.UUID
	ModuleId  uuid.UUID
	IsActive  bool
	CreatedAt time.Time

	Module *Module
}

// PlanSubscriber is the member slice exposed by plan projections.
type PlanSubscriber struct {
	Id    uuid.UUID
	Name  string
	Email string
}
