// FILE: internal/dto/plan_dto.go
// DTOs for the plan registry, Plan↔Module linking and the entitlement
// projection
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePlanRequest struct {
	Name      string      `json:"name" validate:"required,min=2,max=100"`
	ModuleIds []uuid.UUID `json:"module_ids" validate:"required"`
}

// UpdatePlanRequest renames a plan. PlanMeta replaces the stored map only
// when present; nil leaves it unchanged.
type UpdatePlanRequest struct {
	Name     string                 `json:"name" validate:"required,min=2,max=100"`
	PlanMeta map[string]interface{} `json:"plan_meta,omitempty"`
}

type AddModulesRequest struct {
	ModuleIds []uuid.UUID `json:"module_ids" validate:"required"`
}

type RemoveModulesRequest struct {
	ModuleIds []uuid.UUID `json:"module_ids" validate:"required"`
}

type PlanResponse struct {
	Id        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	PlanMeta  map[string]interface{} `json:"plan_meta,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type AddModulesResponse struct {
	Plan  PlanResponse `json:"plan"`
	Added int          `json:"added"`
}

type RemoveModulesResponse struct {
	Plan    PlanResponse `json:"plan"`
	Removed int64        `json:"removed"`
}

// --- Entitlement projection ---

// PlanEntitlementResponse is the fully resolved three-level tree: the plan,
// its active modules and, per module, the active features, plus the count of
// active subscribers. Assembled fresh on every read.
type PlanEntitlementResponse struct {
	Id              uuid.UUID               `json:"id"`
	Name            string                  `json:"name"`
	PlanMeta        map[string]interface{}  `json:"plan_meta,omitempty"`
	Modules         []PlanModuleEntitlement `json:"modules"`
	SubscriberCount int                     `json:"subscriber_count"`
	Subscribers     []SubscriberResponse    `json:"subscribers,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type PlanModuleEntitlement struct {
	MappingId uuid.UUID                `json:"mapping_id"`
	Id        uuid.UUID                `json:"id"`
	Name      string                   `json:"name"`
	Features  []PlanFeatureEntitlement `json:"features"`
}

type PlanFeatureEntitlement struct {
	MappingId uuid.UUID `json:"mapping_id"`
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
}

type SubscriberResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
