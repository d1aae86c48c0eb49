// FILE: internal/model/mapping_model.go
// GORM models for the many-to-many link tables of the entitlement hierarchy.
//
// module_feature_mappings uses hard-delete semantics, so a plain composite
// unique index guards against duplicate pairs under concurrent linking.
// plan_module_mappings uses soft-delete semantics: inactive rows are history
// and must not block re-adding, so the unique index is partial on is_active.
package model

import (
	"time"

	"github.com/google/uuid"
)

type ModuleFeatureMapping struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ModuleId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_feature"`
	FeatureId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_feature"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Feature *Feature `gorm:"foreignKey:FeatureId"`
}

func (ModuleFeatureMapping) TableName() string {
	return "module_feature_mappings"
}

type PlanModuleMapping struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_plan_module_active,where:is_active"`
	ModuleId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_plan_module_active,where:is_active"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Module *Module `gorm:"foreignKey:ModuleId"`
}

func (PlanModuleMapping) TableName() string {
	return "plan_module_mappings"
}

// PlanUserMapping is the subscriber assignment row. It is written by the
// member/billing side; this service only reads counts and listings of
// active rows.
type PlanUserMapping struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanId    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User *Member `gorm:"foreignKey:UserId"`
}

func (PlanUserMapping) TableName() string {
	return "plan_user_mappings"
}
