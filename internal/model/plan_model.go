// FILE: internal/model/plan_model.go
// GORM model for the subscription plans table
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Plan struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string            `gorm:"type:varchar(100);uniqueIndex;not null"`
	PlanMeta  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime"`

	ModuleMappings []PlanModuleMapping `gorm:"foreignKey:PlanId"`
	UserMappings   []PlanUserMapping   `gorm:"foreignKey:PlanId"`
}

func (Plan) TableName() string {
	return "plans"
}
