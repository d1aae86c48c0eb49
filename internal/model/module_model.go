// FILE: internal/model/module_model.go
// GORM model for the modules table
package model

import (
	"time"

	"github.com/google/uuid"
)

type Module struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	FeatureMappings []ModuleFeatureMapping `gorm:"foreignKey:ModuleId"`
}

func (Module) TableName() string {
	return "modules"
}
