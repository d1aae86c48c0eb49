// FILE: internal/model/feature_model.go
// GORM model for the features table (atomic capability catalog)
package model

import (
	"time"

	"github.com/google/uuid"
)

type Feature struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Feature) TableName() string {
	return "features"
}
