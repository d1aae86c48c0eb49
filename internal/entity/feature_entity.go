// FILE: internal/entity/feature_entity.go
// Domain entity for atomic capability records
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feature is an atomic capability that can be bundled into modules.
type Feature struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
