// FILE: internal/model/member_model.go
// GORM model for members. Account management (passwords, sessions) lives in
// the member service; this side only joins members into plan projections.
package model

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(50);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Member) TableName() string {
	return "members"
}
