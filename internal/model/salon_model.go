// FILE: internal/model/salon_model.go
// GORM models for the salon directory: salons, branches, staff and the
// services a branch offers (named Offering to avoid clashing with the
// service layer).
package model

import (
	"time"

	"github.com/google/uuid"
)

type Salon struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_salon_owner_name"`
	OwnerId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_salon_owner_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Salon) TableName() string {
	return "salons"
}

type Branch struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalonId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Address    string    `gorm:"type:text"`
	City       string    `gorm:"type:varchar(100)"`
	Pincode    string    `gorm:"type:varchar(20)"`
	ContactNo  string    `gorm:"type:varchar(20)"`
	BranchCode string    `gorm:"type:varchar(50)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Branch) TableName() string {
	return "branches"
}

type Staff struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchId  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID `gorm:"type:uuid;not null"`
	Role      string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Staff) TableName() string {
	return "staff"
}

type Offering struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Price           float64   `gorm:"not null"`
	Description     string    `gorm:"type:text"`
	DurationMinutes int       `gorm:"default:0"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Offering) TableName() string {
	return "offerings"
}
