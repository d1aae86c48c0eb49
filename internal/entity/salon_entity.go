// FILE: internal/entity/salon_entity.go
// Domain entities for the salon directory
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Salon struct {
	Id        uuid.UUID
	Name      string
	OwnerId   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Branch struct {
	Id         uuid.UUID
	SalonId    uuid.UUID
	Name       string
	Address    string
	City       string
	Pincode    string
	ContactNo  string
	BranchCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Staff struct {
	Id        uuid.UUID
	BranchId  uuid.UUID
	UserId    uuid.UUID
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Offering struct {
	Id              uuid.UUID
	BranchId        uuid.UUID
	Name            string
	Price           float64
	Description     string
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
