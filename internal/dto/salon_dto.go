// FILE: internal/dto/salon_dto.go
// DTOs for the salon directory (salons, branches, staff, offerings)
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSalonRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateSalonRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
}

type SalonResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerId   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBranchRequest struct {
	Name       string    `json:"name" validate:"required,min=2,max=100"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	Pincode    string    `json:"pincode,omitempty"`
	ContactNo  string    `json:"contact_no,omitempty"`
	BranchCode string    `json:"branch_code,omitempty"`
	SalonId    uuid.UUID `json:"salon_id" validate:"required"`
}

type UpdateBranchRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	Pincode   *string `json:"pincode,omitempty"`
	ContactNo *string `json:"contact_no,omitempty"`
}

type BranchResponse struct {
	Id         uuid.UUID `json:"id"`
	SalonId    uuid.UUID `json:"salon_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	Pincode    string    `json:"pincode,omitempty"`
	ContactNo  string    `json:"contact_no,omitempty"`
	BranchCode string    `json:"branch_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateStaffRequest struct {
	Role     string    `json:"role" validate:"required,min=2,max=50"`
	UserId   uuid.UUID `json:"user_id" validate:"required"`
	BranchId uuid.UUID `json:"branch_id" validate:"required"`
}

type UpdateStaffRequest struct {
	Role *string `json:"role,omitempty" validate:"omitempty,min=2,max=50"`
}

type StaffResponse struct {
	Id        uuid.UUID `json:"id"`
	BranchId  uuid.UUID `json:"branch_id"`
	UserId    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateOfferingRequest struct {
	Name            string    `json:"name" validate:"required,min=2,max=100"`
	Price           float64   `json:"price" validate:"required,gte=0"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty" validate:"omitempty,gte=0"`
	BranchId        uuid.UUID `json:"branch_id" validate:"required"`
}

type UpdateOfferingRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,gte=0"`
}

type OfferingResponse struct {
	Id              uuid.UUID `json:"id"`
	BranchId        uuid.UUID `json:"branch_id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
