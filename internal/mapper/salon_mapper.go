// FILE: internal/mapper/salon_mapper.go
package mapper

import (
	"carelytix-be/internal/entity"
	"carelytix-be/internal/model"
)

type SalonMapper struct{}

func NewSalonMapper() *SalonMapper {
	return &SalonMapper{}
}

func (m *SalonMapper) ToEntity(mdl *model.Salon) *entity.Salon {
	if mdl == nil {
		return nil
	}
	return &entity.Salon{
		Id:        mdl.Id,
		Name:      mdl.Name,
		OwnerId:   mdl.OwnerId,
		CreatedAt: mdl.CreatedAt,
		UpdatedAt: mdl.UpdatedAt,
	}
}

func (m *SalonMapper) ToModel(ent *entity.Salon) *model.Salon {
	if ent == nil {
		return nil
	}
	return &model.Salon{
		Id:        ent.Id,
		Name:      ent.Name,
		OwnerId:   ent.OwnerId,
		CreatedAt: ent.CreatedAt,
		UpdatedAt: ent.UpdatedAt,
	}
}

func (m *SalonMapper) ToEntities(models []*model.Salon) []*entity.Salon {
	entities := make([]*entity.Salon, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *SalonMapper) BranchToEntity(mdl *model.Branch) *entity.Branch {
	if mdl == nil {
		return nil
	}
	return &entity.Branch{
		Id:         mdl.Id,
		SalonId:    mdl.SalonId,
		Name:       mdl.Name,
		Address:    mdl.Address,
		City:       mdl.City,
		Pincode:    mdl.Pincode,
		ContactNo:  mdl.ContactNo,
		BranchCode: mdl.BranchCode,
		CreatedAt:  mdl.CreatedAt,
		UpdatedAt:  mdl.UpdatedAt,
	}
}

func (m *SalonMapper) BranchToModel(ent *entity.Branch) *model.Branch {
	if ent == nil {
		return nil
	}
	return &model.Branch{
		Id:         ent.Id,
		SalonId:    ent.SalonId,
		Name:       ent.Name,
		Address:    ent.Address,
		City:       ent.City,
		Pincode:    ent.Pincode,
		ContactNo:  ent.ContactNo,
		BranchCode: ent.BranchCode,
		CreatedAt:  ent.CreatedAt,
		UpdatedAt:  ent.UpdatedAt,
	}
}

func (m *SalonMapper) BranchesToEntities(models []*model.Branch) []*entity.Branch {
	entities := make([]*entity.Branch, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.BranchToEntity(mdl))
	}
	return entities
}

func (m *SalonMapper) StaffToEntity(mdl *model.Staff) *entity.Staff {
	if mdl == nil {
		return nil
	}
	return &entity.Staff{
		Id:        mdl.Id,
		BranchId:  mdl.BranchId,
		UserId:    mdl.UserId,
		Role:      mdl.Role,
		CreatedAt: mdl.CreatedAt,
		UpdatedAt: mdl.UpdatedAt,
	}
}

func (m *SalonMapper) StaffToModel(ent *entity.Staff) *model.Staff {
	if ent == nil {
		return nil
	}
	return &model.Staff{
		Id:        ent.Id,
		BranchId:  ent.BranchId,
		UserId:    ent.UserId,
		Role:      ent.Role,
		CreatedAt: ent.CreatedAt,
		UpdatedAt: ent.UpdatedAt,
	}
}

func (m *SalonMapper) StaffToEntities(models []*model.Staff) []*entity.Staff {
	entities := make([]*entity.Staff, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.StaffToEntity(mdl))
	}
	return entities
}

func (m *SalonMapper) OfferingToEntity(mdl *model.Offering) *entity.Offering {
	if mdl == nil {
		return nil
	}
	return &entity.Offering{
		Id:              mdl.Id,
		BranchId:        mdl.BranchId,
		Name:            mdl.Name,
		Price:           mdl.Price,
		Description:     mdl.Description,
		DurationMinutes: mdl.DurationMinutes,
		CreatedAt:       mdl.CreatedAt,
		UpdatedAt:       mdl.UpdatedAt,
	}
}

func (m *SalonMapper) OfferingToModel(ent *entity.Offering) *model.Offering {
	if ent == nil {
		return nil
	}
	return &model.Offering{
		Id:              ent.Id,
		BranchId:        ent.BranchId,
		Name:            ent.Name,
		Price:           ent.Price,
		Description:     ent.Description,
		DurationMinutes: ent.DurationMinutes,
		CreatedAt:       ent.CreatedAt,
		UpdatedAt:       ent.UpdatedAt,
	}
}

func (m *SalonMapper) OfferingsToEntities(models []*model.Offering) []*entity.Offering {
	entities := make([]*entity.Offering, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.OfferingToEntity(mdl))
	}
	return entities
}
