package service

import (
	"context"

	"carelytix-be/internal/dto"
	"carelytix-be/internal/entity"
	"carelytix-be/internal/pkg/apperror"
	"carelytix-be/internal/pkg/logger"
	"carelytix-be/internal/repository/specification"
	"carelytix-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISalonService interface {
	CreateSalon(ctx context.Context, ownerId uuid.UUID, req dto.CreateSalonRequest) (*dto.SalonResponse, error)
	GetSalonsByOwner(ctx context.Context, ownerId uuid.UUID) ([]*dto.SalonResponse, error)
	GetSalon(ctx context.Context, id uuid.UUID) (*dto.SalonResponse, error)
	UpdateSalon(ctx context.Context, id uuid.UUID, req dto.UpdateSalonRequest) (*dto.SalonResponse, error)
	DeleteSalon(ctx context.Context, id uuid.UUID) error

	CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*dto.BranchResponse, error)
	GetBranchesBySalon(ctx context.Context, salonId uuid.UUID) ([]*dto.BranchResponse, error)
	UpdateBranch(ctx context.Context, id uuid.UUID, req dto.UpdateBranchRequest) (*dto.BranchResponse, error)
	DeleteBranch(ctx context.Context, id uuid.UUID) error

	CreateStaff(ctx context.Context, req dto.CreateStaffRequest) (*dto.StaffResponse, error)
	GetStaffByBranch(ctx context.Context, branchId uuid.UUID) ([]*dto.StaffResponse, error)
	UpdateStaff(ctx context.Context, id uuid.UUID, req dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	DeleteStaff(ctx context.Context, id uuid.UUID) error

	CreateOffering(ctx context.Context, req dto.CreateOfferingRequest) (*dto.OfferingResponse, error)
	GetOfferingsByBranch(ctx context.Context, branchId uuid.UUID) ([]*dto.OfferingResponse, error)
	UpdateOffering(ctx context.Context, id uuid.UUID, req dto.UpdateOfferingRequest) (*dto.OfferingResponse, error)
	DeleteOffering(ctx context.Context, id uuid.UUID) error
}

type salonService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSalonService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) ISalonService {
	return &salonService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// ============================================================================
// Salons
// ============================================================================

func (s *salonService) CreateSalon(ctx context.Context, ownerId uuid.UUID, req dto.CreateSalonRequest) (*dto.SalonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.SalonRepository().FindOne(ctx,
		specification.ByName{Name: req.Name},
		specification.Filter("owner_id", ownerId),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("salon with name '%s' already exists for this owner", req.Name)
	}

	salon := &entity.Salon{
		Name:    req.Name,
		OwnerId: ownerId,
	}
	if err := uow.SalonRepository().Create(ctx, salon); err != nil {
		return nil, err
	}

	s.logger.Info("SALON", "Salon created", map[string]interface{}{"salon_id": salon.Id, "owner_id": ownerId})
	return salonToResponse(salon), nil
}

func (s *salonService) GetSalonsByOwner(ctx context.Context, ownerId uuid.UUID) ([]*dto.SalonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	salons, err := uow.SalonRepository().FindAll(ctx, specification.Filter("owner_id", ownerId))
	if err != nil {
		return nil, err
	}
	if len(salons) == 0 {
		return nil, apperror.NotFound("no salons found")
	}

	res := make([]*dto.SalonResponse, 0, len(salons))
	for _, salon := range salons {
		res = append(res, salonToResponse(salon))
	}
	return res, nil
}

func (s *salonService) GetSalon(ctx context.Context, id uuid.UUID) (*dto.SalonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	salon, err := uow.SalonRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, apperror.NotFound("salon not found")
	}
	return salonToResponse(salon), nil
}

func (s *salonService) UpdateSalon(ctx context.Context, id uuid.UUID, req dto.UpdateSalonRequest) (*dto.SalonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	salon, err := uow.SalonRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, apperror.NotFound("salon not found")
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}

	if err := uow.SalonRepository().Update(ctx, salon); err != nil {
		return nil, err
	}
	return salonToResponse(salon), nil
}

func (s *salonService) DeleteSalon(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	salon, err := uow.SalonRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if salon == nil {
		return apperror.NotFound("salon not found")
	}
	return uow.SalonRepository().Delete(ctx, id)
}

// ============================================================================
// Branches
// ============================================================================

func (s *salonService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	salon, err := uow.SalonRepository().FindOne(ctx, specification.ByID{ID: req.SalonId})
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, apperror.NotFound("salon not found")
	}

	branch := &entity.Branch{
		SalonId:    req.SalonId,
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		Pincode:    req.Pincode,
		ContactNo:  req.ContactNo,
		BranchCode: req.BranchCode,
	}
	if err := uow.BranchRepository().Create(ctx, branch); err != nil {
		return nil, err
	}

	s.logger.Info("SALON", "Branch created", map[string]interface{}{"branch_id": branch.Id, "salon_id": req.SalonId})
	return branchToResponse(branch), nil
}

func (s *salonService) GetBranchesBySalon(ctx context.Context, salonId uuid.UUID) ([]*dto.BranchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	salon, err := uow.SalonRepository().FindOne(ctx, specification.ByID{ID: salonId})
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, apperror.NotFound("salon not found")
	}

	branches, err := uow.BranchRepository().FindAll(ctx, specification.Filter("salon_id", salonId))
	if err != nil {
		return nil, err
	}
	if len(branches) == 0 {
		return nil, apperror.NotFound("no branches found")
	}

	res := make([]*dto.BranchResponse, 0, len(branches))
	for _, branch := range branches {
		res = append(res, branchToResponse(branch))
	}
	return res, nil
}

func (s *salonService) UpdateBranch(ctx context.Context, id uuid.UUID, req dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	branch, err := uow.BranchRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NotFound("branch not found")
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.City != nil {
		branch.City = *req.City
	}
	if req.Pincode != nil {
		branch.Pincode = *req.Pincode
	}
	if req.ContactNo != nil {
		branch.ContactNo = *req.ContactNo
	}

	if err := uow.BranchRepository().Update(ctx, branch); err != nil {
		return nil, err
	}
	return branchToResponse(branch), nil
}

func (s *salonService) DeleteBranch(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	branch, err := uow.BranchRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if branch == nil {
		return apperror.NotFound("branch not found")
	}
	return uow.BranchRepository().Delete(ctx, id)
}

// ============================================================================
// Staff
// ============================================================================

func (s *salonService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	branch, err := uow.BranchRepository().FindOne(ctx, specification.ByID{ID: req.BranchId})
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NotFound("branch not found")
	}

	staff := &entity.Staff{
		BranchId: req.BranchId,
		UserId:   req.UserId,
		Role:     req.Role,
	}
	if err := uow.StaffRepository().Create(ctx, staff); err != nil {
		return nil, err
	}
	return staffToResponse(staff), nil
}

func (s *salonService) GetStaffByBranch(ctx context.Context, branchId uuid.UUID) ([]*dto.StaffResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	members, err := uow.StaffRepository().FindAll(ctx, specification.Filter("branch_id", branchId))
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, apperror.NotFound("no staff found")
	}

	res := make([]*dto.StaffResponse, 0, len(members))
	for _, st := range members {
		res = append(res, staffToResponse(st))
	}
	return res, nil
}

func (s *salonService) UpdateStaff(ctx context.Context, id uuid.UUID, req dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	staff, err := uow.StaffRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NotFound("staff not found")
	}

	if req.Role != nil {
		staff.Role = *req.Role
	}

	if err := uow.StaffRepository().Update(ctx, staff); err != nil {
		return nil, err
	}
	return staffToResponse(staff), nil
}

func (s *salonService) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	staff, err := uow.StaffRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NotFound("staff not found")
	}
	return uow.StaffRepository().Delete(ctx, id)
}

// ============================================================================
// Offerings
// ============================================================================

func (s *salonService) CreateOffering(ctx context.Context, req dto.CreateOfferingRequest) (*dto.OfferingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	branch, err := uow.BranchRepository().FindOne(ctx, specification.ByID{ID: req.BranchId})
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NotFound("branch not found")
	}

	offering := &entity.Offering{
		BranchId:        req.BranchId,
		Name:            req.Name,
		Price:           req.Price,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
	}
	if err := uow.OfferingRepository().Create(ctx, offering); err != nil {
		return nil, err
	}
	return offeringToResponse(offering), nil
}

func (s *salonService) GetOfferingsByBranch(ctx context.Context, branchId uuid.UUID) ([]*dto.OfferingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offerings, err := uow.OfferingRepository().FindAll(ctx, specification.Filter("branch_id", branchId))
	if err != nil {
		return nil, err
	}
	if len(offerings) == 0 {
		return nil, apperror.NotFound("no offerings found")
	}

	res := make([]*dto.OfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		res = append(res, offeringToResponse(o))
	}
	return res, nil
}

func (s *salonService) UpdateOffering(ctx context.Context, id uuid.UUID, req dto.UpdateOfferingRequest) (*dto.OfferingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offering, err := uow.OfferingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, apperror.NotFound("offering not found")
	}

	if req.Name != nil {
		offering.Name = *req.Name
	}
	if req.Price != nil {
		offering.Price = *req.Price
	}
	if req.Description != nil {
		offering.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		offering.DurationMinutes = *req.DurationMinutes
	}

	if err := uow.OfferingRepository().Update(ctx, offering); err != nil {
		return nil, err
	}
	return offeringToResponse(offering), nil
}

func (s *salonService) DeleteOffering(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offering, err := uow.OfferingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if offering == nil {
		return apperror.NotFound("offering not found")
	}
	return uow.OfferingRepository().Delete(ctx, id)
}

// ============================================================================
// DTO conversion
// ============================================================================

func salonToResponse(s *entity.Salon) *dto.SalonResponse {
	return &dto.SalonResponse{
		Id:        s.Id,
		Name:      s.Name,
		OwnerId:   s.OwnerId,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func branchToResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		Id:         b.Id,
		SalonId:    b.SalonId,
		Name:       b.Name,
		Address:    b.Address,
		City:       b.City,
		Pincode:    b.Pincode,
		ContactNo:  b.ContactNo,
		BranchCode: b.BranchCode,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func staffToResponse(st *entity.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		Id:        st.Id,
		BranchId:  st.BranchId,
		UserId:    st.UserId,
		Role:      st.Role,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}

func offeringToResponse(o *entity.Offering) *dto.OfferingResponse {
	return &dto.OfferingResponse{
		Id:              o.Id,
		BranchId:        o.BranchId,
		Name:            o.Name,
		Price:           o.Price,
		Description:     o.Description,
		DurationMinutes: o.DurationMinutes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
