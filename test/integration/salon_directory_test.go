package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"carelytix-be/internal/dto"
	"carelytix-be/internal/model"
	"carelytix-be/internal/pkg/apperror"
	"carelytix-be/internal/pkg/logger"
	"carelytix-be/internal/repository/unitofwork"
	"carelytix-be/internal/service"
	"carelytix-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSalonDirectoryFlow covers the directory CRUD path: listing with no
// rows is reported as not found, and branch listing checks the parent
// salon first. Requires a real database; skipped when
// DB_CONNECTION_STRING is not set.
func TestSalonDirectoryFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Salon{},
		&model.Branch{},
		&model.Staff{},
		&model.Offering{},
	))

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	salonService := service.NewSalonService(uowFactory, logger.NewZapLogger("logs/test.log", false))

	ownerId := uuid.New()
	suffix := uuid.New().String()[:8]

	// An owner with no salons gets not-found, not an empty page
	_, err = salonService.GetSalonsByOwner(ctx, ownerId)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	// Listing branches of a salon that does not exist fails on the parent
	_, err = salonService.GetBranchesBySalon(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	salon, err := salonService.CreateSalon(ctx, ownerId, dto.CreateSalonRequest{
		Name: fmt.Sprintf("Glow Studio %s", suffix),
	})
	require.NoError(t, err)
	defer db.Exec("DELETE FROM salons WHERE id = ?", salon.Id)

	// The salon exists but has no branches yet
	_, err = salonService.GetBranchesBySalon(ctx, salon.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	branch, err := salonService.CreateBranch(ctx, dto.CreateBranchRequest{
		SalonId:    salon.Id,
		Name:       "Main",
		Address:    "12 High Street",
		City:       "Pune",
		Pincode:    "411001",
		ContactNo:  "9999999999",
		BranchCode: fmt.Sprintf("BR-%s", suffix),
	})
	require.NoError(t, err)
	defer db.Exec("DELETE FROM branches WHERE id = ?", branch.Id)

	branches, err := salonService.GetBranchesBySalon(ctx, salon.Id)
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, branch.Id, branches[0].Id)

	// Same not-found quirk on the staff and offering listings
	_, err = salonService.GetStaffByBranch(ctx, branch.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	_, err = salonService.GetOfferingsByBranch(ctx, branch.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	salons, err := salonService.GetSalonsByOwner(ctx, ownerId)
	require.NoError(t, err)
	require.Len(t, salons, 1)
	assert.Equal(t, salon.Id, salons[0].Id)
}
