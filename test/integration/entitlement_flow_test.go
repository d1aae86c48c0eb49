package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"carelytix-be/internal/dto"
	"carelytix-be/internal/model"
	"carelytix-be/internal/pkg/apperror"
	"carelytix-be/internal/repository/specification"
	"carelytix-be/internal/repository/unitofwork"
	"carelytix-be/pkg/admin/feature"
	"carelytix-be/pkg/admin/linking"
	"carelytix-be/pkg/admin/module"
	"carelytix-be/pkg/admin/plan"
	"carelytix-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEntitlementFlow walks the full path: feature -> module -> plan ->
// projection, including the soft/hard removal asymmetry. Requires a
// real database; skipped when DB_CONNECTION_STRING is not set.
func TestEntitlementFlow(t *testing.T) {
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
		&model.Feature{},
		&model.Module{},
		&model.Plan{},
		&model.Member{},
		&model.ModuleFeatureMapping{},
		&model.PlanModuleMapping{},
		&model.PlanUserMapping{},
	))

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	uow := uowFactory.NewUnitOfWork(ctx)

	featureManager := feature.NewManager()
	moduleManager := module.NewManager()
	planManager := plan.NewManager()

	// Unique names so reruns against the same database do not collide.
	suffix := uuid.New().String()[:8]
	featureName := fmt.Sprintf("SMS Reminders %s", suffix)
	moduleName := fmt.Sprintf("Notifications %s", suffix)
	planName := fmt.Sprintf("Pro %s", suffix)

	// 1. Create feature and module
	f, err := featureManager.Create(ctx, uow, dto.CreateFeatureRequest{Name: featureName})
	require.NoError(t, err)
	defer db.Exec("DELETE FROM features WHERE id = ?", f.Id)

	mod, err := moduleManager.Create(ctx, uow, dto.CreateModuleRequest{Name: moduleName})
	require.NoError(t, err)
	defer db.Exec("DELETE FROM modules WHERE id = ?", mod.Id)
	defer db.Exec("DELETE FROM module_feature_mappings WHERE module_id = ?", mod.Id)

	// 2. Link the feature into the module
	_, linkRes, err := moduleManager.AddFeatures(ctx, uow, mod.Id, dto.AddFeaturesRequest{
		FeatureIds: []uuid.UUID{f.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, linking.StatusApplied, linkRes.Status)
	assert.Len(t, linkRes.Added, 1)

	// Linking again is a no-op, not a duplicate row
	_, again, err := moduleManager.AddFeatures(ctx, uow, mod.Id, dto.AddFeaturesRequest{
		FeatureIds: []uuid.UUID{f.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, linking.StatusNoOp, again.Status)
	assert.Empty(t, again.Added)

	// A bogus id alongside a valid one is dropped, not fatal
	_, partial, err := moduleManager.AddFeatures(ctx, uow, mod.Id, dto.AddFeaturesRequest{
		FeatureIds: []uuid.UUID{f.Id, uuid.New()},
	})
	require.NoError(t, err)
	assert.Equal(t, linking.StatusNoOp, partial.Status)

	// 3. Create the plan with the module attached
	p, err := planManager.Create(ctx, uow, dto.CreatePlanRequest{
		Name:      planName,
		ModuleIds: []uuid.UUID{mod.Id},
	})
	require.NoError(t, err)
	defer db.Exec("DELETE FROM plans WHERE id = ?", p.Id)
	defer db.Exec("DELETE FROM plan_module_mappings WHERE plan_id = ?", p.Id)

	// Renaming onto another plan's name conflicts; a plan keeping its
	// own name does not collide with itself
	otherPlan, err := planManager.Create(ctx, uow, dto.CreatePlanRequest{Name: planName + " Max"})
	require.NoError(t, err)
	defer db.Exec("DELETE FROM plans WHERE id = ?", otherPlan.Id)

	_, err = planManager.Update(ctx, uow, otherPlan.Id, dto.UpdatePlanRequest{Name: planName})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	_, err = planManager.Update(ctx, uow, p.Id, dto.UpdatePlanRequest{Name: planName})
	require.NoError(t, err)

	// addModules with an unknown id fails entirely (strict resolution)
	_, _, err = planManager.AddModules(ctx, uow, p.Id, dto.AddModulesRequest{
		ModuleIds: []uuid.UUID{mod.Id, uuid.New()},
	})
	require.Error(t, err)

	// 4. Projection resolves the full tree
	ent, err := planManager.GetEntitlement(ctx, uow, p.Id)
	require.NoError(t, err)
	require.Len(t, ent.Modules, 1)
	assert.Equal(t, moduleName, ent.Modules[0].Name)
	require.Len(t, ent.Modules[0].Features, 1)
	assert.Equal(t, featureName, ent.Modules[0].Features[0].Name)
	assert.Equal(t, 0, ent.SubscriberCount)

	// 5. Removing the module is a soft delete: the row stays, inactive
	_, removed, err := planManager.RemoveModules(ctx, uow, p.Id, dto.RemoveModulesRequest{
		ModuleIds: []uuid.UUID{mod.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed.Removed)

	ent, err = planManager.GetEntitlement(ctx, uow, p.Id)
	require.NoError(t, err)
	assert.Empty(t, ent.Modules)

	stillThere, err := uow.PlanModuleMappingRepository().LinkedChildIDs(ctx, p.Id, []uuid.UUID{mod.Id}, false)
	require.NoError(t, err)
	assert.Len(t, stillThere, 1, "soft-deleted plan-module row should still exist")

	// The inactive row does not block re-adding
	_, readd, err := planManager.AddModules(ctx, uow, p.Id, dto.AddModulesRequest{
		ModuleIds: []uuid.UUID{mod.Id},
	})
	require.NoError(t, err)
	assert.Len(t, readd.Added, 1)

	// 6. A feature still linked to a module cannot be deleted
	err = featureManager.Delete(ctx, uow, f.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	// 7. Removing the feature is a hard delete: no row in any state
	_, unlinked, err := moduleManager.RemoveFeatures(ctx, uow, mod.Id, dto.RemoveFeaturesRequest{
		FeatureIds: []uuid.UUID{f.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), unlinked.Removed)

	gone, err := uow.ModuleFeatureMappingRepository().LinkedChildIDs(ctx, mod.Id, []uuid.UUID{f.Id}, false)
	require.NoError(t, err)
	assert.Empty(t, gone, "module-feature row should be gone entirely")

	// With the link gone the delete goes through
	require.NoError(t, featureManager.Delete(ctx, uow, f.Id))

	// 8. Transactional unit of work: a rollback leaves nothing behind
	txUow := uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, txUow.Begin(ctx))
	ghost, err := featureManager.Create(ctx, txUow, dto.CreateFeatureRequest{Name: featureName + " tmp"})
	require.NoError(t, err)
	require.NoError(t, txUow.Rollback())

	seen, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: ghost.Id})
	require.NoError(t, err)
	assert.Nil(t, seen)
}
