package mapper_test

import (
	"testing"

	"carelytix-be/internal/entity"
	"carelytix-be/pkg/admin/mapper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanToEntitlementFiltersInactive(t *testing.T) {
	smsFeature := &entity.Feature{Id: uuid.New(), Name: "SMS Reminders"}
	emailFeature := &entity.Feature{Id: uuid.New(), Name: "Email Reminders"}

	notifications := &entity.Module{
		Id:   uuid.New(),
		Name: "Notifications",
		FeatureMappings: []entity.ModuleFeatureMapping{
			{Id: uuid.New(), FeatureId: smsFeature.Id, IsActive: true, Feature: smsFeature},
			{Id: uuid.New(), FeatureId: emailFeature.Id, IsActive: false, Feature: emailFeature},
		},
	}
	booking := &entity.Module{Id: uuid.New(), Name: "Booking"}
	retired := &entity.Module{Id: uuid.New(), Name: "Retired"}

	plan := &entity.Plan{
		Id:   uuid.New(),
		Name: "Pro",
		ModuleMappings: []entity.PlanModuleMapping{
			{Id: uuid.New(), ModuleId: notifications.Id, IsActive: true, Module: notifications},
			{Id: uuid.New(), ModuleId: booking.Id, IsActive: true, Module: booking},
			{Id: uuid.New(), ModuleId: retired.Id, IsActive: false, Module: retired},
		},
	}

	resp := mapper.PlanToEntitlement(plan, 3, nil)
	require.NotNil(t, resp)

	// The deactivated module link is gone from the tree.
	require.Len(t, resp.Modules, 2)
	assert.Equal(t, "Notifications", resp.Modules[0].Name)
	assert.Equal(t, "Booking", resp.Modules[1].Name)

	// Only the active feature of Notifications survives.
	require.Len(t, resp.Modules[0].Features, 1)
	assert.Equal(t, "SMS Reminders", resp.Modules[0].Features[0].Name)
	assert.Empty(t, resp.Modules[1].Features)

	assert.Equal(t, 3, resp.SubscriberCount)
	assert.Empty(t, resp.Subscribers)
}

func TestPlanToEntitlementWithSubscribers(t *testing.T) {
	plan := &entity.Plan{Id: uuid.New(), Name: "Starter"}
	subs := []entity.PlanSubscriber{
		{Id: uuid.New(), Name: "Asha", Email: "asha@example.com"},
		{Id: uuid.New(), Name: "Ravi", Email: "ravi@example.com"},
	}

	resp := mapper.PlanToEntitlement(plan, len(subs), subs)
	require.NotNil(t, resp)

	assert.Equal(t, 2, resp.SubscriberCount)
	require.Len(t, resp.Subscribers, 2)
	assert.Equal(t, "asha@example.com", resp.Subscribers[0].Email)
	assert.Empty(t, resp.Modules)
}

func TestPlanToEntitlementNil(t *testing.T) {
	assert.Nil(t, mapper.PlanToEntitlement(nil, 0, nil))
}
