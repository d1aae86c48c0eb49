package events

import (
	"context"
	"time"

	"carelytix-be/internal/pkg/logger"
	pkgEvents "carelytix-be/pkg/events"
	pkgNats "carelytix-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for entitlement admin operations.
type Publisher interface {
	PublishPlanCreated(ctx context.Context, planId uuid.UUID, name string, moduleIds []uuid.UUID)
	PublishModulesLinked(ctx context.Context, planId uuid.UUID, moduleIds []uuid.UUID)
	PublishModulesUnlinked(ctx context.Context, planId uuid.UUID, moduleIds []uuid.UUID, removed int64)
	PublishFeaturesLinked(ctx context.Context, moduleId uuid.UUID, featureIds []uuid.UUID)
	PublishFeaturesUnlinked(ctx context.Context, moduleId uuid.UUID, featureIds []uuid.UUID, removed int64)
}

// NatsPublisher implements Publisher using NATS. A nil inner publisher
// turns every method into a no-op, which keeps local setups without a
// broker working.
type NatsPublisher struct {
	publisher *pkgNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pkgNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishPlanCreated emits PLAN_CREATED after a plan lands, including
// the modules linked at creation time.
func (p *NatsPublisher) PublishPlanCreated(ctx context.Context, planId uuid.UUID, name string, moduleIds []uuid.UUID) {
	p.publish(ctx, "PLAN_CREATED", map[string]interface{}{
		"plan_id":    planId,
		"name":       name,
		"module_ids": moduleIds,
	})
}

// PublishModulesLinked emits PLAN_MODULES_LINKED.
func (p *NatsPublisher) PublishModulesLinked(ctx context.Context, planId uuid.UUID, moduleIds []uuid.UUID) {
	p.publish(ctx, "PLAN_MODULES_LINKED", map[string]interface{}{
		"plan_id":    planId,
		"module_ids": moduleIds,
	})
}

// PublishModulesUnlinked emits PLAN_MODULES_UNLINKED.
func (p *NatsPublisher) PublishModulesUnlinked(ctx context.Context, planId uuid.UUID, moduleIds []uuid.UUID, removed int64) {
	p.publish(ctx, "PLAN_MODULES_UNLINKED", map[string]interface{}{
		"plan_id":    planId,
		"module_ids": moduleIds,
		"removed":    removed,
	})
}

// PublishFeaturesLinked emits MODULE_FEATURES_LINKED.
func (p *NatsPublisher) PublishFeaturesLinked(ctx context.Context, moduleId uuid.UUID, featureIds []uuid.UUID) {
	p.publish(ctx, "MODULE_FEATURES_LINKED", map[string]interface{}{
		"module_id":   moduleId,
		"feature_ids": featureIds,
	})
}

// PublishFeaturesUnlinked emits MODULE_FEATURES_UNLINKED.
func (p *NatsPublisher) PublishFeaturesUnlinked(ctx context.Context, moduleId uuid.UUID, featureIds []uuid.UUID, removed int64) {
	p.publish(ctx, "MODULE_FEATURES_UNLINKED", map[string]interface{}{
		"module_id":   moduleId,
		"feature_ids": featureIds,
		"removed":     removed,
	})
}
