package bootstrap

import (
	"context"
	"log"

	"carelytix-be/internal/config"
	"carelytix-be/internal/controller"
	"carelytix-be/internal/pkg/logger"
	"carelytix-be/internal/repository/unitofwork"
	"carelytix-be/internal/service"
	adminEvents "carelytix-be/pkg/admin/events"
	"carelytix-be/pkg/admin/feature"
	"carelytix-be/pkg/admin/module"
	"carelytix-be/pkg/admin/plan"
	"carelytix-be/pkg/events"

	pkgNats "carelytix-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FeatureController controller.FeatureController
	ModuleController  controller.ModuleController
	PlanController    controller.PlanController
	SalonController   controller.SalonController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (tolerated absent in local setups; publisher becomes a no-op)
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// 3. Domain Components
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	featureManager := feature.NewManager()
	moduleManager := module.NewManager()
	planManager := plan.NewManager()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.AuditTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.AuditTopic, sysLogger)

	adminService := service.NewAdminService(
		uowFactory,
		sysLogger,
		featureManager,
		moduleManager,
		planManager,
		adminEventPublisher,
		publisherService,
	)
	salonService := service.NewSalonService(uowFactory, sysLogger)

	// Mirror published entitlement events into the structured log so
	// operators can trace what downstream consumers received.
	if natsSub != nil {
		err := natsSub.Subscribe("events.>", "entitlement-event-log", func(ctx context.Context, evt events.Event) error {
			sysLogger.Info("EVENTS", evt.EventType(), evt.Payload())
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to entitlement events: %v", err)
		}
	}

	// 5. Controllers
	return &Container{
		FeatureController: controller.NewFeatureController(adminService),
		ModuleController:  controller.NewModuleController(adminService),
		PlanController:    controller.NewPlanController(adminService),
		SalonController:   controller.NewSalonController(salonService),

		ConsumerService: consumerService,
	}
}
