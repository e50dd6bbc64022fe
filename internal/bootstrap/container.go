package bootstrap

import (
	"context"
	"log"
	"time"

	"caseflow-be/internal/config"
	"caseflow-be/internal/controller"
	"caseflow-be/internal/handler"
	"caseflow-be/internal/pkg/logger"
	"caseflow-be/internal/pkg/mailer"
	"caseflow-be/internal/repository/session"
	"caseflow-be/internal/repository/unitofwork"
	"caseflow-be/internal/service"
	"caseflow-be/internal/websocket"
	"caseflow-be/pkg/wizard"

	pktNats "caseflow-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// casePostProcessTopic is the in-process queue topic for post-submit work.
const casePostProcessTopic = "CASE_POST_PROCESS"

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	WizardController controller.IWizardController
	CaseController   controller.ICaseController
	PlanController   controller.IPlanController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	redisUp := true
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		redisUp = false
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Wizard Core
	// Snapshots live in Redis so a session survives restarts; the in-memory
	// store covers local development without Redis.
	var snapshotStore wizard.SnapshotStore
	wizardTTL := time.Duration(cfg.Auth.WizardTTLHours) * time.Hour
	if redisUp {
		snapshotStore = session.NewRedisStore(rdb, wizardTTL)
	} else {
		log.Printf("[WARN] Redis unavailable, wizard sessions are in-memory only")
		snapshotStore = session.NewMemoryStore(wizardTTL)
	}

	caseService := service.NewCaseService(uowFactory)
	wizardCtrl := wizard.NewController(wizard.DefaultCatalog, caseService)

	publisherService := service.NewPublisherService(pubSub, casePostProcessTopic)
	wizardService := service.NewWizardService(wizardCtrl, snapshotStore, publisherService, natsPub)

	consumerService := service.NewConsumerService(
		pubSub,
		casePostProcessTopic,
		uowFactory,
		wsHub,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, cfg.Auth.TokenTTLHours)
	planService := service.NewPlanService(uowFactory)

	// 3.5 Notification System
	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, emailService, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	sysLogger.Info("Bootstrap", "Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
		"redis":       redisUp,
	})

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		AuthController:      controller.NewAuthController(authService),
		WizardController:    controller.NewWizardController(wizardService),
		CaseController:      controller.NewCaseController(caseService),
		PlanController:      controller.NewPlanController(planService),

		ConsumerService: consumerService,
	}
}
