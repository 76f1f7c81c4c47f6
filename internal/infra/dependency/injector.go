// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/profit-tracker/backend/config"
	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/auth"
	"github.com/profit-tracker/backend/internal/application/usecase/balance"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/application/usecase/entry"
	"github.com/profit-tracker/backend/internal/application/usecase/goal"
	"github.com/profit-tracker/backend/internal/application/usecase/reminder"
	"github.com/profit-tracker/backend/internal/application/usecase/settings"
	"github.com/profit-tracker/backend/internal/application/usecase/tracker"
	"github.com/profit-tracker/backend/internal/infra/server/router"
	"github.com/profit-tracker/backend/internal/integration/adapters"
	"github.com/profit-tracker/backend/internal/integration/cache"
	"github.com/profit-tracker/backend/internal/integration/email"
	"github.com/profit-tracker/backend/internal/integration/email/templates"
	"github.com/profit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/profit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/profit-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	Redis             *redis.Client
	Router            *router.Router
	RateLimiter       *middleware.RateLimiter
	EmailWorker       *email.Worker
	ReminderScheduler *reminder.Scheduler
}

// Options overrides infrastructure the injector would otherwise build from the config.
// Tests use it to plug a fixed clock, a miniredis client or a mock email sender.
type Options struct {
	Redis       *redis.Client
	Clock       adapter.Clock
	EmailSender adapter.EmailSender
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(ctx context.Context, cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	// Infrastructure
	clock := opts.Clock
	if clock == nil {
		var err error
		clock, err = adapters.NewSystemClock(cfg.Server.Timezone)
		if err != nil {
			slog.Warn("Unknown timezone, falling back to UTC", "timezone", cfg.Server.Timezone, "error", err)
		}
	}

	redisClient := opts.Redis
	if redisClient == nil && cfg.Redis.Enabled {
		client, err := cache.NewClient(ctx, cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Warn("Redis unavailable, running without view cache", "error", err)
		} else {
			redisClient = client
		}
	}

	viewCache := cache.NewNoopViewCache()
	reminderLog := cache.NewMemoryReminderLog()
	if redisClient != nil {
		viewCache = cache.NewRedisViewCache(redisClient, cfg.Redis.CacheTTL)
		reminderLog = cache.NewRedisReminderLog(redisClient)
	}

	sender := opts.EmailSender
	if sender == nil {
		if cfg.Email.ResendAPIKey != "" {
			resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			if cfg.Email.ResendBaseURL != "" {
				if err := resendClient.SetBaseURL(cfg.Email.ResendBaseURL); err != nil {
					return nil, err
				}
			}
			sender = resendClient
		} else {
			slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
			sender = email.LogEmailSender{}
		}
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	balanceRepo := persistence.NewInitialBalanceRepository(db)
	entryRepo := persistence.NewEntryRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	emailService := email.NewService(emailQueueRepo)
	access := dashboard.NewAccess(dashboardRepo)
	loader := tracker.NewSnapshotLoader(access, entryRepo, balanceRepo, goalRepo, settingsRepo)

	// Controllers
	var cacheHealthChecker func() bool
	if redisClient != nil {
		cacheHealthChecker = func() bool {
			return redisClient.Ping(context.Background()).Err() == nil
		}
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, dashboardRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, dashboardRepo, passwordService, tokenService),
		auth.NewRefreshSessionUseCase(userRepo, dashboardRepo, tokenService),
		auth.NewEndSessionUseCase(tokenService),
	)

	dashboardController := controller.NewDashboardController(
		dashboard.NewListDashboardsUseCase(dashboardRepo),
		dashboard.NewCreateDashboardUseCase(dashboardRepo),
		dashboard.NewGetDashboardUseCase(access),
		dashboard.NewRenameDashboardUseCase(dashboardRepo, access),
		dashboard.NewDeleteDashboardUseCase(dashboardRepo, access, viewCache),
	)

	settingsController := controller.NewSettingsController(
		settings.NewGetSettingsUseCase(settingsRepo, access),
		settings.NewUpdateSettingsUseCase(settingsRepo, access, viewCache),
		balance.NewGetInitialBalanceUseCase(balanceRepo, access),
		balance.NewSetInitialBalanceUseCase(balanceRepo, access, viewCache),
	)

	entryController := controller.NewEntryController(
		entry.NewListEntriesUseCase(entryRepo, access),
		entry.NewUpsertEntryUseCase(entryRepo, access, viewCache),
		entry.NewListTagsUseCase(entryRepo, access),
	)

	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(goalRepo, access),
		goal.NewCreateGoalUseCase(goalRepo, access, viewCache),
		goal.NewUpdateGoalUseCase(goalRepo, access, viewCache),
		goal.NewDeleteGoalUseCase(goalRepo, access, viewCache),
	)

	trackerController := controller.NewTrackerController(
		tracker.NewGetCalendarUseCase(loader, viewCache, clock),
		tracker.NewGetDayUseCase(loader, clock),
		tracker.NewGetPeriodSummaryUseCase(loader, clock),
		tracker.NewGetReportUseCase(loader, clock),
		tracker.NewExportEntriesUseCase(loader, clock),
	)

	// Middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window, cfg.RateLimit.Enabled)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Background workers
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval:  cfg.Email.PollInterval,
		BatchSize:     cfg.Email.BatchSize,
		RetentionDays: cfg.Email.RetentionDays,
	})
	reminderScheduler := reminder.NewScheduler(
		reminder.NewSendDailyRemindersUseCase(
			settingsRepo,
			dashboardRepo,
			entryRepo,
			userRepo,
			loader,
			reminderLog,
			emailService,
			clock,
			cfg.Email.AppBaseURL,
		),
		cfg.Reminder.PollInterval,
	)

	r := router.NewRouter(
		healthController,
		authController,
		dashboardController,
		settingsController,
		entryController,
		goalController,
		trackerController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Redis:             redisClient,
		Router:            r,
		RateLimiter:       rateLimiter,
		EmailWorker:       emailWorker,
		ReminderScheduler: reminderScheduler,
	}, nil
}
