// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/freight-manager/backend/config"
	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/application/usecase/auth"
	"github.com/freight-manager/backend/internal/application/usecase/cashflow"
	"github.com/freight-manager/backend/internal/application/usecase/category"
	"github.com/freight-manager/backend/internal/application/usecase/expense"
	"github.com/freight-manager/backend/internal/application/usecase/fleet"
	"github.com/freight-manager/backend/internal/application/usecase/freight"
	"github.com/freight-manager/backend/internal/application/usecase/income"
	"github.com/freight-manager/backend/internal/application/usecase/settlement"
	"github.com/freight-manager/backend/internal/infra/server/router"
	"github.com/freight-manager/backend/internal/integration/adapters"
	"github.com/freight-manager/backend/internal/integration/cache"
	"github.com/freight-manager/backend/internal/integration/email"
	"github.com/freight-manager/backend/internal/integration/email/templates"
	"github.com/freight-manager/backend/internal/integration/entrypoint/controller"
	"github.com/freight-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/freight-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker

	seedCategories *category.SeedCategoriesUseCase
	seedAdmin      *auth.SeedAdminUseCase
	gemini         *adapters.GeminiService
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient is nil when Redis is disabled; reads then go straight to the database
// and login attempts are counted in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	var readCache adapter.Cache = cache.NewNoopCache()
	var cacheHealthChecker func() bool
	if redisClient != nil {
		readCache = cache.NewRedisCache(redisClient, cfg.Redis.CacheTTL)
		cacheHealthChecker = redisHealthCheck(redisClient)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	refreshTokenRepo := persistence.NewRefreshTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	vehicleRepo := persistence.NewVehicleRepository(db)
	driverRepo := persistence.NewDriverRepository(db)
	brokerRepo := persistence.NewBrokerRepository(db)
	freightRepo := persistence.NewFreightRepository(db, readCache)
	incomeRepo := persistence.NewIncomeRepository(db, readCache)
	expenseRepo := persistence.NewExpenseRepository(db, readCache)
	settlementRepo := persistence.NewSettlementRepository(db, readCache)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Auth.BcryptCost)
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		refreshTokenRepo,
	)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	geminiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	createUserUseCase := auth.NewCreateUserUseCase(userRepo, driverRepo, passwordService)
	getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)

	// Create freight use cases
	listFreightsUseCase := freight.NewListFreightsUseCase(freightRepo)
	createFreightUseCase := freight.NewCreateFreightUseCase(freightRepo, vehicleRepo, driverRepo, brokerRepo)
	getFreightUseCase := freight.NewGetFreightUseCase(freightRepo)
	updateFreightUseCase := freight.NewUpdateFreightUseCase(freightRepo, vehicleRepo, driverRepo, brokerRepo)
	deleteFreightUseCase := freight.NewDeleteFreightUseCase(freightRepo)
	getBalanceUseCase := freight.NewGetBalanceUseCase(freightRepo, incomeRepo, expenseRepo)

	// Create settlement use cases
	settleFreightUseCase := settlement.NewSettleFreightUseCase(settlementRepo, brokerRepo, emailService)
	reactivateFreightUseCase := settlement.NewReactivateFreightUseCase(settlementRepo)

	// Create ledger use cases
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, freightRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, freightRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, freightRepo, vehicleRepo, driverRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, freightRepo, vehicleRepo, driverRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	suggestCategoryUseCase := expense.NewSuggestCategoryUseCase(categoryRepo, geminiService)

	listCashFlowUseCase := cashflow.NewListCashFlowUseCase(incomeRepo, expenseRepo)

	// Create fleet use cases
	listVehiclesUseCase := fleet.NewListVehiclesUseCase(vehicleRepo)
	createVehicleUseCase := fleet.NewCreateVehicleUseCase(vehicleRepo)
	updateVehicleUseCase := fleet.NewUpdateVehicleUseCase(vehicleRepo)
	deleteVehicleUseCase := fleet.NewDeleteVehicleUseCase(vehicleRepo)

	listDriversUseCase := fleet.NewListDriversUseCase(driverRepo)
	createDriverUseCase := fleet.NewCreateDriverUseCase(driverRepo)
	updateDriverUseCase := fleet.NewUpdateDriverUseCase(driverRepo)
	deleteDriverUseCase := fleet.NewDeleteDriverUseCase(driverRepo)

	listBrokersUseCase := fleet.NewListBrokersUseCase(brokerRepo)
	createBrokerUseCase := fleet.NewCreateBrokerUseCase(brokerRepo)
	updateBrokerUseCase := fleet.NewUpdateBrokerUseCase(brokerRepo)
	deleteBrokerUseCase := fleet.NewDeleteBrokerUseCase(brokerRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)

	// Create controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(databaseHealthCheck(db), cacheHealthChecker),
		Auth: controller.NewAuthController(loginUseCase, refreshTokenUseCase, logoutUseCase),
		User: controller.NewUserController(createUserUseCase, getCurrentUserUseCase),
		Freight: controller.NewFreightController(
			listFreightsUseCase,
			createFreightUseCase,
			getFreightUseCase,
			updateFreightUseCase,
			deleteFreightUseCase,
			getBalanceUseCase,
		),
		Settlement: controller.NewSettlementController(settleFreightUseCase, reactivateFreightUseCase),
		Income: controller.NewIncomeController(
			listIncomesUseCase,
			createIncomeUseCase,
			updateIncomeUseCase,
			deleteIncomeUseCase,
		),
		Expense: controller.NewExpenseController(
			listExpensesUseCase,
			createExpenseUseCase,
			updateExpenseUseCase,
			deleteExpenseUseCase,
			suggestCategoryUseCase,
		),
		CashFlow: controller.NewCashFlowController(listCashFlowUseCase),
		Vehicle:  controller.NewVehicleController(listVehiclesUseCase, createVehicleUseCase, updateVehicleUseCase, deleteVehicleUseCase),
		Driver:   controller.NewDriverController(listDriversUseCase, createDriverUseCase, updateDriverUseCase, deleteDriverUseCase),
		Broker:   controller.NewBrokerController(listBrokersUseCase, createBrokerUseCase, updateBrokerUseCase, deleteBrokerUseCase),
		Category: controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase),
		Legacy:   controller.NewLegacyLedgerController(listIncomesUseCase, listExpensesUseCase),
	}

	// Create middleware
	loginAttempts := cfg.Auth.LoginAttempts
	if cfg.IsTest() {
		loginAttempts = 1000
	}
	loginWindow := cfg.Auth.LoginWindow
	if loginAttempts <= 0 || loginWindow <= 0 {
		loginAttempts, loginWindow = middleware.DefaultLoginAttempts, middleware.DefaultLoginWindow
	}
	loginRateLimiter := middleware.NewRateLimiter("login", loginAttempts, loginWindow)
	if redisClient != nil {
		loginRateLimiter = middleware.NewRedisRateLimiter(redisClient, "login", loginAttempts, loginWindow)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create email worker
	var emailWorker *email.Worker
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	} else {
		slog.Warn("Email worker disabled, settlement notices stay queued")
	}

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         router.NewRouter(controllers, loginRateLimiter, authMiddleware),
		EmailWorker:    emailWorker,
		seedCategories: category.NewSeedCategoriesUseCase(categoryRepo),
		seedAdmin:      auth.NewSeedAdminUseCase(userRepo, passwordService),
		gemini:         geminiService,
	}, nil
}

// Seed inserts the default categories and the first administrator.
func (i *Injector) Seed(ctx context.Context) error {
	created, err := i.seedCategories.Execute(ctx)
	if err != nil {
		return err
	}
	if created > 0 {
		slog.Info("Seeded default categories", "count", created)
	}

	seeded, err := i.seedAdmin.Execute(ctx, auth.SeedAdminInput{
		Email:    i.Config.Seed.AdminEmail,
		Password: i.Config.Seed.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if seeded {
		slog.Info("Seeded admin user", "email", i.Config.Seed.AdminEmail)
	}
	return nil
}

// Close releases clients opened lazily by the services.
func (i *Injector) Close() error {
	return i.gemini.Close()
}

const healthCheckTimeout = 2 * time.Second

func databaseHealthCheck(gormDB *gorm.DB) func() bool {
	return pingCheck("database", func(ctx context.Context) error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
}

func redisHealthCheck(client *redis.Client) func() bool {
	return pingCheck("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}

func pingCheck(name string, ping func(ctx context.Context) error) func() bool {
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
		defer cancel()

		if err := ping(ctx); err != nil {
			slog.Error("Health check failed", "component", name, "error", err)
			return false
		}
		return true
	}
}
