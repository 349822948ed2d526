// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/freight-manager/backend/internal/domain/entity"
	"github.com/freight-manager/backend/internal/integration/entrypoint/controller"
	"github.com/freight-manager/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups every HTTP controller served by the router.
// A nil controller leaves its routes unregistered.
type Controllers struct {
	Health     *controller.HealthController
	Auth       *controller.AuthController
	User       *controller.UserController
	Freight    *controller.FreightController
	Settlement *controller.SettlementController
	Income     *controller.IncomeController
	Expense    *controller.ExpenseController
	CashFlow   *controller.CashFlowController
	Vehicle    *controller.VehicleController
	Driver     *controller.DriverController
	Broker     *controller.BrokerController
	Category   *controller.CategoryController
	Legacy     *controller.LegacyLedgerController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// RequestID writes the access log line.
	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestID())

	r.setupHealthRoutes()
	if r.authMiddleware != nil {
		r.setupAPIRoutes()
		r.setupDriverRoutes()
		r.setupLegacyRoutes()
	}

	return r.engine
}

// Engine returns the configured engine. Setup must be called first.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	if r.controllers.Health != nil {
		r.engine.GET("/health", r.controllers.Health.Check)
	}
}

// setupAPIRoutes configures the back-office API used by administrators.
func (r *Router) setupAPIRoutes() {
	c := r.controllers
	v1 := r.engine.Group("/api/v1")

	if c.Auth != nil && r.loginRateLimiter != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.loginRateLimiter.Middleware(), c.Auth.Login)
			auth.POST("/refresh", c.Auth.RefreshToken)
			auth.POST("/logout", c.Auth.Logout)
		}
	}

	authenticated := v1.Group("")
	authenticated.Use(r.authMiddleware.Authenticate())

	// Routes open to every signed-in role
	if c.User != nil {
		authenticated.GET("/users/me", c.User.Me)
	}
	if c.Category != nil {
		authenticated.GET("/categories", c.Category.List)
	}

	admin := authenticated.Group("")
	admin.Use(r.authMiddleware.RequireRole(entity.UserRoleAdmin))

	if c.User != nil {
		admin.POST("/users", c.User.Create)
	}

	if c.Category != nil {
		admin.POST("/categories", c.Category.Create)
	}

	if c.Freight != nil {
		freights := admin.Group("/freights")
		{
			freights.GET("", c.Freight.List)
			freights.POST("", c.Freight.Create)
			freights.GET("/:id", c.Freight.Get)
			freights.PUT("/:id", c.Freight.Update)
			freights.DELETE("/:id", c.Freight.Delete)
			freights.GET("/:id/balance", c.Freight.Balance)

			if c.Settlement != nil {
				freights.POST("/:id/settle", c.Settlement.Settle)
				freights.POST("/:id/reactivate", c.Settlement.Reactivate)
			}
		}
	}

	if c.Income != nil {
		incomes := admin.Group("/incomes")
		{
			incomes.GET("", c.Income.List)
			incomes.POST("", c.Income.Create)
			incomes.PUT("/:id", c.Income.Update)
			incomes.DELETE("/:id", c.Income.Delete)
		}
	}

	if c.Expense != nil {
		expenses := admin.Group("/expenses")
		{
			expenses.GET("", c.Expense.List)
			expenses.POST("", c.Expense.Create)
			expenses.POST("/suggest-category", c.Expense.SuggestCategory)
			expenses.PUT("/:id", c.Expense.Update)
			expenses.DELETE("/:id", c.Expense.Delete)
		}
	}

	if c.CashFlow != nil {
		admin.GET("/cash-flow", c.CashFlow.List)
	}

	if c.Vehicle != nil {
		vehicles := admin.Group("/vehicles")
		{
			vehicles.GET("", c.Vehicle.List)
			vehicles.POST("", c.Vehicle.Create)
			vehicles.PUT("/:id", c.Vehicle.Update)
			vehicles.DELETE("/:id", c.Vehicle.Delete)
		}
	}

	if c.Driver != nil {
		drivers := admin.Group("/drivers")
		{
			drivers.GET("", c.Driver.List)
			drivers.POST("", c.Driver.Create)
			drivers.PUT("/:id", c.Driver.Update)
			drivers.DELETE("/:id", c.Driver.Delete)
		}
	}

	if c.Broker != nil {
		brokers := admin.Group("/brokers")
		{
			brokers.GET("", c.Broker.List)
			brokers.POST("", c.Broker.Create)
			brokers.PUT("/:id", c.Broker.Update)
			brokers.DELETE("/:id", c.Broker.Delete)
		}
	}
}

// setupDriverRoutes configures the self-service routes scoped to the signed-in driver.
func (r *Router) setupDriverRoutes() {
	c := r.controllers
	me := r.engine.Group("/api/v1/me")
	me.Use(
		r.authMiddleware.Authenticate(),
		r.authMiddleware.RequireRole(entity.UserRoleDriver),
		r.authMiddleware.RequireDriver(),
	)

	if c.Freight != nil {
		me.GET("/freights", c.Freight.ListMine)
		me.GET("/freights/:id", c.Freight.GetMine)
	}
	if c.Expense != nil {
		me.GET("/expenses", c.Expense.ListMine)
		me.POST("/expenses", c.Expense.CreateMine)
	}
	if c.CashFlow != nil {
		me.GET("/cash-flow", c.CashFlow.ListMine)
	}
}

// setupLegacyRoutes keeps the per-freight ledger lookups used by older admin clients.
func (r *Router) setupLegacyRoutes() {
	if r.controllers.Legacy == nil {
		return
	}

	legacy := r.engine.Group("/api")
	legacy.Use(
		r.authMiddleware.Authenticate(),
		r.authMiddleware.RequireRole(entity.UserRoleAdmin),
	)
	{
		legacy.GET("/entradas", r.controllers.Legacy.Incomes)
		legacy.GET("/despesas", r.controllers.Legacy.Expenses)
	}
}
