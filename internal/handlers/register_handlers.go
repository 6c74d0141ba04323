package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/swiftbank/bank_records_app/cmd/docs"
	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/middleware"
	"github.com/swiftbank/bank_records_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facades.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/api/ping", ping)

	registerUserRoutes(r, services)
	registerAdminRoutes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// registerUserRoutes wires the customer-facing surface. These routes are
// public; the credential gate inside the service layer is the only check,
// matching the external contract.
func registerUserRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	ah := newAccountHandler(services.Account)
	th := newTransactionHandler(services.Transaction)

	users := r.Group("/api/users")
	{
		users.POST("/create", ah.createAccount)
		users.PUT("/update/:userId", ah.updateAccount)
		users.GET("/account/:accountNumber", ah.getAccount)
		users.POST("/verify-password", ah.verifyPassword)
		users.GET("/check-account/:accountNumber", ah.checkAccount)
		users.PATCH("/update-balance/:accountNumber", ah.updateBalance)
		users.POST("/set-or-verify-pin", ah.setOrVerifyPin)
		users.POST("/reset-password", ah.resetPassword)

		users.POST("/transactions", th.recordTransaction)
		users.GET("/transactions/:accountNumber", th.getTransactionHistory)
		users.PUT("/transactions/:accountNumber/:transactionId", th.updateStatusForAccount)
	}
}

// registerAdminRoutes wires the admin surface: public auth routes behind a
// rate limit, the recovery route behind the recovery-key gate, and the data
// routes behind JWT auth.
func registerAdminRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	adh := newAdminHandler(services.Admin, services.Account)
	th := newTransactionHandler(services.Transaction)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		slog.Warn("Invalid AUTH_RATE_LIMIT, falling back to 10-M", slog.String("value", cfg.AuthRateLimit))
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	authLimiter := limiter.New(memory.NewStore(), rate)

	admin := r.Group("/api/admin")
	{
		admin.POST("/signup", middleware.RateLimit(authLimiter), adh.signup)
		admin.POST("/login", middleware.RateLimit(authLimiter), adh.login)
		admin.POST("/change-password", adh.changePassword)
		admin.POST("/check-email", adh.checkEmail)
		admin.POST("/change-password-email-only",
			middleware.RecoveryKeyMiddleware(cfg.AdminRecoveryKey), adh.recoverPassword)

		protected := admin.Group("", middleware.AdminAuthMiddleware(cfg.JWTSecret))
		{
			protected.GET("/users", adh.listUsers)
			protected.PUT("/user/:accountNumber", adh.updateUser)
			protected.GET("/user/:accountNumber", adh.getUser)
			protected.DELETE("/delete-user-by-id/:id", adh.deleteUserByID)

			protected.GET("/user/:accountNumber/transactions", th.getUserTransactions)
			protected.PUT("/transaction/:transactionId/status", th.updateStatus)
			protected.DELETE("/transaction/:transactionId", th.deleteTransaction)
		}
	}
}

// setupSwaggerRoutes serves the generated API docs outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
