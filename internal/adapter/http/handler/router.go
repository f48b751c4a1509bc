package handler

import (
	"digital-wallet-api/internal/adapter/http/middleware"
	redisStore "digital-wallet-api/internal/adapter/storage/redis"
	"digital-wallet-api/internal/core/domain"
	"digital-wallet-api/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	TransferSvc    ports.TransferService
	ReportingSvc   ports.ReportingService
	AdminSvc       ports.AdminService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.TransferSvc, deps.ReportingSvc)
	transactionHandler := NewTransactionHandler(deps.ReportingSvc)

	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.GET("/me", rl("reporting"), walletHandler.GetMyWallet)

		// Self-service operations (wallet holders only; the transfer
		// engine re-checks the role through its access policy).
		holders := wallets.Group("", middleware.RequireRoles(domain.RoleUser, domain.RoleAgent))
		{
			holders.POST("/add-money", rl("transfers"), walletHandler.AddMoney)
			holders.POST("/withdraw", rl("transfers"), walletHandler.Withdraw)
			holders.POST("/send-money", rl("transfers"), walletHandler.SendMoney)
			holders.POST("/cash-in", rl("transfers"), walletHandler.CashIn)
			holders.POST("/cash-out", rl("transfers"), walletHandler.CashOut)
		}
	}

	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.GET("/me", rl("reporting"), transactionHandler.GetMyTransactions)

		adminOnly := transactions.Group("", middleware.RequireRoles(domain.RoleAdmin))
		{
			adminOnly.GET("", rl("reporting"), transactionHandler.GetAllTransactions)
			adminOnly.GET("/stats", rl("reporting"), transactionHandler.GetStats)
			adminOnly.GET("/:id", rl("reporting"), transactionHandler.GetTransaction)
		}
	}

	// --- Admin wallet management ---
	adminHandler := NewAdminHandler(deps.AdminSvc)
	admin := v1.Group("/admin", jwtAuth, middleware.RequireRoles(domain.RoleAdmin))
	{
		admin.GET("/wallets", rl("admin"), adminHandler.ListWallets)
		admin.POST("/wallets/:id/block", rl("admin"), adminHandler.BlockWallet)
		admin.POST("/wallets/:id/unblock", rl("admin"), adminHandler.UnblockWallet)
	}

	return r
}
