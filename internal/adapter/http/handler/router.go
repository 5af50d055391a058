package handler

import (
	"time"

	"weekly-lottery/internal/adapter/http/middleware"
	"weekly-lottery/internal/adapter/metrics"
	"weekly-lottery/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Lottery         ports.LotteryService
	Scheduler       ports.SchedulerControl // nil = reload disabled
	TokenSvc        ports.TokenService
	SubmissionGuard ports.SubmissionGuard // nil = nonce check disabled
	NonceTTL        time.Duration
	RateLimitStore  ports.RateLimitStore // nil = rate limiting disabled
	RateLimitRules  map[string]middleware.RateLimitRule
	HealthCheckers  []ports.HealthChecker
	Metrics         *metrics.Recorder // nil = /metrics disabled
	HistoryLimit    int
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	if deps.Metrics != nil {
		r.Use(deps.Metrics.GinMiddleware())
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return noop
		}
		rule, ok := deps.RateLimitRules[group]
		if !ok {
			return noop
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	nonce := noop
	if deps.SubmissionGuard != nil {
		nonce = middleware.SubmissionNonce(deps.SubmissionGuard, deps.NonceTTL, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	lotteryHandler := NewLotteryHandler(deps.Lottery, deps.HistoryLimit)
	v1.POST("/entries", rl(middleware.GroupEntries), nonce, lotteryHandler.Submit)
	v1.GET("/currencies", rl(middleware.GroupReads), lotteryHandler.Currencies)
	v1.GET("/schedule", rl(middleware.GroupReads), lotteryHandler.Schedule)
	v1.GET("/history/:currency", rl(middleware.GroupReads), lotteryHandler.History)

	pools := v1.Group("/pools", rl(middleware.GroupReads))
	{
		pools.GET("", lotteryHandler.Pools)
		pools.GET("/:currency", lotteryHandler.Pool)
		pools.GET("/:currency/entries/:participant", lotteryHandler.ParticipantEntries)
	}

	participantHandler := NewParticipantHandler(deps.Lottery)
	participants := v1.Group("/participants/:participant")
	{
		participants.POST("/connect", participantHandler.Connect)
		participants.POST("/disconnect", participantHandler.Disconnect)
	}

	// --- JWT-authenticated admin routes ---
	adminHandler := NewAdminHandler(deps.Lottery, deps.Scheduler)
	admin := v1.Group("/admin",
		middleware.JWTAuth(deps.TokenSvc, deps.Logger),
		middleware.RequireRole(middleware.RoleAdmin),
		rl(middleware.GroupAdmin),
		middleware.AdminAudit(deps.Logger),
	)
	{
		admin.POST("/draw", adminHandler.DrawNow)
		admin.PUT("/schedule", adminHandler.SetSchedule)
		admin.POST("/reload", adminHandler.Reload)
		admin.POST("/broadcast", adminHandler.Broadcast)
	}

	return r
}

func noop(c *gin.Context) { c.Next() }
