package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gamenight-backend/config"
	"gamenight-backend/internal/mw"
	"gamenight-backend/internal/session"
	"gamenight-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, s store.Store, sessions *session.Manager, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(mw.Logger(logger), gin.Recovery())

	handler := NewHandler(s, sessions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheStore := cache.New(cfg.Server.CacheTTL, 10*time.Minute)
	caching := mw.Cache(cacheStore, cfg.Server.CacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/auth/login", handler.Login)

		authed := api.Group("", mw.Auth(sessions))
		{
			authed.POST("/auth/logout", handler.Logout)

			authed.GET("/availability", handler.GetGrid)
			authed.PUT("/availability", handler.SetCell)

			// Group aggregates are identical for every caller, so the
			// URI-keyed cache is safe here but not on /availability.
			authed.GET("/group/matrix", caching, handler.GetGroupMatrix)
			authed.GET("/group/top", caching, handler.GetTopSlots)
			authed.GET("/group/export", handler.ExportGroup)
		}
	}

	return r
}
