package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"course-records-backend/config"
	"course-records-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router. It attaches the read
// response cache to h; see Handler.FlushCache.
func NewRouter(h *Handler, cfg config.ServerConfig, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestID(), mw.Logger(log))

	limiter := mw.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, 10*time.Minute)
	r.Use(mw.RateLimiter(limiter))

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	h.cache = mw.NewResponseCache(ttl)
	caching := mw.Cache(h.cache)

	r.GET("/", h.Index)

	records := r.Group("/")
	records.Use(caching)
	for _, ep := range endpoints {
		records.Handle(ep.method, ep.path, h.Record(ep))
	}

	api := r.Group("/api")
	{
		api.GET("/subscriptions", h.GetSubscription)
		api.PUT("/subscriptions", h.PutSubscription)
		api.DELETE("/subscriptions", h.DeleteSubscription)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
	}

	return r
}
