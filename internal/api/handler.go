package api

import (
	"github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"

	"course-records-backend/internal/mw"
	"course-records-backend/internal/notification"
	"course-records-backend/internal/records"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	records  *records.Router
	registry *notification.Registry
	webpush  *webpush.Options
	cache    *mw.ResponseCache
	log      *zap.Logger
}

// NewHandler creates a new API handler. registry and webpushOptions may be
// nil when push notifications are not configured.
func NewHandler(router *records.Router, registry *notification.Registry, webpushOptions *webpush.Options, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		records:  router,
		registry: registry,
		webpush:  webpushOptions,
		log:      log,
	}
}

// FlushCache drops every cached read response. It is a no-op until NewRouter
// has attached a cache.
func (h *Handler) FlushCache() {
	if h.cache != nil {
		h.cache.Flush()
	}
}
