package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"course-records-backend/internal/notification"
)

type putSubscriptionRequest struct {
	Endpoint string                   `json:"endpoint" binding:"required"`
	P256DH   string                   `json:"p256dh" binding:"required"`
	Auth     string                   `json:"auth" binding:"required"`
	Courses  []notification.CourseRef `json:"courses"`
}

// PutSubscription handles the creation or replacement of a subscription.
func (h *Handler) PutSubscription(c *gin.Context) {
	if h.registry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications are not configured"})
		return
	}

	var req putSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	for _, ref := range req.Courses {
		if res := h.records.IsCourseFull(ref.Dept, ref.Course); res.Status == http.StatusNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %s %s", res.Body, ref.Dept, ref.Course)})
			return
		}
	}

	h.registry.Put(notification.Subscription{
		Endpoint: req.Endpoint,
		P256DH:   req.P256DH,
		Auth:     req.Auth,
		Courses:  req.Courses,
	})

	c.Status(http.StatusCreated)
}

type deleteSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// DeleteSubscription handles the deletion of a subscription.
func (h *Handler) DeleteSubscription(c *gin.Context) {
	if h.registry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications are not configured"})
		return
	}

	var req deleteSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.registry.Delete(req.Endpoint)
	c.Status(http.StatusNoContent)
}

// rawQueryParam reads key from the query string without URL-decoding it.
func rawQueryParam(rawQuery, key string) (string, bool) {
	for _, kv := range strings.Split(rawQuery, "&") {
		if strings.HasPrefix(kv, key+"=") {
			return kv[len(key)+1:], true
		}
	}
	return "", false
}

// GetSubscription handles the retrieval of a subscription.
func (h *Handler) GetSubscription(c *gin.Context) {
	if h.registry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications are not configured"})
		return
	}

	raw, ok := rawQueryParam(c.Request.URL.RawQuery, "endpoint")
	if !ok || raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endpoint is required"})
		return
	}

	sub, found := h.registry.Get(raw)
	if !found {
		if decoded, err := url.QueryUnescape(raw); err == nil {
			sub, found = h.registry.Get(decoded)
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
		return
	}

	courses := sub.Courses
	if courses == nil {
		courses = []notification.CourseRef{}
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}
