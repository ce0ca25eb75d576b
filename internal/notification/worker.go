package notification

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"
)

// NotificationSender defines the interface for sending a web push notification.
type NotificationSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is a real implementation of NotificationSender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// SeatMessage is the push payload announcing a free seat.
func SeatMessage(ref CourseRef) string {
	return fmt.Sprintf("%s %s has an open seat!", ref.Dept, ref.Course)
}

// WorkerPool manages a pool of workers for sending notifications.
type WorkerPool struct {
	size     int
	jobs     chan CourseRef
	registry *Registry
	webpush  *webpush.Options
	sender   NotificationSender
	log      *zap.Logger
}

// NewWorkerPool creates a new worker pool. The job queue holds a few jobs
// per worker; Dispatch drops jobs when it is full.
func NewWorkerPool(size int, registry *Registry, webpushOptions *webpush.Options, log *zap.Logger) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	return &WorkerPool{
		size:     size,
		jobs:     make(chan CourseRef, size*16),
		registry: registry,
		webpush:  webpushOptions,
		sender:   &WebPushSender{}, // Use the real sender by default
		log:      log,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	wp.log.Debug("notification worker started", zap.Int("worker", id))
	for {
		select {
		case ref := <-wp.jobs:
			wp.sendNotificationsForCourse(ctx, ref)
		case <-ctx.Done():
			wp.log.Debug("notification worker shutting down", zap.Int("worker", id))
			return
		}
	}
}

// Dispatch queues a seat opening without blocking. It reports false when
// the queue is full and the job was dropped.
func (wp *WorkerPool) Dispatch(deptCode, courseCode string) bool {
	ref := CourseRef{Dept: deptCode, Course: courseCode}
	select {
	case wp.jobs <- ref:
		return true
	default:
		wp.log.Warn("notification queue full, dropping seat opening",
			zap.String("dept", deptCode), zap.String("course", courseCode))
		return false
	}
}

func (wp *WorkerPool) sendNotificationsForCourse(ctx context.Context, ref CourseRef) {
	watchers := wp.registry.Watchers(ref)
	if len(watchers) == 0 {
		return
	}

	wp.log.Info("sending seat notifications",
		zap.String("dept", ref.Dept), zap.String("course", ref.Course), zap.Int("count", len(watchers)))

	payload := []byte(SeatMessage(ref))
	for _, sub := range watchers {
		if ctx.Err() != nil {
			return
		}
		wp.sendNotification(sub, payload)
	}
}

func (wp *WorkerPool) sendNotification(sub Subscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		wp.log.Warn("failed to send notification", zap.String("endpoint", sub.Endpoint), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	// Handle expired subscriptions
	if resp.StatusCode == http.StatusGone {
		wp.log.Info("subscription expired, deleting", zap.String("endpoint", sub.Endpoint))
		wp.registry.Delete(sub.Endpoint)
	}
}
