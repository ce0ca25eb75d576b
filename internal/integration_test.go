package internal

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"course-records-backend/config"
	"course-records-backend/internal/api"
	"course-records-backend/internal/app"
	"course-records-backend/internal/notification"
	"course-records-backend/internal/records"
	"course-records-backend/internal/store"
)

type pushRequest struct {
	ttl  string
	body []byte
}

// browserKeys returns a subscriber key pair the way a browser would
// publish it in a PushSubscription.
func browserKeys(t *testing.T) (p256dh, auth string) {
	t.Helper()
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	secret := make([]byte, 16)
	_, err = rand.Read(secret)
	require.NoError(t, err)
	return base64.RawURLEncoding.EncodeToString(priv.PublicKey().Bytes()),
		base64.RawURLEncoding.EncodeToString(secret)
}

// TestCatalogLifecycle seeds a SQL-backed catalog, mutates it over HTTP,
// checks that a seat opening reaches the push service, then restarts the
// app and verifies the mutations survived.
func TestCatalogLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Test Setup ---
	storageCfg := &config.StorageConfig{
		Backend:      "sql",
		Driver:       "sqlite",
		DSN:          "file:integration?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}
	st, err := store.New(storageCfg, zap.NewNop())
	require.NoError(t, err)

	pushes := make(chan pushRequest, 4)
	pushServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		pushes <- pushRequest{ttl: r.Header.Get("TTL"), body: body}
		w.WriteHeader(http.StatusCreated)
	}))
	defer pushServer.Close()

	vapidPrivate, vapidPublic, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)
	webpushOptions := &webpush.Options{
		VAPIDPublicKey:  vapidPublic,
		VAPIDPrivateKey: vapidPrivate,
		Subscriber:      "mailto:registrar@example.edu",
		TTL:             120,
	}

	first := app.New(st, zap.NewNop())
	require.NoError(t, first.Run(ctx, app.ModeSetup))

	registry := notification.NewRegistry()
	pool := notification.NewWorkerPool(2, registry, webpushOptions, zap.NewNop())
	pool.Start(ctx)

	router := records.NewRouter(first, records.WithSeatListener(func(deptCode, courseCode string) {
		pool.Dispatch(deptCode, courseCode)
	}))
	handler := api.NewHandler(router, registry, webpushOptions, zap.NewNop())
	engine := api.NewRouter(handler, config.ServerConfig{RateLimitPerSec: 100, RateLimitBurst: 100, CacheTTLSeconds: 60}, zap.NewNop())
	apiServer := httptest.NewServer(engine)
	defer apiServer.Close()

	call := func(method, path, body string) (int, string) {
		t.Helper()
		req, err := http.NewRequest(method, apiServer.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(raw)
	}

	// --- Subscribe to a full course ---
	p256dh, auth := browserKeys(t)
	status, _ := call(http.MethodPut, "/api/subscriptions",
		`{"endpoint":"`+pushServer.URL+`/push/1","p256dh":"`+p256dh+`","auth":"`+auth+`","courses":[{"dept":"PHYS","course":"1520"}]}`)
	require.Equal(t, http.StatusCreated, status)

	status, body := call(http.MethodGet, "/isCourseFull?deptCode=PHYS&courseCode=1520", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "true", body)

	// --- Drop a student and expect a push ---
	status, body = call(http.MethodPatch, "/dropStudentFromCourse?deptCode=PHYS&courseCode=1520", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Student has been dropped", body)

	select {
	case push := <-pushes:
		assert.Equal(t, "120", push.ttl)
		assert.NotEmpty(t, push.body, "payload is encrypted, so only its presence is checked")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the seat notification")
	}

	status, body = call(http.MethodGet, "/isCourseFull?deptCode=PHYS&courseCode=1520", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "false", body)

	// A second drop does not open another seat.
	status, _ = call(http.MethodPatch, "/dropStudentFromCourse?deptCode=PHYS&courseCode=1520", "")
	assert.Equal(t, http.StatusOK, status)
	select {
	case <-pushes:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
	}

	status, _ = call(http.MethodPatch, "/setCourseLocation?deptCode=PHYS&courseCode=1221&location=NewLocation", "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = call(http.MethodPatch, "/addMajorToDept?deptCode=IEOR", "")
	assert.Equal(t, http.StatusOK, status)

	// --- Terminate and reload ---
	require.NoError(t, first.Terminate(ctx))
	status, body = call(http.MethodGet, "/idDeptChair?deptCode=PHYS", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "Database Not Available", body)

	second := app.New(st, zap.NewNop())
	require.NoError(t, second.Run(ctx, app.ModeRun))
	reloaded := records.NewRouter(second)

	assert.Equal(t, "NewLocation is where the course is located.", reloaded.FindCourseLocation("PHYS", "1221").Body)
	assert.Equal(t, "There are: 68 majors in the department", reloaded.GetMajorCountFromDept("IEOR").Body)
	assert.Equal(t, "false", reloaded.IsCourseFull("PHYS", "1520").Body)

	phys, ok := second.Database().Department("PHYS")
	require.True(t, ok)
	course, ok := phys.Course("1520")
	require.True(t, ok)
	assert.Equal(t, 148, course.EnrolledCount())
}
