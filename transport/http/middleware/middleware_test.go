package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"salon/config"
	"salon/infras/otel/mocks"
	"salon/shared/cache"
	cacheMocks "salon/shared/cache/mocks"
	"salon/shared/constant"
	"salon/transport/http/middleware"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func limiterConfig(maxRequests int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(2), cache.NewRedisCache(client, mocks.NewOtel()))
	handler := m.RateLimit()(okHandler())

	codes := make([]int, 0, 3)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/dates", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_RemainingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Increment(gomock.Any(), "limiter:192.0.2.1:booker", 60).
		Return(int64(3), nil)

	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(10), mockCache)
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/api/dates", nil)
	req.Header.Set(constant.RequestHeaderUserAgent, "booker")

	m.RateLimit()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10", rec.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "7", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRateLimitWindow))
}

func TestRateLimit_FailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Increment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("connection refused"))

	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(1), mockCache)
	rec := httptest.NewRecorder()

	m.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_MemoryStore(t *testing.T) {
	cfg := limiterConfig(2)
	cfg.App.RateLimiter.Store = constant.RateLimiterStoreMemory

	m := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil)
	handler := m.RateLimit()(okHandler())

	codes := make([]int, 0, 4)

	for _, addr := range []string{"10.0.0.1:5000", "10.0.0.1:5001", "10.0.0.1:5002", "10.0.0.2:5000"} {
		req := httptest.NewRequest(http.MethodGet, "/api/dates", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusOK}, codes)
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	m := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, mockCache)
	rec := httptest.NewRecorder()

	m.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestID(t *testing.T) {
	m := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := m.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("mints an id", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestTracingPassesThrough(t *testing.T) {
	m := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)
	rec := httptest.NewRecorder()

	m.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
