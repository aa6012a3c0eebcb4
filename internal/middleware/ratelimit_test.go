package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"lungtracker-srv/config"
	"lungtracker-srv/pkg/log"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

var _ log.Logger = noopLogger{}

type fakeRedis struct {
	counts  map[string]int64
	incrErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: map[string]int64{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f *fakeRedis) Delete(ctx context.Context, keys ...string) error    { return nil }
func (f *fakeRedis) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.counts[key]
	return ok, nil
}
func (f *fakeRedis) Incr(ctx context.Context, key string) (int64, error) {
	if f.incrErr != nil {
		return 0, f.incrErr
	}
	f.counts[key]++
	return f.counts[key], nil
}
func (f *fakeRedis) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }
func (f *fakeRedis) TTL(ctx context.Context, key string) (time.Duration, error)      { return 0, nil }
func (f *fakeRedis) Close() error                                                    { return nil }
func (f *fakeRedis) Ping(ctx context.Context) error                                  { return nil }
func (f *fakeRedis) GetClient() *goredis.Client                                      { return nil }

func rateLimitedRouter(limit int, r *fakeRedis) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Report.ResolveRateLimit = limit

	var mw Middleware
	if r != nil {
		mw = New(noopLogger{}, nil, r, cfg)
	} else {
		mw = New(noopLogger{}, nil, nil, cfg)
	}

	engine := gin.New()
	engine.GET("/r/:token", mw.RateLimit("test"), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return engine
}

func get(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/r/tok", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("requests under the limit pass", func(t *testing.T) {
		r := rateLimitedRouter(3, newFakeRedis())
		for i := 0; i < 3; i++ {
			if w := get(r); w.Code != http.StatusOK {
				t.Fatalf("request %d: got %d, want 200", i+1, w.Code)
			}
		}
	})

	t.Run("requests over the limit are rejected", func(t *testing.T) {
		r := rateLimitedRouter(2, newFakeRedis())
		get(r)
		get(r)
		w := get(r)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("got %d, want 429", w.Code)
		}
		if w.Body.String() != "Too many requests" {
			t.Errorf("body: got %q", w.Body.String())
		}
	})

	t.Run("zero limit disables limiting", func(t *testing.T) {
		r := rateLimitedRouter(0, newFakeRedis())
		for i := 0; i < 10; i++ {
			if w := get(r); w.Code != http.StatusOK {
				t.Fatalf("request %d: got %d, want 200", i+1, w.Code)
			}
		}
	})

	t.Run("missing redis disables limiting", func(t *testing.T) {
		r := rateLimitedRouter(1, nil)
		for i := 0; i < 5; i++ {
			if w := get(r); w.Code != http.StatusOK {
				t.Fatalf("request %d: got %d, want 200", i+1, w.Code)
			}
		}
	})

	t.Run("redis failure fails open", func(t *testing.T) {
		fr := newFakeRedis()
		fr.incrErr = errors.New("redis down")
		r := rateLimitedRouter(1, fr)
		for i := 0; i < 5; i++ {
			if w := get(r); w.Code != http.StatusOK {
				t.Fatalf("request %d: got %d, want 200", i+1, w.Code)
			}
		}
	})
}
