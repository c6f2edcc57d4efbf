package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/lifecycle"
	"github.com/umputun/freshness/pkg/repository"
	"github.com/umputun/freshness/pkg/scheduler"
	"github.com/umputun/freshness/server/mocks"
)

type testDeps struct {
	config    *mocks.ConfigProviderMock
	lifecycle *mocks.LifecycleMock
	store     *mocks.StoreMock
	scheduler *mocks.SchedulerMock
	metrics   http.Handler
}

func newTestDeps() *testDeps {
	return &testDeps{
		config: &mocks.ConfigProviderMock{
			GetServerConfigFunc:    func() (string, time.Duration) { return ":8080", 30 * time.Second },
			GetBaseURLFunc:         func() string { return "https://freshness.example.com" },
			GetCycleBudgetFunc:     func() float64 { return 500 },
			GetMetricsCacheTTLFunc: func() time.Duration { return time.Minute },
		},
		lifecycle: &mocks.LifecycleMock{
			AnalyzeAllProviderContentFunc: func(ctx context.Context) (*lifecycle.AnalysisResult, error) {
				return &lifecycle.AnalysisResult{Metrics: map[string]domain.ContentMetrics{
					"p2": {ProviderID: "p2", DelayStatus: domain.StatusNeedsUpdate},
					"p1": {ProviderID: "p1", DelayStatus: domain.StatusDelayPeriodActive},
				}, Skipped: []string{"p3"}}, nil
			},
			HistoryFunc: func() ([]domain.ContentUpdatePlan, []domain.ContentUpdatePlan, []domain.ContentUpdatePlan) {
				return nil, nil, nil
			},
			DelayConfigFunc: domain.DefaultDelayConfig,
		},
		store:     &mocks.StoreMock{},
		scheduler: &mocks.SchedulerMock{RunningFunc: func() bool { return false }, LastCycleFunc: func() *scheduler.CycleResult { return nil }},
	}
}

func (d *testDeps) server() *Server {
	return New(Params{Config: d.config, Lifecycle: d.lifecycle, Store: d.store, Scheduler: d.scheduler,
		Metrics: d.metrics, Version: "1.2.3"})
}

// do sends a request through the full router, middleware included
func do(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestServer_New(t *testing.T) {
	d := newTestDeps()
	d.config.GetMetricsCacheTTLFunc = func() time.Duration { return 0 }
	srv := d.server()
	assert.NotNil(t, srv)
	assert.Equal(t, "1.2.3", srv.version)
	assert.False(t, srv.debug)
	assert.NotNil(t, srv.cache)
}

func TestServer_Run(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	d := newTestDeps()
	d.config.GetServerConfigFunc = func() (string, time.Duration) { return fmt.Sprintf("127.0.0.1:%d", port), 5 * time.Second }
	srv := d.server()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_AppInfoHeaders(t *testing.T) {
	w := do(t, newTestDeps().server(), "GET", "/api/v1/delay-config", "")
	assert.Equal(t, "freshness", w.Header().Get("App-Name"))
	assert.Equal(t, "1.2.3", w.Header().Get("App-Version"))
}

func TestServer_PrometheusEndpoint(t *testing.T) {
	d := newTestDeps()
	w := do(t, d.server(), "GET", "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "not mounted without a handler")

	d.metrics = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("freshness_lifecycle_cycles_total 1\n"))
	})
	w = do(t, d.server(), "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "freshness_lifecycle_cycles_total 1")
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	renderError(w, httptest.NewRequest("GET", "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}

func TestServer_RSS(t *testing.T) {
	d := newTestDeps()
	done := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d.store.ListPlansFunc = func(ctx context.Context, filter repository.PlanFilter) ([]*domain.ContentUpdatePlan, error) {
		assert.Equal(t, defaultRSSLimit, filter.Limit)
		return []*domain.ContentUpdatePlan{{ID: "plan-1", ProviderID: "p1", ProviderName: "Ito Clinic",
			Priority: domain.PriorityHigh, CompletedAt: &done, Success: true}}, nil
	}

	w := do(t, d.server(), "GET", "/rss/updates", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<title>[updated] Ito Clinic</title>")
	assert.Contains(t, w.Body.String(), `href="https://freshness.example.com/rss/updates"`)

	d.store.ListPlansFunc = func(ctx context.Context, filter repository.PlanFilter) ([]*domain.ContentUpdatePlan, error) {
		return nil, errors.New("db down")
	}
	w = do(t, d.server(), "GET", "/rss/updates", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
