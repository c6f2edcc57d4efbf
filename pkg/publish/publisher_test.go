package publish

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/config"
	"github.com/umputun/freshness/pkg/domain"
)

func newTestPublisher(url string, rateLimit float64) *Publisher {
	p := NewPublisher(config.PublishConfig{Endpoint: url + "/", Token: "secret", Timeout: time.Second, RateLimit: rateLimit, Retries: 3})
	p.baseDelay = time.Millisecond
	return p
}

func TestPublisher_Publish(t *testing.T) {
	var got listing
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/listings/clinic%201", r.URL.EscapedPath())
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	updated := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	p := newTestPublisher(server.URL, 0)
	err := p.Publish(context.Background(), domain.Provider{
		ID:          "clinic 1",
		Name:        "山田クリニック",
		NameRomaji:  "Yamada Clinic",
		Description: "説明",
		Specialties: []string{"内科"},
		LastUpdated: updated,
	})
	require.NoError(t, err)
	assert.Equal(t, "clinic 1", got.ID)
	assert.Equal(t, "Yamada Clinic", got.NameRomaji)
	assert.Equal(t, []string{"内科"}, got.Specialties)
	assert.True(t, got.UpdatedAt.Equal(updated))
}

func TestPublisher_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	p := newTestPublisher(server.URL, 0)
	require.NoError(t, p.Publish(context.Background(), domain.Provider{ID: "p1"}))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestPublisher_ServerErrorExhaustsRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := newTestPublisher(server.URL, 0)
	err := p.Publish(context.Background(), domain.Provider{ID: "p1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "status 503: maintenance")
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
}

func TestPublisher_ClientErrorIsTerminal(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "invalid listing", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	p := newTestPublisher(server.URL, 0)
	err := p.Publish(context.Background(), domain.Provider{ID: "p1"})
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "publish p1: listing rejected: status 422: invalid listing")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPublisher_RateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := newTestPublisher(server.URL, 20) // one request per 50ms
	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Publish(context.Background(), domain.Provider{ID: "p1"}))
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestPublisher_Errors(t *testing.T) {
	p := newTestPublisher("http://127.0.0.1:1", 0)

	t.Run("empty id", func(t *testing.T) {
		require.EqualError(t, p.Publish(context.Background(), domain.Provider{}), "provider id is required")
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := p.Publish(ctx, domain.Provider{ID: "p1"})
		require.Error(t, err)
	})
}

func TestPublisher_PayloadDefaultsUpdatedAt(t *testing.T) {
	p := NewPublisher(config.PublishConfig{Endpoint: "http://localhost"})
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p.now = func() time.Time { return now }
	assert.True(t, p.payload(domain.Provider{ID: "p1"}).UpdatedAt.Equal(now))
}
