// Package publish pushes updated provider listings to the site publishing API
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/time/rate"

	"github.com/umputun/freshness/pkg/config"
	"github.com/umputun/freshness/pkg/domain"
)

// ErrRejected is returned when the publishing API refused the listing (4xx), retrying won't help
var ErrRejected = errors.New("listing rejected")

// Publisher posts listings to the publishing API, rate limited and retried on server errors
type Publisher struct {
	endpoint  string
	token     string
	retries   int
	baseDelay time.Duration
	client    *http.Client
	limiter   *rate.Limiter
	now       func() time.Time
}

// listing is the payload sent to the publishing API
type listing struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	NameRomaji         string    `json:"name_romaji"`
	Address            string    `json:"address"`
	AddressRomaji      string    `json:"address_romaji"`
	Phone              string    `json:"phone,omitempty"`
	Website            string    `json:"website,omitempty"`
	Description        string    `json:"description"`
	SpecialtiesSummary string    `json:"specialties_summary,omitempty"`
	SEOSummary         string    `json:"seo_summary,omitempty"`
	Specialties        []string  `json:"specialties,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// terminalError stops repeater, it matches any other terminalError
type terminalError struct {
	err error
}

func (e *terminalError) Error() string { return e.err.Error() }
func (e *terminalError) Unwrap() error { return e.err }
func (e *terminalError) Is(target error) bool {
	_, ok := target.(*terminalError)
	return ok
}

// NewPublisher makes a publisher for the configured endpoint
func NewPublisher(cfg config.PublishConfig) *Publisher {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	retries := cfg.Retries
	if retries < 1 {
		retries = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Publisher{
		endpoint:  strings.TrimSuffix(cfg.Endpoint, "/"),
		token:     cfg.Token,
		retries:   retries,
		baseDelay: 500 * time.Millisecond,
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(limit, 1),
		now:       time.Now,
	}
}

// Publish sends the listing. Server and transport errors are retried with backoff,
// a 4xx response is returned as ErrRejected right away.
func (p *Publisher) Publish(ctx context.Context, provider domain.Provider) error {
	if provider.ID == "" {
		return errors.New("provider id is required")
	}
	body, err := json.Marshal(p.payload(provider))
	if err != nil {
		return fmt.Errorf("marshal listing: %w", err)
	}
	target := p.endpoint + "/listings/" + url.PathEscape(provider.ID)

	attempt := 0
	retrier := repeater.NewBackoff(p.retries, p.baseDelay, repeater.WithMaxDelay(10*time.Second))
	err = retrier.Do(ctx, func() error {
		attempt++
		if err := p.limiter.Wait(ctx); err != nil {
			return &terminalError{err: err}
		}
		err := p.post(ctx, target, body)
		if err != nil && !errors.Is(err, &terminalError{}) {
			lgr.Printf("[DEBUG] publish %s attempt %d: %v", provider.ID, attempt, err)
		}
		return err
	}, &terminalError{})

	var te *terminalError
	if errors.As(err, &te) {
		err = te.err
	}
	if err != nil {
		return fmt.Errorf("publish %s: %w", provider.ID, err)
	}
	return nil
}

func (p *Publisher) post(ctx context.Context, target string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return &terminalError{err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return &terminalError{err: ctx.Err()}
		}
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	statusErr := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return &terminalError{err: fmt.Errorf("%w: %w", ErrRejected, statusErr)}
	}
	return statusErr
}

func (p *Publisher) payload(provider domain.Provider) listing {
	updated := provider.LastUpdated
	if updated.IsZero() {
		updated = p.now()
	}
	return listing{
		ID:                 provider.ID,
		Name:               provider.Name,
		NameRomaji:         provider.NameRomaji,
		Address:            provider.Address,
		AddressRomaji:      provider.AddressRomaji,
		Phone:              provider.Phone,
		Website:            provider.Website,
		Description:        provider.Description,
		SpecialtiesSummary: provider.SpecialtiesSummary,
		SEOSummary:         provider.SEOSummary,
		Specialties:        provider.Specialties,
		UpdatedAt:          updated.UTC(),
	}
}
