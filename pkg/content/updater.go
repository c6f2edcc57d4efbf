// Package content applies lifecycle updates to provider listings: it regenerates text sections,
// normalizes romaji, stores the result and publishes the listing.
package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/publish"
)

//go:generate moq -out mocks/section_writer.go -pkg mocks -skip-ensure -fmt goimports . SectionWriter
//go:generate moq -out mocks/romanizer.go -pkg mocks -skip-ensure -fmt goimports . Romanizer
//go:generate moq -out mocks/listing_publisher.go -pkg mocks -skip-ensure -fmt goimports . ListingPublisher
//go:generate moq -out mocks/listing_store.go -pkg mocks -skip-ensure -fmt goimports . ListingStore

// SectionWriter regenerates a text section
type SectionWriter interface {
	Rewrite(ctx context.Context, p domain.Provider, section string) (string, error)
}

// Romanizer fills and normalizes romaji fields
type Romanizer interface {
	Process(p domain.Provider) (domain.Provider, error)
}

// ListingPublisher pushes a listing to the site
type ListingPublisher interface {
	Publish(ctx context.Context, p domain.Provider) error
}

// ListingStore persists listing changes
type ListingStore interface {
	UpdateSections(ctx context.Context, id string, sections map[string]string, updatedAt time.Time) error
	UpdateRomaji(ctx context.Context, id, nameRomaji, addressRomaji string, consistent bool) error
	SetSyncStatus(ctx context.Context, id string, synced bool) error
	SetManualUpdate(ctx context.Context, id string, requested bool) error
}

// Updater implements the lifecycle content mutator on top of the writer, romanizer, publisher and store
type Updater struct {
	writer    SectionWriter
	romanizer Romanizer
	publisher ListingPublisher
	store     ListingStore
	now       func() time.Time
}

// NewUpdater makes an updater, now defaults to time.Now
func NewUpdater(writer SectionWriter, romanizer Romanizer, publisher ListingPublisher, store ListingStore, now func() time.Time) *Updater {
	if now == nil {
		now = time.Now
	}
	return &Updater{writer: writer, romanizer: romanizer, publisher: publisher, store: store, now: now}
}

// UpdateSections regenerates the text sections and stores them. Romaji sections are left to
// ProcessRomaji. A pending manual update request is cleared once the sections are stored.
func (u *Updater) UpdateSections(ctx context.Context, p domain.Provider, sections []string) (*domain.Provider, error) {
	texts := make(map[string]string, len(sections))
	for _, section := range sections {
		if domain.IsRomajiSection(section) {
			continue
		}
		text, err := u.writer.Rewrite(ctx, p, section)
		if err != nil {
			return nil, fmt.Errorf("rewrite %s: %w", section, err)
		}
		texts[section] = text
	}

	now := u.now()
	if err := u.store.UpdateSections(ctx, p.ID, texts, now); err != nil {
		return nil, fmt.Errorf("store sections: %w", err)
	}
	for section, text := range texts {
		setSection(&p, section, text)
	}
	if len(texts) > 0 {
		p.LastUpdated = now
	}

	if p.ManualUpdateRequested {
		if err := u.store.SetManualUpdate(ctx, p.ID, false); err != nil {
			return nil, fmt.Errorf("clear manual update request: %w", err)
		}
		p.ManualUpdateRequested = false
	}
	lgr.Printf("[DEBUG] provider %s sections updated: %d", p.ID, len(texts))
	return &p, nil
}

// ProcessRomaji normalizes romaji fields and stores them
func (u *Updater) ProcessRomaji(ctx context.Context, p domain.Provider) (*domain.Provider, error) {
	res, err := u.romanizer.Process(p)
	if err != nil {
		return nil, err
	}
	if err := u.store.UpdateRomaji(ctx, res.ID, res.NameRomaji, res.AddressRomaji, res.RomajiConsistent); err != nil {
		return nil, fmt.Errorf("store romaji: %w", err)
	}
	return &res, nil
}

// Sync publishes the listing and records the sync status. A rejected listing is reported as
// not synced without an error, any other publish failure is returned.
func (u *Updater) Sync(ctx context.Context, p domain.Provider) (bool, error) {
	pubErr := u.publisher.Publish(ctx, p)
	synced := pubErr == nil

	if err := u.store.SetSyncStatus(ctx, p.ID, synced); err != nil {
		if pubErr != nil {
			lgr.Printf("[WARN] can't record sync status for %s: %v", p.ID, err)
			return false, pubErr
		}
		return false, fmt.Errorf("store sync status: %w", err)
	}

	if errors.Is(pubErr, publish.ErrRejected) {
		lgr.Printf("[WARN] listing %s rejected: %v", p.ID, pubErr)
		return false, nil
	}
	if pubErr != nil {
		return false, pubErr
	}
	return true, nil
}

func setSection(p *domain.Provider, section, text string) {
	switch section {
	case domain.SectionDescription:
		p.Description = text
	case domain.SectionSpecialtiesSummary:
		p.SpecialtiesSummary = text
	case domain.SectionSEOSummary:
		p.SEOSummary = text
	}
}
