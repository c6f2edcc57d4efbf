package content

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/content/mocks"
	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/publish"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	writer    *mocks.SectionWriterMock
	romanizer *mocks.RomanizerMock
	publisher *mocks.ListingPublisherMock
	store     *mocks.ListingStoreMock
}

func newTestUpdater() (*Updater, testDeps) {
	deps := testDeps{
		writer: &mocks.SectionWriterMock{
			RewriteFunc: func(_ context.Context, p domain.Provider, section string) (string, error) {
				return "new " + section + " for " + p.ID, nil
			},
		},
		romanizer: &mocks.RomanizerMock{
			ProcessFunc: func(p domain.Provider) (domain.Provider, error) {
				p.NameRomaji, p.AddressRomaji, p.RomajiConsistent = "Yamada Iin", "Tokyo", true
				return p, nil
			},
		},
		publisher: &mocks.ListingPublisherMock{
			PublishFunc: func(context.Context, domain.Provider) error { return nil },
		},
		store: &mocks.ListingStoreMock{
			UpdateSectionsFunc:  func(context.Context, string, map[string]string, time.Time) error { return nil },
			UpdateRomajiFunc:    func(context.Context, string, string, string, bool) error { return nil },
			SetSyncStatusFunc:   func(context.Context, string, bool) error { return nil },
			SetManualUpdateFunc: func(context.Context, string, bool) error { return nil },
		},
	}
	u := NewUpdater(deps.writer, deps.romanizer, deps.publisher, deps.store, func() time.Time { return testNow })
	return u, deps
}

func TestUpdater_UpdateSections(t *testing.T) {
	u, deps := newTestUpdater()
	p := domain.Provider{ID: "p1", ManualUpdateRequested: true}

	res, err := u.UpdateSections(context.Background(), p,
		[]string{domain.SectionDescription, domain.SectionSEOSummary, domain.SectionNameRomaji})
	require.NoError(t, err)

	assert.Equal(t, "new description for p1", res.Description)
	assert.Equal(t, "new seo_summary for p1", res.SEOSummary)
	assert.Empty(t, res.SpecialtiesSummary)
	assert.True(t, res.LastUpdated.Equal(testNow))
	assert.False(t, res.ManualUpdateRequested)

	require.Len(t, deps.writer.RewriteCalls(), 2, "romaji section is not rewritten")
	require.Len(t, deps.store.UpdateSectionsCalls(), 1)
	stored := deps.store.UpdateSectionsCalls()[0]
	assert.Equal(t, "p1", stored.ID)
	assert.Equal(t, map[string]string{
		domain.SectionDescription: "new description for p1",
		domain.SectionSEOSummary:  "new seo_summary for p1",
	}, stored.Sections)
	require.Len(t, deps.store.SetManualUpdateCalls(), 1)
	assert.False(t, deps.store.SetManualUpdateCalls()[0].Requested)

	// original value untouched
	assert.Empty(t, p.Description)
}

func TestUpdater_UpdateSections_NoTextSections(t *testing.T) {
	u, deps := newTestUpdater()
	p := domain.Provider{ID: "p1", LastUpdated: testNow.AddDate(0, -1, 0)}

	res, err := u.UpdateSections(context.Background(), p, []string{domain.SectionAddressRomaji})
	require.NoError(t, err)
	assert.True(t, res.LastUpdated.Equal(p.LastUpdated), "nothing rewritten, last update kept")
	assert.Empty(t, deps.writer.RewriteCalls())
	assert.Empty(t, deps.store.SetManualUpdateCalls())
}

func TestUpdater_UpdateSections_Errors(t *testing.T) {
	t.Run("writer", func(t *testing.T) {
		u, deps := newTestUpdater()
		deps.writer.RewriteFunc = func(context.Context, domain.Provider, string) (string, error) {
			return "", errors.New("llm timeout")
		}
		_, err := u.UpdateSections(context.Background(), domain.Provider{ID: "p1"}, []string{domain.SectionDescription})
		require.EqualError(t, err, "rewrite description: llm timeout")
		assert.Empty(t, deps.store.UpdateSectionsCalls(), "nothing stored on failure")
	})

	t.Run("store", func(t *testing.T) {
		u, deps := newTestUpdater()
		deps.store.UpdateSectionsFunc = func(context.Context, string, map[string]string, time.Time) error {
			return errors.New("disk full")
		}
		_, err := u.UpdateSections(context.Background(), domain.Provider{ID: "p1"}, []string{domain.SectionDescription})
		require.EqualError(t, err, "store sections: disk full")
	})
}

func TestUpdater_ProcessRomaji(t *testing.T) {
	u, deps := newTestUpdater()

	res, err := u.ProcessRomaji(context.Background(), domain.Provider{ID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "Yamada Iin", res.NameRomaji)
	require.Len(t, deps.store.UpdateRomajiCalls(), 1)
	call := deps.store.UpdateRomajiCalls()[0]
	assert.Equal(t, "Tokyo", call.AddressRomaji)
	assert.True(t, call.Consistent)

	deps.romanizer.ProcessFunc = func(p domain.Provider) (domain.Provider, error) {
		return p, errors.New("name romaji: missing")
	}
	_, err = u.ProcessRomaji(context.Background(), domain.Provider{ID: "p2"})
	require.EqualError(t, err, "name romaji: missing")
	assert.Len(t, deps.store.UpdateRomajiCalls(), 1, "failed romaji not stored")
}

func TestUpdater_Sync(t *testing.T) {
	tbl := []struct {
		name       string
		publishErr error
		storeErr   error
		wantOK     bool
		wantErr    string
		wantStatus bool
	}{
		{name: "published", wantOK: true, wantStatus: true},
		{name: "rejected", publishErr: fmt.Errorf("publish p1: %w", publish.ErrRejected), wantOK: false},
		{name: "server error", publishErr: errors.New("publish p1: status 503"), wantErr: "publish p1: status 503"},
		{name: "status not stored", storeErr: errors.New("locked"), wantErr: "store sync status: locked", wantStatus: true},
		{name: "both failed", publishErr: errors.New("publish p1: timeout"), storeErr: errors.New("locked"),
			wantErr: "publish p1: timeout"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			u, deps := newTestUpdater()
			deps.publisher.PublishFunc = func(context.Context, domain.Provider) error { return tt.publishErr }
			deps.store.SetSyncStatusFunc = func(context.Context, string, bool) error { return tt.storeErr }

			ok, err := u.Sync(context.Background(), domain.Provider{ID: "p1"})
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Len(t, deps.store.SetSyncStatusCalls(), 1)
			assert.Equal(t, tt.wantStatus, deps.store.SetSyncStatusCalls()[0].Synced)
		})
	}
}
