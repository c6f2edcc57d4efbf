package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/freshness/pkg/domain"
)

// ProviderRepository handles provider listing database operations
type ProviderRepository struct {
	db *sqlx.DB
}

// providerSQL represents a provider for SQL operations
type providerSQL struct {
	ID                    string          `db:"id"`
	Name                  string          `db:"name"`
	NameRomaji            string          `db:"name_romaji"`
	Address               string          `db:"address"`
	AddressRomaji         string          `db:"address_romaji"`
	Phone                 string          `db:"phone"`
	Website               string          `db:"website"`
	Description           string          `db:"description"`
	SpecialtiesSummary    string          `db:"specialties_summary"`
	SEOSummary            string          `db:"seo_summary"`
	Specialties           string          `db:"specialties"`
	CreatedAt             sql.NullString  `db:"created_at"`
	LastUpdated           sql.NullString  `db:"last_updated"`
	QualityScore          sql.NullFloat64 `db:"quality_score"`
	WordPressSynced       bool            `db:"wordpress_synced"`
	RomajiConsistent      bool            `db:"romaji_consistent"`
	ManualUpdateRequested bool            `db:"manual_update_requested"`
	PageViews30d          int             `db:"page_views_30d"`
	SearchRanking         int             `db:"search_ranking"`
	UserEngagement        float64         `db:"user_engagement"`
}

var providerColumns = []string{
	"id", "name", "name_romaji", "address", "address_romaji", "phone", "website",
	"description", "specialties_summary", "seo_summary", "specialties",
	"created_at", "last_updated", "quality_score",
	"wordpress_synced", "romaji_consistent", "manual_update_requested",
	"page_views_30d", "search_ranking", "user_engagement",
}

// sectionColumns maps content sections to the columns holding them
var sectionColumns = map[string]string{
	domain.SectionDescription:        "description",
	domain.SectionSpecialtiesSummary: "specialties_summary",
	domain.SectionSEOSummary:         "seo_summary",
	domain.SectionNameRomaji:         "name_romaji",
	domain.SectionAddressRomaji:      "address_romaji",
}

// NewProviderRepository creates a new provider repository
func NewProviderRepository(db *sqlx.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// ListProviders returns all providers ordered by id.
// Rows that can't be scanned are logged and skipped, the rest of the batch is still returned.
func (r *ProviderRepository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	query, args, err := sq.Select(providerColumns...).From("providers").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list providers query: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	res := []domain.Provider{}
	for rows.Next() {
		var row providerSQL
		if err := rows.StructScan(&row); err != nil {
			lgr.Printf("[WARN] skip provider row %q: %v", row.ID, err)
			continue
		}
		res = append(res, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return res, nil
}

// GetProvider returns a provider by id, ErrNotFound if there is no such provider
func (r *ProviderRepository) GetProvider(ctx context.Context, id string) (*domain.Provider, error) {
	query, args, err := sq.Select(providerColumns...).From("providers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get provider query: %w", err)
	}

	var row providerSQL
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("provider %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}

	p := row.toDomain()
	return &p, nil
}

// UpsertProvider inserts a provider or replaces the stored one with the same id
func (r *ProviderRepository) UpsertProvider(ctx context.Context, p domain.Provider) error {
	if p.ID == "" {
		return errors.New("provider id is required")
	}
	row, err := providerFromDomain(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO providers (id, name, name_romaji, address, address_romaji, phone, website,
			description, specialties_summary, seo_summary, specialties, created_at, last_updated, quality_score,
			wordpress_synced, romaji_consistent, manual_update_requested, page_views_30d, search_ranking, user_engagement)
		VALUES (:id, :name, :name_romaji, :address, :address_romaji, :phone, :website,
			:description, :specialties_summary, :seo_summary, :specialties, :created_at, :last_updated, :quality_score,
			:wordpress_synced, :romaji_consistent, :manual_update_requested, :page_views_30d, :search_ranking, :user_engagement)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, name_romaji = excluded.name_romaji,
			address = excluded.address, address_romaji = excluded.address_romaji,
			phone = excluded.phone, website = excluded.website,
			description = excluded.description, specialties_summary = excluded.specialties_summary,
			seo_summary = excluded.seo_summary, specialties = excluded.specialties,
			created_at = excluded.created_at, last_updated = excluded.last_updated,
			quality_score = excluded.quality_score, wordpress_synced = excluded.wordpress_synced,
			romaji_consistent = excluded.romaji_consistent, manual_update_requested = excluded.manual_update_requested,
			page_views_30d = excluded.page_views_30d, search_ranking = excluded.search_ranking,
			user_engagement = excluded.user_engagement
	`
	return withRetry(ctx, "upsert provider", func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
}

// UpdateSections stores regenerated content sections and bumps last_updated.
// Unknown section names are rejected.
func (r *ProviderRepository) UpdateSections(ctx context.Context, id string, sections map[string]string, updatedAt time.Time) error {
	if len(sections) == 0 {
		return nil
	}
	values := map[string]any{"last_updated": timeColumn(updatedAt)}
	for section, text := range sections {
		col, ok := sectionColumns[section]
		if !ok {
			return fmt.Errorf("unknown section %q", section)
		}
		values[col] = text
	}
	return r.update(ctx, "update sections", id, values)
}

// UpdateRomaji stores romanized name and address and the consistency flag
func (r *ProviderRepository) UpdateRomaji(ctx context.Context, id, nameRomaji, addressRomaji string, consistent bool) error {
	return r.update(ctx, "update romaji", id, map[string]any{
		"name_romaji":       nameRomaji,
		"address_romaji":    addressRomaji,
		"romaji_consistent": consistent,
	})
}

// SetSyncStatus records the outcome of the last publish attempt
func (r *ProviderRepository) SetSyncStatus(ctx context.Context, id string, synced bool) error {
	return r.update(ctx, "set sync status", id, map[string]any{"wordpress_synced": synced})
}

// SetManualUpdate raises or clears the manual update request flag
func (r *ProviderRepository) SetManualUpdate(ctx context.Context, id string, requested bool) error {
	return r.update(ctx, "set manual update", id, map[string]any{"manual_update_requested": requested})
}

// SetQualityScore stores the latest assessed quality score
func (r *ProviderRepository) SetQualityScore(ctx context.Context, id string, score float64) error {
	return r.update(ctx, "set quality score", id, map[string]any{"quality_score": score})
}

// update applies a column map to one provider, ErrNotFound if no row matched
func (r *ProviderRepository) update(ctx context.Context, op, id string, values map[string]any) error {
	query, args, err := sq.Update("providers").SetMap(values).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build %s query: %w", op, err)
	}
	return withRetry(ctx, op, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("provider %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

func providerFromDomain(p domain.Provider) (*providerSQL, error) {
	specialties, err := toJSON(p.Specialties)
	if err != nil {
		return nil, err
	}
	row := &providerSQL{
		ID:                    p.ID,
		Name:                  p.Name,
		NameRomaji:            p.NameRomaji,
		Address:               p.Address,
		AddressRomaji:         p.AddressRomaji,
		Phone:                 p.Phone,
		Website:               p.Website,
		Description:           p.Description,
		SpecialtiesSummary:    p.SpecialtiesSummary,
		SEOSummary:            p.SEOSummary,
		Specialties:           specialties,
		CreatedAt:             timeColumn(p.CreatedAt),
		LastUpdated:           timeColumn(p.LastUpdated),
		WordPressSynced:       p.WordPressSynced,
		RomajiConsistent:      p.RomajiConsistent,
		ManualUpdateRequested: p.ManualUpdateRequested,
		PageViews30d:          p.PageViews30d,
		SearchRanking:         p.SearchRanking,
		UserEngagement:        p.UserEngagement,
	}
	if p.QualityScore != nil {
		row.QualityScore = sql.NullFloat64{Float64: *p.QualityScore, Valid: true}
	}
	return row, nil
}

// toDomain never fails, malformed dates become zero and malformed specialties become empty
// so the analyzer applies its defaults to them
func (s *providerSQL) toDomain() domain.Provider {
	specialties, err := fromJSON[string](s.Specialties)
	if err != nil {
		lgr.Printf("[WARN] provider %s specialties ignored: %v", s.ID, err)
	}
	p := domain.Provider{
		ID:                    s.ID,
		Name:                  s.Name,
		NameRomaji:            s.NameRomaji,
		Address:               s.Address,
		AddressRomaji:         s.AddressRomaji,
		Phone:                 s.Phone,
		Website:               s.Website,
		Description:           s.Description,
		SpecialtiesSummary:    s.SpecialtiesSummary,
		SEOSummary:            s.SEOSummary,
		Specialties:           specialties,
		WordPressSynced:       s.WordPressSynced,
		RomajiConsistent:      s.RomajiConsistent,
		ManualUpdateRequested: s.ManualUpdateRequested,
		PageViews30d:          s.PageViews30d,
		SearchRanking:         s.SearchRanking,
		UserEngagement:        s.UserEngagement,
	}
	p.CreatedAt = parseTimeColumn(s.ID, "created_at", s.CreatedAt)
	p.LastUpdated = parseTimeColumn(s.ID, "last_updated", s.LastUpdated)
	if s.QualityScore.Valid {
		q := s.QualityScore.Float64
		p.QualityScore = &q
	}
	return p
}
