package domain

import "time"

// Provider represents a healthcare-provider listing as supplied by the provider store
type Provider struct {
	ID                 string
	Name               string
	NameRomaji         string
	Address            string
	AddressRomaji      string
	Phone              string
	Website            string
	Description        string
	SpecialtiesSummary string
	SEOSummary         string
	Specialties        []string

	CreatedAt   time.Time // zero if unknown
	LastUpdated time.Time // last content update, zero if unknown

	QualityScore          *float64 // nil if the store has no score
	WordPressSynced       bool
	RomajiConsistent      bool
	ManualUpdateRequested bool

	// performance counters, mocked upstream
	PageViews30d   int
	SearchRanking  int // 1-based, 0 means unranked
	UserEngagement float64
}

// DisplayName returns a human-readable identifier for logs
func (p *Provider) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// QualityAssessment holds the scores returned by a quality assessor, all 0-100
type QualityAssessment struct {
	QualityScore      float64
	CompletenessScore float64
	AccuracyScore     float64
	DescriptionScore  float64
}

// Content sections which can be regenerated for a provider
const (
	SectionDescription        = "description"
	SectionSpecialtiesSummary = "specialties_summary"
	SectionSEOSummary         = "seo_summary"
	SectionNameRomaji         = "name_romaji"
	SectionAddressRomaji      = "address_romaji"
)

// IsRomajiSection reports whether the section is handled by romaji processing rather than text generation
func IsRomajiSection(section string) bool {
	return section == SectionNameRomaji || section == SectionAddressRomaji
}
