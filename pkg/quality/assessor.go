// Package quality scores provider listing content on a 0-100 scale
package quality

import (
	"context"
	"html"
	"math"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/romaji"
)

// score weights, sum to 1
const (
	completenessWeight = 0.5
	accuracyWeight     = 0.3
	descriptionWeight  = 0.2
)

// DefaultMinDescriptionLength is the plain-text length of a description scoring 100
const DefaultMinDescriptionLength = 200

// Assessor is a heuristic quality assessor working on the listing fields alone
type Assessor struct {
	minDescription int
	policy         *bluemonday.Policy
}

// NewAssessor makes an assessor, minDescription <= 0 uses DefaultMinDescriptionLength
func NewAssessor(minDescription int) *Assessor {
	if minDescription <= 0 {
		minDescription = DefaultMinDescriptionLength
	}
	return &Assessor{minDescription: minDescription, policy: bluemonday.StrictPolicy()}
}

// Assess scores completeness, accuracy and description of the listing.
// quality = 0.5*completeness + 0.3*accuracy + 0.2*description, rounded to 0.1
func (a *Assessor) Assess(ctx context.Context, p domain.Provider) (domain.QualityAssessment, error) {
	if err := ctx.Err(); err != nil {
		return domain.QualityAssessment{}, err
	}
	res := domain.QualityAssessment{
		CompletenessScore: completeness(p),
		AccuracyScore:     accuracy(p),
		DescriptionScore:  a.description(p.Description),
	}
	res.QualityScore = round1(completenessWeight*res.CompletenessScore +
		accuracyWeight*res.AccuracyScore + descriptionWeight*res.DescriptionScore)
	return res, nil
}

// completeness is the share of filled listing fields
func completeness(p domain.Provider) float64 {
	fields := []bool{
		strings.TrimSpace(p.Name) != "",
		strings.TrimSpace(p.Address) != "",
		strings.TrimSpace(p.Phone) != "",
		strings.TrimSpace(p.Website) != "",
		strings.TrimSpace(p.Description) != "",
		len(p.Specialties) > 0,
		strings.TrimSpace(p.NameRomaji) != "",
		strings.TrimSpace(p.AddressRomaji) != "",
	}
	filled := 0
	for _, ok := range fields {
		if ok {
			filled++
		}
	}
	return round1(float64(filled) / float64(len(fields)) * 100)
}

// accuracy is the share of present checkable fields passing format checks, 0 if nothing to check
func accuracy(p domain.Provider) float64 {
	checked, passed := 0, 0
	check := func(present, ok bool) {
		if !present {
			return
		}
		checked++
		if ok {
			passed++
		}
	}
	check(p.Phone != "", validPhone(p.Phone))
	check(p.Website != "", validWebsite(p.Website))
	check(p.NameRomaji != "", romaji.IsLatin(p.NameRomaji))
	check(p.AddressRomaji != "", romaji.IsLatin(p.AddressRomaji))
	if checked == 0 {
		return 0
	}
	return round1(float64(passed) / float64(checked) * 100)
}

// validPhone accepts japanese numbers, 10 or 11 digits with optional separators or +81 prefix
func validPhone(phone string) bool {
	phone = norm.NFKC.String(phone)
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case strings.ContainsRune(" -+()", r):
		default:
			return false
		}
	}
	if strings.HasPrefix(strings.TrimSpace(phone), "+81") {
		digits-- // country code replaces the leading zero
	}
	return digits == 10 || digits == 11
}

func validWebsite(website string) bool {
	u, err := url.Parse(strings.TrimSpace(website))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// description scores the plain-text length of the description, markup doesn't count
func (a *Assessor) description(text string) float64 {
	plain := html.UnescapeString(a.policy.Sanitize(text))
	plain = strings.Join(strings.Fields(plain), " ")
	n := utf8.RuneCountInString(plain)
	return round1(math.Min(float64(n)/float64(a.minDescription), 1) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
