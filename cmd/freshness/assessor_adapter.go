package main

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/lifecycle"
)

// scoreStore persists assessed quality scores
type scoreStore interface {
	SetQualityScore(ctx context.Context, id string, score float64) error
}

// scoringAssessor keeps the stored quality score in sync with every assessment
type scoringAssessor struct {
	assessor lifecycle.QualityAssessor
	store    scoreStore
}

func newScoringAssessor(assessor lifecycle.QualityAssessor, store scoreStore) *scoringAssessor {
	return &scoringAssessor{assessor: assessor, store: store}
}

// Assess implements lifecycle.QualityAssessor. A failed score write is logged, the assessment is still returned.
func (a *scoringAssessor) Assess(ctx context.Context, p domain.Provider) (domain.QualityAssessment, error) {
	res, err := a.assessor.Assess(ctx, p)
	if err != nil {
		return res, err
	}
	if p.QualityScore != nil && *p.QualityScore == res.QualityScore {
		return res, nil
	}
	if err := a.store.SetQualityScore(ctx, p.ID, res.QualityScore); err != nil {
		lgr.Printf("[WARN] failed to store quality score for %s: %v", p.ID, err)
	}
	return res, nil
}
