package service

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/repository"
)

// LifecycleService provides unified access to repositories for the scheduler, the server and startup wiring
type LifecycleService struct {
	providerRepo *repository.ProviderRepository
	planRepo     *repository.PlanRepository
	reportRepo   *repository.ReportRepository
	settingRepo  *repository.SettingRepository
}

// NewLifecycleService creates a new lifecycle service
func NewLifecycleService(repos *repository.Repositories) *LifecycleService {
	return &LifecycleService{
		providerRepo: repos.Provider,
		planRepo:     repos.Plan,
		reportRepo:   repos.Report,
		settingRepo:  repos.Setting,
	}
}

// Plan methods

func (s *LifecycleService) SavePlan(ctx context.Context, plan *domain.ContentUpdatePlan) error {
	return s.planRepo.SavePlan(ctx, plan)
}

func (s *LifecycleService) ListPlans(ctx context.Context, filter repository.PlanFilter) ([]*domain.ContentUpdatePlan, error) {
	return s.planRepo.ListPlans(ctx, filter)
}

// CompletedPlansSince returns executed plans completed at or after since, used to restore update history
func (s *LifecycleService) CompletedPlansSince(ctx context.Context, since time.Time) ([]*domain.ContentUpdatePlan, error) {
	plans, err := s.planRepo.ListPlans(ctx, repository.PlanFilter{CompletedSince: since})
	if err != nil {
		return nil, fmt.Errorf("completed plans: %w", err)
	}
	return plans, nil
}

// Report methods

func (s *LifecycleService) SaveReport(ctx context.Context, rep *domain.ContentLifecycleReport) (int64, error) {
	return s.reportRepo.SaveReport(ctx, rep)
}

func (s *LifecycleService) LatestReport(ctx context.Context) (*domain.ContentLifecycleReport, error) {
	return s.reportRepo.LatestReport(ctx)
}

// Provider methods

// RequestManualUpdate flags a provider for an update on the next cycle, ErrNotFound for unknown ids
func (s *LifecycleService) RequestManualUpdate(ctx context.Context, providerID string) error {
	return s.providerRepo.SetManualUpdate(ctx, providerID, true)
}

// Setting methods

func (s *LifecycleService) LoadDelayConfig(ctx context.Context) (*domain.DelayConfig, error) {
	return s.settingRepo.LoadDelayConfig(ctx)
}

func (s *LifecycleService) SaveDelayConfig(ctx context.Context, cfg domain.DelayConfig) error {
	return s.settingRepo.SaveDelayConfig(ctx, cfg)
}
