package finance

import (
	"context"
	"fmt"
	"strings"

	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/logger"
)

func (s *Service) ListUOMs(ctx context.Context) ([]*domain.UOM, error) {
	uoms, err := s.store.ListUOMs(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListUOMs: %w", err)
	}

	return nonNil(uoms), nil
}

func (s *Service) ListConfidencePolicies(ctx context.Context) ([]*domain.ConfidencePolicy, error) {
	policies, err := s.store.ListConfidencePolicies(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListConfidencePolicies: %w", err)
	}

	return nonNil(policies), nil
}

// ListBudgetVersions lists budget versions, creating the Baseline version
// when there is none yet.
func (s *Service) ListBudgetVersions(ctx context.Context) ([]*domain.BudgetVersion, error) {
	versions, err := s.store.ListBudgetVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListBudgetVersions: %w", err)
	}
	if len(versions) > 0 {
		return versions, nil
	}

	baseline := &domain.BudgetVersion{
		Name:   constants.BaselineBudgetName,
		AsOf:   truncateToDate(s.now()),
		Status: constants.BaselineBudgetStatus,
	}
	if _, err := s.store.CreateBudgetVersion(ctx, baseline); err != nil {
		return nil, fmt.Errorf("store.CreateBudgetVersion: %w", err)
	}
	logger.Info(ctx, "created Baseline budget version")

	versions, err = s.store.ListBudgetVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListBudgetVersions: %w", err)
	}

	return nonNil(versions), nil
}

func (s *Service) CreateBudgetVersion(ctx context.Context, req *dto.CreateBudgetRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, constants.ErrMissingBudgetName
	}

	version := &domain.BudgetVersion{
		Name:   name,
		AsOf:   truncateToDate(s.now()),
		Status: constants.BaselineBudgetStatus,
	}
	if req.AsOf != nil {
		version.AsOf = truncateToDate(*req.AsOf)
	}
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		version.Status = strings.TrimSpace(*req.Status)
	}

	id, err := s.store.CreateBudgetVersion(ctx, version)
	if err != nil {
		return 0, fmt.Errorf("store.CreateBudgetVersion: %w", err)
	}

	return id, nil
}
