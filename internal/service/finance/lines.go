package finance

import (
	"context"
	"fmt"

	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/logger"
)

// ListLines reads the lines of one planning entity. The effective view is
// tried first; any failure there falls back to the plain fact table, whose
// rows carry no computed contingency amounts.
func (s *Service) ListLines(ctx context.Context, scope dto.LineScope) ([]*domain.BudgetLine, error) {
	if scope.BudgetID == 0 || scope.PELevel == "" || scope.PEID == 0 {
		return nil, constants.ErrMissingLineScope
	}

	lines, err := s.store.ListEffectiveLines(ctx, scope)
	if err == nil {
		return nonNil(lines), nil
	}
	logger.Warnf(ctx, "effective view unavailable, falling back to fact table: %s", err.Error())

	lines, err = s.store.ListBaseLines(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("store.ListBaseLines: %w", err)
	}

	return nonNil(lines), nil
}

func (s *Service) CreateLine(ctx context.Context, req *dto.CreateLineRequest) (int64, error) {
	if req.BudgetID == 0 || req.PELevel == "" || req.PEID == 0 || req.CategoryID == 0 || req.UOMCode == "" {
		return 0, constants.ErrMissingLineFields
	}

	id, err := s.store.CreateLine(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("store.CreateLine: %w", err)
	}

	return id, nil
}

func (s *Service) UpdateLine(ctx context.Context, factID int64, req *dto.UpdateLineRequest) error {
	if err := s.store.UpdateLine(ctx, factID, req); err != nil {
		return fmt.Errorf("store.UpdateLine, fact_id-%d: %w", factID, err)
	}

	return nil
}

func (s *Service) DeleteLine(ctx context.Context, factID int64) error {
	if err := s.store.DeleteLine(ctx, factID); err != nil {
		return fmt.Errorf("store.DeleteLine, fact_id-%d: %w", factID, err)
	}

	return nil
}

func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
