package finance

import (
	"context"
	"fmt"

	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/logger"
)

// Seed upserts the starter units, confidence tiers and categories. Category
// associations are replaced on every run so the result is the same however
// many times it is called.
func (s *Service) Seed(ctx context.Context) (*dto.SeedResponse, error) {
	if err := s.store.UpsertUOMs(ctx, seedUOMs()); err != nil {
		return nil, fmt.Errorf("store.UpsertUOMs: %w", err)
	}
	if err := s.store.UpsertConfidencePolicies(ctx, seedConfidencePolicies()); err != nil {
		return nil, fmt.Errorf("store.UpsertConfidencePolicies: %w", err)
	}

	categories := seedCategories()
	for _, seed := range categories {
		id, err := s.store.UpsertCategory(ctx, seed)
		if err != nil {
			return nil, fmt.Errorf("store.UpsertCategory, code-%s: %w", seed.Code, err)
		}

		if err := s.store.ClearCategoryUOMs(ctx, id); err != nil {
			return nil, fmt.Errorf("store.ClearCategoryUOMs, code-%s: %w", seed.Code, err)
		}
		if err := s.store.AddCategoryUOMs(ctx, id, seed.UOMs); err != nil {
			return nil, fmt.Errorf("store.AddCategoryUOMs, code-%s: %w", seed.Code, err)
		}
		if err := s.store.ClearCategoryPELevels(ctx, id); err != nil {
			return nil, fmt.Errorf("store.ClearCategoryPELevels, code-%s: %w", seed.Code, err)
		}
		if err := s.store.AddCategoryPELevels(ctx, id, seed.PELevels); err != nil {
			return nil, fmt.Errorf("store.AddCategoryPELevels, code-%s: %w", seed.Code, err)
		}
	}

	resp := &dto.SeedResponse{
		UOMs:       len(seedUOMs()),
		Confidence: len(seedConfidencePolicies()),
		Categories: len(categories),
	}
	logger.Infof(ctx, "seeded %d uoms, %d confidence tiers, %d categories", resp.UOMs, resp.Confidence, resp.Categories)

	return resp, nil
}
