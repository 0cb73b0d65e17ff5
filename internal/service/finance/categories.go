package finance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/logger"
	"github.com/ougirez/landscape/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

// ListCategories returns active categories with their units and levels.
// An unknown peLevel is ignored rather than rejected.
func (s *Service) ListCategories(ctx context.Context, peLevel string) ([]*domain.CategoryView, error) {
	opts := store.ListCategoriesOpts{ActiveOnly: true}
	if level := domain.PELevel(strings.ToLower(strings.TrimSpace(peLevel))); level.Valid() {
		opts.PELevel = &level
	}

	categories, err := s.store.ListCategories(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.ListCategories: %w", err)
	}

	return s.withAssociations(ctx, categories)
}

// GetCategory returns one category with its units and levels, active or not.
func (s *Service) GetCategory(ctx context.Context, categoryID int64) (*domain.CategoryView, error) {
	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("store.GetCategory, category_id-%d: %w", categoryID, err)
	}

	views, err := s.withAssociations(ctx, []*domain.Category{category})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// withAssociations loads the UOM and PE level links of categories in one
// query each, plus one query for UOM labels. Arrays are never nil.
func (s *Service) withAssociations(ctx context.Context, categories []*domain.Category) ([]*domain.CategoryView, error) {
	ids := make([]int64, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	var (
		uomLinks []*domain.CategoryUOM
		peLinks  []*domain.CategoryPELevel
		uoms     []*domain.UOM
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if uomLinks, err = s.store.ListCategoryUOMs(egCtx, ids); err != nil {
			return fmt.Errorf("store.ListCategoryUOMs: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if peLinks, err = s.store.ListCategoryPELevels(egCtx, ids); err != nil {
			return fmt.Errorf("store.ListCategoryPELevels: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if uoms, err = s.store.ListUOMs(egCtx); err != nil {
			return fmt.Errorf("store.ListUOMs: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(uoms))
	for _, u := range uoms {
		labels[u.Code] = u.Name
	}

	byID := make(map[int64]*domain.CategoryView, len(categories))
	views := make([]*domain.CategoryView, 0, len(categories))
	for _, c := range categories {
		view := &domain.CategoryView{
			Category: *c,
			UOMs:     []domain.UOMRef{},
			PELevels: []domain.PELevel{},
		}
		byID[c.ID] = view
		views = append(views, view)
	}
	for _, link := range uomLinks {
		view, ok := byID[link.CategoryID]
		if !ok {
			continue
		}
		label, ok := labels[link.UOMCode]
		if !ok || label == "" {
			label = link.UOMCode
		}
		view.UOMs = append(view.UOMs, domain.UOMRef{Code: link.UOMCode, Label: label})
	}
	for _, link := range peLinks {
		if view, ok := byID[link.CategoryID]; ok {
			view.PELevels = append(view.PELevels, link.PELevel)
		}
	}

	return views, nil
}

func (s *Service) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (int64, error) {
	req.Code = strings.TrimSpace(req.Code)
	if req.Code == "" || req.Kind == "" {
		return 0, constants.ErrMissingCategoryFields
	}
	if !req.Kind.Valid() {
		return 0, constants.ErrInvalidCategoryKind
	}

	id, err := s.store.CreateCategory(ctx, req)
	if err != nil {
		if errors.Is(err, constants.ErrDBUniqueViolation) {
			return 0, fmt.Errorf("%w: %w", constants.ErrCategoryCodeTaken, err)
		}
		return 0, fmt.Errorf("store.CreateCategory: %w", err)
	}

	if err := s.store.AddCategoryUOMs(ctx, id, req.UOMs); err != nil {
		return 0, fmt.Errorf("store.AddCategoryUOMs, category_id-%d: %w", id, err)
	}
	if err := s.store.AddCategoryPELevels(ctx, id, req.PELevels); err != nil {
		return 0, fmt.Errorf("store.AddCategoryPELevels, category_id-%d: %w", id, err)
	}

	logger.Infof(ctx, "created category %s (%d)", req.Code, id)

	return id, nil
}

// UpdateCategory applies the fields present in req. Association lists, when
// present, replace the stored set: delete everything, then insert. The two
// statements are not atomic.
func (s *Service) UpdateCategory(ctx context.Context, categoryID int64, req *dto.UpdateCategoryRequest) error {
	if req.Kind != nil && !req.Kind.Valid() {
		return constants.ErrInvalidCategoryKind
	}

	if err := s.store.UpdateCategory(ctx, categoryID, req); err != nil {
		if errors.Is(err, constants.ErrDBUniqueViolation) {
			return fmt.Errorf("%w: %w", constants.ErrCategoryCodeTaken, err)
		}
		return fmt.Errorf("store.UpdateCategory, category_id-%d: %w", categoryID, err)
	}

	if req.UOMs != nil {
		if err := s.store.ClearCategoryUOMs(ctx, categoryID); err != nil {
			return fmt.Errorf("store.ClearCategoryUOMs, category_id-%d: %w", categoryID, err)
		}
		if err := s.store.AddCategoryUOMs(ctx, categoryID, req.UOMs); err != nil {
			return fmt.Errorf("store.AddCategoryUOMs, category_id-%d: %w", categoryID, err)
		}
	}
	if req.PELevels != nil {
		if err := s.store.ClearCategoryPELevels(ctx, categoryID); err != nil {
			return fmt.Errorf("store.ClearCategoryPELevels, category_id-%d: %w", categoryID, err)
		}
		if err := s.store.AddCategoryPELevels(ctx, categoryID, req.PELevels); err != nil {
			return fmt.Errorf("store.AddCategoryPELevels, category_id-%d: %w", categoryID, err)
		}
	}

	return nil
}

// DeleteCategory hard deletes a category. A category still used by budget
// lines is a conflict, never cascaded.
func (s *Service) DeleteCategory(ctx context.Context, categoryID int64) error {
	if err := s.store.DeleteCategory(ctx, categoryID); err != nil {
		if errors.Is(err, constants.ErrDBForeignKey) {
			return fmt.Errorf("%w: %w", constants.ErrCategoryInUse, err)
		}
		return fmt.Errorf("store.DeleteCategory, category_id-%d: %w", categoryID, err)
	}

	return nil
}
