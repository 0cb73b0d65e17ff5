package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
)

type ListCategoriesOpts struct {
	PELevel    *domain.PELevel
	ActiveOnly bool
}

type CategoryStore interface {
	ListCategories(ctx context.Context, opts ListCategoriesOpts) ([]*domain.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error)
	ListCategoryUOMs(ctx context.Context, categoryIDs []int64) ([]*domain.CategoryUOM, error)
	ListCategoryPELevels(ctx context.Context, categoryIDs []int64) ([]*domain.CategoryPELevel, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (int64, error)
	UpsertCategory(ctx context.Context, seed *dto.SeedCategory) (int64, error)
	UpdateCategory(ctx context.Context, categoryID int64, req *dto.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, categoryID int64) error
	AddCategoryUOMs(ctx context.Context, categoryID int64, uomCodes []string) error
	AddCategoryPELevels(ctx context.Context, categoryID int64, levels []domain.PELevel) error
	ClearCategoryUOMs(ctx context.Context, categoryID int64) error
	ClearCategoryPELevels(ctx context.Context, categoryID int64) error
}

var categoryColumns = []string{
	"category_id", "code", "kind", "class", "event", "scope", "detail",
	"parent_id", "is_active", "created_at", "updated_at",
}

func (s *store) ListCategories(ctx context.Context, opts ListCategoriesOpts) ([]*domain.Category, error) {
	query := builder().Select(categoryColumns...).
		From(tableCategories).
		OrderBy(
			"kind NULLS LAST",
			"class NULLS LAST",
			"event NULLS LAST",
			"scope NULLS LAST",
			"detail NULLS LAST",
		)

	if opts.ActiveOnly {
		query = query.Where(sq.Eq{"is_active": true})
	}
	if opts.PELevel != nil {
		query = query.Where(
			fmt.Sprintf("category_id IN (SELECT category_id FROM %s WHERE pe_level = ?)", tablePEApplicability),
			string(*opts.PELevel),
		)
	}

	var selected []*domain.Category
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := builder().Select(categoryColumns...).
		From(tableCategories).
		Where(sq.Eq{"category_id": categoryID})

	var selected domain.Category
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListCategoryUOMs(ctx context.Context, categoryIDs []int64) ([]*domain.CategoryUOM, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	query := builder().Select("category_id", "uom_code").
		From(tableCategoryUOMs).
		Where(sq.Eq{"category_id": categoryIDs}).
		OrderBy("category_id", "uom_code")

	var selected []*domain.CategoryUOM
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListCategoryPELevels(ctx context.Context, categoryIDs []int64) ([]*domain.CategoryPELevel, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	query := builder().Select("category_id", "pe_level").
		From(tablePEApplicability).
		Where(sq.Eq{"category_id": categoryIDs}).
		OrderBy("category_id", "pe_level")

	var selected []*domain.CategoryPELevel
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (int64, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	query := builder().Insert(tableCategories).
		Columns("code", "kind", "class", "event", "scope", "detail", "parent_id", "is_active").
		Values(req.Code, string(req.Kind), req.Class, req.Event, req.Scope, req.Detail, req.ParentID, isActive).
		Suffix("RETURNING category_id")

	var id int64
	if err := s.pool.Getx(ctx, &id, query); err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}

func (s *store) UpsertCategory(ctx context.Context, seed *dto.SeedCategory) (int64, error) {
	query := builder().Insert(tableCategories).
		Columns("code", "kind", "class", "event", "scope", "detail", "is_active").
		Values(seed.Code, string(seed.Kind), nullable(seed.Class), nullable(seed.Event), nullable(seed.Scope), nullable(seed.Detail), true).
		Suffix(`
on conflict (code)
do update
set
	kind = excluded.kind,
	class = excluded.class,
	event = excluded.event,
	scope = excluded.scope,
	detail = excluded.detail,
	is_active = true,
	updated_at = now()
RETURNING category_id`)

	var id int64
	if err := s.pool.Getx(ctx, &id, query); err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}

func (s *store) UpdateCategory(ctx context.Context, categoryID int64, req *dto.UpdateCategoryRequest) error {
	set := map[string]interface{}{"updated_at": sq.Expr("now()")}
	if req.Code != nil {
		set["code"] = *req.Code
	}
	if req.Kind != nil {
		set["kind"] = string(*req.Kind)
	}
	if req.Class != nil {
		set["class"] = *req.Class
	}
	if req.Event != nil {
		set["event"] = *req.Event
	}
	if req.Scope != nil {
		set["scope"] = *req.Scope
	}
	if req.Detail != nil {
		set["detail"] = *req.Detail
	}
	if req.ParentID != nil {
		set["parent_id"] = *req.ParentID
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}

	query := builder().Update(tableCategories).
		SetMap(set).
		Where(sq.Eq{"category_id": categoryID})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

func (s *store) DeleteCategory(ctx context.Context, categoryID int64) error {
	query := builder().Delete(tableCategories).
		Where(sq.Eq{"category_id": categoryID})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

func (s *store) AddCategoryUOMs(ctx context.Context, categoryID int64, uomCodes []string) error {
	if len(uomCodes) == 0 {
		return nil
	}

	query := builder().Insert(tableCategoryUOMs).
		Columns("category_id", "uom_code")
	for _, code := range uomCodes {
		query = query.Values(categoryID, code)
	}
	query = query.Suffix("on conflict do nothing")

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) AddCategoryPELevels(ctx context.Context, categoryID int64, levels []domain.PELevel) error {
	if len(levels) == 0 {
		return nil
	}

	query := builder().Insert(tablePEApplicability).
		Columns("category_id", "pe_level")
	for _, level := range levels {
		query = query.Values(categoryID, string(level))
	}
	query = query.Suffix("on conflict do nothing")

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) ClearCategoryUOMs(ctx context.Context, categoryID int64) error {
	query := builder().Delete(tableCategoryUOMs).
		Where(sq.Eq{"category_id": categoryID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) ClearCategoryPELevels(ctx context.Context, categoryID int64) error {
	query := builder().Delete(tablePEApplicability).
		Where(sq.Eq{"category_id": categoryID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
