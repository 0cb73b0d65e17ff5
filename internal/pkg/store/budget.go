package store

import (
	"context"

	"github.com/ougirez/landscape/internal/domain"
)

type BudgetStore interface {
	ListBudgetVersions(ctx context.Context) ([]*domain.BudgetVersion, error)
	CreateBudgetVersion(ctx context.Context, version *domain.BudgetVersion) (int64, error)
}

var budgetVersionColumns = []string{"budget_id", "name", "as_of", "status", "created_at"}

func (s *store) ListBudgetVersions(ctx context.Context) ([]*domain.BudgetVersion, error) {
	query := builder().Select(budgetVersionColumns...).
		From(tableBudgetVersions).
		OrderBy("as_of DESC", "budget_id DESC")

	var selected []*domain.BudgetVersion
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CreateBudgetVersion(ctx context.Context, version *domain.BudgetVersion) (int64, error) {
	query := builder().Insert(tableBudgetVersions).
		Columns("name", "as_of", "status").
		Values(version.Name, version.AsOf, version.Status).
		Suffix("RETURNING budget_id")

	var id int64
	if err := s.pool.Getx(ctx, &id, query); err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}
