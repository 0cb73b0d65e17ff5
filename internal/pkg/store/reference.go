package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/landscape/internal/domain"
)

type ReferenceStore interface {
	ListUOMs(ctx context.Context) ([]*domain.UOM, error)
	ListConfidencePolicies(ctx context.Context) ([]*domain.ConfidencePolicy, error)
	UpsertUOMs(ctx context.Context, uoms []*domain.UOM) error
	UpsertConfidencePolicies(ctx context.Context, policies []*domain.ConfidencePolicy) error
}

var (
	uomColumns        = []string{"uom_code", "name", "uom_type", "is_active"}
	confidenceColumns = []string{"confidence_code", "name", "default_contingency_pct", "is_active"}
)

func (s *store) ListUOMs(ctx context.Context) ([]*domain.UOM, error) {
	query := builder().Select(uomColumns...).
		From(tableUOMs).
		Where(sq.Eq{"is_active": true}).
		OrderBy("uom_code")

	var selected []*domain.UOM
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListConfidencePolicies(ctx context.Context) ([]*domain.ConfidencePolicy, error) {
	query := builder().Select(confidenceColumns...).
		From(tableConfidence).
		Where(sq.Eq{"is_active": true}).
		OrderBy("confidence_code")

	var selected []*domain.ConfidencePolicy
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpsertUOMs(ctx context.Context, uoms []*domain.UOM) error {
	if len(uoms) == 0 {
		return nil
	}

	query := builder().Insert(tableUOMs).
		Columns(uomColumns...)
	for _, uom := range uoms {
		query = query.Values(uom.Code, uom.Name, uom.UOMType, uom.IsActive)
	}
	query = query.Suffix(`
on conflict (uom_code)
do update
set
	name = excluded.name,
	uom_type = excluded.uom_type,
	is_active = excluded.is_active`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) UpsertConfidencePolicies(ctx context.Context, policies []*domain.ConfidencePolicy) error {
	if len(policies) == 0 {
		return nil
	}

	query := builder().Insert(tableConfidence).
		Columns(confidenceColumns...)
	for _, p := range policies {
		query = query.Values(p.Code, p.Name, p.DefaultContingencyPct, p.IsActive)
	}
	query = query.Suffix(`
on conflict (confidence_code)
do update
set
	name = excluded.name,
	default_contingency_pct = excluded.default_contingency_pct,
	is_active = excluded.is_active`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
